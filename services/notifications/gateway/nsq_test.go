package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/piresc/intercity/internal/pkg/constants"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/services/notifications"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topic   string
	payload []byte
	err     error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topic = topic
	b, err := json.Marshal(message)
	p.payload = b
	return err
}

func TestPublishNotification(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewNotificationGW(pub)

	event := models.NotificationEvent{
		UserID:  "uid-1",
		Title:   "Booking created",
		Message: "A rider booked 2 seats",
		Type:    models.NotificationBookingCreated,
	}
	require.NoError(t, gw.PublishNotification(context.Background(), event))

	assert.Equal(t, constants.TopicNotifications, pub.topic)
	var got models.NotificationEvent
	require.NoError(t, json.Unmarshal(pub.payload, &got))
	assert.Equal(t, event, got)
}

func TestNotify_SwallowsPublishErrors(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nsqd down")}

	assert.NotPanics(t, func() {
		notifications.Notify(context.Background(), NewNotificationGW(pub),
			models.NotificationEvent{UserID: "uid-1", Type: models.NotificationTripStarted})
	})
	notifications.Notify(context.Background(), nil, models.NotificationEvent{UserID: "uid-1"})
}
