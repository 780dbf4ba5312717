package gateway

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/constants"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	nsqpkg "github.com/piresc/intercity/internal/pkg/nsq"
)

// NotificationGW publishes notification events to NSQ
type NotificationGW struct {
	publisher nsqpkg.Publisher
}

// NewNotificationGW creates a new NSQ notification gateway
func NewNotificationGW(publisher nsqpkg.Publisher) *NotificationGW {
	return &NotificationGW{publisher: publisher}
}

// PublishNotification publishes event to the notifications topic
func (g *NotificationGW) PublishNotification(ctx context.Context, event models.NotificationEvent) error {
	logger.DebugCtx(ctx, "Publishing notification",
		logger.String("type", event.Type),
		logger.String("recipient", event.UserID))
	return g.publisher.Publish(constants.TopicNotifications, event)
}
