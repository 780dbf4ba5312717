package handler

import (
	"context"
	"errors"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	nsqpkg "github.com/piresc/intercity/internal/pkg/nsq"
	"github.com/piresc/intercity/services/notifications"
)

// NSQHandler persists notification events consumed from NSQ
type NSQHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNSQHandler creates a new notification consumer handler
func NewNSQHandler(notificationUC notifications.NotificationUC) *NSQHandler {
	return &NSQHandler{notificationUC: notificationUC}
}

// HandleNotification stores one event. Malformed or invalid events are
// dropped; any other failure requeues the message.
func (h *NSQHandler) HandleNotification(body []byte) error {
	var event models.NotificationEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Warn("Dropping malformed notification event", logger.Err(err))
		return nil
	}

	_, err := h.notificationUC.StoreEvent(context.Background(), event)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Dropping invalid notification event",
				logger.String("type", event.Type),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}
