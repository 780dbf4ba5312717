package notifications

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
)

// EventPublisher hands notification events to the delivery pipeline
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/intercity/services/notifications EventPublisher
type EventPublisher interface {
	PublishNotification(ctx context.Context, event models.NotificationEvent) error
}

// Notify publishes events and only logs failures. Notifications never
// fail the operation that produced them.
func Notify(ctx context.Context, pub EventPublisher, events ...models.NotificationEvent) {
	if pub == nil {
		return
	}
	for _, event := range events {
		if err := pub.PublishNotification(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish notification",
				logger.String("type", event.Type),
				logger.String("recipient", event.UserID),
				logger.Err(err))
		}
	}
}
