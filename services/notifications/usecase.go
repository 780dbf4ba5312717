package notifications

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// NotificationUC defines the interface for notification business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/notifications NotificationUC
type NotificationUC interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	StoreEvent(ctx context.Context, event models.NotificationEvent) (*models.Notification, error)
}
