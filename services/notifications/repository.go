package notifications

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// NotificationRepo defines the interface for notification data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/notifications NotificationRepo
type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *models.Notification) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
