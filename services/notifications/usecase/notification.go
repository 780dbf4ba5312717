package usecase

import (
	"context"
	"strings"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/notifications"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// NotificationUC implements notifications.NotificationUC
type NotificationUC struct {
	repo notifications.NotificationRepo
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(repo notifications.NotificationRepo) *NotificationUC {
	return &NotificationUC{repo: repo}
}

// ListNotifications returns the caller's notifications, newest first
func (uc *NotificationUC) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error) {
	return uc.repo.ListNotifications(ctx, userID, unreadOnly, clampLimit(limit))
}

// MarkRead flags one of the caller's notifications as read. Someone else's
// notification looks exactly like a missing one.
func (uc *NotificationUC) MarkRead(ctx context.Context, userID, id string) (*models.Notification, error) {
	if !utils.IsUUID(id) {
		return nil, apperrors.NotFound("markNotificationRead", "notification")
	}
	return uc.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead flags all of the caller's notifications as read
func (uc *NotificationUC) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return uc.repo.MarkAllRead(ctx, userID)
}

// StoreEvent persists a notification event consumed from the topic
func (uc *NotificationUC) StoreEvent(ctx context.Context, event models.NotificationEvent) (*models.Notification, error) {
	const op = "storeNotification"

	if strings.TrimSpace(event.UserID) == "" {
		return nil, apperrors.Validation(op, "user_id is required")
	}
	if strings.TrimSpace(event.Type) == "" {
		return nil, apperrors.Validation(op, "type is required")
	}

	n, err := uc.repo.CreateNotification(ctx, &models.Notification{
		UserID:   event.UserID,
		Title:    event.Title,
		Message:  event.Message,
		Type:     event.Type,
		Metadata: models.JSONMap(event.Metadata),
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Notification stored",
		logger.String("notification_id", n.ID),
		logger.String("user_id", n.UserID),
		logger.String("type", n.Type))
	return n, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
