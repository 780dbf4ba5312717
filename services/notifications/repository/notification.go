package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
)

const notificationColumns = `id, user_id, title, message, type, is_read, metadata, created_at`

// NotificationRepo implements notifications.NotificationRepo on PostgreSQL
type NotificationRepo struct {
	db *database.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *database.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateNotification stores n and returns the stored row
func (r *NotificationRepo) CreateNotification(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	var created models.Notification
	err := r.db.Get(ctx, &created, query, uuid.NewString(), n.UserID, n.Title, n.Message, n.Type, n.Metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.CreationFailed("createNotification", "notification")
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return &created, nil
}

// ListNotifications returns the newest notifications of userID first
func (r *NotificationRepo) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND (NOT $2::boolean OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3`

	list := []*models.Notification{}
	if err := r.db.Select(ctx, &list, query, userID, unreadOnly, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead flags one of userID's notifications as read
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	var n models.Notification
	if err := r.db.Get(ctx, &n, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("markNotificationRead", "notification")
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return &n, nil
}

// MarkAllRead flags every unread notification of userID and returns the count
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}
