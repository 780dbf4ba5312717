package models

import (
	"time"
)

// Notification types published by the domain services
const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationTripCancelled    = "trip_cancelled"
	NotificationTripStarted      = "trip_started"
	NotificationTripCompleted    = "trip_completed"
	NotificationPaymentVerified  = "payment_verified"
	NotificationPaymentRefunded  = "payment_refunded"
	NotificationReviewReceived   = "review_received"
)

// Notification is an in-app message addressed to a user
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"type" db:"type"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	Metadata  JSONMap   `json:"metadata" db:"metadata"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NotificationEvent is the message published to the notifications topic
type NotificationEvent struct {
	UserID   string                 `json:"user_id"`
	Title    string                 `json:"title"`
	Message  string                 `json:"message"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
