package models

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one party's rating of the other party to a booking
type Review struct {
	ID         string    `json:"id" db:"id"`
	BookingID  string    `json:"booking_id" db:"booking_id"`
	ReviewerID string    `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID string    `json:"reviewee_id" db:"reviewee_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest carries the input for reviewing a booking
type CreateReviewRequest struct {
	BookingID string
	Rating    int
	Comment   *string
}
