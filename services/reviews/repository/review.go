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

const reviewColumns = `id, booking_id, reviewer_id, reviewee_id, rating, comment, created_at`

// ReviewRepo implements reviews.ReviewRepo on PostgreSQL
type ReviewRepo struct {
	db *database.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *database.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// HasReviewed reports whether reviewerID already reviewed bookingID
func (r *ReviewRepo) HasReviewed(ctx context.Context, bookingID, reviewerID string) (bool, error) {
	var exists bool
	err := r.db.Get(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE booking_id = $1 AND reviewer_id = $2)`, bookingID, reviewerID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}
	return exists, nil
}

// CreateReview inserts review and, when the reviewee is the driver,
// recomputes the driver's average rating in the same transaction. The
// driver profile row is locked first so concurrent reviews for the same
// driver serialize and each recompute sees every committed rating.
func (r *ReviewRepo) CreateReview(ctx context.Context, review *models.Review, revieweeIsDriver bool) (*models.Review, error) {
	const op = "createReview"

	var created models.Review
	err := r.db.Transaction(ctx, func(tx *database.DB) error {
		if revieweeIsDriver {
			var profileID string
			err := tx.Get(ctx, &profileID, `SELECT id FROM driver_profiles WHERE user_id = $1 FOR UPDATE`, review.RevieweeID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.NotFound(op, "driver profile")
				}
				return fmt.Errorf("failed to lock driver profile: %w", err)
			}
		}

		err := tx.Get(ctx, &created, `
			INSERT INTO reviews (id, booking_id, reviewer_id, reviewee_id, rating, comment)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (booking_id, reviewer_id) DO NOTHING
			RETURNING `+reviewColumns,
			uuid.NewString(), review.BookingID, review.ReviewerID, review.RevieweeID, review.Rating, review.Comment)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.Conflict(op, "booking already reviewed by this user", nil)
			}
			return fmt.Errorf("failed to insert review: %w", err)
		}

		if !revieweeIsDriver {
			return nil
		}
		_, err = tx.Exec(ctx, `
			UPDATE driver_profiles
			SET average_rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviewee_id = $1),
			    updated_at = NOW()
			WHERE user_id = $1`, review.RevieweeID)
		if err != nil {
			return fmt.Errorf("failed to update driver rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListReviewsForUser returns the newest reviews received by revieweeID first
func (r *ReviewRepo) ListReviewsForUser(ctx context.Context, revieweeID string, limit int) ([]*models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE reviewee_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	list := []*models.Review{}
	if err := r.db.Select(ctx, &list, query, revieweeID, limit); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return list, nil
}
