package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/bookings"
	"github.com/piresc/intercity/services/notifications"
	"github.com/piresc/intercity/services/reviews"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	MaxCommentLength = 1000
)

// ReviewUC implements reviews.ReviewUC
type ReviewUC struct {
	reviewRepo  reviews.ReviewRepo
	bookingRepo bookings.BookingRepo
	publisher   notifications.EventPublisher
}

// NewReviewUC creates a new review usecase instance
func NewReviewUC(reviewRepo reviews.ReviewRepo, bookingRepo bookings.BookingRepo, publisher notifications.EventPublisher) *ReviewUC {
	return &ReviewUC{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

// CreateReview records the caller's rating of the other party to a booking
func (uc *ReviewUC) CreateReview(ctx context.Context, reviewerID string, req models.CreateReviewRequest) (*models.Review, error) {
	const op = "createReview"

	if !utils.IsUUID(req.BookingID) {
		return nil, apperrors.NotFound(op, "booking")
	}

	booking, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	var revieweeID string
	switch reviewerID {
	case booking.RiderID:
		revieweeID = booking.TripDriverID
	case booking.TripDriverID:
		revieweeID = booking.RiderID
	default:
		return nil, apperrors.NotOwner(op, "booking")
	}

	// A repeat review is a conflict whatever its payload.
	reviewed, err := uc.reviewRepo.HasReviewed(ctx, booking.ID, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, apperrors.Conflict(op, "booking already reviewed by this user", nil)
	}

	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperrors.Validation(op, fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if req.Comment != nil {
		trimmed := strings.TrimSpace(*req.Comment)
		if len(trimmed) > MaxCommentLength {
			return nil, apperrors.Validation(op, fmt.Sprintf("comment must be at most %d characters", MaxCommentLength))
		}
		if trimmed == "" {
			req.Comment = nil
		} else {
			req.Comment = &trimmed
		}
	}
	if revieweeID == reviewerID {
		return nil, apperrors.Validation(op, "users cannot review themselves")
	}

	finished := booking.Status == models.BookingStatusCompleted ||
		(booking.Status != models.BookingStatusCancelled && booking.TripStatus == models.TripStatusCompleted)
	if !finished {
		return nil, apperrors.Validation(op, "only completed bookings can be reviewed")
	}

	revieweeIsDriver := revieweeID == booking.TripDriverID
	review, err := uc.reviewRepo.CreateReview(ctx, &models.Review{
		BookingID:  booking.ID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}, revieweeIsDriver)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Review created",
		logger.String("review_id", review.ID),
		logger.String("booking_id", review.BookingID),
		logger.Int("rating", review.Rating),
		logger.Bool("reviewee_is_driver", revieweeIsDriver))

	notifications.Notify(ctx, uc.publisher, models.NotificationEvent{
		UserID:  revieweeID,
		Title:   "New review",
		Message: fmt.Sprintf("You received a %d-star review.", review.Rating),
		Type:    models.NotificationReviewReceived,
		Metadata: map[string]interface{}{
			"review_id":  review.ID,
			"booking_id": review.BookingID,
		},
	})
	return review, nil
}

// ListReviewsForUser returns reviews received by userID
func (uc *ReviewUC) ListReviewsForUser(ctx context.Context, userID string, limit int) ([]*models.Review, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.Validation("reviewsForUser", "user id is required")
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return uc.reviewRepo.ListReviewsForUser(ctx, userID, limit)
}
