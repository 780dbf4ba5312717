package reviews

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// ReviewRepo defines the interface for review data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/reviews ReviewRepo
type ReviewRepo interface {
	HasReviewed(ctx context.Context, bookingID, reviewerID string) (bool, error)
	CreateReview(ctx context.Context, review *models.Review, revieweeIsDriver bool) (*models.Review, error)
	ListReviewsForUser(ctx context.Context, revieweeID string, limit int) ([]*models.Review, error)
}
