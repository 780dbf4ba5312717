package reviews

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// ReviewUC defines the interface for review business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/reviews ReviewUC
type ReviewUC interface {
	CreateReview(ctx context.Context, reviewerID string, req models.CreateReviewRequest) (*models.Review, error)
	ListReviewsForUser(ctx context.Context, userID string, limit int) ([]*models.Review, error)
}
