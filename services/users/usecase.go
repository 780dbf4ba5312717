package users

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// UserUC defines the interface for user business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/users UserUC
type UserUC interface {
	RegisterUser(ctx context.Context, subjectID, email string, req models.RegisterUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
}
