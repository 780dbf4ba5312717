package users

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error)
}
