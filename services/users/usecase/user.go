package usecase

import (
	"context"
	"strings"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/services/users"
)

// UserUC implements users.UserUC
type UserUC struct {
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo) *UserUC {
	return &UserUC{userRepo: userRepo}
}

// RegisterUser creates the account of an authenticated subject. The email
// defaults to the one carried by the verified token.
func (uc *UserUC) RegisterUser(ctx context.Context, subjectID, email string, req models.RegisterUserRequest) (*models.User, error) {
	const op = "registerUser"

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email = strings.TrimSpace(*req.Email)
	}
	if email == "" {
		return nil, apperrors.Validation(op, "email is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation(op, "name is required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleRider
	}
	if !role.Valid() {
		return nil, apperrors.Validation(op, "role must be rider, driver or both")
	}

	user, err := uc.userRepo.CreateUser(ctx, &models.User{
		ID:    subjectID,
		Email: email,
		Phone: req.Phone,
		Name:  name,
		Role:  role,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))
	return user, nil
}

// GetUser returns a user by id
func (uc *UserUC) GetUser(ctx context.Context, id string) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// UpdateProfile changes the caller's own name or phone
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.Validation("updateProfile", "name cannot be empty")
	}
	if req.Name == nil && req.Phone == nil {
		return uc.userRepo.GetUserByID(ctx, userID)
	}
	return uc.userRepo.UpdateUser(ctx, userID, req)
}
