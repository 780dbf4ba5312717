package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
)

const userColumns = `id, email, phone, name, role, is_verified, is_active, created_at, updated_at`

// UserRepo implements users.UserRepo on PostgreSQL
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts user keyed by its identity provider subject id.
// Any unique collision (subject, email or phone) is a conflict.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, phone, name, role, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT DO NOTHING
		RETURNING ` + userColumns

	var created models.User
	err := r.db.Get(ctx, &created, query,
		user.ID, user.Email, user.Phone, user.Name, user.Role, user.IsVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Conflict("registerUser", "user already registered or email/phone in use", nil)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.Get(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("getUser", "user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateUser applies the non-nil fields of req to the user's own row
func (r *UserRepo) UpdateUser(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	err := r.db.Get(ctx, &user, query, id, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("updateProfile", "user")
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("updateProfile", "phone already in use", err)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}
