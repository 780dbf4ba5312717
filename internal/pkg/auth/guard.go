package auth

import (
	"context"
	"fmt"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/models"
)

// RequireAuth returns the caller's identity or an AuthenticationRequired error
func RequireAuth(ctx context.Context, op string) (*Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return nil, apperrors.AuthenticationRequired(op)
	}
	return id, nil
}

// RequireRole is RequireAuth plus a role claim check
func RequireRole(ctx context.Context, op string, role models.UserRole) (*Identity, error) {
	id, err := RequireAuth(ctx, op)
	if err != nil {
		return nil, err
	}
	if !id.HasRole(role) {
		return nil, apperrors.InsufficientPermissions(op, fmt.Sprintf("%s role required", role))
	}
	return id, nil
}
