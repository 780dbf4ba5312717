package auth

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// Identity is the verified caller of a request
type Identity struct {
	SubjectID string
	Email     string
	Claims    map[string]interface{}
}

// Role returns the role claim, if any
func (i *Identity) Role() models.UserRole {
	if i == nil {
		return ""
	}
	role, _ := i.Claims["role"].(string)
	return models.UserRole(role)
}

// HasRole reports whether the claims grant role. A "both" role grants
// rider and driver, and a "roles" list claim is honoured too.
func (i *Identity) HasRole(role models.UserRole) bool {
	if i == nil {
		return false
	}
	if i.Role().Includes(role) {
		return true
	}
	switch roles := i.Claims["roles"].(type) {
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok && models.UserRole(s).Includes(role) {
				return true
			}
		}
	case []string:
		for _, s := range roles {
			if models.UserRole(s).Includes(role) {
				return true
			}
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored on ctx, if any
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
