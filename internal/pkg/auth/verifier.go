package auth

import (
	"context"

	jwtpkg "github.com/piresc/intercity/internal/pkg/jwt"
	"github.com/piresc/intercity/internal/pkg/models"
)

// TokenVerifier checks a bearer credential with the identity provider
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier verifies HS256 tokens signed with a shared secret
type JWTVerifier struct {
	secret string
	issuer string
}

// NewJWTVerifier creates a verifier from JWT settings
func NewJWTVerifier(cfg models.JWTConfig) *JWTVerifier {
	return &JWTVerifier{secret: cfg.Secret, issuer: cfg.Issuer}
}

// VerifyToken validates token and maps its claims to an Identity
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*Identity, error) {
	claims, err := jwtpkg.ValidateToken(token, v.secret, v.issuer)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	return &Identity{
		SubjectID: sub,
		Email:     email,
		Claims:    map[string]interface{}(claims),
	}, nil
}
