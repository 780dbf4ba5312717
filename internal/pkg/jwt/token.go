package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/intercity/internal/pkg/models"
)

var (
	// ErrInvalidToken covers malformed, unsigned or expired tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSubject is returned for tokens without a sub claim
	ErrMissingSubject = errors.New("token has no subject")
)

// GenerateToken issues an HS256 token for subjectID, as the identity
// provider would
func GenerateToken(subjectID, email, role string, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"sub":   subjectID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   expiresAt,
	}
	if cfg.Issuer != "" {
		claims["iss"] = cfg.Issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature, expiry and issuer, returning the claims
func ValidateToken(tokenString, secret, issuer string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}

	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
