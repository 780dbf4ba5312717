package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "intercity-test",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name      string
		subjectID string
		email     string
		role      string
	}{
		{name: "Driver token", subjectID: "firebase-uid-1", email: "driver@example.com", role: "driver"},
		{name: "Rider token", subjectID: "firebase-uid-2", email: "rider@example.com", role: "rider"},
		{name: "Empty role", subjectID: "firebase-uid-3", email: "", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			token, expiresAt, err := GenerateToken(tt.subjectID, tt.email, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

			claims, err := ValidateToken(token, cfg.Secret, cfg.Issuer)
			require.NoError(t, err)
			assert.Equal(t, tt.subjectID, claims["sub"])
			assert.Equal(t, tt.email, claims["email"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, cfg.Issuer, claims["iss"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken("uid-1", "a@b.c", "rider", cfg)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	noSubjectString, err := noSubject.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "uid-1"})
	unsignedString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		issuer  string
		wantErr error
	}{
		{name: "Valid token", token: valid, secret: cfg.Secret, issuer: cfg.Issuer},
		{name: "Valid token without issuer check", token: valid, secret: cfg.Secret},
		{name: "Wrong secret", token: valid, secret: "other", issuer: cfg.Issuer, wantErr: ErrInvalidToken},
		{name: "Wrong issuer", token: valid, secret: cfg.Secret, issuer: "someone-else", wantErr: ErrInvalidToken},
		{name: "Expired", token: expiredString, secret: cfg.Secret, wantErr: ErrInvalidToken},
		{name: "Missing subject", token: noSubjectString, secret: cfg.Secret, wantErr: ErrMissingSubject},
		{name: "Unsigned", token: unsignedString, secret: cfg.Secret, wantErr: ErrInvalidToken},
		{name: "Garbage", token: "not.a.token", secret: cfg.Secret, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret, tt.issuer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "uid-1", claims["sub"])
		})
	}
}
