package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/intercity/internal/pkg/apperrors"
	jwtpkg "github.com/piresc/intercity/internal/pkg/jwt"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	calls int
	id    *Identity
	err   error
}

func (s *stubVerifier) VerifyToken(_ context.Context, _ string) (*Identity, error) {
	s.calls++
	return s.id, s.err
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{header: "", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer ", ok: false},
		{header: "bearer abc", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
		{header: "Bearer a b", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestContextBuilder_Build(t *testing.T) {
	t.Run("Missing header is anonymous without verification", func(t *testing.T) {
		v := &stubVerifier{}
		ctx := NewContextBuilder(v).Build(context.Background(), "")

		_, ok := FromContext(ctx)
		assert.False(t, ok)
		assert.Zero(t, v.calls)
	})

	t.Run("Malformed header is anonymous", func(t *testing.T) {
		v := &stubVerifier{}
		ctx := NewContextBuilder(v).Build(context.Background(), "Token xyz")

		_, ok := FromContext(ctx)
		assert.False(t, ok)
		assert.Zero(t, v.calls)
	})

	t.Run("Verification failure is swallowed", func(t *testing.T) {
		v := &stubVerifier{err: errors.New("expired")}
		ctx := NewContextBuilder(v).Build(context.Background(), "Bearer expired-token")

		_, ok := FromContext(ctx)
		assert.False(t, ok)
		assert.Equal(t, 1, v.calls)
	})

	t.Run("Verified token yields identity", func(t *testing.T) {
		v := &stubVerifier{id: &Identity{SubjectID: "uid-1", Email: "a@b.c"}}
		ctx := NewContextBuilder(v).Build(context.Background(), "Bearer good")

		id, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "uid-1", id.SubjectID)
		assert.Equal(t, "a@b.c", id.Email)
	})
}

func TestJWTVerifier(t *testing.T) {
	cfg := models.JWTConfig{Secret: "s3cret", Issuer: "intercity", Expiration: 5}
	token, _, err := jwtpkg.GenerateToken("uid-7", "driver@example.com", "both", cfg)
	require.NoError(t, err)

	id, err := NewJWTVerifier(cfg).VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-7", id.SubjectID)
	assert.Equal(t, "driver@example.com", id.Email)
	assert.True(t, id.HasRole(models.RoleDriver))
	assert.True(t, id.HasRole(models.RoleRider))

	_, err = NewJWTVerifier(models.JWTConfig{Secret: "other"}).VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	_, err := RequireAuth(context.Background(), "me")
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)

	ctx := WithIdentity(context.Background(), &Identity{SubjectID: "uid-1"})
	id, err := RequireAuth(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.SubjectID)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		id      *Identity
		role    models.UserRole
		wantErr error
	}{
		{name: "Anonymous", role: models.RoleDriver, wantErr: apperrors.ErrAuthenticationRequired},
		{name: "Rider asking for driver", id: &Identity{SubjectID: "u", Claims: map[string]interface{}{"role": "rider"}}, role: models.RoleDriver, wantErr: apperrors.ErrInsufficientPermissions},
		{name: "No role claim", id: &Identity{SubjectID: "u"}, role: models.RoleRider, wantErr: apperrors.ErrInsufficientPermissions},
		{name: "Driver", id: &Identity{SubjectID: "u", Claims: map[string]interface{}{"role": "driver"}}, role: models.RoleDriver},
		{name: "Both covers rider", id: &Identity{SubjectID: "u", Claims: map[string]interface{}{"role": "both"}}, role: models.RoleRider},
		{name: "Roles list", id: &Identity{SubjectID: "u", Claims: map[string]interface{}{"roles": []interface{}{"rider", "driver"}}}, role: models.RoleDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.id != nil {
				ctx = WithIdentity(ctx, tt.id)
			}
			_, err := RequireRole(ctx, "createTrip", tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
