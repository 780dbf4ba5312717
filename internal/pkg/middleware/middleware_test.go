package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/internal/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct {
	decision ratelimit.Decision
}

func (l failingLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return l.decision, errors.New("redis down")
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serve(h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiterMiddleware(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{Window: 900 * time.Second, MaxRequests: 2}, func() time.Time { return now })
	h := RateLimiterMiddleware(limiter)(okHandler)

	newReq := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set(echo.HeaderXForwardedFor, ip)
		return req
	}

	rec := serve(h, newReq("203.0.113.7"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(HeaderRateLimitLimit))
	assert.Equal(t, "1", rec.Header().Get(HeaderRateLimitRemaining))
	assert.Equal(t, strconv.FormatInt(now.Add(900*time.Second).Unix(), 10), rec.Header().Get(HeaderRateLimitReset))

	rec = serve(h, newReq("203.0.113.7"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(HeaderRateLimitRemaining))

	rec = serve(h, newReq("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(HeaderRateLimitRemaining))
	assert.Equal(t, "900", rec.Header().Get(HeaderRetryAfter))

	var body RateLimitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Too Many Requests", body.Error)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, int64(900), body.RetryAfterSeconds)

	rec = serve(h, newReq("198.51.100.1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	t.Run("Store error reports the configured quota", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		cfg := ratelimit.Config{Window: 60 * time.Second, MaxRequests: 10}
		h := RateLimiterMiddleware(failingLimiter{decision: ratelimit.Unmetered(cfg, now)})(okHandler)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/graphql", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10", rec.Header().Get(HeaderRateLimitLimit))
		assert.Equal(t, "10", rec.Header().Get(HeaderRateLimitRemaining))
		assert.Equal(t, strconv.FormatInt(now.Add(time.Minute).Unix(), 10), rec.Header().Get(HeaderRateLimitReset))
		assert.Empty(t, rec.Header().Get(HeaderRetryAfter))
	})

	t.Run("Limiter without a decision falls back to defaults", func(t *testing.T) {
		h := RateLimiterMiddleware(failingLimiter{})(okHandler)
		before := time.Now()

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/graphql", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "100", rec.Header().Get(HeaderRateLimitLimit))
		assert.Equal(t, "100", rec.Header().Get(HeaderRateLimitRemaining))
		reset, err := strconv.ParseInt(rec.Header().Get(HeaderRateLimitReset), 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, reset, before.Add(900*time.Second).Unix())
	})

	t.Run("Redis outage keeps serving with headers", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		limiter := ratelimit.NewRedisLimiter(client, ratelimit.Config{Window: time.Minute, MaxRequests: 5}, "test", nil)
		mr.Close()

		rec := serve(RateLimiterMiddleware(limiter)(okHandler), httptest.NewRequest(http.MethodGet, "/graphql", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get(HeaderRateLimitLimit))
		assert.Equal(t, "5", rec.Header().Get(HeaderRateLimitRemaining))
		assert.NotEmpty(t, rec.Header().Get(HeaderRateLimitReset))
	})
}

type stubVerifier struct {
	id  *auth.Identity
	err error
}

func (s stubVerifier) VerifyToken(context.Context, string) (*auth.Identity, error) {
	return s.id, s.err
}

func TestAuthContextMiddleware(t *testing.T) {
	var seen *auth.Identity
	capture := func(c echo.Context) error {
		seen, _ = auth.FromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	}

	t.Run("Valid bearer attaches identity", func(t *testing.T) {
		seen = nil
		builder := auth.NewContextBuilder(stubVerifier{id: &auth.Identity{SubjectID: "uid-1"}})
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")

		rec := serve(AuthContextMiddleware(builder)(capture), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "uid-1", seen.SubjectID)
	})

	t.Run("Invalid bearer stays anonymous", func(t *testing.T) {
		seen = nil
		builder := auth.NewContextBuilder(stubVerifier{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")

		rec := serve(AuthContextMiddleware(builder)(capture), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, seen)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	h := RequestIDMiddleware()(okHandler)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = serve(h, req)
	assert.Equal(t, "given-id", rec.Header().Get(echo.HeaderXRequestID))
}
