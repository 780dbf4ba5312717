package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/ratelimit"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

// RateLimitResponse is the body sent when the limit is exceeded
type RateLimitResponse struct {
	Error             string `json:"error"`
	Message           string `json:"message"`
	RetryAfterSeconds int64  `json:"retryAfterSeconds"`
}

// RateLimiterMiddleware gates requests by client address. The address
// prefers X-Forwarded-For and falls back to the peer address.
// Limiter errors let the request through with the unmetered quota in
// the headers.
func RateLimiterMiddleware(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			decision, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable, allowing request",
					logger.String("client_ip", key),
					logger.Err(err))
				if decision.Limit <= 0 {
					decision = ratelimit.Unmetered(ratelimit.DefaultConfig(), time.Now())
				}
				decision.Allowed = true
			}

			h := c.Response().Header()
			h.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
			h.Set(HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
			h.Set(HeaderRateLimitReset, strconv.FormatInt(decision.ResetAt.Unix(), 10))

			if !decision.Allowed {
				retryAfter := decision.RetryAfterSeconds()
				h.Set(HeaderRetryAfter, strconv.FormatInt(retryAfter, 10))
				logger.InfoCtx(c.Request().Context(), "Rate limit exceeded", logger.String("client_ip", key))
				return c.JSON(http.StatusTooManyRequests, RateLimitResponse{
					Error:             "Too Many Requests",
					Message:           "Rate limit exceeded, please try again later",
					RetryAfterSeconds: retryAfter,
				})
			}

			return next(c)
		}
	}
}
