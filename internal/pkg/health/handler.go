package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/pkg/logger"
)

// Status is the liveness payload
type Status struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
}

// Readiness reports each dependency check
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Checker pings one dependency
type Checker func(ctx context.Context) error

// Handler serves liveness and readiness endpoints
type Handler struct {
	startedAt time.Time
	now       func() time.Time
	checks    map[string]Checker
}

// NewHandler creates a handler whose uptime counts from startedAt
func NewHandler(startedAt time.Time) *Handler {
	return &Handler{startedAt: startedAt, now: time.Now, checks: make(map[string]Checker)}
}

// AddCheck registers a dependency for the readiness endpoint
func (h *Handler) AddCheck(name string, check Checker) {
	h.checks[name] = check
}

// Live answers {status, timestamp, uptimeSeconds}
func (h *Handler) Live(c echo.Context) error {
	now := h.now()
	return c.JSON(http.StatusOK, Status{
		Status:        "ok",
		Timestamp:     now.UTC(),
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
	})
}

// Ready runs every registered check with a short timeout
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	result := Readiness{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logger.Warn("Readiness check failed", logger.String("dependency", name), logger.Err(err))
			result.Checks[name] = "unavailable"
			result.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		result.Checks[name] = "ok"
	}
	return c.JSON(code, result)
}

// RegisterHealthEndpoints registers /health and /ready
func RegisterHealthEndpoints(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Live)
	e.GET("/ready", h.Ready)
}
