package ratelimit

import (
	"context"
	"math"
	"time"
)

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the current window ends
	ResetAt time.Time
	// RetryAfter is zero when Allowed
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds
func (d Decision) RetryAfterSeconds() int64 {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int64(math.Ceil(d.RetryAfter.Seconds()))
}

// Limiter counts requests per key in fixed windows. When the counter
// store fails, Allow returns the error together with Unmetered for the
// limiter's config so callers can still report the quota.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Clock returns the current time
type Clock func() time.Time

// Config holds fixed-window settings
type Config struct {
	Window      time.Duration
	MaxRequests int
}

// DefaultConfig allows 100 requests per 15 minutes
func DefaultConfig() Config {
	return Config{Window: 900 * time.Second, MaxRequests: 100}
}

// Unmetered is the decision for a request that could not be counted: the
// full quota remains and the window starts now
func Unmetered(cfg Config, now time.Time) Decision {
	cfg = cfg.normalize()
	return Decision{
		Allowed:   true,
		Limit:     cfg.MaxRequests,
		Remaining: cfg.MaxRequests,
		ResetAt:   now.Add(cfg.Window),
	}
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Window <= 0 {
		c.Window = def.Window
	}
	if c.MaxRequests <= 0 {
		c.MaxRequests = def.MaxRequests
	}
	return c
}

func decide(cfg Config, count int, resetAt, now time.Time) Decision {
	d := Decision{
		Allowed:   count <= cfg.MaxRequests,
		Limit:     cfg.MaxRequests,
		Remaining: cfg.MaxRequests - count,
		ResetAt:   resetAt,
	}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !d.Allowed {
		d.RetryAfter = resetAt.Sub(now)
		if d.RetryAfter < 0 {
			d.RetryAfter = 0
		}
	}
	return d
}
