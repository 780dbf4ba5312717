package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	clock := newFakeClock()
	l := NewMemoryLimiter(DefaultConfig(), clock.Now)
	ctx := context.Background()

	for i := 1; i <= 100; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, d.Allowed, "request %d should be allowed", i)
		assert.Equal(t, 100-i, d.Remaining)
	}

	clock.Advance(10 * time.Minute)
	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 5*time.Minute, d.RetryAfter)
	assert.LessOrEqual(t, d.RetryAfterSeconds(), int64(900))

	clock.Advance(5 * time.Minute)
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 99, d.Remaining)
	assert.Equal(t, clock.Now().Add(900*time.Second), d.ResetAt)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(Config{Window: time.Minute, MaxRequests: 1}, newFakeClock().Now)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "a")
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "a")
	assert.False(t, d.Allowed)
	d, _ = l.Allow(ctx, "b")
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_ConcurrentRequestsAreNotUndercounted(t *testing.T) {
	l := NewMemoryLimiter(Config{Window: time.Hour, MaxRequests: 100}, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 250; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Allow(ctx, "same-key")
			if err == nil && d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowed)
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	clock := newFakeClock()
	l := NewMemoryLimiter(Config{Window: time.Minute, MaxRequests: 10}, clock.Now)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "old")
	clock.Advance(45 * time.Second)
	_, _ = l.Allow(ctx, "new")
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())
}

func TestMemoryLimiter_StopIsIdempotent(t *testing.T) {
	l := NewMemoryLimiter(DefaultConfig(), nil)
	l.StartSweeper(time.Millisecond)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{}.normalize()
	assert.Equal(t, 900*time.Second, cfg.Window)
	assert.Equal(t, 100, cfg.MaxRequests)
}
