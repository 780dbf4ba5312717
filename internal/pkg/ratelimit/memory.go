package ratelimit

import (
	"context"
	"sync"
	"time"
)

// SweepInterval is how often expired windows are dropped
const SweepInterval = 5 * time.Minute

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps per-process counters. Instances do not share limits.
type MemoryLimiter struct {
	cfg   Config
	now   Clock
	mu    sync.Mutex
	store map[string]*window

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryLimiter creates a limiter. A nil clock means time.Now.
func NewMemoryLimiter(cfg Config, clock Clock) *MemoryLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryLimiter{
		cfg:    cfg.normalize(),
		now:    clock,
		store:  make(map[string]*window),
		stopCh: make(chan struct{}),
	}
}

// Allow counts one request for key
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.store[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(l.cfg.Window)}
		l.store[key] = w
	} else {
		w.count++
	}

	return decide(l.cfg, w.count, w.resetAt, now), nil
}

// Sweep drops expired windows and returns how many were removed
func (l *MemoryLimiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.store {
		if !now.Before(w.resetAt) {
			delete(l.store, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.store)
}

// StartSweeper runs Sweep every interval until Stop is called
func (l *MemoryLimiter) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = SweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-l.stopCh:
				return
			}
		}
	}()
}

// Stop ends the sweeper goroutine
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}
