package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/intercity/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets calls through and counts consecutive failures
	StateClosed State = iota
	// StateOpen rejects calls until the cooldown has passed
	StateOpen
	// StateHalfOpen lets a limited number of probe calls through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrOpen is returned without calling fn while the breaker is open
	ErrOpen = errors.New("circuit breaker is open")
	// ErrTooManyProbes is returned when the half-open probe budget is spent
	ErrTooManyProbes = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker settings
type Config struct {
	Name string
	// FailureThreshold consecutive failures open the breaker
	FailureThreshold int
	// Cooldown is how long the breaker stays open before probing
	Cooldown time.Duration
	// MaxProbes is the number of calls allowed while half-open
	MaxProbes int
	// IsFailure decides which errors count. Nil counts every error.
	IsFailure func(err error) bool
}

// DefaultConfig opens after 5 consecutive failures for 30 seconds
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Cooldown:         30 * time.Second,
		MaxProbes:        1,
	}
}

// Breaker stops calling a failing dependency for a cooldown period
type Breaker struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	probes   int
	openedAt time.Time
}

// New creates a closed breaker. A nil clock uses time.Now.
func New(cfg Config, clock func() time.Time) *Breaker {
	def := DefaultConfig(cfg.Name)
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.MaxProbes <= 0 {
		cfg.MaxProbes = def.MaxProbes
	}
	if clock == nil {
		clock = time.Now
	}
	return &Breaker{cfg: cfg, now: clock}
}

// Execute runs fn unless the breaker is open
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn(ctx)
	b.after(err)
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			return ErrOpen
		}
		b.setState(StateHalfOpen)
		b.probes = 0
	case StateHalfOpen:
		if b.probes >= b.cfg.MaxProbes {
			return ErrTooManyProbes
		}
	}

	if b.state == StateHalfOpen {
		b.probes++
	}
	return nil
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isFailure(err) {
		b.failures = 0
		if b.state == StateHalfOpen {
			b.setState(StateClosed)
		}
		return
	}

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.cfg.FailureThreshold {
		b.openedAt = b.now()
		b.setState(StateOpen)
	}
}

func (b *Breaker) isFailure(err error) bool {
	if err == nil {
		return false
	}
	if b.cfg.IsFailure == nil {
		return true
	}
	return b.cfg.IsFailure(err)
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	prev := b.state
	b.state = state

	logger.Warn("Circuit breaker state changed",
		logger.String("name", b.cfg.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", b.failures))
}
