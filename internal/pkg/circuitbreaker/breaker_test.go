package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func fail(context.Context) error    { return errUpstream }
func succeed(context.Context) error { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	b := New(Config{Name: "gateway", FailureThreshold: 3, Cooldown: time.Minute}, clock.now)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(context.Background(), fail), errUpstream)
	}
	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b := New(Config{FailureThreshold: 2}, nil)

	_ = b.Execute(context.Background(), fail)
	_ = b.Execute(context.Background(), succeed)
	_ = b.Execute(context.Background(), fail)

	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	b := New(Config{FailureThreshold: 1, Cooldown: time.Minute}, clock.now)

	_ = b.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, b.State())

	t.Run("Failed probe reopens", func(t *testing.T) {
		clock.t = clock.t.Add(time.Minute)
		assert.ErrorIs(t, b.Execute(context.Background(), fail), errUpstream)
		assert.Equal(t, StateOpen, b.State())
		assert.ErrorIs(t, b.Execute(context.Background(), succeed), ErrOpen)
	})

	t.Run("Successful probe closes", func(t *testing.T) {
		clock.t = clock.t.Add(time.Minute)
		assert.NoError(t, b.Execute(context.Background(), succeed))
		assert.Equal(t, StateClosed, b.State())
	})
}

func TestBreaker_IgnoresNonFailures(t *testing.T) {
	errNotFound := errors.New("not found")
	b := New(Config{
		FailureThreshold: 1,
		IsFailure:        func(err error) bool { return !errors.Is(err, errNotFound) },
	}, nil)

	for i := 0; i < 5; i++ {
		_ = b.Execute(context.Background(), func(context.Context) error { return errNotFound })
	}
	assert.Equal(t, StateClosed, b.State())
}
