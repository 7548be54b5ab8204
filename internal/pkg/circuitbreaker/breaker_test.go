package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testConfig() Config {
	return Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
		SuccessThreshold: 1,
	}
}

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func(ctx context.Context) error {
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())

	// Requests are rejected without invoking the function
	called := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called)
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func(ctx context.Context) error {
			return errBoom
		})
	}
	require.Equal(t, StateOpen, cb.State())

	// Wait for the open timeout to elapse
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, StateHalfOpen, cb.State())

	// A success in half-open closes the breaker
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func(ctx context.Context) error {
			return errBoom
		})
	}
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, StateHalfOpen, cb.State())

	_ = cb.Execute(context.Background(), func(ctx context.Context) error {
		return errBoom
	})
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreakerClosedSuccess(t *testing.T) {
	cb := New(testConfig(), nil)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}
