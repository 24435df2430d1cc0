// Package breaker wraps cache backends with circuit breakers so a failing
// store is skipped quickly instead of costing a timeout on every call.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/observability"
)

// Config contains circuit breaker settings.
type Config struct {
	Enabled          bool          `env:"CACHE_BREAKER_ENABLED"            envDefault:"true"`
	FailureThreshold uint32        `env:"CACHE_BREAKER_FAILURE_THRESHOLD"  envDefault:"5"`
	OpenTimeout      time.Duration `env:"CACHE_BREAKER_OPEN_TIMEOUT"       envDefault:"30s"`
	HalfOpenRequests uint32        `env:"CACHE_BREAKER_HALF_OPEN_REQUESTS" envDefault:"1"`
}

func newBreaker(ctx context.Context, name string, cfg Config) *gobreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	logger := observability.FromContext(ctx)

	//nolint:exhaustruct // Interval zero keeps counts until the state changes
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				observability.String("breaker", name),
				observability.String("from", from.String()),
				observability.String("to", to.String()))
		},
		IsSuccessful: isSuccessful,
	})
}

// isSuccessful counts only backend outages as failures.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrCacheMiss) ||
		errors.Is(err, domain.ErrMalformedEntry) ||
		errors.Is(err, domain.ErrInvalidTTL)
}

// execute runs fn through cb and reports an open breaker as ErrStoreUnavailable.
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	result, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		var zero T
		return zero, fmt.Errorf("%w: %s breaker: %w", domain.ErrStoreUnavailable, cb.Name(), err)
	}

	typed, _ := result.(T)
	return typed, err
}
