package breaker

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/davidbz/semcache/internal/domain"
)

// ExactStore guards a domain.ExactStore with a circuit breaker.
type ExactStore struct {
	next    domain.ExactStore
	breaker *gobreaker.CircuitBreaker
}

// NewExactStore wraps next.
func NewExactStore(ctx context.Context, next domain.ExactStore, cfg Config) *ExactStore {
	return &ExactStore{
		next:    next,
		breaker: newBreaker(ctx, "exact_store", cfg),
	}
}

// Get returns the payload stored under key.
func (s *ExactStore) Get(ctx context.Context, key string) ([]byte, error) {
	return execute(s.breaker, func() ([]byte, error) {
		return s.next.Get(ctx, key)
	})
}

// Put stores payload under key.
func (s *ExactStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	_, err := execute(s.breaker, func() (struct{}, error) {
		return struct{}{}, s.next.Put(ctx, key, payload, ttl)
	})
	return err
}

// Delete removes key.
func (s *ExactStore) Delete(ctx context.Context, key string) (bool, error) {
	return execute(s.breaker, func() (bool, error) {
		return s.next.Delete(ctx, key)
	})
}

// TTL returns the remaining lifetime of key.
func (s *ExactStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return execute(s.breaker, func() (time.Duration, error) {
		return s.next.TTL(ctx, key)
	})
}

// State returns the breaker state.
func (s *ExactStore) State() gobreaker.State {
	return s.breaker.State()
}
