package breaker

import (
	"context"

	"github.com/sony/gobreaker"

	"github.com/davidbz/semcache/internal/domain"
)

// SemanticIndex guards a domain.SemanticIndex with a circuit breaker.
type SemanticIndex struct {
	next    domain.SemanticIndex
	breaker *gobreaker.CircuitBreaker
}

// NewSemanticIndex wraps next.
func NewSemanticIndex(ctx context.Context, next domain.SemanticIndex, cfg Config) *SemanticIndex {
	return &SemanticIndex{
		next:    next,
		breaker: newBreaker(ctx, "semantic_index", cfg),
	}
}

// Insert stores the entry.
func (s *SemanticIndex) Insert(ctx context.Context, entry *domain.CacheEntry) error {
	_, err := execute(s.breaker, func() (struct{}, error) {
		return struct{}{}, s.next.Insert(ctx, entry)
	})
	return err
}

// SearchNearest returns up to k nearest entries.
func (s *SemanticIndex) SearchNearest(ctx context.Context, embedding []float64, k int) ([]*domain.SearchResult, error) {
	return execute(s.breaker, func() ([]*domain.SearchResult, error) {
		return s.next.SearchNearest(ctx, embedding, k)
	})
}

// Delete removes the entry stored under key.
func (s *SemanticIndex) Delete(ctx context.Context, key string) (bool, error) {
	return execute(s.breaker, func() (bool, error) {
		return s.next.Delete(ctx, key)
	})
}

// DeleteExpired purges expired entries.
func (s *SemanticIndex) DeleteExpired(ctx context.Context) (int, error) {
	return execute(s.breaker, func() (int, error) {
		return s.next.DeleteExpired(ctx)
	})
}

// State returns the breaker state.
func (s *SemanticIndex) State() gobreaker.State {
	return s.breaker.State()
}
