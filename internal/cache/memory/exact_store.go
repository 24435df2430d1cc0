package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/davidbz/semcache/internal/domain"
)

// DefaultCapacity bounds the in-memory stores when no capacity is configured.
const DefaultCapacity = 10000

type record struct {
	payload   []byte
	expiresAt time.Time
}

func (r record) expired(now time.Time) bool {
	return !r.expiresAt.IsZero() && !now.Before(r.expiresAt)
}

// ExactStore is a bounded LRU implementation of domain.ExactStore with lazy expiry.
type ExactStore struct {
	mu      sync.Mutex
	entries *lru.Cache[string, record]
	now     func() time.Time
}

// NewExactStore creates an exact store holding at most capacity entries.
func NewExactStore(capacity int, opts ...Option) (*ExactStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	entries, err := lru.New[string, record](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	cfg := newConfig(opts)
	return &ExactStore{
		entries: entries,
		now:     cfg.now,
	}, nil
}

// Get returns the payload stored under key.
func (s *ExactStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries.Get(key)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if rec.expired(s.now()) {
		s.entries.Remove(key)
		return nil, domain.ErrCacheMiss
	}

	return append([]byte(nil), rec.payload...), nil
}

// Put stores payload under key, replacing any previous value.
func (s *ExactStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttl < 0 {
		return domain.ErrInvalidTTL
	}

	rec := record{payload: append([]byte(nil), payload...)}
	if ttl > 0 {
		rec.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Add(key, rec)
	return nil
}

// Delete removes key.
func (s *ExactStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries.Peek(key)
	if !ok {
		return false, nil
	}
	s.entries.Remove(key)

	return !rec.expired(s.now()), nil
}

// TTL returns the remaining lifetime of key.
func (s *ExactStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries.Peek(key)
	if !ok {
		return 0, domain.ErrCacheMiss
	}

	now := s.now()
	if rec.expired(now) {
		s.entries.Remove(key)
		return 0, domain.ErrCacheMiss
	}
	if rec.expiresAt.IsZero() {
		return domain.PermanentTTL, nil
	}

	return rec.expiresAt.Sub(now), nil
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (s *ExactStore) Len() int {
	return s.entries.Len()
}
