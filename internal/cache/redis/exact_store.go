package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/observability"
)

// ExactStore implements domain.ExactStore on plain Redis strings with native expiry.
type ExactStore struct {
	client *redis.Client
	keys   Keyspace
}

// NewExactStore creates a new Redis exact-match store.
func NewExactStore(client *redis.Client, keys Keyspace) *ExactStore {
	return &ExactStore{
		client: client,
		keys:   keys,
	}
}

// Get returns the payload stored under key.
func (s *ExactStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.keys.Exact(key)).Bytes()
	if err != nil {
		return nil, classify(err)
	}
	return payload, nil
}

// Put stores payload under key. A zero ttl stores it without expiry.
func (s *ExactStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl < 0 {
		return domain.ErrInvalidTTL
	}

	// SET with a zero expiration clears any previous TTL on the key.
	if err := s.client.Set(ctx, s.keys.Exact(key), payload, ttl).Err(); err != nil {
		observability.FromContext(ctx).Debug("redis SET failed", observability.Error(err))
		return classify(err)
	}
	return nil
}

// Delete removes key.
func (s *ExactStore) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := s.client.Del(ctx, s.keys.Exact(key)).Result()
	if err != nil {
		return false, classify(err)
	}
	return removed > 0, nil
}

// TTL returns the remaining lifetime of key.
func (s *ExactStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := s.client.PTTL(ctx, s.keys.Exact(key)).Result()
	if err != nil {
		return 0, classify(err)
	}

	// go-redis passes the -1/-2 replies through unscaled.
	switch ttl {
	case -2:
		return 0, domain.ErrCacheMiss
	case -1:
		return domain.PermanentTTL, nil
	default:
		return ttl, nil
	}
}
