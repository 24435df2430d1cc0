package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/semcache/internal/domain"
)

// NewClient creates a Redis client from configuration. It does not dial.
// RESP2 is pinned because go-redis rejects FT.SEARCH and FT.INFO replies over
// RESP3 unless they are flagged unstable.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		Protocol: 2,
	})
}

// Ping checks connectivity and reports failures as ErrStoreUnavailable.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// classify maps go-redis errors onto the domain error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return domain.ErrCacheMiss
	}

	var redisErr redis.Error
	if errors.As(err, &redisErr) && strings.HasPrefix(redisErr.Error(), "WRONGTYPE") {
		return fmt.Errorf("%w: %w", domain.ErrMalformedEntry, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
