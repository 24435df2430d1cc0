package domain

import (
	"context"
	"time"
)

// SemanticCache is the caller-facing cache contract.
type SemanticCache interface {
	// Get retrieves a cached response for the query or a semantically equivalent one.
	Get(ctx context.Context, query string) (*CachedResponse, error)

	// Set stores a response for the query in both tiers and returns its key.
	Set(ctx context.Context, query, response string, opts ...SetOption) (string, error)

	// Key returns the exact-match key for the query.
	Key(query string) string
}

// ExactStore maps normalized-query keys to opaque payloads with store-native expiry.
type ExactStore interface {
	// Get returns the payload stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores payload under key. A zero ttl stores it permanently.
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Delete removes key and reports whether something was removed.
	Delete(ctx context.Context, key string) (bool, error)

	// TTL returns the remaining lifetime of key, PermanentTTL, or ErrCacheMiss.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// SemanticIndex stores embedded queries and finds their nearest neighbours.
type SemanticIndex interface {
	// Insert stores the entry, replacing any entry with the same key. The entry
	// becomes invisible at entry.ExpiresAt; a zero ExpiresAt never expires.
	Insert(ctx context.Context, entry *CacheEntry) error

	// SearchNearest returns up to k entries ordered by ascending cosine distance.
	SearchNearest(ctx context.Context, embedding []float64, k int) ([]*SearchResult, error)

	// Delete removes the entry stored under key.
	Delete(ctx context.Context, key string) (bool, error)

	// DeleteExpired purges expired entries and returns how many were removed.
	DeleteExpired(ctx context.Context) (int, error)
}

// EmbeddingGenerator creates vector embeddings from text.
type EmbeddingGenerator interface {
	// Generate creates a vector embedding from text.
	Generate(ctx context.Context, text string) ([]float64, error)

	// Name returns the generator identifier.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// RateCounter increments fixed-window counters.
type RateCounter interface {
	// Increment adds one to the counter for key and returns the new value.
	// The window expiry is set by the first increment only.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
