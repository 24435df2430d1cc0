package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreUnavailable indicates the storage backend could not be reached in time.
	ErrStoreUnavailable = errors.New("cache store unavailable")

	// ErrEmbeddingUnavailable indicates the embedding backend failed or timed out.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")

	// ErrMalformedEntry indicates stored data could not be decoded.
	ErrMalformedEntry = errors.New("malformed cache entry")

	// ErrDimensionMismatch indicates a vector does not match the index dimension.
	ErrDimensionMismatch = fmt.Errorf("%w: embedding dimension mismatch", ErrMalformedEntry)

	// ErrInvalidTTL indicates a negative TTL was requested.
	ErrInvalidTTL = errors.New("ttl cannot be negative")

	// ErrEmptyQuery indicates the query has no content after normalization.
	ErrEmptyQuery = errors.New("query cannot be empty")
)
