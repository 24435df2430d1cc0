package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/davidbz/semcache/internal/domain"
)

type indexedEntry struct {
	key       string
	query     string
	response  string
	tag       string
	vector    []float64
	norm      float64
	indexedAt time.Time
	expiresAt time.Time
	seq       uint64
}

func (e *indexedEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// VectorIndex is a brute-force cosine implementation of domain.SemanticIndex,
// bounded to capacity entries with least-recently-used eviction.
type VectorIndex struct {
	mu        sync.RWMutex
	dimension int
	entries   *lru.Cache[string, *indexedEntry]
	seq       uint64
	now       func() time.Time
}

// NewVectorIndex creates an index holding at most capacity entries. A positive
// dimension rejects vectors of any other length.
func NewVectorIndex(dimension, capacity int, opts ...Option) (*VectorIndex, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	entries, err := lru.New[string, *indexedEntry](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	cfg := newConfig(opts)
	return &VectorIndex{
		dimension: dimension,
		entries:   entries,
		now:       cfg.now,
	}, nil
}

// Insert stores the entry, replacing any entry with the same key. An entry
// whose ExpiresAt already passed only removes the previous one.
func (v *VectorIndex) Insert(ctx context.Context, entry *domain.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if len(entry.Embedding) == 0 {
		return errors.New("entry has no embedding")
	}
	if v.dimension > 0 && len(entry.Embedding) != v.dimension {
		return fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(entry.Embedding), v.dimension)
	}

	now := v.now()

	v.mu.Lock()
	defer v.mu.Unlock()

	if entry.ExpiredAt(now) {
		v.entries.Remove(entry.Key)
		return nil
	}

	v.seq++
	v.entries.Add(entry.Key, &indexedEntry{
		key:       entry.Key,
		query:     entry.Query,
		response:  entry.Response,
		tag:       entry.Tag,
		vector:    slices.Clone(entry.Embedding),
		norm:      norm(entry.Embedding),
		indexedAt: now,
		expiresAt: entry.ExpiresAt,
		seq:       v.seq,
	})

	return nil
}

type candidate struct {
	entry    *indexedEntry
	distance float64
}

// SearchNearest returns up to k live entries ordered by ascending cosine distance.
// Equal distances are ordered newest first. Returned entries count as used.
func (v *VectorIndex) SearchNearest(ctx context.Context, embedding []float64, k int) ([]*domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 || len(embedding) == 0 {
		return nil, nil
	}
	if v.dimension > 0 && len(embedding) != v.dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(embedding), v.dimension)
	}

	queryNorm := norm(embedding)
	if queryNorm == 0 {
		return nil, nil
	}

	now := v.now()
	var stale []string
	candidates := make([]candidate, 0, k)

	v.mu.RLock()
	for _, entry := range v.entries.Values() {
		if entry.expired(now) || len(entry.vector) != len(embedding) {
			stale = append(stale, entry.key)
			continue
		}
		candidates = append(candidates, candidate{
			entry:    entry,
			distance: cosineDistance(embedding, queryNorm, entry.vector, entry.norm),
		})
	}
	v.mu.RUnlock()

	if len(stale) > 0 {
		v.purge(stale, now, len(embedding))
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.distance < b.distance {
			return -1
		}
		if a.distance > b.distance {
			return 1
		}
		// Newest first on ties.
		if a.entry.seq > b.entry.seq {
			return -1
		}
		if a.entry.seq < b.entry.seq {
			return 1
		}
		return 0
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]*domain.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		v.entries.Get(c.entry.key)
		results = append(results, &domain.SearchResult{
			Key:       c.entry.key,
			Query:     c.entry.query,
			Response:  c.entry.response,
			Tag:       c.entry.tag,
			Distance:  c.distance,
			IndexedAt: c.entry.indexedAt,
		})
	}

	return results, nil
}

// Delete removes the entry stored under key.
func (v *VectorIndex) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.entries.Peek(key)
	if !ok {
		return false, nil
	}
	v.entries.Remove(key)

	return !entry.expired(v.now()), nil
}

// DeleteExpired removes every expired entry.
func (v *VectorIndex) DeleteExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := v.now()

	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for _, entry := range v.entries.Values() {
		if entry.expired(now) {
			v.entries.Remove(entry.key)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of indexed entries, including expired ones not yet swept.
func (v *VectorIndex) Len() int {
	return v.entries.Len()
}

// purge drops entries that were stale during a search. An entry replaced
// in the meantime is kept.
func (v *VectorIndex) purge(keys []string, now time.Time, dimension int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, key := range keys {
		entry, ok := v.entries.Peek(key)
		if !ok {
			continue
		}
		if entry.expired(now) || len(entry.vector) != dimension {
			v.entries.Remove(key)
		}
	}
}

func norm(vector []float64) float64 {
	var sum float64
	for _, x := range vector {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// cosineDistance returns 1 - cosine similarity, clamped to [0, 2].
func cosineDistance(a []float64, normA float64, b []float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 1
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	distance := 1 - dot/(normA*normB)
	return math.Max(0, math.Min(2, distance))
}
