package domain

import "time"

// PermanentTTL is reported by TTL lookups for entries that never expire.
const PermanentTTL time.Duration = -1

// Source identifies which tier produced a cache hit.
type Source string

const (
	// SourceExact marks a hit on the normalized-text key.
	SourceExact Source = "exact"

	// SourceSemantic marks a hit found by embedding similarity.
	SourceSemantic Source = "semantic"
)

// CacheEntry is a single cached answer together with the query that produced it.
type CacheEntry struct {
	Key       string    `json:"key"`
	Query     string    `json:"query"`
	Embedding []float64 `json:"-"`
	Response  string    `json:"response"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Permanent reports whether the entry has no expiry.
func (e *CacheEntry) Permanent() bool {
	return e.ExpiresAt.IsZero()
}

// ExpiredAt reports whether the entry is invisible to lookups at the given time.
func (e *CacheEntry) ExpiredAt(now time.Time) bool {
	return !e.Permanent() && !now.Before(e.ExpiresAt)
}

// CachedResponse is the result of a successful lookup.
type CachedResponse struct {
	Key          string
	Query        string
	Response     string
	Tag          string
	Source       Source
	Distance     float64
	CachedAt     time.Time
	MatchedQuery string
}

// SearchResult represents a vector search result.
type SearchResult struct {
	Key       string
	Query     string
	Response  string
	Tag       string
	Distance  float64
	IndexedAt time.Time
}

// Answer is the outcome of the get-or-compute pipeline.
type Answer struct {
	Query    string  `json:"query"`
	Response string  `json:"response"`
	Cached   bool    `json:"cached"`
	Source   Source  `json:"source,omitempty"`
	Distance float64 `json:"distance,omitempty"`
	Key      string  `json:"key"`
}
