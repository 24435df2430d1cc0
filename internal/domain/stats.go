package domain

import "sync/atomic"

// Lookup outcomes, also used as metric labels.
const (
	outcomeExactHit    = "exact_hit"
	outcomeSemanticHit = "semantic_hit"
	outcomeMiss        = "miss"
	outcomeError       = "error"
)

// CacheStats is a point-in-time snapshot of lookup counters.
type CacheStats struct {
	ExactHits    int64   `json:"exact_hits"`
	SemanticHits int64   `json:"semantic_hits"`
	Misses       int64   `json:"misses"`
	Errors       int64   `json:"errors"`
	HitRate      float64 `json:"hit_rate"`
}

type cacheCounters struct {
	exactHits    atomic.Int64
	semanticHits atomic.Int64
	misses       atomic.Int64
	errors       atomic.Int64
}

func (c *cacheCounters) record(outcome string) {
	switch outcome {
	case outcomeExactHit:
		c.exactHits.Add(1)
	case outcomeSemanticHit:
		c.semanticHits.Add(1)
	case outcomeMiss:
		c.misses.Add(1)
	default:
		c.errors.Add(1)
	}
}

func (c *cacheCounters) snapshot() CacheStats {
	stats := CacheStats{
		ExactHits:    c.exactHits.Load(),
		SemanticHits: c.semanticHits.Load(),
		Misses:       c.misses.Load(),
		Errors:       c.errors.Load(),
	}

	hits := stats.ExactHits + stats.SemanticHits
	if total := hits + stats.Misses + stats.Errors; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}

	return stats
}
