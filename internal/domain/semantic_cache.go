package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/davidbz/semcache/internal/observability"
)

// exactRecord is the payload written to the exact-match store.
type exactRecord struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CacheService combines exact-match and semantic lookup behind one get/set contract.
// All methods are safe for concurrent use; atomicity per key is delegated to the stores.
type CacheService struct {
	exact      ExactStore
	index      SemanticIndex
	embedder   EmbeddingGenerator
	counter    RateCounter
	normalizer *Normalizer
	settings   CacheSettings
	counters   cacheCounters
}

// NewCacheService creates a new cache facade. index and embedder may be nil,
// in which case the cache serves exact matches only.
func NewCacheService(
	exact ExactStore,
	index SemanticIndex,
	embedder EmbeddingGenerator,
	counter RateCounter,
	normalizer *Normalizer,
	settings CacheSettings,
) *CacheService {
	if normalizer == nil {
		normalizer = NewNormalizer()
	}

	return &CacheService{
		exact:      exact,
		index:      index,
		embedder:   embedder,
		counter:    counter,
		normalizer: normalizer,
		settings:   settings.withDefaults(),
	}
}

// Key returns the exact-match key for the query.
func (s *CacheService) Key(query string) string {
	return s.normalizer.Key(query)
}

// Get looks the query up by exact key first and falls back to semantic search.
// It returns ErrCacheMiss when neither tier has an answer and ErrStoreUnavailable
// when a backend failure prevented a definitive answer.
func (s *CacheService) Get(ctx context.Context, query string) (*CachedResponse, error) {
	start := time.Now()
	key := s.normalizer.Key(query)
	ctx = observability.WithCacheKey(ctx, key)
	logger := observability.FromContext(ctx)

	cached, exactErr := s.getExact(ctx, key, query)
	if exactErr == nil {
		s.record(outcomeExactHit, start)
		logger.Info("cache HIT (exact)")
		return cached, nil
	}
	if !errors.Is(exactErr, ErrCacheMiss) {
		logger.Warn("exact lookup failed, trying semantic tier",
			observability.Error(exactErr))
	}

	cached, semanticErr := s.getSemantic(ctx, key, query)
	if semanticErr == nil {
		s.record(outcomeSemanticHit, start)
		logger.Info("cache HIT (semantic)",
			observability.Float64("distance", cached.Distance),
			observability.String("matched_key", cached.Key))
		return cached, nil
	}

	switch {
	case errors.Is(exactErr, ErrStoreUnavailable):
		s.record(outcomeError, start)
		return nil, exactErr
	case errors.Is(semanticErr, ErrStoreUnavailable):
		s.record(outcomeError, start)
		return nil, semanticErr
	}

	s.record(outcomeMiss, start)
	logger.Info("cache MISS")
	return nil, ErrCacheMiss
}

// GetExact looks the query up in the exact-match tier only.
func (s *CacheService) GetExact(ctx context.Context, query string) (*CachedResponse, error) {
	key := s.normalizer.Key(query)
	return s.getExact(observability.WithCacheKey(ctx, key), key, query)
}

// GetSemantically looks the query up in the semantic tier only.
func (s *CacheService) GetSemantically(ctx context.Context, query string) (*CachedResponse, error) {
	key := s.normalizer.Key(query)
	return s.getSemantic(observability.WithCacheKey(ctx, key), key, query)
}

// Set writes the response to the exact-match store and then to the semantic index.
// A failed semantic write is logged and does not fail the call; a failed exact
// write is returned.
func (s *CacheService) Set(ctx context.Context, query, response string, opts ...SetOption) (string, error) {
	options := setOptions{ttl: s.settings.DefaultTTL, tag: ""}
	for _, opt := range opts {
		opt(&options)
	}

	if options.ttl < 0 {
		return "", ErrInvalidTTL
	}

	key := s.normalizer.Key(query)
	ctx = observability.WithCacheKey(ctx, key)
	logger := observability.FromContext(ctx)
	logger.Debug("cache Set started",
		observability.Duration("ttl", options.ttl),
		observability.Int("response_size", len(response)))

	now := s.settings.Clock()
	payload, err := json.Marshal(exactRecord{
		Query:     query,
		Response:  response,
		Tag:       options.tag,
		CreatedAt: now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if putErr := s.putExact(ctx, key, payload, options.ttl); putErr != nil {
		observability.RecordWrite("exact", "error")
		logger.Error("exact store write failed", observability.Error(putErr))
		return "", putErr
	}
	observability.RecordWrite("exact", "ok")

	entry := &CacheEntry{
		Key:       key,
		Query:     query,
		Response:  response,
		Tag:       options.tag,
		CreatedAt: now,
	}
	if options.ttl > 0 {
		entry.ExpiresAt = now.Add(options.ttl)
	}

	if indexErr := s.indexSemantic(ctx, entry); indexErr != nil {
		observability.RecordWrite("semantic", "error")
		logger.Warn("semantic index write failed, entry is exact-match only",
			observability.Error(indexErr))
		s.dropSemantic(ctx, key)
	}

	return key, nil
}

// Delete removes the query's entry from both tiers.
func (s *CacheService) Delete(ctx context.Context, query string) (bool, error) {
	key := s.normalizer.Key(query)
	ctx = observability.WithCacheKey(ctx, key)
	logger := observability.FromContext(ctx)

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	removed, err := s.exact.Delete(storeCtx, key)
	if err != nil {
		return false, storeError(err)
	}

	if s.index != nil {
		indexRemoved, indexErr := s.index.Delete(storeCtx, key)
		if indexErr != nil {
			logger.Warn("semantic index delete failed", observability.Error(indexErr))
		}
		removed = removed || indexRemoved
	}

	logger.Info("cache entry deleted", observability.Bool("removed", removed))
	return removed, nil
}

// TTL returns the remaining lifetime of the query's exact entry, or PermanentTTL.
func (s *CacheService) TTL(ctx context.Context, query string) (time.Duration, error) {
	key := s.normalizer.Key(query)

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	ttl, err := s.exact.TTL(storeCtx, key)
	if err != nil {
		return 0, storeError(err)
	}
	return ttl, nil
}

// RateLimited increments the fixed-window counter for identifier and reports
// whether it exceeded maxRequests within window.
func (s *CacheService) RateLimited(
	ctx context.Context,
	identifier string,
	maxRequests int64,
	window time.Duration,
) (bool, error) {
	if s.counter == nil {
		return false, nil
	}
	if window <= 0 {
		return false, errors.New("rate limit window must be positive")
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	count, err := s.counter.Increment(storeCtx, identifier, window)
	if err != nil {
		return false, storeError(err)
	}

	limited := count > maxRequests
	observability.RecordRateLimit(limited)
	if limited {
		observability.FromContext(ctx).Info("rate limit exceeded",
			observability.String("identifier", identifier),
			observability.Int64("count", count),
			observability.Int64("max_requests", maxRequests))
	}

	return limited, nil
}

// DeleteExpired sweeps expired entries from the semantic index.
func (s *CacheService) DeleteExpired(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, nil
	}

	removed, err := s.index.DeleteExpired(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	return removed, nil
}

// RunSweeper calls DeleteExpired every interval until ctx is cancelled.
func (s *CacheService) RunSweeper(ctx context.Context, interval time.Duration) {
	logger := observability.FromContext(ctx)
	if interval <= 0 || s.index == nil {
		logger.Info("expiry sweeper disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			removed, err := s.DeleteExpired(ctx)
			if err != nil {
				logger.Warn("expiry sweep failed", observability.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("expired semantic entries removed", observability.Int("removed", removed))
			}
		}
	}
}

// Stats returns cache performance counters.
func (s *CacheService) Stats() CacheStats {
	return s.counters.snapshot()
}

func (s *CacheService) getExact(ctx context.Context, key, query string) (*CachedResponse, error) {
	logger := observability.FromContext(ctx)

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	payload, err := s.exact.Get(storeCtx, key)
	if err != nil {
		if errors.Is(err, ErrMalformedEntry) {
			s.purgeMalformed(ctx, key, err)
			return nil, ErrCacheMiss
		}
		return nil, storeError(err)
	}

	var record exactRecord
	if unmarshalErr := json.Unmarshal(payload, &record); unmarshalErr != nil {
		s.purgeMalformed(ctx, key, fmt.Errorf("%w: %w", ErrMalformedEntry, unmarshalErr))
		return nil, ErrCacheMiss
	}

	logger.Debug("exact entry found", observability.Int("response_size", len(record.Response)))

	return &CachedResponse{
		Key:          key,
		Query:        query,
		Response:     record.Response,
		Tag:          record.Tag,
		Source:       SourceExact,
		Distance:     0,
		CachedAt:     record.CreatedAt,
		MatchedQuery: record.Query,
	}, nil
}

func (s *CacheService) getSemantic(ctx context.Context, key, query string) (*CachedResponse, error) {
	if s.index == nil || s.embedder == nil {
		return nil, ErrCacheMiss
	}

	logger := observability.FromContext(ctx)

	text := s.normalizer.Normalize(query)
	if text == "" {
		return nil, ErrCacheMiss
	}

	embedding, err := s.embed(ctx, text)
	if err != nil {
		observability.RecordDegradation("embedding_unavailable")
		logger.Warn("embedding unavailable, serving exact tier only", observability.Error(err))
		return nil, ErrCacheMiss
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	results, err := s.index.SearchNearest(storeCtx, embedding, s.settings.SearchCandidates)
	if err != nil {
		if errors.Is(err, ErrMalformedEntry) {
			observability.RecordDegradation("malformed_entry")
			logger.Warn("semantic search hit malformed data, treating as miss", observability.Error(err))
			return nil, ErrCacheMiss
		}
		return nil, storeError(err)
	}

	best := nearest(results, s.settings.TieEpsilon)
	if best == nil {
		logger.Debug("semantic index returned no candidates")
		return nil, ErrCacheMiss
	}

	observability.ObserveDistance(best.Distance)

	if best.Distance > s.settings.DistanceThreshold {
		logger.Debug("nearest candidate beyond threshold",
			observability.Float64("distance", best.Distance),
			observability.Float64("threshold", s.settings.DistanceThreshold))
		return nil, ErrCacheMiss
	}

	return &CachedResponse{
		Key:          best.Key,
		Query:        query,
		Response:     best.Response,
		Tag:          best.Tag,
		Source:       SourceSemantic,
		Distance:     best.Distance,
		CachedAt:     best.IndexedAt,
		MatchedQuery: best.Query,
	}, nil
}

func (s *CacheService) putExact(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	if err := s.exact.Put(storeCtx, key, payload, ttl); err != nil {
		return storeError(err)
	}
	return nil
}

// dropSemantic removes the previous semantic entry for key so a failed
// overwrite cannot keep serving the old response to paraphrases.
func (s *CacheService) dropSemantic(ctx context.Context, key string) {
	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	if _, err := s.index.Delete(storeCtx, key); err != nil {
		observability.FromContext(ctx).Warn("failed to drop stale semantic entry",
			observability.Error(err))
	}
}

func (s *CacheService) indexSemantic(ctx context.Context, entry *CacheEntry) error {
	if s.index == nil || s.embedder == nil {
		return nil
	}

	text := s.normalizer.Normalize(entry.Query)
	if text == "" {
		return nil
	}

	embedding, err := s.embed(ctx, text)
	if err != nil {
		return err
	}
	entry.Embedding = embedding

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	if indexErr := s.index.Insert(storeCtx, entry); indexErr != nil {
		return storeError(indexErr)
	}

	observability.RecordWrite("semantic", "ok")
	return nil
}

func (s *CacheService) embed(ctx context.Context, text string) ([]float64, error) {
	embedCtx, cancel := context.WithTimeout(ctx, s.settings.EmbedTimeout)
	defer cancel()

	embedding, err := s.embedder.Generate(embedCtx, text)
	if err != nil {
		if errors.Is(err, ErrEmbeddingUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding returned", ErrEmbeddingUnavailable)
	}

	return embedding, nil
}

func (s *CacheService) purgeMalformed(ctx context.Context, key string, cause error) {
	logger := observability.FromContext(ctx)
	observability.RecordDegradation("malformed_entry")
	logger.Warn("malformed exact entry, purging", observability.Error(cause))

	storeCtx, cancel := context.WithTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	if _, err := s.exact.Delete(storeCtx, key); err != nil {
		logger.Warn("failed to purge malformed entry", observability.Error(err))
	}
}

func (s *CacheService) record(outcome string, start time.Time) {
	s.counters.record(outcome)
	observability.RecordLookup(outcome, time.Since(start))
}

// storeError keeps misses and malformed entries as-is and reports every other
// backend failure, including timeouts, as ErrStoreUnavailable.
func storeError(err error) error {
	switch {
	case errors.Is(err, ErrCacheMiss),
		errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrMalformedEntry):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

// nearest returns the closest candidate, preferring the most recently indexed
// one among candidates whose distances differ by at most epsilon.
func nearest(results []*SearchResult, epsilon float64) *SearchResult {
	var best *SearchResult
	for _, result := range results {
		if result == nil {
			continue
		}
		if best == nil || result.Distance < best.Distance-epsilon {
			best = result
			continue
		}
		if result.Distance <= best.Distance+epsilon && result.IndexedAt.After(best.IndexedAt) {
			best = result
		}
	}
	return best
}
