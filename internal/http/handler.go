package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/observability"
)

// Cache headers set on answer and lookup responses.
const (
	headerCache         = "X-Semcache"
	headerCacheSource   = "X-Semcache-Source"
	headerCacheDistance = "X-Semcache-Distance"
	headerCacheKey      = "X-Semcache-Key"
)

// Handler handles HTTP requests.
type Handler struct {
	answers *domain.AnswerService
	cache   *domain.CacheService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(answers *domain.AnswerService, cache *domain.CacheService) *Handler {
	return &Handler{
		answers: answers,
		cache:   cache,
	}
}

// AnswerRequest is the body of POST /v1/answers.
type AnswerRequest struct {
	Query      string `json:"query"`
	TTLSeconds *int64 `json:"ttl_seconds,omitempty"`
	Tag        string `json:"tag,omitempty"`
}

// LookupRequest is the body of POST /v1/cache/lookup.
type LookupRequest struct {
	Query string `json:"query"`
}

// LookupResponse describes a cache hit.
type LookupResponse struct {
	Key          string    `json:"key"`
	Response     string    `json:"response"`
	Source       string    `json:"source"`
	Distance     float64   `json:"distance"`
	MatchedQuery string    `json:"matched_query"`
	Tag          string    `json:"tag,omitempty"`
	CachedAt     time.Time `json:"cached_at"`
}

// EntryRequest is the body of PUT /v1/cache/entries.
type EntryRequest struct {
	Query      string `json:"query"`
	Response   string `json:"response"`
	TTLSeconds *int64 `json:"ttl_seconds,omitempty"`
	Tag        string `json:"tag,omitempty"`
}

// TTLResponse describes the remaining lifetime of an entry.
type TTLResponse struct {
	Key        string `json:"key"`
	TTLSeconds int64  `json:"ttl_seconds"`
	Permanent  bool   `json:"permanent"`
}

// HandleAnswer serves a query from the cache or computes a fresh answer.
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	opts, err := setOptions(req.TTLSeconds, req.Tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("answer request received", observability.Int("query_size", len(req.Query)))

	answer, err := h.answers.Answer(ctx, req.Query, opts...)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("answer failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if answer.Cached {
		setCacheHeaders(w, &domain.CachedResponse{
			Key:      answer.Key,
			Source:   answer.Source,
			Distance: answer.Distance,
		})
	} else {
		setCacheHeaders(w, nil)
	}

	writeJSON(w, http.StatusOK, answer)
}

// HandleLookup looks a query up without computing an answer on miss.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Query == "" {
		http.Error(w, domain.ErrEmptyQuery.Error(), http.StatusBadRequest)
		return
	}

	cached, err := h.cache.Get(ctx, req.Query)
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		setCacheHeaders(w, nil)
		http.Error(w, "cache miss", http.StatusNotFound)
		return
	case err != nil:
		observability.FromContext(ctx).Warn("cache lookup failed", observability.Error(err))
		http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
		return
	}

	setCacheHeaders(w, cached)
	writeJSON(w, http.StatusOK, LookupResponse{
		Key:          cached.Key,
		Response:     cached.Response,
		Source:       string(cached.Source),
		Distance:     cached.Distance,
		MatchedQuery: cached.MatchedQuery,
		Tag:          cached.Tag,
		CachedAt:     cached.CachedAt,
	})
}

// HandleEntries stores (PUT) or deletes (DELETE) a cache entry.
func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.putEntry(w, r)
	case http.MethodDelete:
		h.deleteEntry(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) putEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Query == "" {
		http.Error(w, domain.ErrEmptyQuery.Error(), http.StatusBadRequest)
		return
	}

	opts, err := setOptions(req.TTLSeconds, req.Tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key, err := h.cache.Set(ctx, req.Query, req.Response, opts...)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTTL) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		observability.FromContext(ctx).Warn("cache set failed", observability.Error(err))
		http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "query parameter q is required", http.StatusBadRequest)
		return
	}

	removed, err := h.cache.Delete(ctx, query)
	if err != nil {
		observability.FromContext(ctx).Warn("cache delete failed", observability.Error(err))
		http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"key":     h.cache.Key(query),
		"removed": removed,
	})
}

// HandleTTL reports the remaining lifetime of a query's exact entry.
func (h *Handler) HandleTTL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "query parameter q is required", http.StatusBadRequest)
		return
	}

	ttl, err := h.cache.TTL(ctx, query)
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		http.Error(w, "cache miss", http.StatusNotFound)
		return
	case err != nil:
		observability.FromContext(ctx).Warn("cache ttl failed", observability.Error(err))
		http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := TTLResponse{Key: h.cache.Key(query), TTLSeconds: -1, Permanent: true}
	if ttl != domain.PermanentTTL {
		resp.TTLSeconds = int64(ttl.Round(time.Second) / time.Second)
		resp.Permanent = false
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStats returns cache hit/miss counters.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.cache.Stats())
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// setCacheHeaders marks the response as a cache HIT or MISS.
func setCacheHeaders(w http.ResponseWriter, cached *domain.CachedResponse) {
	if cached == nil {
		w.Header().Set(headerCache, "MISS")
		return
	}

	w.Header().Set(headerCache, "HIT")
	w.Header().Set(headerCacheSource, string(cached.Source))
	w.Header().Set(headerCacheDistance, strconv.FormatFloat(cached.Distance, 'f', 4, 64))
	w.Header().Set(headerCacheKey, cached.Key)
}

func setOptions(ttlSeconds *int64, tag string) ([]domain.SetOption, error) {
	var opts []domain.SetOption
	if ttlSeconds != nil {
		if *ttlSeconds < 0 {
			return nil, domain.ErrInvalidTTL
		}
		opts = append(opts, domain.WithTTL(time.Duration(*ttlSeconds)*time.Second))
	}
	if tag != "" {
		opts = append(opts, domain.WithTag(tag))
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Already written status, can't change it on encode failure.
	_ = json.NewEncoder(w).Encode(body)
}
