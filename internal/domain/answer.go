package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/semcache/internal/observability"
)

// DefaultComputeTimeout bounds a shared get-or-compute run once it is detached
// from the callers that started it.
const DefaultComputeTimeout = 2 * time.Minute

// AnswerService serves queries from the cache and falls back to a responder.
// Cache failures never fail a request; only the responder can.
type AnswerService struct {
	cache          SemanticCache
	responder      Responder
	inflight       singleflight.Group
	computeTimeout time.Duration
}

// NewAnswerService creates a new answer service (DI constructor). cache may be nil.
func NewAnswerService(cache SemanticCache, responder Responder) *AnswerService {
	return &AnswerService{
		cache:          cache,
		responder:      responder,
		computeTimeout: DefaultComputeTimeout,
	}
}

// Answer returns a cached response for query or computes and caches a fresh one.
// Concurrent calls for the same normalized query share one computation. The
// shared run does not inherit any caller's cancellation, so a caller that gives
// up returns its own context error without failing the others.
func (a *AnswerService) Answer(ctx context.Context, query string, opts ...SetOption) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if a.responder == nil {
		return nil, errors.New("responder cannot be nil")
	}

	if a.cache == nil {
		observability.FromContext(ctx).Info("cache is disabled (nil cache)")
		return a.compute(ctx, query, "")
	}

	key := a.cache.Key(query)
	flight := a.inflight.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.computeTimeout)
		defer cancel()
		return a.answer(flightCtx, key, query, opts)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-flight:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	answer, ok := res.Val.(*Answer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer type %T", res.Val)
	}

	if res.Shared {
		observability.FromContext(ctx).Debug("answer shared with concurrent request")
		copied := *answer
		copied.Query = query
		return &copied, nil
	}

	return answer, nil
}

func (a *AnswerService) answer(ctx context.Context, key, query string, opts []SetOption) (*Answer, error) {
	ctx = observability.WithCacheKey(ctx, key)
	logger := observability.FromContext(ctx)

	cached, cacheErr := a.cache.Get(ctx, query)
	switch {
	case cacheErr == nil:
		logger.Info("cache HIT - returning cached response",
			observability.String("source", string(cached.Source)),
			observability.Float64("distance", cached.Distance))
		return &Answer{
			Query:    query,
			Response: cached.Response,
			Cached:   true,
			Source:   cached.Source,
			Distance: cached.Distance,
			Key:      cached.Key,
		}, nil
	case errors.Is(cacheErr, ErrCacheMiss):
		logger.Info("cache MISS - calling responder")
	default:
		logger.Warn("cache get failed, continuing without cache",
			observability.Error(cacheErr))
	}

	answer, err := a.compute(ctx, query, key)
	if err != nil {
		return nil, err
	}

	if _, setErr := a.cache.Set(ctx, query, answer.Response, opts...); setErr != nil {
		logger.Warn("failed to store in cache", observability.Error(setErr))
	}

	return answer, nil
}

func (a *AnswerService) compute(ctx context.Context, query, key string) (*Answer, error) {
	response, err := a.responder.Respond(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("responder %s failed: %w", a.responder.Name(), err)
	}

	return &Answer{
		Query:    query,
		Response: response,
		Cached:   false,
		Key:      key,
	}, nil
}
