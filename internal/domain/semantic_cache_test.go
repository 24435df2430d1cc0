package domain_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/semcache/internal/cache/memory"
	cacheredis "github.com/davidbz/semcache/internal/cache/redis"
	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/embedding/hashing"
	"github.com/davidbz/semcache/internal/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fixtureEmbedder returns hand-picked vectors keyed by normalized text.
type fixtureEmbedder struct {
	vectors map[string][]float64
}

func (f *fixtureEmbedder) Generate(_ context.Context, text string) ([]float64, error) {
	vector, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no fixture for %q", text)
	}
	return vector, nil
}

func (f *fixtureEmbedder) Name() string { return "fixture" }

func (f *fixtureEmbedder) Dimension() int { return 2 }

// switchableEmbedder fails every call while failing is set.
type switchableEmbedder struct {
	fixtureEmbedder

	mu      sync.Mutex
	failing bool
}

func (s *switchableEmbedder) setFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *switchableEmbedder) Generate(ctx context.Context, text string) ([]float64, error) {
	s.mu.Lock()
	failing := s.failing
	s.mu.Unlock()

	if failing {
		return nil, errors.New("embedding API down")
	}
	return s.fixtureEmbedder.Generate(ctx, text)
}

// clockAdvancingEmbedder moves the clock forward on its first call to
// simulate a slow embedding request.
type clockAdvancingEmbedder struct {
	next  domain.EmbeddingGenerator
	clock *fakeClock
	delay time.Duration
	once  sync.Once
}

func (c *clockAdvancingEmbedder) Generate(ctx context.Context, text string) ([]float64, error) {
	c.once.Do(func() { c.clock.Advance(c.delay) })
	return c.next.Generate(ctx, text)
}

func (c *clockAdvancingEmbedder) Name() string { return c.next.Name() }

func (c *clockAdvancingEmbedder) Dimension() int { return c.next.Dimension() }

type memoryBackends struct {
	clock   *fakeClock
	exact   *memory.ExactStore
	index   *memory.VectorIndex
	counter *memory.RateCounter
}

func newMemoryBackends(t *testing.T, dimension int) *memoryBackends {
	t.Helper()

	clock := newFakeClock()
	exact, err := memory.NewExactStore(1000, memory.WithClock(clock.Now))
	require.NoError(t, err)

	index, err := memory.NewVectorIndex(dimension, 1000, memory.WithClock(clock.Now))
	require.NoError(t, err)

	return &memoryBackends{
		clock:   clock,
		exact:   exact,
		index:   index,
		counter: memory.NewRateCounter(memory.WithClock(clock.Now)),
	}
}

// settings returns default cache settings driven by the backends' clock.
func (b *memoryBackends) settings() domain.CacheSettings {
	settings := domain.DefaultCacheSettings()
	settings.Clock = b.clock.Now
	return settings
}

func newHashingCache(t *testing.T) (*domain.CacheService, *memoryBackends) {
	t.Helper()

	backends := newMemoryBackends(t, hashing.DefaultDimension)
	cache := domain.NewCacheService(
		backends.exact,
		backends.index,
		hashing.NewGenerator(hashing.DefaultDimension),
		backends.counter,
		domain.NewNormalizer(),
		backends.settings(),
	)
	return cache, backends
}

func TestCacheService_SetThenGet_Exact(t *testing.T) {
	ctx := context.Background()
	cache, _ := newHashingCache(t)

	key, err := cache.Set(ctx, "What is the capital of France?", "Paris", domain.WithTag("geo"))
	require.NoError(t, err)
	require.Equal(t, cache.Key("what is the capital of france?"), key)

	cached, err := cache.Get(ctx, "  WHAT is the   capital of France?")
	require.NoError(t, err)
	require.Equal(t, domain.SourceExact, cached.Source)
	require.Equal(t, "Paris", cached.Response)
	require.Equal(t, "geo", cached.Tag)
	require.Equal(t, key, cached.Key)
	require.Equal(t, "What is the capital of France?", cached.MatchedQuery)
	require.Zero(t, cached.Distance)
}

func TestCacheService_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	cache, backends := newHashingCache(t)

	_, err := cache.Set(ctx, "What is the capital of France?", "Lyon")
	require.NoError(t, err)
	_, err = cache.Set(ctx, "what is the capital of france?", "Paris")
	require.NoError(t, err)

	cached, err := cache.Get(ctx, "What is the capital of France?")
	require.NoError(t, err)
	require.Equal(t, "Paris", cached.Response)
	require.Equal(t, 1, backends.index.Len())
}

func TestCacheService_TTL(t *testing.T) {
	ctx := context.Background()

	t.Run("should expire entries in both tiers", func(t *testing.T) {
		cache, backends := newHashingCache(t)

		_, err := cache.Set(ctx, "What is the capital of France?", "Paris", domain.WithTTL(10*time.Second))
		require.NoError(t, err)

		ttl, err := cache.TTL(ctx, "What is the capital of France?")
		require.NoError(t, err)
		require.Equal(t, 10*time.Second, ttl)

		backends.clock.Advance(11 * time.Second)

		_, err = cache.Get(ctx, "What is the capital of France?")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
		_, err = cache.Get(ctx, "Which city is the capital of France?")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
		_, err = cache.TTL(ctx, "What is the capital of France?")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("should keep zero ttl entries forever", func(t *testing.T) {
		cache, backends := newHashingCache(t)

		_, err := cache.Set(ctx, "What is the capital of France?", "Paris", domain.WithTTL(0))
		require.NoError(t, err)

		backends.clock.Advance(10 * 365 * 24 * time.Hour)

		ttl, err := cache.TTL(ctx, "What is the capital of France?")
		require.NoError(t, err)
		require.Equal(t, domain.PermanentTTL, ttl)

		cached, err := cache.Get(ctx, "Which city is the capital of France?")
		require.NoError(t, err)
		require.Equal(t, "Paris", cached.Response)
	})

	t.Run("should apply default ttl", func(t *testing.T) {
		backends := newMemoryBackends(t, hashing.DefaultDimension)
		settings := backends.settings()
		settings.DefaultTTL = time.Minute
		cache := domain.NewCacheService(backends.exact, backends.index,
			hashing.NewGenerator(hashing.DefaultDimension), nil, nil, settings)

		_, err := cache.Set(ctx, "hello", "world")
		require.NoError(t, err)

		ttl, err := cache.TTL(ctx, "hello")
		require.NoError(t, err)
		require.Equal(t, time.Minute, ttl)
	})

	t.Run("should reject negative ttl", func(t *testing.T) {
		cache, backends := newHashingCache(t)

		_, err := cache.Set(ctx, "hello", "world", domain.WithTTL(-time.Second))
		require.ErrorIs(t, err, domain.ErrInvalidTTL)
		require.Zero(t, backends.exact.Len())
		require.Zero(t, backends.index.Len())
	})
}

func TestCacheService_Get_Semantic(t *testing.T) {
	ctx := context.Background()
	cache, _ := newHashingCache(t)

	_, err := cache.Set(ctx, "What is the capital of France?", "Paris")
	require.NoError(t, err)

	t.Run("should hit on paraphrase", func(t *testing.T) {
		cached, err := cache.Get(ctx, "Which city is the capital of France?")
		require.NoError(t, err)
		require.Equal(t, domain.SourceSemantic, cached.Source)
		require.Equal(t, "Paris", cached.Response)
		require.Equal(t, "What is the capital of France?", cached.MatchedQuery)
		require.Equal(t, "Which city is the capital of France?", cached.Query)
		require.Greater(t, cached.Distance, 0.0)
		require.LessOrEqual(t, cached.Distance, 0.2)
	})

	t.Run("should miss on unrelated query", func(t *testing.T) {
		_, err := cache.Get(ctx, "What is the largest animal?")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("should not consult semantic tier for exact lookups", func(t *testing.T) {
		_, err := cache.GetExact(ctx, "Which city is the capital of France?")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestCacheService_Get_ThresholdBoundary(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 2)
	embedder := &fixtureEmbedder{vectors: map[string][]float64{
		"stored": {1, 0},
		"lookup":  {0.8, 0.6},
	}}

	newCache := func(threshold float64) *domain.CacheService {
		settings := backends.settings()
		settings.DistanceThreshold = threshold
		return domain.NewCacheService(backends.exact, backends.index, embedder, nil, nil, settings)
	}

	_, err := newCache(0.2).Set(ctx, "stored", "answer")
	require.NoError(t, err)

	measured, err := newCache(1).GetSemantically(ctx, "lookup")
	require.NoError(t, err)
	distance := measured.Distance
	require.InDelta(t, 0.2, distance, 1e-9)

	t.Run("should hit at exactly the threshold", func(t *testing.T) {
		cached, err := newCache(distance).Get(ctx, "lookup")
		require.NoError(t, err)
		require.Equal(t, "answer", cached.Response)
	})

	t.Run("should miss just below the threshold", func(t *testing.T) {
		_, err := newCache(math.Nextafter(distance, 0)).Get(ctx, "lookup")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("should only accept identical vectors at zero threshold", func(t *testing.T) {
		_, err := newCache(0).Get(ctx, "lookup")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestCacheService_Get_TieBreakPrefersNewest(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 2)
	embedder := &fixtureEmbedder{vectors: map[string][]float64{
		"older": {1, 0},
		"newer": {2, 0},
		"lookup": {3, 0},
	}}
	cache := domain.NewCacheService(backends.exact, backends.index, embedder, nil, nil, backends.settings())

	_, err := cache.Set(ctx, "older", "first answer")
	require.NoError(t, err)
	backends.clock.Advance(time.Second)
	_, err = cache.Set(ctx, "newer", "second answer")
	require.NoError(t, err)

	cached, err := cache.Get(ctx, "lookup")
	require.NoError(t, err)
	require.Equal(t, domain.SourceSemantic, cached.Source)
	require.Equal(t, "second answer", cached.Response)
	require.InDelta(t, 0, cached.Distance, 1e-12)
}

func TestCacheService_EmbeddingFailureDegrades(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 2)

	embedder := mocks.NewMockEmbeddingGenerator(t)
	embedder.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(nil, errors.New("embedding API down"))

	cache := domain.NewCacheService(backends.exact, backends.index, embedder, nil, nil, backends.settings())

	key, err := cache.Set(ctx, "hello", "world")
	require.NoError(t, err)
	require.NotEmpty(t, key)
	require.Zero(t, backends.index.Len())

	cached, err := cache.Get(ctx, "hello")
	require.NoError(t, err)
	require.Equal(t, domain.SourceExact, cached.Source)

	_, err = cache.Get(ctx, "hi there")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	require.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestCacheService_IndexFailureKeepsExact(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, hashing.DefaultDimension)

	index := mocks.NewMockSemanticIndex(t)
	index.EXPECT().
		Insert(mock.Anything, mock.Anything).
		Return(errors.New("index full"))
	index.EXPECT().
		Delete(mock.Anything, "hello").
		Return(false, nil).
		Once()

	cache := domain.NewCacheService(backends.exact, index,
		hashing.NewGenerator(hashing.DefaultDimension), nil, nil, backends.settings())

	_, err := cache.Set(ctx, "hello", "world")
	require.NoError(t, err)

	cached, err := cache.GetExact(ctx, "HELLO")
	require.NoError(t, err)
	require.Equal(t, "world", cached.Response)
}

func TestCacheService_IndexFailureDropsStaleSemanticEntry(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 2)
	embedder := &switchableEmbedder{fixtureEmbedder: fixtureEmbedder{vectors: map[string][]float64{
		"what is the capital of france?":       {1, 0},
		"which city is the capital of france?": {1, 0.01},
	}}}
	cache := domain.NewCacheService(backends.exact, backends.index, embedder, nil, nil, backends.settings())

	_, err := cache.Set(ctx, "What is the capital of France?", "Lyon", domain.WithTTL(0))
	require.NoError(t, err)
	require.Equal(t, 1, backends.index.Len())

	embedder.setFailing(true)
	_, err = cache.Set(ctx, "What is the capital of France?", "Paris", domain.WithTTL(10*time.Second))
	require.NoError(t, err)
	embedder.setFailing(false)
	require.Zero(t, backends.index.Len())

	cached, err := cache.Get(ctx, "What is the capital of France?")
	require.NoError(t, err)
	require.Equal(t, "Paris", cached.Response)

	_, err = cache.Get(ctx, "Which city is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	backends.clock.Advance(11 * time.Second)

	_, err = cache.Get(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Get(ctx, "Which city is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheService_IndexFailureToleratesDropError(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, hashing.DefaultDimension)

	index := mocks.NewMockSemanticIndex(t)
	index.EXPECT().
		Insert(mock.Anything, mock.Anything).
		Return(errors.New("index full"))
	index.EXPECT().
		Delete(mock.Anything, mock.Anything).
		Return(false, errors.New("connection reset"))

	cache := domain.NewCacheService(backends.exact, index,
		hashing.NewGenerator(hashing.DefaultDimension), nil, nil, backends.settings())

	key, err := cache.Set(ctx, "hello", "world")
	require.NoError(t, err)
	require.Equal(t, cache.Key("hello"), key)
}

func TestCacheService_SlowEmbeddingDoesNotExtendSemanticLifetime(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, hashing.DefaultDimension)
	embedder := &clockAdvancingEmbedder{
		next:  hashing.NewGenerator(hashing.DefaultDimension),
		clock: backends.clock,
		delay: 2 * time.Second,
	}
	cache := domain.NewCacheService(backends.exact, backends.index, embedder, nil, nil, backends.settings())

	_, err := cache.Set(ctx, "What is the capital of France?", "Paris", domain.WithTTL(10*time.Second))
	require.NoError(t, err)

	backends.clock.Advance(9 * time.Second)

	_, err = cache.TTL(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.GetExact(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.GetSemantically(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Get(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheService_ExactOnly(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 0)
	cache := domain.NewCacheService(backends.exact, nil, nil, nil, nil, backends.settings())

	_, err := cache.Set(ctx, "What is the capital of France?", "Paris")
	require.NoError(t, err)

	_, err = cache.Get(ctx, "Which city is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	removed, err := cache.DeleteExpired(ctx)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestCacheService_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := cacheredis.NewClient(cacheredis.Config{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	settings := domain.DefaultCacheSettings()
	settings.StoreTimeout = 500 * time.Millisecond
	cache := domain.NewCacheService(
		cacheredis.NewExactStore(client, cacheredis.NewKeyspace("test:")),
		nil, nil,
		cacheredis.NewRateCounter(client, cacheredis.NewKeyspace("test:")),
		nil, settings,
	)

	_, err := cache.Set(ctx, "hello", "world")
	require.NoError(t, err)

	mr.Close()

	_, err = cache.Get(ctx, "hello")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = cache.Set(ctx, "hello", "again")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = cache.RateLimited(ctx, "client", 5, time.Minute)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	stats := cache.Stats()
	require.Equal(t, int64(1), stats.Errors)
}

func TestCacheService_ConcurrentSetIsSingleValued(t *testing.T) {
	ctx := context.Background()
	cache, backends := newHashingCache(t)

	const writers = 20
	responses := make([]string, writers)
	for i := range responses {
		responses[i] = fmt.Sprintf("answer %d", i)
	}

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for _, response := range responses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Set(ctx, "What is the capital of France?", response)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	cached, err := cache.Get(ctx, "What is the capital of France?")
	require.NoError(t, err)
	require.Contains(t, responses, cached.Response)

	semantic, err := cache.GetSemantically(ctx, "Which city is the capital of France?")
	require.NoError(t, err)
	require.Contains(t, responses, semantic.Response)

	require.Equal(t, 1, backends.exact.Len())
	require.Equal(t, 1, backends.index.Len())
}

func TestCacheService_RateLimited(t *testing.T) {
	ctx := context.Background()
	cache, backends := newHashingCache(t)

	for i := range 5 {
		limited, err := cache.RateLimited(ctx, "farmer-1", 5, 60*time.Second)
		require.NoError(t, err)
		require.False(t, limited, "request %d should be allowed", i+1)
	}

	limited, err := cache.RateLimited(ctx, "farmer-1", 5, 60*time.Second)
	require.NoError(t, err)
	require.True(t, limited)

	limited, err = cache.RateLimited(ctx, "farmer-2", 5, 60*time.Second)
	require.NoError(t, err)
	require.False(t, limited)

	backends.clock.Advance(61 * time.Second)

	limited, err = cache.RateLimited(ctx, "farmer-1", 5, 60*time.Second)
	require.NoError(t, err)
	require.False(t, limited)
}

func TestCacheService_RateLimited_NoCounter(t *testing.T) {
	backends := newMemoryBackends(t, 0)
	cache := domain.NewCacheService(backends.exact, nil, nil, nil, nil, backends.settings())

	limited, err := cache.RateLimited(context.Background(), "farmer-1", 0, time.Minute)
	require.NoError(t, err)
	require.False(t, limited)
}

func TestCacheService_MalformedEntryIsPurged(t *testing.T) {
	ctx := context.Background()
	cache, backends := newHashingCache(t)
	key := cache.Key("hello")

	require.NoError(t, backends.exact.Put(ctx, key, []byte("{not json"), 0))

	_, err := cache.Get(ctx, "hello")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	_, err = backends.exact.Get(ctx, key)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheService_Delete(t *testing.T) {
	ctx := context.Background()
	cache, _ := newHashingCache(t)

	_, err := cache.Set(ctx, "What is the capital of France?", "Paris")
	require.NoError(t, err)

	removed, err := cache.Delete(ctx, "what is the capital of france?")
	require.NoError(t, err)
	require.True(t, removed)

	_, err = cache.Get(ctx, "What is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Get(ctx, "Which city is the capital of France?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	removed, err = cache.Delete(ctx, "What is the capital of France?")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCacheService_Stats(t *testing.T) {
	ctx := context.Background()
	cache, _ := newHashingCache(t)

	_, err := cache.Set(ctx, "What is the capital of France?", "Paris")
	require.NoError(t, err)

	_, err = cache.Get(ctx, "What is the capital of France?")
	require.NoError(t, err)
	_, err = cache.Get(ctx, "Which city is the capital of France?")
	require.NoError(t, err)
	_, err = cache.Get(ctx, "What is the largest animal?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Get(ctx, "How tall is Everest?")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	stats := cache.Stats()
	require.Equal(t, int64(1), stats.ExactHits)
	require.Equal(t, int64(1), stats.SemanticHits)
	require.Equal(t, int64(2), stats.Misses)
	require.Zero(t, stats.Errors)
	require.InDelta(t, 0.5, stats.HitRate, 1e-9)
}

func TestCacheService_RunSweeper(t *testing.T) {
	cache, backends := newHashingCache(t)

	_, err := cache.Set(context.Background(), "short lived", "gone soon", domain.WithTTL(time.Second))
	require.NoError(t, err)
	_, err = cache.Set(context.Background(), "long lived", "still here", domain.WithTTL(0))
	require.NoError(t, err)
	require.Equal(t, 2, backends.index.Len())

	backends.clock.Advance(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.RunSweeper(ctx, 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return backends.index.Len() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestCacheService_RateLimited_CounterErrors(t *testing.T) {
	ctx := context.Background()
	backends := newMemoryBackends(t, 0)

	t.Run("should report counter failures as unavailable", func(t *testing.T) {
		counter := mocks.NewMockRateCounter(t)
		counter.EXPECT().
			Increment(mock.Anything, "farmer-1", time.Minute).
			Return(0, errors.New("connection reset"))

		cache := domain.NewCacheService(backends.exact, nil, nil, counter, nil, backends.settings())

		limited, err := cache.RateLimited(ctx, "farmer-1", 5, time.Minute)
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		require.False(t, limited)
	})

	t.Run("should reject non-positive windows", func(t *testing.T) {
		counter := mocks.NewMockRateCounter(t)
		cache := domain.NewCacheService(backends.exact, nil, nil, counter, nil, backends.settings())

		_, err := cache.RateLimited(ctx, "farmer-1", 5, 0)
		require.Error(t, err)
	})
}
