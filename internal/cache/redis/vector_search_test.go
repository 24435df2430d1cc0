package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/semcache/internal/cache/redis"
	"github.com/davidbz/semcache/internal/domain"
)

// stackAddrEnv names a Redis Stack (RediSearch) server for the vector search
// tests. miniredis has no FT.* support, so they skip without one.
const stackAddrEnv = "REDIS_STACK_ADDR"

type stackFixture struct {
	client    *goredis.Client
	indexName string
	keys      redis.Keyspace
}

func setupVectorSearch(t *testing.T, dimension int) (*redis.VectorSearch, stackFixture) {
	t.Helper()

	addr := os.Getenv(stackAddrEnv)
	if addr == "" {
		t.Skipf("%s not set, skipping RediSearch tests", stackAddrEnv)
	}

	ctx := context.Background()
	client := redis.NewClient(redis.Config{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, redis.Ping(ctx, client))

	suffix := uuid.NewString()
	indexName := "semcache_test_idx_" + suffix
	keys := redis.NewKeyspace("semcache_test:" + suffix + ":")

	search, err := redis.NewVectorSearch(ctx, client, indexName, keys, dimension)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.FTDropIndexWithArgs(context.Background(), indexName,
			&goredis.FTDropIndexOptions{DeleteDocs: true}).Err()
	})

	return search, stackFixture{client: client, indexName: indexName, keys: keys}
}

func TestVectorSearch_InsertAndSearchNearest(t *testing.T) {
	ctx := context.Background()
	search, _ := setupVectorSearch(t, 3)

	createdAt := time.Now().Truncate(time.Millisecond)
	require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
		Key:       "france",
		Query:     "What is the capital of France?",
		Response:  "Paris",
		Tag:       "geo",
		Embedding: []float64{1, 0, 0},
		CreatedAt: createdAt,
	}))
	require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
		Key:       "italy",
		Query:     "What is the capital of Italy?",
		Response:  "Rome",
		Embedding: []float64{0.8, 0.6, 0},
		CreatedAt: createdAt,
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	results, err := search.SearchNearest(ctx, []float64{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "france", results[0].Key)
	require.Equal(t, "Paris", results[0].Response)
	require.Equal(t, "What is the capital of France?", results[0].Query)
	require.Equal(t, "geo", results[0].Tag)
	require.InDelta(t, 0, results[0].Distance, 1e-4)
	require.True(t, createdAt.Equal(results[0].IndexedAt))

	require.Equal(t, "italy", results[1].Key)
	require.InDelta(t, 0.2, results[1].Distance, 1e-4)

	t.Run("should limit to k", func(t *testing.T) {
		results, err := search.SearchNearest(ctx, []float64{0.8, 0.6, 0}, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "italy", results[0].Key)
	})
}

func TestVectorSearch_InsertReplacesAndExpires(t *testing.T) {
	ctx := context.Background()
	search, fixture := setupVectorSearch(t, 2)

	require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
		Key:       "k",
		Query:     "q",
		Response:  "old",
		Embedding: []float64{1, 0},
	}))

	t.Run("should replace the previous entry", func(t *testing.T) {
		require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
			Key:       "k",
			Query:     "q",
			Response:  "new",
			Embedding: []float64{1, 0},
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		results, err := search.SearchNearest(ctx, []float64{1, 0}, 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "new", results[0].Response)
	})

	t.Run("should expire at the absolute deadline", func(t *testing.T) {
		require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
			Key:       "k",
			Query:     "q",
			Response:  "stale",
			Embedding: []float64{1, 0},
			ExpiresAt: time.Now().Add(-time.Second),
		}))

		results, err := search.SearchNearest(ctx, []float64{1, 0}, 5)
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("should delete", func(t *testing.T) {
		require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
			Key:       "gone",
			Query:     "q",
			Response:  "r",
			Embedding: []float64{0, 1},
		}))

		removed, err := search.Delete(ctx, "gone")
		require.NoError(t, err)
		require.True(t, removed)

		removed, err = search.Delete(ctx, "gone")
		require.NoError(t, err)
		require.False(t, removed)

		results, err := search.SearchNearest(ctx, []float64{0, 1}, 5)
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("should reuse an existing index", func(t *testing.T) {
		require.NoError(t, search.Insert(ctx, &domain.CacheEntry{
			Key:       "kept",
			Query:     "q",
			Response:  "still here",
			Embedding: []float64{0, 1},
		}))

		reopened, err := redis.NewVectorSearch(ctx, fixture.client, fixture.indexName, fixture.keys, 2)
		require.NoError(t, err)

		results, err := reopened.SearchNearest(ctx, []float64{0, 1}, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "still here", results[0].Response)
	})
}
