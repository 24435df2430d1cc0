package redis

import (
	"context"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/semcache/internal/domain"
)

func TestFloatsToBytes(t *testing.T) {
	buf := floatsToBytes([]float64{1.5, -0.25})
	require.Len(t, buf, 8)

	require.InDelta(t, 1.5, math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])), 1e-9)
	require.InDelta(t, -0.25, math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])), 1e-9)
}

func TestParseSearchResult(t *testing.T) {
	v := &VectorSearch{keys: NewKeyspace("test:"), embeddingDimension: 3}
	indexedAt := time.UnixMilli(1700000000123)

	t.Run("should parse a complete document", func(t *testing.T) {
		result := v.parseSearchResult(context.Background(), redis.Document{
			ID: "test:vec:abc",
			Fields: map[string]string{
				"query":      "What is the capital of France?",
				"response":   "Paris",
				"tag":        "geo",
				"indexed_at": "1700000000123",
				"score":      "0.125",
			},
		})

		require.NotNil(t, result)
		require.Equal(t, "abc", result.Key)
		require.Equal(t, "Paris", result.Response)
		require.Equal(t, "geo", result.Tag)
		require.Equal(t, "What is the capital of France?", result.Query)
		require.InDelta(t, 0.125, result.Distance, 1e-9)
		require.True(t, indexedAt.Equal(result.IndexedAt))
	})

	t.Run("should skip documents without score", func(t *testing.T) {
		result := v.parseSearchResult(context.Background(), redis.Document{
			ID:     "test:vec:abc",
			Fields: map[string]string{"response": "Paris"},
		})
		require.Nil(t, result)
	})

	t.Run("should skip documents without response", func(t *testing.T) {
		result := v.parseSearchResult(context.Background(), redis.Document{
			ID:     "test:vec:abc",
			Fields: map[string]string{"score": "0.1"},
		})
		require.Nil(t, result)
	})
}

func TestVectorSearch_RejectsDimensionMismatch(t *testing.T) {
	v := &VectorSearch{keys: NewKeyspace("test:"), embeddingDimension: 3}

	err := v.Insert(context.Background(), &domain.CacheEntry{Key: "k", Embedding: []float64{1, 2}})
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)

	_, err = v.SearchNearest(context.Background(), []float64{1, 2}, 1)
	require.ErrorIs(t, err, domain.ErrMalformedEntry)
}

func TestKeyspace(t *testing.T) {
	keys := NewKeyspace("semcache:")

	require.Equal(t, "semcache:exact:k", keys.Exact("k"))
	require.Equal(t, "semcache:vec:k", keys.Vector("k"))
	require.Equal(t, "semcache:rate:client", keys.Rate("client"))
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify(nil))
	require.ErrorIs(t, classify(redis.Nil), domain.ErrCacheMiss)
	require.ErrorIs(t, classify(context.DeadlineExceeded), domain.ErrStoreUnavailable)
}

func TestNewClient_PinsRESP2(t *testing.T) {
	client := NewClient(Config{Addr: "localhost:6379", DB: 2})
	t.Cleanup(func() { _ = client.Close() })

	require.Equal(t, 2, client.Options().Protocol)
	require.Equal(t, 2, client.Options().DB)
}
