package redis

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/observability"
)

const (
	redisDialectVersion = 2

	fieldQuery     = "query"
	fieldResponse  = "response"
	fieldTag       = "tag"
	fieldEmbedding = "embedding"
	fieldIndexedAt = "indexed_at"
	fieldScore     = "score"
)

// VectorSearch implements domain.SemanticIndex on a RediSearch FLAT/COSINE index.
type VectorSearch struct {
	client             *redis.Client
	indexName          string
	keys               Keyspace
	embeddingDimension int
}

// NewVectorSearch creates a new Redis vector search adapter and ensures its index exists.
func NewVectorSearch(
	ctx context.Context,
	client *redis.Client,
	indexName string,
	keys Keyspace,
	embeddingDimension int,
) (*VectorSearch, error) {
	if embeddingDimension <= 0 {
		return nil, errors.New("embedding dimension must be positive")
	}

	v := &VectorSearch{
		client:             client,
		indexName:          indexName,
		keys:               keys,
		embeddingDimension: embeddingDimension,
	}

	if err := v.createIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return v, nil
}

// floatsToBytes converts float64 slice to binary byte representation.
func floatsToBytes(fs []float64) []byte {
	const bytesPerFloat32 = 4
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		// Convert float64 to float32 for Redis compatibility
		f32 := float32(f)
		u := math.Float32bits(f32)
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], u)
	}

	return buf
}

// SearchNearest returns up to k entries ordered by ascending cosine distance.
func (v *VectorSearch) SearchNearest(
	ctx context.Context,
	embedding []float64,
	k int,
) ([]*domain.SearchResult, error) {
	if k <= 0 || len(embedding) == 0 {
		return nil, nil
	}
	if len(embedding) != v.embeddingDimension {
		return nil, fmt.Errorf("%w: got %d, want %d",
			domain.ErrDimensionMismatch, len(embedding), v.embeddingDimension)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("starting vector search",
		observability.String("index", v.indexName),
		observability.Int("embedding_dim", len(embedding)),
		observability.Int("k", k))

	query := fmt.Sprintf("*=>[KNN %d @%s $vec AS %s]", k, fieldEmbedding, fieldScore)

	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: fieldQuery},
				{FieldName: fieldResponse},
				{FieldName: fieldTag},
				{FieldName: fieldIndexedAt},
				{FieldName: fieldScore},
			},
			SortBy:         []redis.FTSearchSortBy{{FieldName: fieldScore, Asc: true}},
			LimitOffset:    0,
			Limit:          k,
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(embedding),
			},
		},
	).Result()
	if err != nil {
		logger.Warn("vector search failed", observability.Error(err))
		return nil, classify(err)
	}

	logger.Debug("vector search completed",
		observability.Int("total_docs", results.Total),
		observability.Int("docs_returned", len(results.Docs)))

	return v.parseSearchResults(ctx, results), nil
}

// Insert stores the entry as a hash, replacing any previous entry for the key.
// The hash expires at entry.ExpiresAt so it never outlives the exact entry.
func (v *VectorSearch) Insert(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if len(entry.Embedding) != v.embeddingDimension {
		return fmt.Errorf("%w: got %d, want %d",
			domain.ErrDimensionMismatch, len(entry.Embedding), v.embeddingDimension)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("starting vector index",
		observability.Int("embedding_dim", len(entry.Embedding)),
		observability.Int("response_size", len(entry.Response)))

	hashKey := v.keys.Vector(entry.Key)
	indexedAt := entry.CreatedAt
	if indexedAt.IsZero() {
		indexedAt = time.Now()
	}

	// MULTI/EXEC so readers never observe a half-written hash.
	pipe := v.client.TxPipeline()
	pipe.Del(ctx, hashKey)
	pipe.HSet(ctx, hashKey,
		fieldQuery, entry.Query,
		fieldResponse, entry.Response,
		fieldTag, entry.Tag,
		fieldEmbedding, floatsToBytes(entry.Embedding),
		fieldIndexedAt, indexedAt.UnixMilli(),
	)
	if !entry.Permanent() {
		pipe.PExpireAt(ctx, hashKey, entry.ExpiresAt)
	}

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Warn("vector index failed", observability.Error(execErr))
		return classify(execErr)
	}

	logger.Debug("vector index completed successfully")
	return nil
}

// Delete removes the entry stored under key.
func (v *VectorSearch) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := v.client.Del(ctx, v.keys.Vector(key)).Result()
	if err != nil {
		return false, classify(err)
	}
	return removed > 0, nil
}

// DeleteExpired is a no-op: Redis expires indexed hashes natively and
// RediSearch drops them from the index.
func (v *VectorSearch) DeleteExpired(_ context.Context) (int, error) {
	return 0, nil
}

// createIndex creates the Redis search index if it doesn't exist.
func (v *VectorSearch) createIndex(ctx context.Context) error {
	logger := observability.FromContext(ctx)

	// Check if index already exists
	_, err := v.client.FTInfo(ctx, v.indexName).Result()
	if err == nil {
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", v.indexName))
		return nil
	}

	logger.Info("creating redis search index",
		observability.String("index_name", v.indexName),
		observability.Int("embedding_dimension", v.embeddingDimension))

	_, err = v.client.FTCreate(ctx, v.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{v.keys.VectorPrefix()},
		},
		&redis.FieldSchema{
			FieldName: fieldEmbedding,
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            v.embeddingDimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: fieldQuery,
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: fieldTag,
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: fieldIndexedAt,
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return classify(err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", v.indexName))

	return nil
}

// parseSearchResults parses Redis FTSearchResult into domain SearchResult structs.
func (v *VectorSearch) parseSearchResults(
	ctx context.Context,
	result redis.FTSearchResult,
) []*domain.SearchResult {
	results := make([]*domain.SearchResult, 0, len(result.Docs))

	for _, doc := range result.Docs {
		searchResult := v.parseSearchResult(ctx, doc)
		if searchResult != nil {
			results = append(results, searchResult)
		}
	}

	return results
}

// parseSearchResult parses a single Document into a domain SearchResult.
// Documents without a usable score or response are skipped.
func (v *VectorSearch) parseSearchResult(
	ctx context.Context,
	doc redis.Document,
) *domain.SearchResult {
	logger := observability.FromContext(ctx)

	// Extract score from fields (it's returned as "score" field, not doc.Score)
	scoreStr, scoreOk := doc.Fields[fieldScore]
	if !scoreOk {
		return nil
	}

	distance, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		logger.Warn("unparsable distance in search result",
			observability.String("doc_id", doc.ID))
		return nil
	}

	response, responseOk := doc.Fields[fieldResponse]
	if !responseOk {
		logger.Warn("response field not found in search result",
			observability.String("doc_id", doc.ID))
		return nil
	}

	var indexedAt time.Time
	if tsStr, tsOk := doc.Fields[fieldIndexedAt]; tsOk {
		if ts, parseErr := strconv.ParseInt(tsStr, 10, 64); parseErr == nil {
			indexedAt = time.UnixMilli(ts)
		}
	}

	return &domain.SearchResult{
		Key:       strings.TrimPrefix(doc.ID, v.keys.VectorPrefix()),
		Query:     doc.Fields[fieldQuery],
		Response:  response,
		Tag:       doc.Fields[fieldTag],
		Distance:  distance,
		IndexedAt: indexedAt,
	}
}
