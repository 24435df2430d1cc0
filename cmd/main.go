package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/semcache/internal/cache/breaker"
	"github.com/davidbz/semcache/internal/cache/memory"
	"github.com/davidbz/semcache/internal/cache/redis"
	"github.com/davidbz/semcache/internal/config"
	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/embedding"
	"github.com/davidbz/semcache/internal/embedding/hashing"
	embeddingopenai "github.com/davidbz/semcache/internal/embedding/openai"
	"github.com/davidbz/semcache/internal/http"
	"github.com/davidbz/semcache/internal/observability"
	"github.com/davidbz/semcache/internal/responder/echo"
	responderopenai "github.com/davidbz/semcache/internal/responder/openai"
)

// ErrUnknownBackend indicates a configuration value names no known implementation.
var ErrUnknownBackend = errors.New("unknown backend")

func main() {
	container := buildContainer()

	if err := container.Invoke(run); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func run(
	logger *zap.Logger,
	server *http.Server,
	cache *domain.CacheService,
	cacheCfg *config.CacheConfig,
	serverCfg *config.ServerConfig,
) error {
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go cache.RunSweeper(ctx, cacheCfg.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(serverCfg.ShutdownTimeout)*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}
	if err := container.Provide(func(cfg *config.CacheConfig) domain.CacheSettings {
		return cfg.Settings()
	}); err != nil {
		log.Fatalf("Failed to provide cache settings: %v", err)
	}
	if err := container.Provide(func(cfg *config.CacheConfig) *domain.Normalizer {
		return cfg.Normalizer()
	}); err != nil {
		log.Fatalf("Failed to provide normalizer: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Embedding and responder
	if err := container.Provide(newEmbedder); err != nil {
		log.Fatalf("Failed to provide embedding generator: %v", err)
	}
	if err := container.Provide(newResponder); err != nil {
		log.Fatalf("Failed to provide responder: %v", err)
	}

	// Cache backends
	if err := container.Provide(newBackends); err != nil {
		log.Fatalf("Failed to provide cache backends: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewCacheService); err != nil {
		log.Fatalf("Failed to provide cache service: %v", err)
	}
	if err := container.Provide(func(cache *domain.CacheService) domain.SemanticCache {
		return cache
	}); err != nil {
		log.Fatalf("Failed to provide semantic cache: %v", err)
	}
	if err := container.Provide(domain.NewAnswerService); err != nil {
		log.Fatalf("Failed to provide answer service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func newEmbedder(
	cfg *config.EmbeddingConfig,
	openaiCfg *embeddingopenai.Config,
	cacheCfg *config.CacheConfig,
) (domain.EmbeddingGenerator, error) {
	var generator domain.EmbeddingGenerator

	switch cfg.Provider {
	case config.EmbeddingHashing:
		generator = hashing.NewGenerator(cfg.Dimension)
	case config.EmbeddingOpenAI:
		openaiGenerator, err := embeddingopenai.NewGenerator(*openaiCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI embedding generator: %w", err)
		}
		generator = openaiGenerator
	default:
		return nil, fmt.Errorf("%w: embedding provider %q", ErrUnknownBackend, cfg.Provider)
	}

	if cacheCfg.CoalesceEmbeddingCalls {
		return embedding.NewCoalescing(generator, embedding.WithTimeout(cacheCfg.EmbedTimeout)), nil
	}
	return generator, nil
}

func newResponder(
	cfg *config.ResponderConfig,
	openaiCfg *responderopenai.Config,
) (domain.Responder, error) {
	switch cfg.Provider {
	case config.ResponderEcho:
		return echo.NewResponder(cfg.EchoDelay), nil
	case config.ResponderOpenAI:
		responder, err := responderopenai.NewResponder(*openaiCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI responder: %w", err)
		}
		return responder, nil
	default:
		return nil, fmt.Errorf("%w: responder provider %q", ErrUnknownBackend, cfg.Provider)
	}
}

func newBackends(
	cacheCfg *config.CacheConfig,
	redisCfg *redis.Config,
	breakerCfg *breaker.Config,
	embedder domain.EmbeddingGenerator,
) (domain.ExactStore, domain.SemanticIndex, domain.RateCounter, error) {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	var (
		exact   domain.ExactStore
		index   domain.SemanticIndex
		counter domain.RateCounter
	)

	switch cacheCfg.Backend {
	case config.BackendMemory:
		memoryExact, err := memory.NewExactStore(cacheCfg.MemoryCapacity)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create memory exact store: %w", err)
		}
		memoryIndex, err := memory.NewVectorIndex(embedder.Dimension(), cacheCfg.MemoryCapacity)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create memory vector index: %w", err)
		}
		exact = memoryExact
		index = memoryIndex
		counter = memory.NewRateCounter()

	case config.BackendRedis:
		client := redis.NewClient(*redisCfg)

		pingCtx, cancel := context.WithTimeout(ctx, cacheCfg.StoreTimeout)
		defer cancel()
		if err := redis.Ping(pingCtx, client); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		keys := redis.NewKeyspace(redisCfg.KeyPrefix)
		vectorSearch, err := redis.NewVectorSearch(ctx, client, redisCfg.IndexName, keys, embedder.Dimension())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create Redis vector search: %w", err)
		}

		exact = redis.NewExactStore(client, keys)
		index = vectorSearch
		counter = redis.NewRateCounter(client, keys)

	default:
		return nil, nil, nil, fmt.Errorf("%w: cache backend %q", ErrUnknownBackend, cacheCfg.Backend)
	}

	if breakerCfg.Enabled {
		exact = breaker.NewExactStore(ctx, exact, *breakerCfg)
		index = breaker.NewSemanticIndex(ctx, index, *breakerCfg)
	}

	logger.Info("cache backends ready",
		observability.String("backend", cacheCfg.Backend),
		observability.String("embedder", embedder.Name()),
		observability.Int("dimension", embedder.Dimension()),
		observability.Bool("breaker", breakerCfg.Enabled))

	return exact, index, counter, nil
}
