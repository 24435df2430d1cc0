package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/semcache/internal/cache/breaker"
	"github.com/davidbz/semcache/internal/cache/redis"
	"github.com/davidbz/semcache/internal/domain"
	embeddingopenai "github.com/davidbz/semcache/internal/embedding/openai"
	responderopenai "github.com/davidbz/semcache/internal/responder/openai"
)

// Cache backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Embedding providers.
const (
	EmbeddingHashing = "hashing"
	EmbeddingOpenAI  = "openai"
)

// Responder providers.
const (
	ResponderEcho   = "echo"
	ResponderOpenAI = "openai"
)

// Config represents the service configuration.
type Config struct {
	Server          ServerConfig
	CORS            CORSConfig
	Cache           CacheConfig
	Breaker         breaker.Config
	Redis           redis.Config
	Embedding       EmbeddingConfig
	OpenAIEmbedding embeddingopenai.Config
	Responder       ResponderConfig
	OpenAIResponder responderopenai.Config
	RateLimit       RateLimitConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization,X-Client-Id"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS"   envSeparator:"," envDefault:"X-Semcache,X-Semcache-Source,X-Semcache-Distance,X-Semcache-Key,X-Trace-Id,X-Request-Id,Retry-After"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig contains semantic cache settings.
type CacheConfig struct {
	Backend                string        `env:"CACHE_BACKEND"                     envDefault:"memory"`
	DistanceThreshold      float64       `env:"CACHE_DISTANCE_THRESHOLD"          envDefault:"0.2"`
	DefaultTTL             time.Duration `env:"CACHE_DEFAULT_TTL"                 envDefault:"24h"`
	StoreTimeout           time.Duration `env:"CACHE_STORE_TIMEOUT"               envDefault:"2s"`
	EmbedTimeout           time.Duration `env:"CACHE_EMBED_TIMEOUT"               envDefault:"5s"`
	SearchCandidates       int           `env:"CACHE_SEARCH_CANDIDATES"           envDefault:"4"`
	SweepInterval          time.Duration `env:"CACHE_SWEEP_INTERVAL"              envDefault:"1m"`
	MemoryCapacity         int           `env:"CACHE_MEMORY_CAPACITY"             envDefault:"10000"`
	NormalizeStripPunct    bool          `env:"CACHE_NORMALIZE_STRIP_PUNCTUATION" envDefault:"false"`
	NormalizeSortTokens    bool          `env:"CACHE_NORMALIZE_SORT_TOKENS"       envDefault:"false"`
	CoalesceEmbeddingCalls bool          `env:"CACHE_COALESCE_EMBEDDINGS"         envDefault:"true"`
}

// Settings converts the configuration into facade settings.
func (c CacheConfig) Settings() domain.CacheSettings {
	settings := domain.DefaultCacheSettings()
	settings.DistanceThreshold = c.DistanceThreshold
	settings.DefaultTTL = c.DefaultTTL
	settings.StoreTimeout = c.StoreTimeout
	settings.EmbedTimeout = c.EmbedTimeout
	settings.SearchCandidates = c.SearchCandidates
	return settings
}

// Normalizer builds the configured query normalizer.
func (c CacheConfig) Normalizer() *domain.Normalizer {
	var opts []domain.NormalizerOption
	if c.NormalizeStripPunct {
		opts = append(opts, domain.WithPunctuationStripping())
	}
	if c.NormalizeSortTokens {
		opts = append(opts, domain.WithTokenSorting())
	}
	return domain.NewNormalizer(opts...)
}

// EmbeddingConfig selects the embedding generator.
type EmbeddingConfig struct {
	Provider  string `env:"EMBEDDING_PROVIDER"  envDefault:"hashing"`
	Dimension int    `env:"EMBEDDING_DIMENSION" envDefault:"384"`
}

// ResponderConfig selects the responder used on cache misses.
type ResponderConfig struct {
	Provider  string        `env:"RESPONDER_PROVIDER"   envDefault:"echo"`
	EchoDelay time.Duration `env:"RESPONDER_ECHO_DELAY" envDefault:"0s"`
}

// RateLimitConfig contains the fixed-window limiter settings for answer requests.
type RateLimitConfig struct {
	Enabled     bool          `env:"RATE_LIMIT_ENABLED"      envDefault:"true"`
	MaxRequests int64         `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"60"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW"       envDefault:"1m"`
}

// DepConfig is used for dependency injection with dig.
// Fields are named because several adapter packages call their type Config.
type DepConfig struct {
	dig.Out

	Server          *ServerConfig
	CORS            *CORSConfig
	Cache           *CacheConfig
	Breaker         *breaker.Config
	Redis           *redis.Config
	Embedding       *EmbeddingConfig
	OpenAIEmbedding *embeddingopenai.Config
	Responder       *ResponderConfig
	OpenAIResponder *responderopenai.Config
	RateLimit       *RateLimitConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:             dig.Out{},
		Server:          &cfg.Server,
		CORS:            &cfg.CORS,
		Cache:           &cfg.Cache,
		Breaker:         &cfg.Breaker,
		Redis:           &cfg.Redis,
		Embedding:       &cfg.Embedding,
		OpenAIEmbedding: &cfg.OpenAIEmbedding,
		Responder:       &cfg.Responder,
		OpenAIResponder: &cfg.OpenAIResponder,
		RateLimit:       &cfg.RateLimit,
	}
}
