package redis

// Config holds the Redis connection and key layout settings.
type Config struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	IndexName string `env:"REDIS_INDEX_NAME" envDefault:"semcache_idx"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"semcache:"`
}

// Keyspace derives the Redis keys used by each store from a common prefix.
type Keyspace struct {
	prefix string
}

// NewKeyspace creates a keyspace rooted at prefix.
func NewKeyspace(prefix string) Keyspace {
	return Keyspace{prefix: prefix}
}

// Exact returns the key holding the exact-match payload.
func (k Keyspace) Exact(key string) string {
	return k.prefix + "exact:" + key
}

// VectorPrefix returns the prefix indexed by the search index.
func (k Keyspace) VectorPrefix() string {
	return k.prefix + "vec:"
}

// Vector returns the hash key holding the indexed entry.
func (k Keyspace) Vector(key string) string {
	return k.VectorPrefix() + key
}

// Rate returns the fixed-window counter key for identifier.
func (k Keyspace) Rate(identifier string) string {
	return k.prefix + "rate:" + identifier
}
