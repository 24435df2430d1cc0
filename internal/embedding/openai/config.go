package openai

// Config holds configuration for OpenAI embedding generator.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"       envDefault:"https://api.openai.com/v1"`
	Model      string `env:"CACHE_EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	Timeout    int    `env:"OPENAI_TIMEOUT"        envDefault:"60"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES"    envDefault:"3"`
}
