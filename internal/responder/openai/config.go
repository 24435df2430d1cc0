package openai

// Config contains OpenAI responder configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxRetries: Maps to option.WithMaxRetries()
type Config struct {
	APIKey       string  `env:"OPENAI_API_KEY"`
	BaseURL      string  `env:"OPENAI_BASE_URL"          envDefault:"https://api.openai.com/v1"`
	Timeout      int     `env:"OPENAI_TIMEOUT"           envDefault:"60"`
	MaxRetries   int     `env:"OPENAI_MAX_RETRIES"       envDefault:"3"`
	Model        string  `env:"RESPONDER_MODEL"          envDefault:"gpt-4o-mini"`
	SystemPrompt string  `env:"RESPONDER_SYSTEM_PROMPT"`
	Temperature  float64 `env:"RESPONDER_TEMPERATURE"    envDefault:"0"`
	MaxTokens    int     `env:"RESPONDER_MAX_TOKENS"     envDefault:"512"`
}
