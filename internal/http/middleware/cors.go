package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/semcache/internal/config"
)

// CORS applies the configured cross-origin policy. Cache outcome headers are
// exposed so browser clients can read HIT/MISS and the matched key.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return policy.Handler
}
