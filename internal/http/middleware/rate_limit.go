package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/semcache/internal/config"
	"github.com/davidbz/semcache/internal/observability"
)

// RateLimiter decides whether an identifier exceeded its fixed-window budget.
type RateLimiter interface {
	RateLimited(ctx context.Context, identifier string, maxRequests int64, window time.Duration) (bool, error)
}

// RateLimit rejects requests over budget with 429. Limiter failures let the
// request through.
func RateLimit(limiter RateLimiter, cfg *config.RateLimitConfig) Middleware {
	if limiter == nil || cfg == nil || !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientID := observability.GetClientID(ctx)
			if clientID == "" {
				clientID = ResolveClientID(r)
			}

			limited, err := limiter.RateLimited(ctx, clientID, cfg.MaxRequests, cfg.Window)
			if err != nil {
				observability.FromContext(ctx).Warn("rate limiter unavailable, allowing request",
					observability.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if limited {
				w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
