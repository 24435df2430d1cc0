package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/semcache/internal/config"
	"github.com/davidbz/semcache/internal/domain"
	"github.com/davidbz/semcache/internal/http/middleware"
	"github.com/davidbz/semcache/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	rateLimit   middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	handler *Handler,
	cache *domain.CacheService,
) *Server {
	s := &Server{
		config:      cfg.Server,
		handler:     handler,
		middlewares: middleware.BuildMiddlewareChain(&cfg.CORS),
		rateLimit:   middleware.RateLimit(cache, &cfg.RateLimit),
		srv:         nil,
	}

	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	return s
}

// Routes returns the router with every route and middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	mux.Handle("/v1/answers", s.rateLimit(http.HandlerFunc(s.handler.HandleAnswer)))
	mux.HandleFunc("/v1/cache/lookup", s.handler.HandleLookup)
	mux.HandleFunc("/v1/cache/entries", s.handler.HandleEntries)
	mux.HandleFunc("/v1/cache/ttl", s.handler.HandleTTL)
	mux.HandleFunc("/v1/cache/stats", s.handler.HandleStats)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.handler.HandleHealth)

	// Apply middleware chain.
	return s.middlewares(mux)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
