package middleware

import (
	"net/http"
	"time"

	"github.com/davidbz/semcache/internal/observability"
)

// Trace tags every request with trace, span and request IDs and logs one line
// when the request starts and one when it completes, including the cache
// outcome the handler reported.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			traceID := observability.GenerateTraceID()
			ctx = observability.WithTraceID(ctx, traceID)
			ctx = observability.WithSpanID(ctx, observability.GenerateSpanID())

			requestID := observability.GenerateRequestID()
			ctx = observability.WithRequestID(ctx, requestID)

			w.Header().Set("X-Trace-Id", traceID)
			w.Header().Set("X-Request-Id", requestID)

			logger := observability.FromContext(ctx)
			logger.Info("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("client_id", ResolveClientID(r)),
			)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.Info("request completed",
				observability.Int("status", recorder.status),
				observability.Duration("duration", time.Since(start)),
				observability.String("cache", w.Header().Get("X-Semcache")),
				observability.String("cache_key", w.Header().Get("X-Semcache-Key")),
			)
		})
	}
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
