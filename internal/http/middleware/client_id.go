package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/davidbz/semcache/internal/observability"
)

// ClientIDHeader identifies the caller for rate limiting and logs.
const ClientIDHeader = "X-Client-Id"

// ClientID resolves the caller identity from the X-Client-Id header, falling
// back to the remote host, and stores it in the request context.
func ClientID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := observability.WithClientID(r.Context(), ResolveClientID(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveClientID returns the caller identity for r.
func ResolveClientID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(ClientIDHeader)); id != "" {
		return id
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
