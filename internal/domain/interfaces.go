package domain

import "context"

// Responder computes a fresh answer for a query the cache could not serve.
type Responder interface {
	// Respond produces the answer text for query.
	Respond(ctx context.Context, query string) (string, error)

	// Name returns the responder identifier.
	Name() string
}
