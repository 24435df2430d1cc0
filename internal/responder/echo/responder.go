// Package echo provides a deterministic responder for local runs and tests.
// It makes no external calls and answers with a fixed template.
package echo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/davidbz/semcache/internal/observability"
)

const responderName = "echo"

// Responder implements domain.Responder by echoing the query back.
type Responder struct {
	delay time.Duration
}

// NewResponder creates a new echo responder. delay simulates model latency.
func NewResponder(delay time.Duration) *Responder {
	return &Responder{delay: delay}
}

// Respond returns the echoed answer after the configured delay.
func (r *Responder) Respond(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("query cannot be empty")
	}

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	observability.FromContext(ctx).Debug("echo completed",
		observability.Int("query_size", len(query)))

	return "LLM response to: " + query, nil
}

// Name returns the responder identifier.
func (r *Responder) Name() string {
	return responderName
}
