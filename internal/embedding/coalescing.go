// Package embedding holds generator decorators shared by all embedding backends.
package embedding

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/semcache/internal/domain"
)

// DefaultTimeout bounds a shared embedding call.
const DefaultTimeout = 5 * time.Second

// Coalescing shares one in-flight embedding call between concurrent callers
// asking for the same text.
type Coalescing struct {
	next    domain.EmbeddingGenerator
	group   singleflight.Group
	timeout time.Duration
}

// CoalescingOption configures a Coalescing generator.
type CoalescingOption func(*Coalescing)

// WithTimeout bounds each shared call. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) CoalescingOption {
	return func(c *Coalescing) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewCoalescing wraps next.
func NewCoalescing(next domain.EmbeddingGenerator, opts ...CoalescingOption) *Coalescing {
	c := &Coalescing{next: next, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate creates a vector embedding from text. The shared call runs detached
// from every caller's cancellation; each caller stops waiting when its own
// context is done.
func (c *Coalescing) Generate(ctx context.Context, text string) ([]float64, error) {
	flight := c.group.DoChan(text, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.next.Generate(callCtx, text)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-flight:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	embedding, ok := res.Val.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected embedding type %T", domain.ErrEmbeddingUnavailable, res.Val)
	}

	// Callers own their slice.
	return slices.Clone(embedding), nil
}

// Name returns the wrapped generator identifier.
func (c *Coalescing) Name() string {
	return c.next.Name()
}

// Dimension returns the wrapped generator dimension.
func (c *Coalescing) Dimension() int {
	return c.next.Dimension()
}
