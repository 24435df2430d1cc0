package memory

import (
	"context"
	"errors"
	"sync"
	"time"
)

// windowSweepThreshold is the number of tracked windows above which expired
// windows are dropped on increment.
const windowSweepThreshold = 1024

type window struct {
	count   int64
	resetAt time.Time
}

// RateCounter is an in-process fixed-window implementation of domain.RateCounter.
type RateCounter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewRateCounter creates an empty counter.
func NewRateCounter(opts ...Option) *RateCounter {
	cfg := newConfig(opts)
	return &RateCounter{
		windows: make(map[string]*window),
		now:     cfg.now,
	}
}

// Increment adds one to key's counter. The window starts at the first
// increment and is not extended by later ones.
func (c *RateCounter) Increment(ctx context.Context, key string, length time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, errors.New("window must be positive")
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.windows) > windowSweepThreshold {
		for k, w := range c.windows {
			if !now.Before(w.resetAt) {
				delete(c.windows, k)
			}
		}
	}

	w, ok := c.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(length)}
		c.windows[key] = w
	}
	w.count++

	return w.count, nil
}
