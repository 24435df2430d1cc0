package memory

import "time"

type config struct {
	now func() time.Time
}

// Option configures the in-memory backends.
type Option func(*config)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func newConfig(opts []Option) config {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
