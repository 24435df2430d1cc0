package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementScript increments the counter and sets the window expiry only on
// the first increment, so sustained traffic cannot keep the window open.
var incrementScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RateCounter implements domain.RateCounter with an atomic Lua script.
type RateCounter struct {
	client *redis.Client
	keys   Keyspace
}

// NewRateCounter creates a new Redis fixed-window counter.
func NewRateCounter(client *redis.Client, keys Keyspace) *RateCounter {
	return &RateCounter{
		client: client,
		keys:   keys,
	}
}

// Increment adds one to the counter for key and returns the new value.
func (c *RateCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}

	count, err := incrementScript.Run(ctx, c.client, []string{c.keys.Rate(key)}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, classify(err)
	}
	return count, nil
}
