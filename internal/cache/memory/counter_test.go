package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/semcache/internal/cache/memory"
)

func TestRateCounter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	counter := memory.NewRateCounter(memory.WithClock(clock.Now))

	for i := int64(1); i <= 6; i++ {
		count, err := counter.Increment(ctx, "client", time.Minute)
		require.NoError(t, err)
		require.Equal(t, i, count)
		clock.Advance(5 * time.Second)
	}

	// Later increments must not push the window out.
	clock.Advance(30 * time.Second)

	count, err := counter.Increment(ctx, "client", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestRateCounter_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	counter := memory.NewRateCounter()

	_, err := counter.Increment(ctx, "a", time.Minute)
	require.NoError(t, err)

	count, err := counter.Increment(ctx, "b", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestRateCounter_Concurrent(t *testing.T) {
	ctx := context.Background()
	counter := memory.NewRateCounter()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = counter.Increment(ctx, "client", time.Minute)
		}()
	}
	wg.Wait()

	count, err := counter.Increment(ctx, "client", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(51), count)
}

func TestRateCounter_RejectsNonPositiveWindow(t *testing.T) {
	_, err := memory.NewRateCounter().Increment(context.Background(), "client", 0)
	require.Error(t, err)
}
