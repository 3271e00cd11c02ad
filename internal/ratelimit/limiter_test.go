package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_AllowsUpToMax(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := range 3 {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "attempt past the budget should be denied")
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// A different client still has its full budget.
	ok, err = l.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_WindowElapseResets(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	// Exhaust the window.
	for range 3 {
		_, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
	}
	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, ok)

	// Exactly one window later the counter is logically expired: this call
	// counts as the first of a fresh window.
	now = now.Add(time.Minute)
	ok, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_ExpiredCounterTreatedAsAbsentWithoutEviction(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.Equal(t, 1, l.ActiveKeys())

	// Well past the window; no sweep has run yet, but the stale counter
	// must not affect the outcome.
	now = now.Add(10 * time.Minute)
	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_EvictsStaleKeys(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(10, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := l.Allow(ctx, "stale-key")
	require.NoError(t, err)

	// Push past the stale threshold, then force a sweep by making enough
	// calls on another key.
	now = now.Add(3 * time.Minute)
	for range sweepEvery {
		_, err = l.Allow(ctx, "fresh-key")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, l.ActiveKeys(), "only the fresh key should remain")
}

func TestMemoryLimiter_ConcurrentIncrementsLoseNoUpdates(t *testing.T) {
	const n = 50
	l := NewMemoryLimiter(n, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(ctx, "burst")
			require.NoError(t, err)
			results[i] = ok
		}()
	}
	wg.Wait()

	// All n fit the budget exactly; the very next call must not.
	for i, ok := range results {
		assert.True(t, ok, "concurrent attempt %d should be allowed", i)
	}
	ok, err := l.Allow(ctx, "burst")
	require.NoError(t, err)
	assert.False(t, ok, "attempt n+1 proves no increments were lost")
}
