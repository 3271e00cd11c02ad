package ratelimit

// Package ratelimit bounds admin login attempts per client key within a
// fixed time window.

import (
	"context"
	"sync"
	"time"
)

// Limiter counts an attempt for key and reports whether it is still within
// budget. Implementations must be safe for concurrent use; calls for the
// same key are linearizable.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// sweepEvery controls how often the memory limiter scans for expired
// counters. Eviction is a memory bound, not a correctness requirement: an
// expired counter is treated as absent whether or not it has been removed.
const sweepEvery = 256

// counter tracks attempts for one key within the current window.
type counter struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is a process-local fixed-window limiter. Counters live in a
// mutex-guarded map; in a multi-instance deployment each instance counts
// independently and the effective budget is per instance.
type MemoryLimiter struct {
	mu       sync.Mutex
	counters map[string]*counter

	maxAttempts int
	window      time.Duration
	sinceSweep  int

	now func() time.Time // overridable for tests
}

// NewMemoryLimiter creates a limiter allowing maxAttempts per key within
// each fixed window.
func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		counters:    make(map[string]*counter),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Allow records one attempt for key. It returns false once the
// post-increment count for the current window exceeds the configured
// maximum. A counter whose window has elapsed is reset, with this call
// counted as the first of the new window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	l.sinceSweep++
	if l.sinceSweep >= sweepEvery {
		l.sinceSweep = 0
		l.evictExpired(now)
	}

	c, ok := l.counters[key]
	if !ok || now.Sub(c.windowStart) >= l.window {
		l.counters[key] = &counter{count: 1, windowStart: now}
		return 1 <= l.maxAttempts, nil
	}

	c.count++
	return c.count <= l.maxAttempts, nil
}

// evictExpired removes counters whose window elapsed long ago. Caller holds
// the mutex.
func (l *MemoryLimiter) evictExpired(now time.Time) {
	for key, c := range l.counters {
		if now.Sub(c.windowStart) >= 2*l.window {
			delete(l.counters, key)
		}
	}
}

// ActiveKeys reports the number of tracked counters, including expired ones
// not yet evicted. Exposed for observability and tests.
func (l *MemoryLimiter) ActiveKeys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counters)
}
