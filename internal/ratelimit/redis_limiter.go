package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by Redis INCR with a window
// TTL, for deployments where login attempts must be counted across
// instances. Expiry is owned by Redis; a key past its window simply no
// longer exists.
type RedisLimiter struct {
	client      redis.UniversalClient
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter with the given budget.
func NewRedisLimiter(client redis.UniversalClient, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		prefix:      "ratelimit:login:",
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records one attempt for key. A Redis failure is returned as an
// error; callers on the login path treat it as not-allowed so that a broken
// counter store cannot disable throttling.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := l.prefix + key

	count, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, fmt.Errorf("increment attempt counter: %w", err)
	}

	// First attempt of a window starts its TTL clock.
	if count == 1 {
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, fmt.Errorf("set attempt counter expiry: %w", err)
		}
	}

	return count <= int64(l.maxAttempts), nil
}
