package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter keyed per caller, backed by
// INCR + EXPIRE. Counts reset when the window key expires.
type RateLimiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, max int64, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, max: max, window: window}
}

func limitKey(scope, caller string) string { return fmt.Sprintf("ratelimit:%s:%s", scope, caller) }

// Allow counts one attempt and reports whether the caller is still under
// the window limit. Redis failures fail open: a broken cache must not
// lock everyone out.
func (l *RateLimiter) Allow(ctx context.Context, scope, caller string) bool {
	key := limitKey(scope, caller)
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		_ = l.rdb.Expire(ctx, key, l.window).Err()
	}
	return n <= l.max
}
