package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Throttle deduplicates repeated work via SetNX: the first caller within
// the TTL wins, later ones are told to skip.
type Throttle struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewThrottle(rdb *redis.Client, ttl time.Duration) *Throttle {
	return &Throttle{rdb: rdb, ttl: ttl}
}

func throttleKey(name string) string { return fmt.Sprintf("throttle:%s", name) }

func (t *Throttle) Once(ctx context.Context, name string) bool {
	ok, err := t.rdb.SetNX(ctx, throttleKey(name), "1", t.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}
