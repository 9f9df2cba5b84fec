package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON blobs under prefixed keys with a TTL. Used for the
// top-rated ranking and geocoder lookups, both safe to serve slightly
// stale.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache { return &Cache{rdb: rdb, ttl: ttl} }

func cacheKey(name string) string { return fmt.Sprintf("cache:%s", name) }

func (c *Cache) Set(ctx context.Context, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(name), b, c.ttl).Err()
}

// Get unmarshals into out and reports whether the key was present.
func (c *Cache) Get(ctx context.Context, name string, out any) (bool, error) {
	b, err := c.rdb.Get(ctx, cacheKey(name)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Invalidate(ctx context.Context, name string) error {
	return c.rdb.Del(ctx, cacheKey(name)).Err()
}
