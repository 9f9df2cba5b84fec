package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist revokes issued tokens by jti until they expire on their
// own. Logout writes here; the auth middleware checks it.
type TokenDenylist struct {
	rdb *redis.Client
}

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist { return &TokenDenylist{rdb: rdb} }

func denyKey(jti string) string { return fmt.Sprintf("auth:deny:%s", jti) }

func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denyKey(jti), "1", ttl).Err()
}

func (d *TokenDenylist) Revoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, denyKey(jti)).Result()
	if err != nil && err != redis.Nil {
		return false, err
	}
	return n > 0, nil
}
