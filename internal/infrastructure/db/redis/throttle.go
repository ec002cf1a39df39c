package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts login attempts per source key in Redis.
// Key format: throttle:login:<key>, expiring after the configured window.
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle allowing limit attempts per
// window for each key.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, limit: int64(limit), window: window}
}

// Allow records one attempt for key and reports whether it is within budget.
// The counter's TTL is set on first increment so the window slides per key.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	k := t.key(key)

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, k, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.limit, nil
}

func (t *LoginThrottle) key(key string) string {
	return "throttle:login:" + key
}
