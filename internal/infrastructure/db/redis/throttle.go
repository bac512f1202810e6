package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleWindow = 15 * time.Minute

// LoginThrottle counts failed login attempts per identifier in Redis and
// blocks further attempts once the limit is reached inside the window.
// Key format: login_fail:<identifier>
type LoginThrottle struct {
	client *redis.Client
	limit  int64
}

// NewLoginThrottle wraps the given Redis client. limit <= 0 falls back to 10.
func NewLoginThrottle(client *redis.Client, limit int) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	return &LoginThrottle{client: client, limit: int64(limit)}
}

// Blocked reports whether the identifier has exhausted its attempts.
func (t *LoginThrottle) Blocked(ctx context.Context, identifier string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(identifier)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.limit, nil
}

// RecordFailure increments the failure counter, starting the expiry window
// on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	key := t.key(identifier)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, throttleWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, identifier string) error {
	return t.client.Del(ctx, t.key(identifier)).Err()
}

func (t *LoginThrottle) key(identifier string) string {
	return "login_fail:" + identifier
}
