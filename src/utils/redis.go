package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-TechAudit/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken stores a token id until its natural expiry. No-op without
// Redis (development mode).
func BlacklistToken(jti string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether the token id was revoked. Without
// Redis every token passes.
func IsTokenBlacklisted(jti string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// RecordFailedLogin counts a failed attempt against the email, opening the
// cooldown window on the first failure.
func RecordFailedLogin(email string) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	attempts, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return
	}
	if attempts == 1 {
		client.Expire(Ctx, key, loginCooldown)
	}
}

// ClearLoginAttempts resets the counter after a successful login.
func ClearLoginAttempts(email string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("login_attempts:%s", email))
}

// IsRateLimited reports whether the email has exhausted its login attempts.
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	attempts, err := client.Get(Ctx, fmt.Sprintf("login_attempts:%s", email)).Int64()
	if err != nil {
		return false
	}
	return attempts >= maxLoginAttempts
}

// RemainingCooldown returns how long until the email may try again.
func RemainingCooldown(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	ttl, err := client.TTL(Ctx, fmt.Sprintf("login_attempts:%s", email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}
