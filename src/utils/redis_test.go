package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without REDIS_URI the client stays nil; every helper must degrade to a
// safe default instead of panicking.
func TestRedisHelpersWithoutRedis(t *testing.T) {
	require.NoError(t, BlacklistToken("some-jti", time.Hour))

	blacklisted, err := IsTokenBlacklisted("some-jti")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	RecordFailedLogin("a@b.c")
	RecordFailedLogin("a@b.c")
	assert.False(t, IsRateLimited("a@b.c"))
	assert.Equal(t, time.Duration(0), RemainingCooldown("a@b.c"))
	ClearLoginAttempts("a@b.c")
}
