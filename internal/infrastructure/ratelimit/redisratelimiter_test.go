package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := Limits{RequestsPerMinute: 5}
	key := "turnstile:device-entrance-1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, limits)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_PerHour(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := Limits{RequestsPerHour: 3}
	key := "turnstile:device-entrance-2"

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(key, limits)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.False(t, allowed, "4th request should be denied")
}

func TestRedisRateLimiter_Allow_IndependentKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := Limits{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("turnstile:device-a", limits)
	require.NoError(t, err)
	assert.True(t, allowed)

	// A second device has its own window.
	allowed, err = limiter.Allow("turnstile:device-b", limits)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("turnstile:device-a", limits)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := Limits{RequestsPerMinute: 1}
	key := "turnstile:device-reset"

	allowed, err := limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, limits)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limits := Limits{RequestsPerMinute: 10}
	key := "turnstile:device-remaining"

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(key, limits)
		require.NoError(t, err)
	}

	count, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
