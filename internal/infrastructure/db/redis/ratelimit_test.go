package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestLeadLimiter_FixedWindow(t *testing.T) {
	mr, client := newTestClient(t)
	limiter := NewLeadLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, ok, "submission %d should pass", i+1)
	}

	ok, err := limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok, "third submission in the window should be rejected")

	ok, err = limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, ok, "other clients have their own window")

	assert.Equal(t, time.Minute, mr.TTL("ratelimit:lead:203.0.113.7"))

	mr.FastForward(time.Minute + time.Second)

	ok, err = limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok, "window should reset after expiry")
}

func TestLeadLimiter_CounterAlwaysExpires(t *testing.T) {
	mr, client := newTestClient(t)
	limiter := NewLeadLimiter(client, 2, time.Minute)
	ctx := context.Background()
	key := "ratelimit:lead:203.0.113.9"

	// A counter left over without a TTL must not lock the client out forever.
	require.NoError(t, mr.Set(key, "7"))
	require.Equal(t, time.Duration(0), mr.TTL(key))

	ok, err := limiter.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(40 * time.Second)
	_, err = limiter.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, mr.TTL(key), "later hits must not extend the window")

	mr.FastForward(21 * time.Second)
	ok, err = limiter.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestLeadLimiter_Defaults(t *testing.T) {
	_, client := newTestClient(t)
	limiter := NewLeadLimiter(client, 0, 0)

	assert.Equal(t, int64(defaultLeadLimit), limiter.limit)
	assert.Equal(t, defaultLeadWindow, limiter.window)
}

func TestLeadLimiter_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	limiter := NewLeadLimiter(client, 2, time.Minute)
	mr.Close()

	_, err = limiter.Allow(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}

func TestPinger(t *testing.T) {
	_, client := newTestClient(t)
	assert.NoError(t, Pinger{Client: client}.Ping(context.Background()))
}

func TestConnect(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	mr.RequireAuth("s3cret")
	ctx := context.Background()

	_, err = Connect(ctx, Config{Addr: mr.Addr(), Password: "wrong"})
	assert.Error(t, err)

	client, err := Connect(ctx, Config{Addr: mr.Addr(), Password: "s3cret"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.NoError(t, Pinger{Client: client}.Ping(ctx))

	_, err = Connect(ctx, Config{})
	assert.Error(t, err)
}
