package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLeadLimit  = 5
	defaultLeadWindow = time.Hour
)

// LeadLimiter caps contact form submissions per client with a fixed window.
// Key format: ratelimit:lead:<client>
type LeadLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

// NewLeadLimiter allows limit submissions per client per window. Non-positive
// values fall back to the defaults.
func NewLeadLimiter(client redis.Cmdable, limit int, window time.Duration) *LeadLimiter {
	if limit <= 0 {
		limit = defaultLeadLimit
	}
	if window <= 0 {
		window = defaultLeadWindow
	}
	return &LeadLimiter{client: client, limit: int64(limit), window: window}
}

// Allow counts one submission for key and reports whether it is within the limit.
func (l *LeadLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	k := l.key(key)
	var incr *redis.IntCmd
	// MULTI/EXEC: the counter never exists without a TTL. NX keeps the first
	// hit's expiry, so later hits do not stretch the window.
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("lead limiter: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

func (l *LeadLimiter) key(client string) string {
	return fmt.Sprintf("ratelimit:lead:%s", client)
}
