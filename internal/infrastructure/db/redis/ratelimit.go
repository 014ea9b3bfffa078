package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter shared by all instances.
// Key format: ratelimit:<client_key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows up to limit requests per client key in each window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow counts one request for clientKey and reports whether it is within
// the limit. The counter expires together with its window.
func (l *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := l.key(clientKey, l.now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *RateLimiter) key(clientKey string, at time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientKey, at.Truncate(l.window).Unix())
}
