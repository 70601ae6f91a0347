package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/kebabmane/toDo/internal/logger"
	"github.com/redis/go-redis/v9"
)

// counterClient is the subset of the redis client used for fixed-window counters.
type counterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimitRepository counts requests per client in fixed windows stored in Redis.
type RateLimitRepository struct {
	client counterClient
	window time.Duration
}

func NewRateLimitRepository(client counterClient, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{client: client, window: window}
}

// Hit increments the counter of the client's current window and returns the new count.
// The window key expires together with the window.
func (r *RateLimitRepository) Hit(ctx context.Context, clientKey string) (int64, error) {
	windowStart := time.Now().Truncate(r.window).Unix()
	key := fmt.Sprintf("ratelimit:%s:%d", clientKey, windowStart)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Warnw("rate limit counter failed",
			"key", key,
			"error", err,
		)
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.Log.Warnw("rate limit expire failed",
				"key", key,
				"expire", r.window,
				"error", err,
			)
			return count, err
		}
	}

	logger.Log.Debugw("rate limit hit",
		"key", key,
		"count", count,
	)

	return count, nil
}
