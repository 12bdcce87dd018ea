package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const rateLimitPrefix = "bazireport:ratelimit:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	return Redis.Ping(context.Background()).Err()
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// RateCounter counts requests per key in fixed windows, backed by
// redis INCR with an expiry set on the first hit of each window.
type RateCounter struct {
	client *redis.Client
}

func NewRateCounter(client *redis.Client) *RateCounter {
	return &RateCounter{client: client}
}

func (c *RateCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := rateLimitPrefix + key

	count, err := c.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := c.client.Expire(ctx, fullKey, window).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}
