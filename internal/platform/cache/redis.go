package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis wraps the shared redis client. The worker uses it to keep the most
// recent view count per content item so repeated sync cycles can skip
// unchanged items.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

func Connect(redisURL string, logger *slog.Logger) (*Redis, error) {
	if redisURL == "" {
		return nil, errors.New("redis url is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis connected",
		"event", "redis_connected",
		"module", "internal/platform/cache",
		"layer", "platform",
	)
	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) GetViewCount(ctx context.Context, contentItemID string) (int64, bool, error) {
	raw, err := r.client.Get(ctx, viewCountKey(contentItemID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (r *Redis) PutViewCount(ctx context.Context, contentItemID string, count int64, ttl time.Duration) error {
	return r.client.Set(ctx, viewCountKey(contentItemID), strconv.FormatInt(count, 10), ttl).Err()
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func viewCountKey(contentItemID string) string {
	return "creatorpay:views:" + contentItemID
}
