package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const ImageIndexKey = "newsillustrator:image_index"

func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// IndexCounter is an atomic image index shared by every instance writing to the same
// output directory.
type IndexCounter struct {
	client *redis.Client
	key    string
}

func NewIndexCounter(client *redis.Client, key string) *IndexCounter {
	if key == "" {
		key = ImageIndexKey
	}
	return &IndexCounter{client: client, key: key}
}

func (c *IndexCounter) Next(ctx context.Context) (int64, error) {
	return c.client.Incr(ctx, c.key).Result()
}
