package cache

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates a Redis client and pings it to validate the
// connection.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
