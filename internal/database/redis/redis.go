package redis

import (
	"context"
	"fmt"
	"time"

	"claims-service/internal/config"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client backing the dashboard stats cache.
type Client struct {
	client *redis.Client
}

// NewClient connects with the service redis config and verifies the server
// answers a ping before returning.
func NewClient(cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return &Client{client: client}, nil
}

// GetClient returns the underlying go-redis client.
func (c *Client) GetClient() *redis.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}
