package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/backoffice/server/internal/application/analytics"
	"github.com/backoffice/server/internal/infrastructure/config"
)

// RedisDashboardCache stores dashboard snapshots in Redis. Suitable for
// distributed deployments where multiple instances share the cache.
type RedisDashboardCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisDashboardCache connects to Redis and verifies the connection.
func NewRedisDashboardCache(cfg config.RedisConfig) (*RedisDashboardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisDashboardCache{client: client, keyPrefix: "analytics:"}, nil
}

// NewRedisDashboardCacheWithClient wraps an existing Redis client. Useful
// for testing or when sharing a client across components.
func NewRedisDashboardCacheWithClient(client *redis.Client, keyPrefix string) *RedisDashboardCache {
	if keyPrefix == "" {
		keyPrefix = "analytics:"
	}
	return &RedisDashboardCache{client: client, keyPrefix: keyPrefix}
}

// Get returns the cached value, or (nil, nil) when the key is absent.
func (c *RedisDashboardCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return raw, nil
}

// Set stores the value with the given TTL.
func (c *RedisDashboardCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

var _ analytics.DashboardCache = (*RedisDashboardCache)(nil)
