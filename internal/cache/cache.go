// Package cache provides Redis-backed caching for the application
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"synthex-backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a key is absent from the cache
var ErrNotFound = errors.New("cache: key not found")

// Cache is a thin JSON cache on top of Redis
type Cache struct {
	client *redis.Client
	prefix string
}

// NewClient connects to Redis using the application config. It returns
// nil when no Redis address is configured, which disables caching and
// rate limiting.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

// New wraps a Redis client as a JSON cache. A nil client yields a nil
// cache, and all Cache methods are nil-safe no-ops.
func New(client *redis.Client, prefix string) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, prefix: prefix}
}

// Get loads a cached value into dest
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil {
		return ErrNotFound
	}

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value as JSON with a TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete removes a key
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, c.prefix+key).Err()
}
