// Package cache wraps the Redis client used for rate limiting and for the
// schedule-listing cache. Every entry point is nil-safe: callers keep a nil
// *Client when no Redis address is configured and all operations degrade to
// pass-through or cache-miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"roster-backend/internal/config"
)

// Client wraps a Redis connection
type Client struct {
	rdb *redis.Client
}

// NewClient creates a Redis connection and performs a Ping health check.
// Returns (nil, nil) when no address is configured.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	logrus.Infof("Redis connected at %s", cfg.RedisAddr)
	return &Client{rdb: rdb}, nil
}

// CheckRateLimit implements a fixed-window counter keyed by caller identity.
// The first hit in a window sets the TTL; subsequent hits only increment.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if c == nil {
		return true, nil
	}

	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// GetJSON loads a cached value into target. Returns false on miss or nil client.
func (c *Client) GetJSON(ctx context.Context, key string, target interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under key with the given TTL. No-op on nil client.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
