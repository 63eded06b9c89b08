// Package cache is a small Redis wrapper used to absorb read traffic on
// the public podcast feed. The feed is served from an unindexed scan, so
// a short TTL keeps the database out of the hot path without letting new
// episodes stay invisible for long.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cl-victor1/divinetalk/internal/models"
)

const feedKey = "cache:public_feed"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// GetFeed returns the cached public feed, or (nil, false, nil) on a miss.
func (c *Cache) GetFeed(ctx context.Context) ([]models.PodcastSummary, bool, error) {
	data, err := c.client.Get(ctx, feedKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read feed cache: %w", err)
	}

	var feed []models.PodcastSummary
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached feed: %w", err)
	}

	return feed, true, nil
}

// SetFeed stores the public feed with the configured TTL.
func (c *Cache) SetFeed(ctx context.Context, feed []models.PodcastSummary) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to marshal feed: %w", err)
	}

	return c.client.Set(ctx, feedKey, data, c.ttl).Err()
}
