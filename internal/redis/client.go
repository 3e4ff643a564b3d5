package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sneakerhub/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client caches the read-heavy aggregates: the admin dashboard block and the
// store settings row. Writes that touch either go through Delete* so the next
// read recomputes.
type Client struct {
	rdb *redis.Client
}

const (
	dashboardStatsKey = "stats:dashboard"
	storeSettingsKey  = "settings:store"
)

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Dashboard statistics

func (c *Client) SetDashboardStats(stats *models.DashboardStats, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}

	return c.rdb.Set(ctx, dashboardStatsKey, jsonData, ttl).Err()
}

func (c *Client) GetDashboardStats() (*models.DashboardStats, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, dashboardStatsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("dashboard stats not cached")
		}
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard stats: %w", err)
	}

	return &stats, nil
}

func (c *Client) DeleteDashboardStats() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, dashboardStatsKey).Err()
}

// Store settings

func (c *Client) SetStoreSettings(settings *models.StoreSettings, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal store settings: %w", err)
	}

	return c.rdb.Set(ctx, storeSettingsKey, jsonData, ttl).Err()
}

func (c *Client) GetStoreSettings() (*models.StoreSettings, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, storeSettingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("store settings not cached")
		}
		return nil, fmt.Errorf("failed to get store settings: %w", err)
	}

	var settings models.StoreSettings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store settings: %w", err)
	}

	return &settings, nil
}

func (c *Client) DeleteStoreSettings() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, storeSettingsKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
