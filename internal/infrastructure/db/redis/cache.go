package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

const dashboardTTL = time.Minute

// DashboardCache stores rendered dashboard payloads in Redis, JSON-encoded.
// Entries expire after dashboardTTL so fixture data still refreshes.
type DashboardCache struct {
	client *redis.Client
}

// NewDashboardCache creates a DashboardCache wrapping the given Redis client.
func NewDashboardCache(client *redis.Client) *DashboardCache {
	return &DashboardCache{client: client}
}

// Get returns the cached payload for key, reporting whether it was present.
func (c *DashboardCache) Get(ctx context.Context, key string) (*domain.DashboardData, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var data domain.DashboardData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &data, true, nil
}

// Set stores the payload under key with the cache TTL.
func (c *DashboardCache) Set(ctx context.Context, key string, data *domain.DashboardData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, dashboardTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
