package climate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

const (
	profileKeyPrefix = "care:climate:" // care:climate:{county}
	profileTTL       = 24 * time.Hour
)

// Cache is a read-through redis cache for climate profiles. Profiles change
// rarely; a day of staleness is acceptable.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) key(county string) string {
	return profileKeyPrefix + strings.ToLower(strings.TrimSpace(county))
}

// Get returns the cached profile, or nil on a miss.
func (c *Cache) Get(ctx context.Context, county string) (*domain.ClimateProfile, error) {
	data, err := c.client.Get(ctx, c.key(county)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("climate cache get: %w", err)
	}

	var p domain.ClimateProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("climate cache decode: %w", err)
	}
	return &p, nil
}

func (c *Cache) Set(ctx context.Context, county string, p domain.ClimateProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("climate cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(county), data, profileTTL).Err(); err != nil {
		return fmt.Errorf("climate cache set: %w", err)
	}
	return nil
}
