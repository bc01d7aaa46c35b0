package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/redis/go-redis/v9"
)

// ParteCache stores assembled parte aggregates in Redis. It lives outside the
// transaction path; lookups and writes are best effort.
type ParteCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewParteCache(client *redis.Client, ttl time.Duration) *ParteCache {
	return &ParteCache{redisClient: client, ttl: ttl}
}

func parteCacheKey(id int64) string {
	return fmt.Sprintf("parte:%d", id)
}

// GetParte returns (nil, nil) on a cache miss.
func (c *ParteCache) GetParte(ctx context.Context, id int64) (*models.ParteAggregate, error) {
	val, err := c.redisClient.Get(ctx, parteCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parte from cache: %w", err)
	}

	agg := &models.ParteAggregate{}
	if err := json.Unmarshal(val, agg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached parte: %w", err)
	}
	return agg, nil
}

func (c *ParteCache) SetParte(ctx context.Context, agg *models.ParteAggregate) error {
	val, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("failed to marshal parte for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, parteCacheKey(agg.Parte.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set parte in cache: %w", err)
	}
	return nil
}

func (c *ParteCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.redisClient.Del(ctx, parteCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate parte cache: %w", err)
	}
	return nil
}
