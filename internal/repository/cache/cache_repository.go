package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/traffic-analysis-microservice/internal/domain/repository"
)

type cacheRepository struct {
	redis *Redis
}

// NewCacheRepository creates the redis-backed analysis result cache.
func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{redis: r}
}

// Get returns (nil, nil) on a cache miss so callers can fall through to a
// fresh computation without error branching.
func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.redis.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return data, nil
}

func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redis.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.redis.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
