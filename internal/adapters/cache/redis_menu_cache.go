package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

const menuCacheKey = "catalog:menu"

// RedisMenuCache caches the public menu listing as one JSON blob.
// The menu is read-heavy and changes only through admin mutations, which
// invalidate the key.
type RedisMenuCache struct {
	client *redis.Client
}

func NewRedisMenuCache(client *redis.Client) *RedisMenuCache {
	return &RedisMenuCache{client: client}
}

func (c *RedisMenuCache) Get(ctx context.Context) ([]domain.MenuItem, bool, error) {
	raw, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RedisMenuCache) Put(ctx context.Context, items []domain.MenuItem, ttl time.Duration) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return c.client.Set(ctx, menuCacheKey, raw, ttl).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, menuCacheKey).Err()
}
