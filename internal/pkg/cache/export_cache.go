package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ExportCache stores rendered decks (base64) keyed by presentation version.
type ExportCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ExportKey identifies one stored version of a presentation. A save bumps updatedAt,
// so stale renders are never addressed again and simply expire.
func ExportKey(presentationId string, updatedAt time.Time) string {
	return fmt.Sprintf("presentation:export:%s:%d", presentationId, updatedAt.UnixNano())
}

type RedisExportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisExportCache(rdb *redis.Client, ttl time.Duration) *RedisExportCache {
	return &RedisExportCache{rdb: rdb, ttl: ttl}
}

func (c *RedisExportCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (c *RedisExportCache) Set(ctx context.Context, key, value string) error {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisExportCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// MemoryExportCache is the single-instance fallback when no redis is configured.
type MemoryExportCache struct {
	cache *gocache.Cache
}

func NewMemoryExportCache(ttl time.Duration) *MemoryExportCache {
	return &MemoryExportCache{cache: gocache.New(ttl, 10*time.Minute)}
}

func (c *MemoryExportCache) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := c.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (c *MemoryExportCache) Set(_ context.Context, key, value string) error {
	c.cache.Set(key, value, gocache.DefaultExpiration)
	return nil
}

func (c *MemoryExportCache) Delete(_ context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}
