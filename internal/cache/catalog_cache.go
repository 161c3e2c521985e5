package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache stores rendered product-detail payloads keyed by product slug.
// The TTL bounds stock staleness: a cached payload may lag the store by at
// most one TTL, which the storefront accepts (stock is advisory until the
// WhatsApp conversation happens).
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a CatalogCache with the given payload TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

func (c *CatalogCache) key(slug string) string {
	return fmt.Sprintf("catalog:product:%s", slug)
}

// SetDetail caches a product-detail payload under its slug.
func (c *CatalogCache) SetDetail(ctx context.Context, slug string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog payload: %w", err)
	}
	return c.redis.Set(ctx, c.key(slug), string(data), c.ttl)
}

// GetDetail retrieves a cached payload into dest. Returns redis.Nil when the
// slug is not cached.
func (c *CatalogCache) GetDetail(ctx context.Context, slug string, dest interface{}) error {
	data, err := c.redis.Get(ctx, c.key(slug))
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal catalog payload: %w", err)
	}
	return nil
}

// Invalidate drops the cached payload for a slug after a staff edit.
func (c *CatalogCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = c.key(s)
	}
	return c.redis.Delete(ctx, keys...)
}

// IsMiss reports whether err is a cache miss rather than a real failure.
func IsMiss(err error) bool {
	return err == redis.Nil
}
