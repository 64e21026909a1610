package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ContentCache stores JSON-encoded read responses under plain string keys.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	// hit is called with true on a hit and false on a miss. Optional.
	hit func(key string, hit bool)
}

// NewContentCache wraps client. A non-positive ttl selects defaultCacheTTL.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ContentCache{client: client, ttl: ttl}
}

// OnLookup registers a callback invoked after every Load that reached Redis.
func (c *ContentCache) OnLookup(fn func(key string, hit bool)) *ContentCache {
	c.hit = fn
	return c
}

func (c *ContentCache) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.report(key, false)
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// Treat an undecodable entry as a miss; the next Store overwrites it.
		c.report(key, false)
		return false, nil
	}
	c.report(key, true)
	return true, nil
}

func (c *ContentCache) Store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *ContentCache) report(key string, hit bool) {
	if c.hit != nil {
		c.hit(key, hit)
	}
}
