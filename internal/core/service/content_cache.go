package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

// Cache keys for the public listings.
const (
	CacheKeyProfile  = "content:profile"
	CacheKeyPosts    = "content:posts"
	CacheKeySkills   = "content:skills"
	CacheKeyProjects = "content:projects"
)

// NopCache never hits. Used when no cache backend is configured.
type NopCache struct{}

func (NopCache) Load(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Store(context.Context, string, any) error        { return nil }
func (NopCache) Invalidate(context.Context, ...string) error     { return nil }

// cachedRead serves key from cache, falling back to load and populating the cache.
// Cache failures are logged and never fail the read.
func cachedRead[T any](ctx context.Context, cache ports.ContentCache, log zerolog.Logger, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	hit, err := cache.Load(ctx, key, &out)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache load failed")
	} else if hit {
		return out, nil
	}

	out, err = load(ctx)
	if err != nil {
		return out, err
	}

	if err := cache.Store(ctx, key, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache store failed")
	}
	return out, nil
}

func invalidate(ctx context.Context, cache ports.ContentCache, log zerolog.Logger, keys ...string) {
	if err := cache.Invalidate(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
