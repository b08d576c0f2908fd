// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = time.Hour
)

// PageCache stores rendered public page HTML keyed by page slug. Cache
// failures are logged and treated as misses; they never fail a request.
type PageCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

// NewPageCache creates a page cache backed by the given client. A zero ttl
// selects DefaultPageTTL.
func NewPageCache(client redis.Cmdable, ttl time.Duration, log *zap.Logger) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl, log: log}
}

// Key returns the Valkey key for a page slug.
func Key(slug string) string {
	return pageKeyPrefix + slug
}

// Get returns the cached HTML for a slug.
func (pc *PageCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, Key(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		pc.log.Warn("page cache get error", zap.String("slug", slug), zap.Error(err))
		return nil, false
	}
	pc.log.Debug("page cache hit", zap.String("slug", slug))
	return val, true
}

// Set stores rendered HTML for a slug with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, slug string, html []byte) {
	if err := pc.client.Set(ctx, Key(slug), html, pc.ttl).Err(); err != nil {
		pc.log.Warn("page cache set error", zap.String("slug", slug), zap.Error(err))
	}
}

// Invalidate removes the given slugs from the cache.
func (pc *PageCache) Invalidate(ctx context.Context, slugs ...string) {
	if len(slugs) == 0 {
		return
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = Key(s)
	}
	if err := pc.client.Del(ctx, keys...).Err(); err != nil {
		pc.log.Warn("page cache invalidate error", zap.Strings("slugs", slugs), zap.Error(err))
		return
	}
	pc.log.Debug("page cache invalidated", zap.Strings("slugs", slugs))
}

// InvalidateAll removes every cached page. Site-wide settings appear on
// every page, so a settings change clears the lot.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			pc.log.Warn("page cache scan error", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				pc.log.Warn("page cache bulk delete error", zap.Error(err))
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		pc.log.Info("page cache cleared", zap.Int("deleted", deleted))
	}
}
