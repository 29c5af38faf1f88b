package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"medtrack/internal/domain/entity"
	"medtrack/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache stores the slot under one Redis key so it survives
// across service instances for the lifetime of the TTL
type RedisRouteCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisRouteCache creates a slot stored at slotKey. Entries expire after ttl.
func NewRedisRouteCache(client redis.Cmdable, slotKey string, ttl time.Duration, logger *slog.Logger) *RedisRouteCache {
	return &RedisRouteCache{
		client: client,
		key:    slotKey,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (*entity.RouteCacheEntry, bool) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("route cache read failed", slog.String("slot", c.key), slog.Any("error", err))
		}

		return nil, false
	}

	var entry entity.RouteCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("route cache entry corrupt", slog.String("slot", c.key), slog.Any("error", err))

		return nil, false
	}
	if entry.Key != key || entry.Route == nil {
		return nil, false
	}

	return &entry, true
}

func (c *RedisRouteCache) Put(ctx context.Context, entry entity.RouteCacheEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("route cache encode failed", slog.String("slot", c.key), slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("route cache write failed", slog.String("slot", c.key), slog.Any("error", err))
	}
}
