package service

import (
	"context"

	"medtrack/internal/domain/entity"
)

// RouteCache is a single-slot route cache. It holds only the most recent
// entry; TTL checks belong to the caller.
type RouteCache interface {
	// Get returns the slot when it holds the given key
	Get(ctx context.Context, key string) (*entity.RouteCacheEntry, bool)

	// Put replaces the slot
	Put(ctx context.Context, entry entity.RouteCacheEntry)
}

// RouteCacheFactory creates a cache slot owned by one consumer, identified by scope
type RouteCacheFactory func(scope string) RouteCache
