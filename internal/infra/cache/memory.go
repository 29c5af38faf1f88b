// Package cache provides single-slot route caches.
package cache

import (
	"context"
	"sync"

	"medtrack/internal/domain/entity"
)

// MemoryRouteCache keeps the most recent route entry in process memory
type MemoryRouteCache struct {
	mu    sync.Mutex
	entry *entity.RouteCacheEntry
}

// NewMemoryRouteCache creates an empty in-memory slot
func NewMemoryRouteCache() *MemoryRouteCache {
	return &MemoryRouteCache{}
}

func (c *MemoryRouteCache) Get(_ context.Context, key string) (*entity.RouteCacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil || c.entry.Key != key {
		return nil, false
	}
	entry := *c.entry

	return &entry, true
}

func (c *MemoryRouteCache) Put(_ context.Context, entry entity.RouteCacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &entry
}
