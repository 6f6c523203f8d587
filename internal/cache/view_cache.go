// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache memoizes computed list views. A ViewCache belongs to one
// loaded catalog; build a new one when the catalog changes.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/kegmil/catalog-cli/internal/dataview"
)

const (
	DefaultCapacity = 256
	DefaultTTL      = 5 * time.Minute
)

// ViewCache maps ViewState keys to computed views
type ViewCache struct {
	cache *ttlcache.Cache[string, dataview.View]
	// Note: ttlcache is thread-safe, no additional mutex needed
}

// NewViewCache starts the expiry loop. Call Close when done.
// Non-positive arguments fall back to the defaults.
func NewViewCache(capacity int, ttl time.Duration) *ViewCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	cache := ttlcache.New[string, dataview.View](
		ttlcache.WithCapacity[string, dataview.View](uint64(capacity)),
		ttlcache.WithTTL[string, dataview.View](ttl),
		// reads must not extend the lifetime of a memoized view
		ttlcache.WithDisableTouchOnHit[string, dataview.View](),
	)

	go cache.Start()

	return &ViewCache{
		cache: cache,
	}
}

// Get returns the view cached for state
func (c *ViewCache) Get(state dataview.ViewState) (dataview.View, bool) {
	item := c.cache.Get(state.Key())
	if item == nil {
		return dataview.View{}, false
	}
	return item.Value(), true
}

// GetOrCompute returns the cached view for state, computing and storing it
// on a miss. The bool reports whether the view came from the cache.
func (c *ViewCache) GetOrCompute(state dataview.ViewState, compute func(dataview.ViewState) dataview.View) (dataview.View, bool) {
	if view, ok := c.Get(state); ok {
		return view, true
	}

	view := compute(state)
	c.cache.Set(state.Key(), view, ttlcache.DefaultTTL)
	return view, false
}

// Len is the number of cached views
func (c *ViewCache) Len() int {
	return c.cache.Len()
}

// Stats exposes hit and miss counters for debug logging
func (c *ViewCache) Stats() ttlcache.Metrics {
	return c.cache.Metrics()
}

// Close stops the expiry goroutine
func (c *ViewCache) Close() {
	c.cache.Stop()
}
