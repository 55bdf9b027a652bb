// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package cache

import (
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
)

// NeighborCacheConfig sizes the in-process neighbour cache.
type NeighborCacheConfig struct {
	Capacity int
	TTL      time.Duration
}

// ResultStoreConfig configures the persistent response cache.
// An empty Path keeps the store in memory.
type ResultStoreConfig struct {
	Path string
	TTL  time.Duration
}

// Stats reports cache performance counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// NewNeighborCache creates an LRU sized for neighbour search results.
func NewNeighborCache(cfg NeighborCacheConfig) *LRU[[]recommend.Neighbor] {
	return NewLRU[[]recommend.Neighbor](cfg.Capacity, cfg.TTL)
}

// Verify interface implementations at compile time
var _ recommend.NeighborCache = (*LRU[[]recommend.Neighbor])(nil)
