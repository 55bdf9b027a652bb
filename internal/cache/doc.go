// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package cache provides the two caches of the recommendation service.
//
// # LRU
//
// LRU is a generic, thread-safe least recently used cache with lazy TTL
// expiration. The engine uses an LRU[[]recommend.Neighbor] as its NeighborCache:
// keys carry the snapshot version, and the engine clears the cache on every swap.
//
//	neighbors := cache.NewNeighborCache(cache.NeighborCacheConfig{Capacity: 50000, TTL: time.Hour})
//	engine.SetNeighborCache(neighbors)
//
// # ResultStore
//
// ResultStore keeps JSON-encoded API responses in BadgerDB with a per-entry TTL.
// HybridKey folds the snapshot version and every request parameter into the key,
// so a request never hits an entry computed from another snapshot.
//
//	store, err := cache.OpenResultStore(cache.ResultStoreConfig{Path: "/data/cache", TTL: 10 * time.Minute})
//	key := cache.HybridKey(snapshot.Version, req)
//	var result recommend.HybridResult
//	if ok, _ := store.Get(key, &result); !ok {
//	    // compute and store.Set(key, result)
//	}
//
// An empty Path opens BadgerDB in memory, which tests and single-process
// deployments without a writable volume use.
//
// LRU.CleanupExpired and ResultStore.RunGC are driven on a ticker by the
// cache maintenance service in internal/supervisor/services.
//
// # Thread Safety
//
// Both caches are safe for concurrent use.
package cache
