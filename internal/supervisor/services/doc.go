// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package services provides suture.Service wrappers for animerec components.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with graceful shutdown.

RefreshService reloads the recommendation snapshot on a ticker and on
demand. Manual triggers are throttled with golang.org/x/time/rate and
coalesced while one is pending. Each run optionally re-prepares the
dataset, loads a new snapshot and purges the badger response cache:

	refresh := services.NewRefreshService(engine, services.RefreshServiceConfig{
		Interval:           cfg.Refresh.Interval,
		MinTriggerInterval: cfg.Refresh.MinTriggerInterval,
		Timeout:            cfg.Recommend.LoadTimeout,
	}, logger)
	refresh.SetResultPurger(results)
	tree.AddDataService(refresh)

CacheMaintenanceService sweeps expired neighbour cache entries and runs
badger value log GC on the response cache.
*/
package services
