// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend implements the hybrid anime recommender.
//
// # Architecture
//
// Two pre-trained embedding spaces drive every recommendation:
//
//   - User space: users with similar taste sit close together (collaborative signal)
//   - Item space: anime with similar content sit close together (content signal)
//
// A request for user U runs through four stages:
//
//  1. Neighbour search finds the users nearest to U by dot product.
//  2. The preference extractor keeps each user's ratings at or above their own
//     75th percentile.
//  3. The aggregator counts how many neighbours prefer each title U has not
//     already rated highly, and keeps the most supported ones.
//  4. Hybrid fusion expands every collaborative candidate with its nearest
//     items, weights both lists, and returns the top names.
//
// # Snapshots
//
// All tables live in an immutable Snapshot. The Engine holds the current one in
// an atomic pointer; Load builds a new snapshot from a DataProvider and an
// EmbeddingProvider and swaps it in without blocking readers.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetProviders(db, artifacts)
//	if err := engine.Load(ctx); err != nil {
//	    return err
//	}
//
//	result, err := engine.Hybrid(ctx, engine.DefaultHybridRequest(userID))
//
// # Thread Safety
//
// Every exported function is safe for concurrent use. Providers, caches and
// observers must be set before the engine starts serving.
package recommend
