// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package database holds the anime dataset and embedding tables in DuckDB and
// serves them to the recommendation engine.
//
// # Overview
//
// The package is the data layer between the raw Kaggle-style CSV exports and the
// in-memory snapshots of the recommend package. It imports, cleans and indexes
// the data once; snapshot loads then read plain ordered tables.
//
// # Architecture
//
//   - database.go: Core database lifecycle (connection, initialization, cleanup)
//   - database_schema.go: Raw, prepared and embedding tables
//   - database_connection.go: Connection pool configuration
//   - database_utils.go: Profiling, context management, checkpoint and record counts
//   - dataset.go: CSV import (ImportDataset) and preparation (Prepare)
//   - embeddings.go: Embedding import (ImportEmbeddings) and the EmbeddingProvider
//   - provider.go: The DataProvider (ratings, items, synopses)
//   - breaker.go: Circuit breaker around the providers
//
// # Database Technology
//
// DuckDB reads CSV and Parquet natively (read_csv, read_parquet), so imports are
// single INSERT ... SELECT statements without a Go-side parser. The CGO-based
// driver is github.com/duckdb/duckdb-go/v2.
//
// # Usage Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if _, err := db.ImportDataset(ctx, &cfg.Dataset); err != nil {
//	    return err
//	}
//	if _, err := db.Prepare(ctx, cfg.Dataset.MinUserRatings); err != nil {
//	    return err
//	}
//	if _, err := db.ImportEmbeddings(ctx, recommend.SpaceUser, cfg.Dataset.UserEmbeddingsPath); err != nil {
//	    return err
//	}
//
//	source := database.NewBreakerProvider(db, database.DefaultBreakerSettings())
//	engine.SetProviders(source, source)
//
// # Ordering
//
// Every table keeps a seq column holding the source row order. Rating order
// decides the encode tables and preference tie-breaks, and anime order (by score)
// decides which metadata record wins a name lookup, so every read orders by seq.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Imports and Prepare run inside a
// transaction, so a concurrent snapshot load sees either the old or the new tables.
package database
