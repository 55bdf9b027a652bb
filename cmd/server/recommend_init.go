// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/database"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/recommend/storage"
)

// RecommendComponents holds the engine and the pieces wired around it.
// Artifacts and Neighbors are nil when disabled in config.
type RecommendComponents struct {
	Engine    *recommend.Engine
	Breaker   *database.BreakerProvider
	Artifacts *storage.Store
	Neighbors *cache.LRU[[]recommend.Neighbor]
}

// initRecommend builds the engine on top of the database. Snapshot loads go
// through the circuit breaker; embeddings additionally go through the artifact
// archive when one is configured. No snapshot is loaded here.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, db *database.DB, logger zerolog.Logger) (*RecommendComponents, error) {
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	c := &RecommendComponents{
		Engine:  engine,
		Breaker: database.NewBreakerProvider(db, database.DefaultBreakerSettings()),
	}

	var embeddings recommend.EmbeddingProvider = c.Breaker
	if cfg.Artifacts.Path != "" {
		c.Artifacts, err = storage.NewStore(cfg.Artifacts.Path)
		if err != nil {
			return nil, fmt.Errorf("open artifact store: %w", err)
		}
		embeddings = storage.NewEmbeddingSource(c.Artifacts, c.Breaker, cfg.Artifacts.KeepVersions, logger)
		logger.Info().
			Str("path", cfg.Artifacts.Path).
			Int("keep_versions", cfg.Artifacts.KeepVersions).
			Msg("embedding archive enabled")
	}
	engine.SetProviders(c.Breaker, embeddings)

	if cfg.Cache.Enabled {
		c.Neighbors = cache.NewNeighborCache(cache.NeighborCacheConfig{
			Capacity: cfg.Cache.NeighborCapacity,
			TTL:      cfg.Cache.NeighborTTL,
		})
		engine.SetNeighborCache(c.Neighbors)
	}
	engine.SetObserver(metrics.NewEngineObserver())

	logger.Info().
		Int("user_neighbors", cfg.Recommend.UserNeighbors).
		Int("candidates", cfg.Recommend.Candidates).
		Int("content_neighbors", cfg.Recommend.ContentNeighbors).
		Int("top_n", cfg.Recommend.TopN).
		Bool("neighbor_cache", c.Neighbors != nil).
		Msg("recommendation engine initialized")

	return c, nil
}

// importDataset loads the CSV exports and embedding files into DuckDB and
// prepares the snapshot tables.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func importDataset(ctx context.Context, db *database.DB, cfg *config.DatasetConfig, logger zerolog.Logger) error {
	imported, err := db.ImportDataset(ctx, cfg)
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}
	logger.Info().
		Int64("ratings", imported.Ratings).
		Int64("anime", imported.Anime).
		Int64("synopses", imported.Synopses).
		Msg("dataset imported")

	prepared, err := db.Prepare(ctx, cfg.MinUserRatings)
	if err != nil {
		return fmt.Errorf("prepare dataset: %w", err)
	}
	logger.Info().
		Int64("users", prepared.Users).
		Int64("items", prepared.Items).
		Int64("ratings", prepared.Ratings).
		Int64("dropped_users", prepared.DroppedUsers).
		Dur("duration", prepared.Duration).
		Msg("dataset prepared")

	if !cfg.HasEmbeddingFiles() {
		logger.Info().Msg("no embedding files configured, expecting embeddings already in the database")
		return nil
	}

	files := []struct {
		space recommend.Space
		path  string
	}{
		{recommend.SpaceUser, cfg.UserEmbeddingsPath},
		{recommend.SpaceItem, cfg.ItemEmbeddingsPath},
	}
	for _, f := range files {
		rows, err := db.ImportEmbeddings(ctx, f.space, f.path)
		if err != nil {
			return fmt.Errorf("import %s embeddings: %w", f.space, err)
		}
		logger.Info().Str("space", f.space.String()).Int64("rows", rows).Msg("embeddings imported")
	}
	return nil
}
