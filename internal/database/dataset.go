// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
dataset.go - Dataset Import and Preparation

ImportDataset loads the three raw CSV exports into raw_* tables with DuckDB's
read_csv. Every column is read as text and cast explicitly, so a malformed value
drops its row instead of failing the import.

Prepare turns the raw tables into the tables snapshots are built from:
  - users with fewer than min_user_ratings ratings are removed
  - ratings are min-max scaled to [0,1] over the remaining rows
  - the placeholder "Unknown" becomes NULL
  - the English name falls back to the canonical name
  - encode tables number users and items by first appearance in the ratings
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// ImportStats reports how many rows an import wrote.
type ImportStats struct {
	Ratings  int64         `json:"ratings"`
	Anime    int64         `json:"anime"`
	Synopses int64         `json:"synopses"`
	Duration time.Duration `json:"duration"`
}

// PrepareStats reports the outcome of Prepare.
type PrepareStats struct {
	Users        int64         `json:"users"`
	Items        int64         `json:"items"`
	Ratings      int64         `json:"ratings"`
	DroppedUsers int64         `json:"dropped_users"`
	MinRating    float64       `json:"min_rating"`
	MaxRating    float64       `json:"max_rating"`
	Duration     time.Duration `json:"duration"`
}

const insertRawRatings = `INSERT INTO raw_ratings
	SELECT row_number() OVER () AS seq, user_id, anime_id, rating
	FROM (
		SELECT TRY_CAST(user_id AS BIGINT) AS user_id,
		       TRY_CAST(anime_id AS BIGINT) AS anime_id,
		       TRY_CAST(rating AS DOUBLE) AS rating
		FROM read_csv(%s, header = true, all_varchar = true)
	)
	WHERE user_id IS NOT NULL AND anime_id IS NOT NULL AND rating IS NOT NULL`

const insertRawAnime = `INSERT INTO raw_anime
	SELECT row_number() OVER () AS seq, mal_id, name, score, genres, english_name, type, episodes, premiered, members
	FROM (
		SELECT TRY_CAST("MAL_ID" AS BIGINT) AS mal_id,
		       "Name" AS name,
		       "Score" AS score,
		       "Genres" AS genres,
		       "English name" AS english_name,
		       "Type" AS type,
		       "Episodes" AS episodes,
		       "Premiered" AS premiered,
		       "Members" AS members
		FROM read_csv(%s, header = true, all_varchar = true)
	)
	WHERE mal_id IS NOT NULL`

const insertRawSynopsis = `INSERT INTO raw_synopsis
	SELECT row_number() OVER () AS seq, mal_id, name, genres, synopsis
	FROM (
		SELECT TRY_CAST("MAL_ID" AS BIGINT) AS mal_id,
		       "Name" AS name,
		       "Genres" AS genres,
		       "sypnopsis" AS synopsis
		FROM read_csv(%s, header = true, all_varchar = true)
	)
	WHERE mal_id IS NOT NULL`

// ImportDataset replaces the raw tables with the contents of the configured CSV files.
// The three files are imported in one transaction.
func (db *DB) ImportDataset(ctx context.Context, cfg *config.DatasetConfig) (*ImportStats, error) {
	start := time.Now()
	stats, err := db.importDataset(ctx, cfg, start)
	metrics.RecordDatasetOperation("import", time.Since(start), err)
	if err == nil {
		metrics.DatasetRows.WithLabelValues("raw_ratings").Set(float64(stats.Ratings))
		metrics.DatasetRows.WithLabelValues("raw_anime").Set(float64(stats.Anime))
		metrics.DatasetRows.WithLabelValues("raw_synopsis").Set(float64(stats.Synopses))
	}
	return stats, err
}

func (db *DB) importDataset(ctx context.Context, cfg *config.DatasetConfig, start time.Time) (*ImportStats, error) {
	if cfg.RatingsPath == "" || cfg.AnimePath == "" || cfg.SynopsisPath == "" {
		return nil, fmt.Errorf("dataset paths not configured")
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}

	for _, table := range []string{"raw_ratings", "raw_anime", "raw_synopsis"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			rollbackQuietly(tx)
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	stats := &ImportStats{}
	steps := []struct {
		name  string
		query string
		dest  *int64
	}{
		{"ratings", fmt.Sprintf(insertRawRatings, quoteLiteral(cfg.RatingsPath)), &stats.Ratings},
		{"anime", fmt.Sprintf(insertRawAnime, quoteLiteral(cfg.AnimePath)), &stats.Anime},
		{"synopsis", fmt.Sprintf(insertRawSynopsis, quoteLiteral(cfg.SynopsisPath)), &stats.Synopses},
	}

	for _, step := range steps {
		n, err := execCount(ctx, tx, step.query)
		if err != nil {
			rollbackQuietly(tx)
			return nil, fmt.Errorf("failed to import %s: %w", step.name, err)
		}
		*step.dest = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	stats.Duration = time.Since(start)
	logging.Info().
		Int64("ratings", stats.Ratings).
		Int64("anime", stats.Anime).
		Int64("synopses", stats.Synopses).
		Dur("duration", stats.Duration).
		Msg("Dataset imported")

	return stats, nil
}

const insertRatings = `INSERT INTO ratings
	SELECT kept.seq, kept.user_id, kept.anime_id,
	       CASE WHEN bounds.hi = bounds.lo THEN 0.0
	            ELSE (kept.rating - bounds.lo) / (bounds.hi - bounds.lo)
	       END AS rating
	FROM (
		SELECT seq, user_id, anime_id, rating
		FROM raw_ratings
		WHERE user_id IN (SELECT user_id FROM raw_ratings GROUP BY user_id HAVING COUNT(*) >= $1)
	) AS kept,
	(
		SELECT MIN(rating) AS lo, MAX(rating) AS hi
		FROM raw_ratings
		WHERE user_id IN (SELECT user_id FROM raw_ratings GROUP BY user_id HAVING COUNT(*) >= $1)
	) AS bounds
	ORDER BY kept.seq`

const insertUserIndex = `INSERT INTO user_index
	SELECT CAST(row_number() OVER (ORDER BY first_seq) - 1 AS INTEGER) AS idx, user_id
	FROM (SELECT user_id, MIN(seq) AS first_seq FROM ratings GROUP BY user_id)`

const insertItemIndex = `INSERT INTO item_index
	SELECT CAST(row_number() OVER (ORDER BY first_seq) - 1 AS INTEGER) AS idx, anime_id
	FROM (SELECT anime_id, MIN(seq) AS first_seq FROM ratings GROUP BY anime_id)`

const insertAnime = `INSERT INTO anime
	SELECT row_number() OVER (ORDER BY score DESC NULLS LAST, seq) AS seq,
	       mal_id, COALESCE(english_name, name), name, score, genres, episodes, type, premiered, members
	FROM (
		SELECT seq, mal_id,
		       NULLIF(english_name, 'Unknown') AS english_name,
		       NULLIF(name, 'Unknown') AS name,
		       TRY_CAST(NULLIF(score, 'Unknown') AS DOUBLE) AS score,
		       NULLIF(genres, 'Unknown') AS genres,
		       NULLIF(episodes, 'Unknown') AS episodes,
		       NULLIF(type, 'Unknown') AS type,
		       NULLIF(premiered, 'Unknown') AS premiered,
		       TRY_CAST(NULLIF(members, 'Unknown') AS BIGINT) AS members
		FROM raw_anime
	)`

const insertSynopses = `INSERT INTO synopses
	SELECT seq, mal_id, NULLIF(name, 'Unknown'), NULLIF(genres, 'Unknown'), synopsis
	FROM raw_synopsis`

// Prepare rebuilds the prepared tables from the raw tables.
// Users with fewer than minUserRatings ratings are dropped before scaling.
func (db *DB) Prepare(ctx context.Context, minUserRatings int) (*PrepareStats, error) {
	start := time.Now()
	stats, err := db.prepare(ctx, minUserRatings, start)
	metrics.RecordDatasetOperation("prepare", time.Since(start), err)
	if err == nil {
		metrics.DatasetRows.WithLabelValues("ratings").Set(float64(stats.Ratings))
		metrics.DatasetRows.WithLabelValues("user_index").Set(float64(stats.Users))
		metrics.DatasetRows.WithLabelValues("item_index").Set(float64(stats.Items))
	}
	return stats, err
}

func (db *DB) prepare(ctx context.Context, minUserRatings int, start time.Time) (*PrepareStats, error) {
	if minUserRatings < 1 {
		minUserRatings = 1
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin prepare transaction: %w", err)
	}

	for _, table := range []string{"ratings", "anime", "synopses", "user_index", "item_index"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			rollbackQuietly(tx)
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	stats := &PrepareStats{}
	if stats.Ratings, err = execCount(ctx, tx, insertRatings, minUserRatings); err != nil {
		rollbackQuietly(tx)
		return nil, fmt.Errorf("failed to filter and scale ratings: %w", err)
	}
	if stats.Ratings == 0 {
		rollbackQuietly(tx)
		return nil, fmt.Errorf("%w: min_user_ratings=%d", ErrEmptyDataset, minUserRatings)
	}

	steps := []struct {
		name  string
		query string
		dest  *int64
	}{
		{"user index", insertUserIndex, &stats.Users},
		{"item index", insertItemIndex, &stats.Items},
		{"anime", insertAnime, nil},
		{"synopses", insertSynopses, nil},
	}
	for _, step := range steps {
		n, err := execCount(ctx, tx, step.query)
		if err != nil {
			rollbackQuietly(tx)
			return nil, fmt.Errorf("failed to build %s: %w", step.name, err)
		}
		if step.dest != nil {
			*step.dest = n
		}
	}

	var totalUsers int64
	err = tx.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(DISTINCT user_id) FROM raw_ratings), MIN(rating), MAX(rating)
		 FROM raw_ratings WHERE user_id IN (SELECT user_id FROM user_index)`,
	).Scan(&totalUsers, &stats.MinRating, &stats.MaxRating)
	if err != nil {
		rollbackQuietly(tx)
		return nil, fmt.Errorf("failed to read rating bounds: %w", err)
	}
	stats.DroppedUsers = totalUsers - stats.Users

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prepare: %w", err)
	}

	stats.Duration = time.Since(start)
	logging.Info().
		Int64("users", stats.Users).
		Int64("items", stats.Items).
		Int64("ratings", stats.Ratings).
		Int64("dropped_users", stats.DroppedUsers).
		Float64("min_rating", stats.MinRating).
		Float64("max_rating", stats.MaxRating).
		Dur("duration", stats.Duration).
		Msg("Dataset prepared")

	return stats, nil
}

// execCount runs an INSERT and returns the number of rows written.
func execCount(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
