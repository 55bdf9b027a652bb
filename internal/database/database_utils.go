// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
database_utils.go - Database Utility Functions

Profiling:
  - enableProfiling(): Enables DuckDB query profiling when ENABLE_QUERY_PROFILING=true

Context Management:
  - ensureContext(): Creates a context with 30-second timeout if none provided

Maintenance:
  - Checkpoint(): Forces a WAL checkpoint
  - GetRecordCounts(): Returns row counts of the dataset and embedding tables
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
)

// RecordCounts holds the row count of every table.
type RecordCounts struct {
	RawRatings     int64 `json:"raw_ratings"`
	RawAnime       int64 `json:"raw_anime"`
	RawSynopsis    int64 `json:"raw_synopsis"`
	Ratings        int64 `json:"ratings"`
	Anime          int64 `json:"anime"`
	Synopses       int64 `json:"synopses"`
	UserIndex      int64 `json:"user_index"`
	ItemIndex      int64 `json:"item_index"`
	UserEmbeddings int64 `json:"user_embeddings"`
	ItemEmbeddings int64 `json:"item_embeddings"`
}

// Prepared reports whether Prepare has produced ratings and encode tables.
func (c RecordCounts) Prepared() bool {
	return c.Ratings > 0 && c.UserIndex > 0 && c.ItemIndex > 0
}

// enableProfiling enables DuckDB query profiling for performance debugging
func (db *DB) enableProfiling() error {
	if os.Getenv("ENABLE_QUERY_PROFILING") != "true" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "PRAGMA enable_profiling"); err != nil {
		return fmt.Errorf("failed to enable profiling: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, "PRAGMA profiling_mode = 'detailed'"); err != nil {
		return fmt.Errorf("failed to set profiling mode: %w", err)
	}

	logging.Info().Msg("Query profiling enabled (detailed mode)")
	return nil
}

// ensureContext creates a context with 30-second timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, "CHECKPOINT")
	if err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// GetDatabasePath returns the path to the database file
func (db *DB) GetDatabasePath() string {
	return db.cfg.Path
}

// GetRecordCounts returns the row count of every table.
func (db *DB) GetRecordCounts(ctx context.Context) (*RecordCounts, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var counts RecordCounts
	targets := []struct {
		table string
		dest  *int64
	}{
		{"raw_ratings", &counts.RawRatings},
		{"raw_anime", &counts.RawAnime},
		{"raw_synopsis", &counts.RawSynopsis},
		{"ratings", &counts.Ratings},
		{"anime", &counts.Anime},
		{"synopses", &counts.Synopses},
		{"user_index", &counts.UserIndex},
		{"item_index", &counts.ItemIndex},
		{"user_embeddings", &counts.UserEmbeddings},
		{"item_embeddings", &counts.ItemEmbeddings},
	}

	for _, target := range targets {
		query := "SELECT COUNT(*) FROM " + target.table
		if err := db.conn.QueryRowContext(ctx, query).Scan(target.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", target.table, err)
		}
	}

	return &counts, nil
}

// quoteLiteral renders s as a SQL string literal. Table functions such as
// read_csv take their path at bind time, so it cannot be a query parameter.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
