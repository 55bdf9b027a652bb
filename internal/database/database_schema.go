// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
database_schema.go - Database Schema Management

Raw Tables (filled by ImportDataset, one row per CSV line, seq = file order):
  - raw_ratings: user_id, anime_id, rating as found in the ratings export
  - raw_anime: anime metadata with "Unknown" placeholders still in place
  - raw_synopsis: plot summaries keyed by MAL id

Prepared Tables (rebuilt by Prepare):
  - ratings: ratings of active users, min-max scaled to [0,1]
  - anime: metadata with placeholders nulled and the English name fallback applied,
    ordered by score descending
  - synopses: synopsis rows in file order
  - user_index / item_index: encode tables, index = first appearance in ratings

Embedding Tables (filled by ImportEmbeddings):
  - user_embeddings / item_embeddings: one FLOAT[] row per encoded index
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
)

// createTables creates every table used by the service.
func (db *DB) createTables(ctx context.Context) error {
	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the table creation SQL statements
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS raw_ratings (
			seq BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			anime_id BIGINT NOT NULL,
			rating DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS raw_anime (
			seq BIGINT NOT NULL,
			mal_id BIGINT NOT NULL,
			name TEXT,
			score TEXT,
			genres TEXT,
			english_name TEXT,
			type TEXT,
			episodes TEXT,
			premiered TEXT,
			members TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS raw_synopsis (
			seq BIGINT NOT NULL,
			mal_id BIGINT NOT NULL,
			name TEXT,
			genres TEXT,
			synopsis TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			seq BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			anime_id BIGINT NOT NULL,
			rating DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS anime (
			seq BIGINT NOT NULL,
			anime_id BIGINT NOT NULL,
			english_name TEXT,
			name TEXT,
			score DOUBLE,
			genres TEXT,
			episodes TEXT,
			type TEXT,
			premiered TEXT,
			members BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS synopses (
			seq BIGINT NOT NULL,
			anime_id BIGINT NOT NULL,
			name TEXT,
			genres TEXT,
			synopsis TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS user_index (
			idx INTEGER NOT NULL,
			user_id BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS item_index (
			idx INTEGER NOT NULL,
			anime_id BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_embeddings (
			idx INTEGER NOT NULL,
			embedding FLOAT[] NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS item_embeddings (
			idx INTEGER NOT NULL,
			embedding FLOAT[] NOT NULL
		)`,
	}
}
