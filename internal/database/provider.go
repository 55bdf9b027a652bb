// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/animerec/internal/recommend"
)

// Ratings implements recommend.DataProvider. Records come back in file order.
func (db *DB) Ratings(ctx context.Context) ([]recommend.Rating, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT user_id, anime_id, rating FROM ratings ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer closeWithLog(rows, "rating rows")

	var out []recommend.Rating
	for rows.Next() {
		var (
			userID, itemID int64
			r              recommend.Rating
		)
		if err := rows.Scan(&userID, &itemID, &r.Value); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		r.UserID = int(userID)
		r.ItemID = int(itemID)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ratings: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrNotPrepared
	}
	return out, nil
}

// Items implements recommend.DataProvider. Items come back by score, best first.
func (db *DB) Items(ctx context.Context) ([]recommend.ItemMetadata, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT anime_id, english_name, name, score, genres, episodes, type, premiered, members
		FROM anime ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query anime: %w", err)
	}
	defer closeWithLog(rows, "anime rows")

	var out []recommend.ItemMetadata
	for rows.Next() {
		var (
			id                                               int64
			english, name, genres, episodes, kind, premiered sql.NullString
			score                                            sql.NullFloat64
			members                                          sql.NullInt64
		)
		if err := rows.Scan(&id, &english, &name, &score, &genres, &episodes, &kind, &premiered, &members); err != nil {
			return nil, fmt.Errorf("failed to scan anime: %w", err)
		}
		out = append(out, recommend.ItemMetadata{
			ID:          int(id),
			EnglishName: english.String,
			Name:        name.String,
			Score:       score.Float64,
			Genres:      genres.String,
			Episodes:    episodes.String,
			Type:        kind.String,
			Premiered:   premiered.String,
			Members:     int(members.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read anime: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrNotPrepared
	}
	return out, nil
}

// Synopses implements recommend.DataProvider. An empty table is not an error.
func (db *DB) Synopses(ctx context.Context) ([]recommend.Synopsis, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT anime_id, name, genres, synopsis FROM synopses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query synopses: %w", err)
	}
	defer closeWithLog(rows, "synopsis rows")

	var out []recommend.Synopsis
	for rows.Next() {
		var (
			id                 int64
			name, genres, text sql.NullString
		)
		if err := rows.Scan(&id, &name, &genres, &text); err != nil {
			return nil, fmt.Errorf("failed to scan synopsis: %w", err)
		}
		out = append(out, recommend.Synopsis{
			ItemID: int(id),
			Name:   name.String,
			Genres: genres.String,
			Text:   text.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read synopses: %w", err)
	}
	return out, nil
}
