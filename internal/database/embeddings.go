// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// embeddingTables returns the embedding table, encode table and id column of a space.
func embeddingTables(space recommend.Space) (embeddings, index, idColumn string) {
	if space == recommend.SpaceUser {
		return "user_embeddings", "user_index", "user_id"
	}
	return "item_embeddings", "item_index", "anime_id"
}

// embeddingSource returns the table function reading path.
func embeddingSource(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return fmt.Sprintf("read_parquet(%s)", quoteLiteral(path)), nil
	case ".csv":
		return fmt.Sprintf("read_csv(%s, header = true)", quoteLiteral(path)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ImportEmbeddings replaces the embedding table of space with the vectors in path.
// Row i of the file is the vector of encoded index i and is read from its
// "embedding" list column. Parquet and CSV files are supported.
func (db *DB) ImportEmbeddings(ctx context.Context, space recommend.Space, path string) (int64, error) {
	start := time.Now()
	n, err := db.importEmbeddings(ctx, space, path)
	metrics.RecordDatasetOperation("embeddings", time.Since(start), err)
	if err == nil {
		metrics.DatasetRows.WithLabelValues(space.String() + "_embeddings").Set(float64(n))
	}
	return n, err
}

func (db *DB) importEmbeddings(ctx context.Context, space recommend.Space, path string) (int64, error) {
	source, err := embeddingSource(path)
	if err != nil {
		return 0, err
	}
	table, _, _ := embeddingTables(space)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin embedding import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		rollbackQuietly(tx)
		return 0, fmt.Errorf("failed to clear %s: %w", table, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s
		SELECT CAST(row_number() OVER () - 1 AS INTEGER) AS idx, CAST(embedding AS FLOAT[]) AS embedding
		FROM %s`, table, source)
	rows, err := execCount(ctx, tx, query)
	if err != nil {
		rollbackQuietly(tx)
		return 0, fmt.Errorf("failed to import %s embeddings: %w", space, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit embedding import: %w", err)
	}

	logging.Info().Str("space", space.String()).Str("path", path).Int64("rows", rows).Msg("Embeddings imported")
	return rows, nil
}

// Embeddings implements recommend.EmbeddingProvider. Rows whose index has no
// entry in the encode table are skipped and the remaining rows are renumbered
// in index order.
func (db *DB) Embeddings(ctx context.Context, space recommend.Space) (*recommend.Embedding, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	table, index, idColumn := embeddingTables(space)
	query := fmt.Sprintf(`SELECT i.%s, e.embedding
		FROM %s e LEFT JOIN %s i ON i.idx = e.idx
		ORDER BY e.idx`, idColumn, table, index)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer closeWithLog(rows, "embedding rows")

	var (
		ids      []int
		matrix   recommend.Matrix
		unmapped int
	)
	for rows.Next() {
		var (
			id  sql.NullInt64
			raw any
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if !id.Valid {
			unmapped++
			continue
		}
		vec, err := toVector(raw)
		if err != nil {
			return nil, fmt.Errorf("%s row for id %d: %w", table, id.Int64, err)
		}
		ids = append(ids, int(id.Int64))
		matrix = append(matrix, vec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	if unmapped > 0 {
		logging.Warn().Str("space", space.String()).Int("rows", unmapped).Msg("Embedding rows without encode entry skipped")
	}
	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEmbeddings, space)
	}

	idMap, err := recommend.NewIDMapFromOrder(ids)
	if err != nil {
		return nil, fmt.Errorf("build %s id map: %w", space, err)
	}
	return recommend.NewEmbedding(space, matrix, idMap)
}

// toVector converts a scanned DuckDB list into a vector.
func toVector(raw any) (recommend.Vector, error) {
	switch v := raw.(type) {
	case []float32:
		return recommend.Vector(v), nil
	case []float64:
		out := make(recommend.Vector, len(v))
		for i, x := range v {
			out[i] = float32(x)
		}
		return out, nil
	case []any:
		out := make(recommend.Vector, len(v))
		for i, x := range v {
			switch f := x.(type) {
			case float32:
				out[i] = f
			case float64:
				out[i] = float32(f)
			default:
				return nil, fmt.Errorf("%w: element %d has type %T", recommend.ErrInvalidEmbedding, i, x)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unexpected list type %T", recommend.ErrInvalidEmbedding, raw)
	}
}
