// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/animerec/internal/logging"
)

var (
	// ErrNotPrepared is returned when snapshot tables are read before Prepare ran.
	ErrNotPrepared = errors.New("dataset not prepared")

	// ErrNoEmbeddings is returned when an embedding table is empty.
	ErrNoEmbeddings = errors.New("no embeddings imported")

	// ErrUnsupportedFormat is returned for embedding files that are neither parquet nor CSV.
	ErrUnsupportedFormat = errors.New("unsupported embedding file format")

	// ErrEmptyDataset is returned when filtering leaves no ratings.
	ErrEmptyDataset = errors.New("no ratings left after filtering")
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

// rollbackQuietly rolls back tx after a failed statement.
func rollbackQuietly(tx interface{ Rollback() error }) {
	_ = tx.Rollback() //nolint:errcheck // the statement error is the one worth returning
}
