// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/recommend"
)

// EmbeddingState is the serializable form of one embedding space.
type EmbeddingState struct {
	// Space is "user" or "item".
	Space string

	// Matrix holds one row per entity index.
	Matrix [][]float32

	// Encode maps external ids to row indexes.
	Encode map[int]int
}

// ArtifactName returns the artifact name used for a space.
func ArtifactName(space recommend.Space) string {
	return space.String() + "_embedding"
}

// SaveEmbedding writes emb as the next version of its space's artifact.
func (s *Store) SaveEmbedding(ctx context.Context, emb *recommend.Embedding, source string) (*ArtifactMetadata, error) {
	state := EmbeddingState{
		Space:  emb.Space.String(),
		Matrix: make([][]float32, len(emb.Matrix)),
		Encode: emb.IDs.EncodeTable(),
	}
	for i, row := range emb.Matrix {
		state.Matrix[i] = row
	}

	name := ArtifactName(emb.Space)
	version, _ := s.GetLatestVersion(name)

	return s.Save(ctx, name, version+1, state, ArtifactMetadata{
		Space:     state.Space,
		Rows:      emb.Rows(),
		Dimension: emb.Dimension(),
		Source:    source,
		CreatedAt: time.Now(),
	})
}

// LoadEmbedding loads a stored embedding. Version 0 loads the latest.
func (s *Store) LoadEmbedding(ctx context.Context, space recommend.Space, version int) (*recommend.Embedding, *ArtifactMetadata, error) {
	var state EmbeddingState
	meta, err := s.Load(ctx, ArtifactName(space), version, &state)
	if err != nil {
		return nil, nil, err
	}

	if state.Space != space.String() {
		return nil, nil, fmt.Errorf("%w: artifact holds %q vectors, want %q", recommend.ErrInvalidEmbedding, state.Space, space)
	}

	ids, err := recommend.NewIDMap(state.Encode)
	if err != nil {
		return nil, nil, err
	}

	matrix := make(recommend.Matrix, len(state.Matrix))
	for i, row := range state.Matrix {
		matrix[i] = row
	}

	emb, err := recommend.NewEmbedding(space, matrix, ids)
	if err != nil {
		return nil, nil, err
	}
	return emb, meta, nil
}

// EmbeddingSource provides embeddings for the engine. When an upstream provider is
// set, every fetch is archived as a new artifact and old versions are pruned; if
// the upstream fails, the latest archived version is served instead. Without an
// upstream it serves archived artifacts only.
type EmbeddingSource struct {
	store    *Store
	upstream recommend.EmbeddingProvider
	keep     int
	logger   zerolog.Logger
}

// NewEmbeddingSource creates an EmbeddingSource. upstream may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEmbeddingSource(store *Store, upstream recommend.EmbeddingProvider, keep int, logger zerolog.Logger) *EmbeddingSource {
	if keep < 1 {
		keep = 1
	}
	return &EmbeddingSource{
		store:    store,
		upstream: upstream,
		keep:     keep,
		logger:   logger.With().Str("component", "artifacts").Logger(),
	}
}

// Embeddings implements recommend.EmbeddingProvider.
func (s *EmbeddingSource) Embeddings(ctx context.Context, space recommend.Space) (*recommend.Embedding, error) {
	if s.upstream == nil {
		emb, _, err := s.store.LoadEmbedding(ctx, space, 0)
		if err != nil {
			return nil, fmt.Errorf("load %s artifact: %w", space, err)
		}
		return emb, nil
	}

	emb, err := s.upstream.Embeddings(ctx, space)
	if err != nil {
		archived, meta, loadErr := s.store.LoadEmbedding(ctx, space, 0)
		if loadErr != nil {
			return nil, fmt.Errorf("fetch %s embeddings: %w", space, err)
		}
		s.logger.Warn().
			Err(err).
			Str("space", space.String()).
			Int("version", meta.Version).
			Msg("upstream embeddings unavailable, serving archived artifact")
		return archived, nil
	}

	s.archive(ctx, emb)
	return emb, nil
}

// archive saves emb and prunes old versions. Failures are logged only.
func (s *EmbeddingSource) archive(ctx context.Context, emb *recommend.Embedding) {
	meta, err := s.store.SaveEmbedding(ctx, emb, "upstream")
	if err != nil {
		s.logger.Warn().Err(err).Str("space", emb.Space.String()).Msg("failed to archive embeddings")
		return
	}

	removed, err := s.store.Prune(ctx, meta.Name, s.keep)
	if err != nil {
		s.logger.Warn().Err(err).Str("artifact", meta.Name).Msg("failed to prune artifacts")
	}

	s.logger.Debug().
		Str("artifact", meta.Name).
		Int("version", meta.Version).
		Int("rows", meta.Rows).
		Int64("size_bytes", meta.SizeBytes).
		Int("pruned", removed).
		Msg("embeddings archived")
}
