// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"fmt"
	"time"
)

// Snapshot bundles every table the engine reads. It is never mutated after
// NewSnapshot returns, so one snapshot can serve any number of concurrent requests.
type Snapshot struct {
	Version    int64
	LoadedAt   time.Time
	Embeddings *EmbeddingStore
	Ratings    *RatingTable
	Catalog    *Catalog
}

// SnapshotData is the raw material of a snapshot.
type SnapshotData struct {
	Users    *Embedding
	Items    *Embedding
	Ratings  []Rating
	Metadata []ItemMetadata
	Synopses []Synopsis
}

// NewSnapshot indexes the raw tables into an immutable snapshot.
//
//nolint:gocritic // hugeParam: data is consumed once
func NewSnapshot(version int64, data SnapshotData) (*Snapshot, error) {
	store, err := NewEmbeddingStore(data.Users, data.Items)
	if err != nil {
		return nil, fmt.Errorf("build embedding store: %w", err)
	}
	return &Snapshot{
		Version:    version,
		LoadedAt:   time.Now(),
		Embeddings: store,
		Ratings:    NewRatingTable(data.Ratings),
		Catalog:    NewCatalog(data.Metadata, data.Synopses),
	}, nil
}

// Neighbors runs neighbour search for an external id in the given space.
func (s *Snapshot) Neighbors(space Space, id, k int, mode Mode) ([]Neighbor, error) {
	return RankNeighborsByID(s.Embeddings.Embedding(space), id, k, mode)
}

// Status summarises the snapshot.
func (s *Snapshot) Status() Status {
	users := s.Embeddings.Embedding(SpaceUser)
	items := s.Embeddings.Embedding(SpaceItem)
	return Status{
		Loaded:        true,
		Version:       s.Version,
		LoadedAt:      s.LoadedAt,
		Users:         users.Rows(),
		Items:         items.Rows(),
		Ratings:       s.Ratings.Len(),
		Synopses:      s.Catalog.SynopsisCount(),
		UserDimension: users.Dimension(),
		ItemDimension: items.Dimension(),
	}
}
