// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"strconv"
	"time"
)

// Space identifies an embedding space.
type Space int

const (
	// SpaceUser is the user embedding space (collaborative signal).
	SpaceUser Space = iota
	// SpaceItem is the item embedding space (content signal).
	SpaceItem
)

// String returns the space name used in logs, metrics and artifact names.
func (s Space) String() string {
	switch s {
	case SpaceUser:
		return "user"
	case SpaceItem:
		return "item"
	default:
		return "unknown"
	}
}

// ParseSpace converts a space name back to a Space.
func ParseSpace(s string) (Space, bool) {
	switch s {
	case "user":
		return SpaceUser, true
	case "item":
		return SpaceItem, true
	default:
		return SpaceUser, false
	}
}

// Mode selects which end of the similarity ranking neighbour search returns.
type Mode int

const (
	// ModeNearest returns the highest scoring rows.
	ModeNearest Mode = iota
	// ModeFurthest returns the lowest scoring rows.
	ModeFurthest
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeFurthest:
		return "furthest"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode. Empty input means ModeNearest.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "nearest":
		return ModeNearest, true
	case "furthest":
		return ModeFurthest, true
	default:
		return ModeNearest, false
	}
}

// Vector is a dense embedding row.
type Vector []float32

// Matrix is an ordered sequence of vectors; row i belongs to entity index i.
type Matrix []Vector

// Neighbor is a single entry of a neighbour search result.
type Neighbor struct {
	// ID is the external entity id (user id or item id).
	ID int `json:"id"`

	// Similarity is the dot product against the query vector.
	Similarity float64 `json:"similarity"`
}

// Rating is one normalised user rating.
type Rating struct {
	UserID int     `json:"user_id"`
	ItemID int     `json:"item_id"`
	Value  float64 `json:"rating"`
}

// ItemMetadata describes one anime.
type ItemMetadata struct {
	// ID is the external item id.
	ID int `json:"id"`

	// EnglishName is the English title, empty when unknown.
	EnglishName string `json:"english_name,omitempty"`

	// Name is the canonical title, empty when unknown.
	Name string `json:"name,omitempty"`

	Score     float64 `json:"score,omitempty"`
	Genres    string  `json:"genres"`
	Episodes  string  `json:"episodes,omitempty"`
	Type      string  `json:"type,omitempty"`
	Premiered string  `json:"premiered,omitempty"`
	Members   int     `json:"members,omitempty"`
}

// DisplayName resolves the name shown to users: the English title, else the canonical
// title. It reports false when neither is present and the item cannot be displayed.
//
//nolint:gocritic // hugeParam: metadata is read-only here
func (m ItemMetadata) DisplayName() (string, bool) {
	if m.EnglishName != "" {
		return m.EnglishName, true
	}
	if m.Name != "" {
		return m.Name, true
	}
	return "", false
}

// Synopsis is the plot summary of an item.
type Synopsis struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`
	Genres string `json:"genres"`
	Text   string `json:"synopsis"`
}

// Preference is one high-affinity item of a user.
type Preference struct {
	ItemID int     `json:"item_id"`
	Name   string  `json:"name"`
	Genres string  `json:"genres"`
	Rating float64 `json:"rating"`
}

// PreferenceSet is the set of display names a user already rates highly.
type PreferenceSet map[string]struct{}

// NewPreferenceSet builds a PreferenceSet from extracted preferences.
func NewPreferenceSet(prefs []Preference) PreferenceSet {
	set := make(PreferenceSet, len(prefs))
	for _, p := range prefs {
		set[p.Name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set.
func (s PreferenceSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// RecommendedItem is one collaborative candidate produced by Aggregate.
type RecommendedItem struct {
	// Support is the number of neighbours whose preferences include the item.
	Support int `json:"n"`

	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Genres   string `json:"genres"`
	Synopsis string `json:"synopsis"`
}

// SimilarItem is an item neighbour enriched with display data.
type SimilarItem struct {
	ItemID     int     `json:"item_id"`
	Name       string  `json:"name"`
	Genres     string  `json:"genres"`
	Similarity float64 `json:"similarity"`
}

// ItemDetail is an item with its synopsis, when one exists.
type ItemDetail struct {
	ItemMetadata
	DisplayName string `json:"display_name"`
	Synopsis    string `json:"synopsis,omitempty"`
}

// refKind tags the variant held by an ItemRef.
type refKind uint8

const (
	refByID refKind = iota + 1
	refByName
)

// ItemRef references an item either by id or by display name.
// The zero value references nothing and never resolves.
type ItemRef struct {
	kind refKind
	id   int
	name string
}

// ByID references an item by its external id.
func ByID(id int) ItemRef {
	return ItemRef{kind: refByID, id: id}
}

// ByName references an item by its display name.
func ByName(name string) ItemRef {
	return ItemRef{kind: refByName, name: name}
}

// ID returns the referenced id when the ref is ByID.
func (r ItemRef) ID() (int, bool) {
	return r.id, r.kind == refByID
}

// Name returns the referenced name when the ref is ByName.
func (r ItemRef) Name() (string, bool) {
	return r.name, r.kind == refByName
}

// IsZero reports whether the ref holds no variant.
func (r ItemRef) IsZero() bool {
	return r.kind == 0
}

// String renders the ref for logs.
func (r ItemRef) String() string {
	switch r.kind {
	case refByID:
		return "id:" + strconv.Itoa(r.id)
	case refByName:
		return "name:" + r.name
	default:
		return "none"
	}
}

// HybridRequest parameterises a hybrid recommendation.
type HybridRequest struct {
	UserID        int     `json:"user_id"`
	UserWeight    float64 `json:"user_weight"`
	ContentWeight float64 `json:"content_weight"`

	// TopN caps the returned names. Zero means the configured default.
	TopN int `json:"top_n"`
}

// FusedScore is an accumulated hybrid score.
type FusedScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// LookupMiss records a collaborative candidate that could not be expanded by content.
type LookupMiss struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// HybridResult is the outcome of a hybrid recommendation.
type HybridResult struct {
	// SnapshotVersion is the version of the snapshot the result was computed on.
	SnapshotVersion int64 `json:"snapshot_version"`

	// Names is the ranked recommendation list, at most TopN entries, no duplicates.
	Names []string `json:"names"`

	// Scores holds the accumulated weight for each entry of Names.
	Scores []FusedScore `json:"scores"`

	// Collaborative is the candidate list the content expansion started from.
	Collaborative []RecommendedItem `json:"collaborative"`

	// Misses lists candidates skipped during content expansion.
	Misses []LookupMiss `json:"misses,omitempty"`

	// Dropped lists collaborative names left out for missing metadata.
	Dropped []LookupMiss `json:"dropped,omitempty"`

	// SkippedNeighbors lists similar users without ratings.
	SkippedNeighbors []int `json:"skipped_neighbors,omitempty"`
}

// Status describes the loaded snapshot.
type Status struct {
	Loaded        bool      `json:"loaded"`
	Version       int64     `json:"version"`
	LoadedAt      time.Time `json:"loaded_at,omitempty"`
	Users         int       `json:"users"`
	Items         int       `json:"items"`
	Ratings       int       `json:"ratings"`
	Synopses      int       `json:"synopses"`
	UserDimension int       `json:"user_dimension"`
	ItemDimension int       `json:"item_dimension"`
	LastError     string    `json:"last_error,omitempty"`

	LastLoadDurationMS int64 `json:"last_load_duration_ms"`
}

// Metrics contains engine counters for observability.
type Metrics struct {
	RequestCount     int64 `json:"request_count"`
	ErrorCount       int64 `json:"error_count"`
	LookupMisses     int64 `json:"lookup_misses"`
	NeighborHits     int64 `json:"neighbor_cache_hits"`
	NeighborMisses   int64 `json:"neighbor_cache_misses"`
	SnapshotLoads    int64 `json:"snapshot_loads"`
	SnapshotFailures int64 `json:"snapshot_failures"`
}
