// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import (
	"time"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/recommend/storage"
)

// HybridRecommendations is the body of GET /api/v1/recommendations/user/{userID}.
//
// Recommendations is the ranked name list; Scores repeats it with the fused
// weight of each entry. The diagnostic lists are omitted when empty.
type HybridRecommendations struct {
	UserID          int                         `json:"user_id"`
	SnapshotVersion int64                       `json:"snapshot_version"`
	UserWeight      float64                     `json:"user_weight"`
	ContentWeight   float64                     `json:"content_weight"`
	TopN            int                         `json:"top_n"`
	Recommendations []string                    `json:"recommendations"`
	Scores          []recommend.FusedScore      `json:"scores"`
	Collaborative   []recommend.RecommendedItem `json:"collaborative,omitempty"`
	Misses          []recommend.LookupMiss      `json:"misses,omitempty"`
	Dropped         []recommend.LookupMiss      `json:"dropped,omitempty"`

	SkippedNeighbors []int `json:"skipped_neighbors,omitempty"`
}

// NewHybridRecommendations builds the response body from an engine result.
//
//nolint:gocritic // hugeParam: req is copied once per request
func NewHybridRecommendations(req recommend.HybridRequest, result *recommend.HybridResult) HybridRecommendations {
	return HybridRecommendations{
		UserID:           req.UserID,
		SnapshotVersion:  result.SnapshotVersion,
		UserWeight:       req.UserWeight,
		ContentWeight:    req.ContentWeight,
		TopN:             req.TopN,
		Recommendations:  nonNil(result.Names),
		Scores:           nonNil(result.Scores),
		Collaborative:    result.Collaborative,
		Misses:           result.Misses,
		Dropped:          result.Dropped,
		SkippedNeighbors: result.SkippedNeighbors,
	}
}

// CollaborativeCandidates lists what a user's nearest neighbours like.
type CollaborativeCandidates struct {
	UserID int                         `json:"user_id"`
	N      int                         `json:"n"`
	Items  []recommend.RecommendedItem `json:"items"`
}

// SimilarUsers lists user neighbours.
type SimilarUsers struct {
	UserID int                  `json:"user_id"`
	K      int                  `json:"k"`
	Mode   string               `json:"mode"`
	Users  []recommend.Neighbor `json:"users"`
}

// SimilarItems lists item neighbours of the queried item.
type SimilarItems struct {
	Query string                  `json:"query"`
	K     int                     `json:"k"`
	Mode  string                  `json:"mode"`
	Items []recommend.SimilarItem `json:"items"`
}

// UserPreferences lists a user's top-quartile items.
type UserPreferences struct {
	UserID      int                    `json:"user_id"`
	Count       int                    `json:"count"`
	Preferences []recommend.Preference `json:"preferences"`
}

// CacheStatus groups the counters of both caches. Nil members are disabled caches.
type CacheStatus struct {
	Neighbors *cache.Stats `json:"neighbors,omitempty"`
	Results   *cache.Stats `json:"results,omitempty"`
}

// ServiceStatus is the body of GET /api/v1/status.
type ServiceStatus struct {
	Snapshot recommend.Status  `json:"snapshot"`
	Engine   recommend.Metrics `json:"engine"`
	Config   *recommend.Config `json:"config"`
	Cache    CacheStatus       `json:"cache"`
	Breaker  string            `json:"breaker,omitempty"`
	Uptime   string            `json:"uptime"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status          string `json:"status"`
	SnapshotLoaded  bool   `json:"snapshot_loaded"`
	SnapshotVersion int64  `json:"snapshot_version,omitempty"`
}

// ArtifactList is the body of GET /api/v1/admin/artifacts.
type ArtifactList struct {
	Count     int                        `json:"count"`
	Artifacts []storage.ArtifactMetadata `json:"artifacts"`
}

// ReloadAccepted is the body of POST /api/v1/admin/reload.
type ReloadAccepted struct {
	Queued          bool      `json:"queued"`
	RequestedBy     string    `json:"requested_by"`
	RequestedAt     time.Time `json:"requested_at"`
	SnapshotVersion int64     `json:"current_snapshot_version"`
}

// nonNil keeps empty result lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
