// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/recommend/storage"
)

// Recommender is the engine surface the handlers call. *recommend.Engine
// implements it.
type Recommender interface {
	Snapshot() (*recommend.Snapshot, error)
	Ready() bool
	SimilarUsers(ctx context.Context, userID, k int, mode recommend.Mode) ([]recommend.Neighbor, error)
	SimilarItems(ctx context.Context, ref recommend.ItemRef, k int, mode recommend.Mode) ([]recommend.SimilarItem, error)
	UserPreferences(ctx context.Context, userID int) ([]recommend.Preference, error)
	Collaborative(ctx context.Context, userID, n int) ([]recommend.RecommendedItem, error)
	DefaultHybridRequest(userID int) recommend.HybridRequest
	Hybrid(ctx context.Context, req recommend.HybridRequest) (*recommend.HybridResult, error)
	Item(ctx context.Context, ref recommend.ItemRef) (recommend.ItemDetail, error)
	Status() recommend.Status
	GetMetrics() recommend.Metrics
	GetConfig() *recommend.Config
}

// ResultCache stores rendered hybrid responses. *cache.ResultStore implements it.
type ResultCache interface {
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
	Stats() cache.Stats
}

// StatsSource reports cache counters, such as the neighbour LRU.
type StatsSource interface {
	Stats() cache.Stats
}

// ArtifactLister lists stored embedding artifacts.
type ArtifactLister interface {
	ListArtifacts(ctx context.Context) ([]storage.ArtifactMetadata, error)
}

// Reloader queues a snapshot reload on behalf of subject.
type Reloader interface {
	Trigger(subject string) error
}

// BreakerState reports the circuit breaker state of the data source.
type BreakerState interface {
	State() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by resource:
//   - handlers_health.go: liveness and readiness
//   - handlers_recommend.go: hybrid and collaborative recommendations
//   - handlers_users.go: similar users and preferences
//   - handlers_items.go: similar items and item lookup
//   - handlers_status.go: service status
//   - handlers_admin.go: artifacts and reload
//
// Only the engine is required. Missing optional components disable the
// features that need them.
type Handler struct {
	engine    Recommender
	results   ResultCache
	neighbors StatsSource
	artifacts ArtifactLister
	reloader  Reloader
	breaker   BreakerState
	audit     *logging.AdminAuditLogger

	defaultK       int
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a handler around engine. Default k and the request
// timeout are read from the engine configuration once.
func NewHandler(engine Recommender) *Handler {
	cfg := engine.GetConfig()
	return &Handler{
		engine:         engine,
		defaultK:       cfg.Limits.DefaultK,
		requestTimeout: cfg.Limits.RequestTimeout,
		startTime:      time.Now(),
	}
}

// SetResultCache enables caching of hybrid responses.
func (h *Handler) SetResultCache(c ResultCache) {
	h.results = c
}

// SetNeighborStats exposes the neighbour cache counters in /status.
func (h *Handler) SetNeighborStats(s StatsSource) {
	h.neighbors = s
}

// SetArtifacts enables GET /admin/artifacts.
func (h *Handler) SetArtifacts(a ArtifactLister) {
	h.artifacts = a
}

// SetReloader enables POST /admin/reload.
func (h *Handler) SetReloader(r Reloader) {
	h.reloader = r
}

// SetBreaker exposes the data source breaker state in /status.
func (h *Handler) SetBreaker(b BreakerState) {
	h.breaker = b
}

// SetAuditLogger records admin actions.
func (h *Handler) SetAuditLogger(a *logging.AdminAuditLogger) {
	h.audit = a
}

// requestContext bounds a request by the configured timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

// parseMode converts a validated mode parameter.
func parseMode(s string) recommend.Mode {
	mode, _ := recommend.ParseMode(s)
	return mode
}
