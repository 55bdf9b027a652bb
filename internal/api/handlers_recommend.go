// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// HybridRecommendations handles GET /api/v1/recommendations/user/{userID}.
//
// @Summary Hybrid recommendations for a user
// @Description Fuses collaborative candidates from similar users with content neighbours of
// @Description those candidates, weighted by user_weight and content_weight, excluding titles
// @Description the user already rates in their top quartile.
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User id"
// @Param user_weight query number false "Weight of collaborative candidates" minimum(0)
// @Param content_weight query number false "Weight of content neighbours" minimum(0)
// @Param top_n query int false "Number of titles to return" minimum(1) maximum(1000)
// @Success 200 {object} models.APIResponse{data=models.HybridRecommendations}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown user or user without ratings"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Failure 504 {object} models.APIResponse "Request timed out"
// @Router /recommendations/user/{userID} [get]
func (h *Handler) HybridRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseHybridParams(r, h.engine.DefaultHybridRequest(0))
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	req := recommend.HybridRequest{
		UserID:        params.UserID,
		UserWeight:    params.UserWeight,
		ContentWeight: params.ContentWeight,
		TopN:          params.TopN,
	}

	snap, err := h.engine.Snapshot()
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	key := cache.HybridKey(snap.Version, req)
	if body, ok := h.cachedHybrid(r, key); ok {
		respondJSON(w, r, http.StatusOK, &models.APIResponse{
			Status: models.StatusSuccess,
			Data:   body,
			Metadata: models.Metadata{
				QueryTimeMS: time.Since(start).Milliseconds(),
				Cached:      true,
			},
		})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.engine.Hybrid(ctx, req)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	// The engine reads the snapshot again, so a swap since the cache lookup
	// shows up as a different version here.
	body := models.NewHybridRecommendations(req, result)
	h.storeHybrid(r, cache.HybridKey(result.SnapshotVersion, req), result.SnapshotVersion, &body)

	respondData(w, r, body, start)
}

// cachedHybrid looks key up in the result cache. Cache failures count as misses.
func (h *Handler) cachedHybrid(r *http.Request, key string) (*models.HybridRecommendations, bool) {
	if h.results == nil {
		return nil, false
	}

	var body models.HybridRecommendations
	hit, err := h.results.Get(key, &body)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("result cache lookup failed")
	}
	metrics.RecordCacheLookup("results", hit)
	if !hit {
		return nil, false
	}
	return &body, true
}

// storeHybrid caches body unless the snapshot changed while it was computed,
// in which case the entry would sit under a stale version key.
func (h *Handler) storeHybrid(r *http.Request, key string, version int64, body *models.HybridRecommendations) {
	if h.results == nil {
		return
	}
	if snap, err := h.engine.Snapshot(); err != nil || snap.Version != version {
		return
	}
	if err := h.results.Set(key, body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("result cache store failed")
	}
}

// CollaborativeRecommendations handles GET /api/v1/recommendations/user/{userID}/collaborative.
//
// @Summary Collaborative candidates for a user
// @Description Titles liked by the user's nearest neighbours, ranked by how many neighbours
// @Description like them, excluding the user's own top-quartile titles.
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User id"
// @Param n query int false "Number of candidates" minimum(1) maximum(1000)
// @Success 200 {object} models.APIResponse{data=models.CollaborativeCandidates}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown user or user without ratings"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Router /recommendations/user/{userID}/collaborative [get]
func (h *Handler) CollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseCollaborativeParams(r, h.engine.DefaultHybridRequest(0).TopN)
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	items, err := h.engine.Collaborative(ctx, params.UserID, params.N)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if items == nil {
		items = []recommend.RecommendedItem{}
	}
	respondData(w, r, models.CollaborativeCandidates{
		UserID: params.UserID,
		N:      params.N,
		Items:  items,
	}, start)
}
