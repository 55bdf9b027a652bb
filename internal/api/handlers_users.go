// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// SimilarUsers handles GET /api/v1/users/{userID}/similar.
//
// @Summary Similar users
// @Description Users whose embeddings are closest to (or furthest from) the given user
// @Tags Users
// @Produce json
// @Param userID path int true "User id"
// @Param k query int false "Number of neighbours" minimum(1) maximum(1000)
// @Param mode query string false "nearest or furthest" Enums(nearest, furthest)
// @Success 200 {object} models.APIResponse{data=models.SimilarUsers}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown user"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Router /users/{userID}/similar [get]
func (h *Handler) SimilarUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseSimilarUsersParams(r, h.defaultK)
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	users, err := h.engine.SimilarUsers(ctx, params.UserID, params.K, parseMode(params.Mode))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if users == nil {
		users = []recommend.Neighbor{}
	}
	respondData(w, r, models.SimilarUsers{
		UserID: params.UserID,
		K:      params.K,
		Mode:   params.Mode,
		Users:  users,
	}, start)
}

// UserPreferences handles GET /api/v1/users/{userID}/preferences.
//
// @Summary User preferences
// @Description Titles the user rated at or above their own 75th percentile
// @Tags Users
// @Produce json
// @Param userID path int true "User id"
// @Success 200 {object} models.APIResponse{data=models.UserPreferences}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "User without ratings"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Router /users/{userID}/preferences [get]
func (h *Handler) UserPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseUserParams(r)
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	prefs, err := h.engine.UserPreferences(ctx, params.UserID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if prefs == nil {
		prefs = []recommend.Preference{}
	}
	respondData(w, r, models.UserPreferences{
		UserID:      params.UserID,
		Count:       len(prefs),
		Preferences: prefs,
	}, start)
}
