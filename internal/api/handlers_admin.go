// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/auth"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend/storage"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

// Artifacts handles GET /api/v1/admin/artifacts.
//
// @Summary List embedding artifacts
// @Description Metadata of the latest archived version of every embedding artifact, sorted by name
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.ArtifactList}
// @Failure 401 {object} models.APIResponse "Missing or invalid token"
// @Failure 403 {object} models.APIResponse "Token lacks the admin role"
// @Failure 503 {object} models.APIResponse "Artifact store disabled"
// @Router /admin/artifacts [get]
func (h *Handler) Artifacts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.artifacts == nil {
		respondEngineError(w, r, ErrNotConfigured)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	artifacts, err := h.artifacts.ListArtifacts(ctx)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if artifacts == nil {
		artifacts = []storage.ArtifactMetadata{}
	}
	respondData(w, r, models.ArtifactList{
		Count:     len(artifacts),
		Artifacts: artifacts,
	}, start)
}

// Reload handles POST /api/v1/admin/reload.
//
// @Summary Reload the snapshot
// @Description Queues a snapshot reload. Requests arriving while one is queued are coalesced.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 202 {object} models.APIResponse{data=models.ReloadAccepted}
// @Failure 401 {object} models.APIResponse "Missing or invalid token"
// @Failure 403 {object} models.APIResponse "Token lacks the admin role"
// @Failure 429 {object} models.APIResponse "Reload requested too soon after the previous one"
// @Failure 503 {object} models.APIResponse "Reload disabled"
// @Router /admin/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		respondEngineError(w, r, ErrNotConfigured)
		return
	}

	subject := auth.SubjectFromContext(r.Context())
	err := h.reloader.Trigger(subject)
	if h.audit != nil {
		h.audit.LogReload(subject, err == nil)
	}

	switch {
	case errors.Is(err, services.ErrTriggerThrottled):
		respondError(w, r, http.StatusTooManyRequests, CodeReloadThrottled, "Reload requested too soon, try again later", nil)
		return
	case err != nil:
		respondEngineError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusAccepted, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.ReloadAccepted{
			Queued:          true,
			RequestedBy:     subject,
			RequestedAt:     time.Now().UTC(),
			SnapshotVersion: h.engine.Status().Version,
		},
	})
}
