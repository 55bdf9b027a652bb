// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"

	"github.com/tomtom215/animerec/internal/models"
)

// Live reports that the process is serving HTTP.
//
// @Summary Liveness probe
// @Description Always returns 200 while the HTTP server is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Process is alive"
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   h.health("alive"),
	})
}

// Ready reports whether a snapshot is loaded and requests can be answered.
//
// @Summary Readiness probe
// @Description Returns 200 once the first snapshot has loaded, 503 before that
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Snapshot loaded"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "No snapshot yet"
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data:   h.health("unavailable"),
			Error: &models.APIError{
				Code:    CodeSnapshotUnavailable,
				Message: "Recommendation data is not loaded yet",
			},
		})
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   h.health("ready"),
	})
}

func (h *Handler) health(status string) models.HealthStatus {
	health := models.HealthStatus{Status: status}
	if snap, err := h.engine.Snapshot(); err == nil {
		health.SnapshotLoaded = true
		health.SnapshotVersion = snap.Version
	}
	return health
}
