// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/models"
)

// Status handles GET /api/v1/status.
//
// @Summary Service status
// @Description Snapshot version and counts, engine counters, effective configuration,
// @Description cache statistics and data source breaker state
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServiceStatus}
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := models.ServiceStatus{
		Snapshot: h.engine.Status(),
		Engine:   h.engine.GetMetrics(),
		Config:   h.engine.GetConfig(),
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.neighbors != nil {
		stats := h.neighbors.Stats()
		status.Cache.Neighbors = &stats
	}
	if h.results != nil {
		stats := h.results.Stats()
		status.Cache.Results = &stats
	}
	if h.breaker != nil {
		status.Breaker = h.breaker.State()
	}

	respondData(w, r, status, start)
}
