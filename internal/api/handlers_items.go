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

// SimilarItems handles GET /api/v1/items/similar.
//
// @Summary Similar items
// @Description Items whose embeddings are closest to (or furthest from) the referenced item.
// @Description Reference the item with exactly one of id or name.
// @Tags Items
// @Produce json
// @Param id query int false "Item id"
// @Param name query string false "Item display name"
// @Param k query int false "Number of neighbours" minimum(1) maximum(1000)
// @Param mode query string false "nearest or furthest" Enums(nearest, furthest)
// @Success 200 {object} models.APIResponse{data=models.SimilarItems}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 404 {object} models.APIResponse "Unknown item"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Router /items/similar [get]
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, verr := parseSimilarItemsParams(r, h.defaultK)
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ref := params.Ref()
	items, err := h.engine.SimilarItems(ctx, ref, params.K, parseMode(params.Mode))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	if items == nil {
		items = []recommend.SimilarItem{}
	}
	respondData(w, r, models.SimilarItems{
		Query: ref.String(),
		K:     params.K,
		Mode:  params.Mode,
		Items: items,
	}, start)
}

// Item handles GET /api/v1/items/{ref}.
//
// @Summary Item details
// @Description Metadata and synopsis of an item. A numeric ref is an id; pass by=name to
// @Description look up a title that is itself a number.
// @Tags Items
// @Produce json
// @Param ref path string true "Item id or display name"
// @Param by query string false "Force the reference kind" Enums(id, name)
// @Success 200 {object} models.APIResponse{data=recommend.ItemDetail}
// @Failure 400 {object} models.APIResponse "Invalid reference"
// @Failure 404 {object} models.APIResponse "Unknown item"
// @Failure 503 {object} models.APIResponse "No snapshot loaded"
// @Router /items/{ref} [get]
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ref, verr := parseItemRef(r)
	if verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	detail, err := h.engine.Item(ctx, ref)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondData(w, r, detail, start)
}
