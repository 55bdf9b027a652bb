// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package models defines the HTTP response bodies of the animerec API.

Every endpoint wraps its payload in APIResponse:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 12}}

Payload types embed the engine's own result types (recommend.Neighbor,
recommend.RecommendedItem, ...) so the JSON field names are defined once,
next to the data they describe.
*/
package models
