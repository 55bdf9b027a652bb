// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/animerec/internal/recommend"
)

// Error codes returned in APIError.Code.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeSnapshotUnavailable = "SNAPSHOT_UNAVAILABLE"
	CodeTimeout             = "TIMEOUT"
	CodeCanceled            = "REQUEST_CANCELED"
	CodeInternal            = "INTERNAL_ERROR"
	CodeNotConfigured       = "NOT_CONFIGURED"
	CodeReloadThrottled     = "RELOAD_THROTTLED"
)

// statusClientClosedRequest is the nginx convention for a client that went away.
const statusClientClosedRequest = 499

// ErrNotConfigured is returned when an optional component is not wired in.
var ErrNotConfigured = errors.New("component not configured")

// classifyError maps an engine error to an HTTP status, error code and
// client-facing message.
func classifyError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, recommend.ErrNoSnapshot):
		return http.StatusServiceUnavailable, CodeSnapshotUnavailable, "Recommendation data is not loaded yet"
	case errors.Is(err, recommend.ErrUnknownEntity),
		errors.Is(err, recommend.ErrNoRatings),
		errors.Is(err, recommend.ErrNameResolutionFailed),
		errors.Is(err, recommend.ErrMissingMetadata):
		return http.StatusNotFound, CodeNotFound, sanitizeLogValue(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout, "Request timed out"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, CodeCanceled, "Request canceled"
	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable, CodeNotConfigured, "Feature is not configured"
	default:
		return http.StatusInternalServerError, CodeInternal, "Internal server error"
	}
}

// respondEngineError classifies err and writes the matching error envelope.
// Not-found outcomes are expected traffic and are not logged.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	if status == http.StatusNotFound || status == statusClientClosedRequest {
		respondError(w, r, status, code, message, nil)
		return
	}
	respondError(w, r, status, code, message, err)
}
