// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "errors"

// Sentinel errors returned by the recommendation core.
// Callers classify failures with errors.Is; the wrapped message carries the offending id or name.
var (
	// ErrUnknownEntity indicates an id or index absent from an encode/decode map.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrNoRatings indicates a user without any rating history.
	ErrNoRatings = errors.New("no ratings for user")

	// ErrMissingMetadata indicates an item absent from the metadata or synopsis tables.
	ErrMissingMetadata = errors.New("missing item metadata")

	// ErrDegenerateRange indicates a percentile over values where min == max.
	// The threshold collapses to the minimum so every value qualifies.
	ErrDegenerateRange = errors.New("degenerate rating range")

	// ErrNameResolutionFailed indicates an item reference that matches no usable item.
	ErrNameResolutionFailed = errors.New("item name resolution failed")

	// ErrNoSnapshot indicates the engine has not loaded any data yet.
	ErrNoSnapshot = errors.New("no snapshot loaded")

	// ErrInvalidEmbedding indicates a malformed matrix or id map.
	ErrInvalidEmbedding = errors.New("invalid embedding")

	// ErrLoadInProgress indicates a concurrent snapshot load was refused.
	ErrLoadInProgress = errors.New("snapshot load already in progress")

	// ErrNoProvider indicates Load was called before SetProviders.
	ErrNoProvider = errors.New("no data provider configured")
)
