// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
)

// EngineObserver exports recommendation engine events to Prometheus.
type EngineObserver struct{}

var _ recommend.Observer = EngineObserver{}

// NewEngineObserver returns an observer for recommend.Engine.SetObserver.
func NewEngineObserver() EngineObserver {
	return EngineObserver{}
}

// ObserveRequest records the latency and failure of an engine operation.
func (EngineObserver) ObserveRequest(operation string, duration time.Duration, err error) {
	RecommendRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		RecommendRequestErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveLookupMisses counts names or ids skipped during a request.
func (EngineObserver) ObserveLookupMisses(operation string, count int) {
	if count > 0 {
		RecommendLookupMisses.WithLabelValues(operation).Add(float64(count))
	}
}

// ObserveNeighborCache records a neighbour cache lookup per embedding space.
func (EngineObserver) ObserveNeighborCache(space recommend.Space, hit bool) {
	RecordCacheLookup("neighbor_"+space.String(), hit)
}

// ObserveSnapshotLoad records a load attempt. A failed load leaves the gauges
// of the previous snapshot in place, matching what is still being served.
//
//nolint:gocritic // recommend.Status is passed by value per the Observer interface
func (EngineObserver) ObserveSnapshotLoad(status recommend.Status, duration time.Duration, err error) {
	SnapshotLoadDuration.Observe(duration.Seconds())
	if err != nil {
		SnapshotLoads.WithLabelValues("failure").Inc()
		return
	}

	SnapshotLoads.WithLabelValues("success").Inc()
	SnapshotLastSuccess.Set(float64(time.Now().Unix()))
	SnapshotVersion.Set(float64(status.Version))
	SnapshotEntities.WithLabelValues("users").Set(float64(status.Users))
	SnapshotEntities.WithLabelValues("items").Set(float64(status.Items))
	SnapshotEntities.WithLabelValues("ratings").Set(float64(status.Ratings))
	SnapshotEntities.WithLabelValues("synopses").Set(float64(status.Synopses))
}
