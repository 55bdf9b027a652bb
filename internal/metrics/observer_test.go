// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/animerec/internal/recommend"
)

func TestEngineObserver_ObserveRequest(t *testing.T) {
	obs := NewEngineObserver()

	before := getHistogramCount(t, RecommendRequestDuration.WithLabelValues("test_op"))
	obs.ObserveRequest("test_op", 3*time.Millisecond, nil)
	obs.ObserveRequest("test_op", 5*time.Millisecond, errors.New("unknown user"))

	if got := getHistogramCount(t, RecommendRequestDuration.WithLabelValues("test_op")); got != before+2 {
		t.Errorf("sample count = %d, want %d", got, before+2)
	}
	if got := testutil.ToFloat64(RecommendRequestErrors.WithLabelValues("test_op")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestEngineObserver_ObserveLookupMisses(t *testing.T) {
	obs := NewEngineObserver()

	obs.ObserveLookupMisses("test_misses", 3)
	obs.ObserveLookupMisses("test_misses", 0)

	if got := testutil.ToFloat64(RecommendLookupMisses.WithLabelValues("test_misses")); got != 3 {
		t.Errorf("lookup misses = %v, want 3", got)
	}
}

func TestEngineObserver_ObserveNeighborCache(t *testing.T) {
	obs := NewEngineObserver()

	hitsBefore := testutil.ToFloat64(CacheHits.WithLabelValues("neighbor_item"))
	missesBefore := testutil.ToFloat64(CacheMisses.WithLabelValues("neighbor_user"))

	obs.ObserveNeighborCache(recommend.SpaceItem, true)
	obs.ObserveNeighborCache(recommend.SpaceUser, false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("neighbor_item")); got != hitsBefore+1 {
		t.Errorf("neighbor_item hits = %v, want %v", got, hitsBefore+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("neighbor_user")); got != missesBefore+1 {
		t.Errorf("neighbor_user misses = %v, want %v", got, missesBefore+1)
	}
}

func TestEngineObserver_ObserveSnapshotLoad(t *testing.T) {
	obs := NewEngineObserver()

	obs.ObserveSnapshotLoad(recommend.Status{
		Loaded:   true,
		Version:  4,
		Users:    120,
		Items:    900,
		Ratings:  45000,
		Synopses: 850,
	}, 2*time.Second, nil)

	if got := testutil.ToFloat64(SnapshotVersion); got != 4 {
		t.Errorf("snapshot version = %v, want 4", got)
	}
	if got := testutil.ToFloat64(SnapshotEntities.WithLabelValues("items")); got != 900 {
		t.Errorf("items = %v, want 900", got)
	}
	if testutil.ToFloat64(SnapshotLastSuccess) == 0 {
		t.Error("last success timestamp not set")
	}

	t.Run("failure keeps served gauges", func(t *testing.T) {
		failuresBefore := testutil.ToFloat64(SnapshotLoads.WithLabelValues("failure"))
		obs.ObserveSnapshotLoad(recommend.Status{Version: 9}, time.Second, errors.New("breaker open"))

		if got := testutil.ToFloat64(SnapshotVersion); got != 4 {
			t.Errorf("snapshot version = %v, want 4", got)
		}
		if got := testutil.ToFloat64(SnapshotLoads.WithLabelValues("failure")); got != failuresBefore+1 {
			t.Errorf("failures = %v, want %v", got, failuresBefore+1)
		}
	})
}
