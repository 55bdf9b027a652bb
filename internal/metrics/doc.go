// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics provides Prometheus instrumentation for Animerec.

All collectors are registered with the default registry through promauto and
are served on /metrics by the API router.

# Metric Families

Dataset (DuckDB):
  - dataset_operation_duration_seconds{operation}: import, prepare, embeddings
  - dataset_operation_errors_total{operation}
  - dataset_rows{table}: rows written by the last successful operation

Snapshots:
  - recommend_snapshot_load_duration_seconds
  - recommend_snapshot_loads_total{result}
  - recommend_snapshot_version
  - recommend_snapshot_entities{kind}: users, items, ratings, synopses
  - recommend_snapshot_last_success_timestamp

Recommendation requests:
  - recommend_request_duration_seconds{operation}
  - recommend_request_errors_total{operation}
  - recommend_lookup_misses_total{operation}

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Caches:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}, cache_entries{cache_type}
    where cache_type is neighbor_user, neighbor_item or result

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Refresh:
  - refresh_runs_total{trigger, result}
  - refresh_triggers_rejected_total

# Engine Observer

EngineObserver implements recommend.Observer:

	engine.SetObserver(metrics.NewEngineObserver())

# Example Queries

	# p95 hybrid latency
	histogram_quantile(0.95, rate(recommend_request_duration_seconds_bucket{operation="hybrid"}[5m]))

	# neighbour cache hit rate
	sum(rate(cache_hits_total{cache_type=~"neighbor_.*"}[5m]))
	  / (sum(rate(cache_hits_total{cache_type=~"neighbor_.*"}[5m])) + sum(rate(cache_misses_total{cache_type=~"neighbor_.*"}[5m])))
*/
package metrics
