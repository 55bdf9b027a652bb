// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package database

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Source is everything a snapshot load reads from storage.
type Source interface {
	recommend.DataProvider
	recommend.EmbeddingProvider
}

// BreakerSettings configures the circuit breaker around snapshot loads.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	MinRequests uint32
	FailureRate float64
}

// DefaultBreakerSettings returns the production breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "snapshot-source",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		MinRequests: 10,
		FailureRate: 0.6,
	}
}

// BreakerProvider wraps a Source with the circuit breaker pattern so a failing
// database stops being hammered by periodic reloads. Context cancellation by the
// caller is not counted as a failure.
type BreakerProvider struct {
	source Source
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewBreakerProvider creates a BreakerProvider around source.
func NewBreakerProvider(source Source, settings BreakerSettings) *BreakerProvider {
	name := settings.Name

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRate

			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerProvider{
		source: source,
		cb:     cb,
		name:   name,
	}
}

// State returns the current breaker state as a string.
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

// execute wraps a source call with circuit breaker protection
func (b *BreakerProvider) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
			if isConnectionError(err) {
				logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Connection failure")
			}
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// run executes fn through the breaker and restores its static result type.
func run[T any](b *BreakerProvider, fn func() (T, error)) (T, error) {
	result, err := b.execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, _ := result.(T) // a nil result yields the zero value
	return typed, nil
}

// Ratings implements recommend.DataProvider with circuit breaker protection.
func (b *BreakerProvider) Ratings(ctx context.Context) ([]recommend.Rating, error) {
	return run(b, func() ([]recommend.Rating, error) { return b.source.Ratings(ctx) })
}

// Items implements recommend.DataProvider with circuit breaker protection.
func (b *BreakerProvider) Items(ctx context.Context) ([]recommend.ItemMetadata, error) {
	return run(b, func() ([]recommend.ItemMetadata, error) { return b.source.Items(ctx) })
}

// Synopses implements recommend.DataProvider with circuit breaker protection.
func (b *BreakerProvider) Synopses(ctx context.Context) ([]recommend.Synopsis, error) {
	return run(b, func() ([]recommend.Synopsis, error) { return b.source.Synopses(ctx) })
}

// Embeddings implements recommend.EmbeddingProvider with circuit breaker protection.
func (b *BreakerProvider) Embeddings(ctx context.Context, space recommend.Space) (*recommend.Embedding, error) {
	return run(b, func() (*recommend.Embedding, error) { return b.source.Embeddings(ctx, space) })
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
