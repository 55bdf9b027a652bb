// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Refresh triggers.
const (
	TriggerStartup = "startup"
	TriggerTimer   = "timer"
	TriggerManual  = "manual"
)

// ErrTriggerThrottled is returned by Trigger when manual reloads arrive faster
// than the configured minimum interval.
var ErrTriggerThrottled = errors.New("refresh trigger throttled")

// SnapshotLoader rebuilds the engine snapshot.
// Satisfied by *recommend.Engine.
type SnapshotLoader interface {
	Load(ctx context.Context) error
	Status() recommend.Status
}

// ResultPurger drops cached responses built from an older snapshot.
// Satisfied by *cache.ResultStore.
type ResultPurger interface {
	Purge() error
}

// PrepareFunc re-runs dataset preparation before a reload.
type PrepareFunc func(ctx context.Context) error

// RefreshServiceConfig holds configuration for the refresh service.
type RefreshServiceConfig struct {
	// Interval between scheduled refreshes. Zero disables the timer;
	// manual triggers still work.
	Interval time.Duration

	// MinTriggerInterval is the minimum spacing of accepted manual triggers.
	// Zero accepts every trigger.
	MinTriggerInterval time.Duration

	// Timeout bounds one refresh run (prepare plus load). Zero means no bound.
	Timeout time.Duration
}

// RefreshService keeps the engine snapshot current.
// It reloads on a ticker and on demand through Trigger.
type RefreshService struct {
	loader  SnapshotLoader
	purger  ResultPurger
	prepare PrepareFunc
	config  RefreshServiceConfig
	limiter *rate.Limiter
	trigger chan string
	logger  zerolog.Logger
	name    string
}

// NewRefreshService creates a refresh service for the given loader.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(loader SnapshotLoader, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	limit := rate.Inf
	if cfg.MinTriggerInterval > 0 {
		limit = rate.Every(cfg.MinTriggerInterval)
	}
	return &RefreshService{
		loader:  loader,
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
		trigger: make(chan string, 1),
		logger:  logger.With().Str("service", "refresh").Logger(),
		name:    "refresh-service",
	}
}

// SetResultPurger registers the response cache to purge after each successful reload.
func (s *RefreshService) SetResultPurger(p ResultPurger) {
	s.purger = p
}

// SetPrepare registers a dataset preparation step run before each reload.
func (s *RefreshService) SetPrepare(fn PrepareFunc) {
	s.prepare = fn
}

// Trigger requests a reload. Requests arriving while one is already queued
// are coalesced into it. It returns ErrTriggerThrottled when the rate limit
// rejects the request.
func (s *RefreshService) Trigger(subject string) error {
	if !s.limiter.Allow() {
		metrics.RefreshTriggersRejected.Inc()
		s.logger.Warn().Str("subject", subject).Msg("manual refresh throttled")
		return ErrTriggerThrottled
	}

	select {
	case s.trigger <- subject:
		s.logger.Info().Str("subject", subject).Msg("manual refresh queued")
	default:
		s.logger.Debug().Str("subject", subject).Msg("manual refresh already pending")
	}
	return nil
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Dur("min_trigger_interval", s.config.MinTriggerInterval).
		Bool("reprepare", s.prepare != nil).
		Msg("refresh service starting")

	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("refresh service shutting down")
			return ctx.Err()

		case <-tick:
			if err := s.Refresh(ctx, TriggerTimer); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled refresh failed")
			}

		case subject := <-s.trigger:
			if err := s.Refresh(ctx, TriggerManual); err != nil {
				s.logger.Warn().Err(err).Str("subject", subject).Msg("manual refresh failed")
			}
		}
	}
}

// Refresh runs one refresh synchronously: optional preparation, snapshot load,
// then a purge of cached responses. A failed load keeps the previous snapshot.
func (s *RefreshService) Refresh(ctx context.Context, trigger string) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.refresh(ctx)
	metrics.RecordRefresh(trigger, err)

	log := logging.Ctx(ctx)
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Dur("duration", time.Since(start)).Msg("snapshot refresh failed")
		return err
	}

	status := s.loader.Status()
	log.Info().
		Str("trigger", trigger).
		Int64("version", status.Version).
		Int("users", status.Users).
		Int("items", status.Items).
		Dur("duration", time.Since(start)).
		Msg("snapshot refreshed")
	return nil
}

func (s *RefreshService) refresh(ctx context.Context) error {
	if s.prepare != nil {
		if err := s.prepare(ctx); err != nil {
			return fmt.Errorf("prepare dataset: %w", err)
		}
	}

	if err := s.loader.Load(ctx); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	// Keys carry the snapshot version, so stale entries could never be served;
	// purging only reclaims the space early.
	if s.purger != nil {
		if err := s.purger.Purge(); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("failed to purge result cache")
		}
	}
	return nil
}

// String identifies the service in supervisor logs.
func (s *RefreshService) String() string {
	return s.name
}
