// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpirySweeper drops expired in-memory cache entries.
type ExpirySweeper interface {
	CleanupExpired() int
}

// GarbageCollector reclaims space in a persistent cache.
type GarbageCollector interface {
	RunGC() error
}

// CacheMaintenanceService periodically sweeps expired neighbour cache entries
// and runs value log GC on the result store. Either target may be nil.
type CacheMaintenanceService struct {
	sweeper  ExpirySweeper
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheMaintenanceService creates the service. A non-positive interval
// defaults to five minutes.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheMaintenanceService(sweeper ExpirySweeper, gc GarbageCollector, interval time.Duration, logger zerolog.Logger) *CacheMaintenanceService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheMaintenanceService{
		sweeper:  sweeper,
		gc:       gc,
		interval: interval,
		logger:   logger.With().Str("service", "cache-maintenance").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce performs one maintenance pass.
func (s *CacheMaintenanceService) RunOnce() {
	if s.sweeper != nil {
		if n := s.sweeper.CleanupExpired(); n > 0 {
			s.logger.Debug().Int("removed", n).Msg("expired neighbour cache entries removed")
		}
	}
	if s.gc != nil {
		if err := s.gc.RunGC(); err != nil {
			s.logger.Warn().Err(err).Msg("result cache gc failed")
		}
	}
}

// String identifies the service in supervisor logs.
func (s *CacheMaintenanceService) String() string {
	return "cache-maintenance"
}
