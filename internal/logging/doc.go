// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package logging provides centralized zerolog-based structured logging for Animerec.
//
// JSON output is used in production and a console writer in development.
// A global logger is configured once at startup with Init; packages either log
// through the package-level helpers or receive a component logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	})
//
//	logging.Info().Int("users", n).Msg("Snapshot loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Neighbor lookup failed")
//
//	engine := recommend.NewEngine(cfg, logging.WithComponent("recommend"))
//
// # Context Fields
//
// The HTTP request ID middleware stores a request ID in the request context and
// background jobs attach a correlation ID; Ctx adds both to every line.
//
// # Suture Integration
//
// SlogHandler adapts zerolog to log/slog for sutureslog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// # Admin Audit
//
// AdminAuditLogger records access to the admin endpoints with masked tokens.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
