// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package logging

import (
	"github.com/rs/zerolog"
)

// AdminAuditLogger records access to the admin endpoints.
// Tokens are never logged in full.
type AdminAuditLogger struct {
	logger zerolog.Logger
}

// NewAdminAuditLogger creates an audit logger on top of the given logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAdminAuditLogger(logger zerolog.Logger) *AdminAuditLogger {
	return &AdminAuditLogger{
		logger: logger.With().Str("component", "admin_audit").Logger(),
	}
}

// LogAccessGranted logs an authorised admin request.
func (l *AdminAuditLogger) LogAccessGranted(subject, method, path, ip string) {
	l.logger.Info().
		Str("event", "admin_access").
		Str("status", "success").
		Str("subject", subject).
		Str("method", method).
		Str("path", path).
		Str("ip", ip).
		Msg("")
}

// LogAccessDenied logs a rejected admin request. The token is masked.
func (l *AdminAuditLogger) LogAccessDenied(token, reason, method, path, ip string) {
	l.logger.Warn().
		Str("event", "admin_access").
		Str("status", "failed").
		Str("token", SanitizeToken(token)).
		Str("reason", reason).
		Str("method", method).
		Str("path", path).
		Str("ip", ip).
		Msg("")
}

// LogReload logs the outcome of an admin-triggered snapshot reload request.
func (l *AdminAuditLogger) LogReload(subject string, accepted bool) {
	l.logger.Info().
		Str("event", "snapshot_reload").
		Str("subject", subject).
		Bool("accepted", accepted).
		Msg("")
}

// SanitizeToken masks a token, showing only the first and last 4 characters.
//
//	"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..." -> "eyJh...pXVC"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
