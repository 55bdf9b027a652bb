// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
)

// Auth modes.
const (
	AuthModeNone = "none"
	AuthModeJWT  = "jwt"
)

// AnonymousSubject is reported for admin calls when AuthMode is none.
const AnonymousSubject = "anonymous"

type contextKey string

// ClaimsContextKey holds the validated *Claims on admin requests.
const ClaimsContextKey contextKey = "claims"

// Guard protects admin routes with a bearer token.
type Guard struct {
	mode  string
	jwt   *JWTManager
	audit *logging.AdminAuditLogger
}

// NewGuard creates a guard. jwtManager may be nil when mode is none.
func NewGuard(mode string, jwtManager *JWTManager, audit *logging.AdminAuditLogger) *Guard {
	if mode == "" {
		mode = AuthModeJWT
	}
	return &Guard{mode: mode, jwt: jwtManager, audit: audit}
}

// RequireAdmin is chi middleware admitting only valid tokens with the admin role.
//
//	r.Route("/api/v1/admin", func(r chi.Router) {
//	    r.Use(guard.RequireAdmin)
//	    r.Post("/reload", h.Reload)
//	})
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.mode == AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			g.deny(w, r, "", "missing or malformed bearer token", http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		if g.jwt == nil {
			g.deny(w, r, token, "token validation not configured", http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		claims, err := g.jwt.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			g.deny(w, r, token, "invalid token", http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		if claims.Role != RoleAdmin {
			g.deny(w, r, token, "insufficient role "+claims.Role, http.StatusForbidden, "FORBIDDEN")
			return
		}

		if g.audit != nil {
			g.audit.LogAccessGranted(claims.Subject, r.Method, r.URL.Path, r.RemoteAddr)
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) deny(w http.ResponseWriter, r *http.Request, token, reason string, status int, code string) {
	if g.audit != nil {
		g.audit.LogAccessDenied(token, reason, r.Method, r.URL.Path, r.RemoteAddr)
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="animerec"`)
	}

	message := "Unauthorized"
	if status == http.StatusForbidden {
		message = "Forbidden: admin role required"
	}
	writeError(w, r, status, code, message)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// ClaimsFromContext returns the claims stored by RequireAdmin.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

// SubjectFromContext returns the admin subject, or AnonymousSubject when the
// request passed without a token.
func SubjectFromContext(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok && claims.Subject != "" {
		return claims.Subject
	}
	return AnonymousSubject
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := models.APIResponse{
		Status: models.StatusError,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{Code: code, Message: message},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode auth error")
	}
}
