// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/animerec/internal/middleware"
)

func TestRouter_Observability(t *testing.T) {
	srv := newTestServer(NewHandler(newTestEngine(t, true)), nil)

	t.Run("metrics", func(t *testing.T) {
		// Generate at least one labelled sample first.
		do(t, srv, http.MethodGet, "/api/v1/status", nil)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "api_requests_total") {
			t.Error("/metrics does not expose api_requests_total")
		}
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestRouter_Fallbacks(t *testing.T) {
	srv := newTestServer(NewHandler(newTestEngine(t, true)), nil)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"unknown route", http.MethodGet, "/api/v1/nothing", http.StatusNotFound, CodeNotFound},
		{"unknown top level route", http.MethodGet, "/nothing", http.StatusNotFound, CodeNotFound},
		{"wrong method", http.MethodPost, "/api/v1/status", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, srv, tt.method, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	srv := newTestServer(NewHandler(newTestEngine(t, true)), nil)

	// Header names are matched case-insensitively whatever spelling the client uses.
	for _, name := range []string{middleware.RequestIDHeader, "x-request-id", "X-Request-Id"} {
		t.Run(name, func(t *testing.T) {
			rec, env := do(t, srv, http.MethodGet, "/api/v1/health/live", http.Header{
				name: []string{"trace-abc"},
			})
			if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-abc" {
				t.Errorf("response %s = %q, want trace-abc", middleware.RequestIDHeader, got)
			}
			if env.Metadata.RequestID != "trace-abc" {
				t.Errorf("metadata.request_id = %q, want trace-abc", env.Metadata.RequestID)
			}
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://anime.example.org"}
	cfg.RateLimitDisabled = true
	srv := NewRouter(NewHandler(newTestEngine(t, true)), nil, NewChiMiddleware(cfg)).SetupChi()

	tests := []struct {
		origin string
		want   string
	}{
		{"https://anime.example.org", "https://anime.example.org"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}
