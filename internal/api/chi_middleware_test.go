// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/metrics"
)

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Run("nil keeps defaults", func(t *testing.T) {
		cfg := ChiMiddlewareConfigFromSecurity(nil)
		if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
			t.Errorf("rate limit = %d/%v, want 100/1m", cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
			RateLimitReqs:     5,
			RateLimitWindow:   time.Second,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"https://a.example.org"},
		})
		if cfg.RateLimitRequests != 5 || cfg.RateLimitWindow != time.Second || !cfg.RateLimitDisabled {
			t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://a.example.org" {
			t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{})
		if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
			t.Errorf("rate limit = %d/%v, want 100/1m", cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
	})
}

// sumCounter totals every series of vec. The limiter runs before the
// subrouter matches, so the endpoint label is the mount pattern.
func sumCounter(t *testing.T, vec *prometheus.CounterVec) float64 {
	t.Helper()

	ch := make(chan prometheus.Metric, 16)
	go func() {
		vec.Collect(ch)
		close(ch)
	}()

	var total float64
	for m := range ch {
		var out dto.Metric
		if err := m.Write(&out); err != nil {
			t.Fatalf("write metric: %v", err)
		}
		total += out.GetCounter().GetValue()
	}
	return total
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Hour
	srv := NewRouter(NewHandler(newTestEngine(t, true)), nil, NewChiMiddleware(cfg)).SetupChi()

	const endpoint = "/api/v1/status"
	before := sumCounter(t, metrics.APIRateLimitHits)

	if rec, _ := do(t, srv, http.MethodGet, endpoint, nil); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec, env := do(t, srv, http.MethodGet, endpoint, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("error = %+v", env.Error)
	}
	if got := sumCounter(t, metrics.APIRateLimitHits); got != before+1 {
		t.Errorf("api_rate_limit_hits_total = %v, want %v", got, before+1)
	}

	// Probes stay outside the limiter.
	if rec, _ := do(t, srv, http.MethodGet, "/api/v1/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://anime.example.org"}
	mw := NewChiMiddleware(cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := mw.CORS()(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/status", nil)
	req.Header.Set("Origin", "https://anime.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code == http.StatusTeapot {
		t.Fatal("preflight reached the wrapped handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anime.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
