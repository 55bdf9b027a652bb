// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/animerec/internal/auth"
	"github.com/tomtom215/animerec/internal/middleware"
)

// compressionLevel is the gzip level of chi's Compress middleware.
const compressionLevel = 5

// Router wires handlers, the admin guard and middleware into a chi router.
type Router struct {
	handler       *Handler
	guard         *auth.Guard
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, guard *auth.Guard, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		guard:         guard,
		chiMiddleware: chiMw,
	}
}

// SetupChi builds the HTTP handler.
//
// Health probes sit outside the rate limiter so orchestrators are never
// throttled. Admin routes additionally pass through the guard.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.Live)
		r.Get("/ready", h.Ready)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

		r.Get("/status", h.Status)

		r.Get("/recommendations/user/{userID}", h.HybridRecommendations)
		r.Get("/recommendations/user/{userID}/collaborative", h.CollaborativeRecommendations)

		r.Get("/users/{userID}/similar", h.SimilarUsers)
		r.Get("/users/{userID}/preferences", h.UserPreferences)

		r.Get("/items/similar", h.SimilarItems)
		r.Get("/items/{ref}", h.Item)

		// Without a guard the admin routes are not mounted at all.
		if router.guard != nil {
			r.Route("/admin", func(r chi.Router) {
				r.Use(router.guard.RequireAdmin)
				r.Get("/artifacts", h.Artifacts)
				r.Post("/reload", h.Reload)
			})
		}
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
