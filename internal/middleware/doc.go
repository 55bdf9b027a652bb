// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides chi-compatible HTTP middleware.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation ids in context
  - RequestLogger: one zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by route pattern

All three have the func(http.Handler) http.Handler shape and go straight
into r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)

Compression, panic recovery and CORS come from chi's own middleware and
go-chi/cors; rate limiting from go-chi/httprate.
*/
package middleware
