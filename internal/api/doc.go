// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP REST API layer for Animerec.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers calling the recommendation engine
  - Response formatting: the models.APIResponse envelope with request id and timing
  - Error handling: engine errors classified into HTTP status and error code
  - Rate limiting: go-chi/httprate keyed by client IP
  - CORS: go-chi/cors with explicitly configured origins

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/recommendations/user/{userID}                 user_weight, content_weight, top_n
	GET  /api/v1/recommendations/user/{userID}/collaborative   n
	GET  /api/v1/users/{userID}/similar                        k, mode
	GET  /api/v1/users/{userID}/preferences
	GET  /api/v1/items/similar                                 id | name, k, mode
	GET  /api/v1/items/{ref}                                   by
	GET  /api/v1/status
	GET  /api/v1/admin/artifacts                               admin token
	POST /api/v1/admin/reload                                  admin token
	GET  /metrics
	GET  /swagger/*

Error mapping:

	unknown user or item, user without ratings     404 NOT_FOUND
	unparseable or out-of-range parameter          400 VALIDATION_ERROR
	no snapshot loaded yet                         503 SNAPSHOT_UNAVAILABLE
	request deadline exceeded                      504 TIMEOUT
	anything else                                  500 INTERNAL_ERROR

Hybrid responses are cached in the badger ResultStore under a key that
includes the snapshot version, so a reload never serves stale results.
Cached responses carry metadata.cached = true.

Usage Example:

	handler := api.NewHandler(engine)
	handler.SetResultCache(results)
	handler.SetReloader(refresh)

	guard := auth.NewGuard(cfg.Security.AuthMode, jwtManager, audit)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, guard, chiMw)

	srv := &http.Server{Addr: ":8650", Handler: router.SetupChi()}
*/
package api
