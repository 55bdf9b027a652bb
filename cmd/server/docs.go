// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Swagger general API info for swag init.
//
// @title Animerec API
// @version 1.0
// @description Hybrid anime recommendations fusing collaborative and content-based neighbours.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes are not limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses share the envelope:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "NOT_FOUND", "message": "user 42: unknown entity"},
// @description   "metadata": {"timestamp": "2026-03-01T12:34:56Z", "request_id": "..."}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/animerec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8650
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin JWT issued with -issue-token. Format: Bearer <token>
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Core
// @tag.description Service status
//
// @tag.name Recommendations
// @tag.description Hybrid and collaborative recommendations
//
// @tag.name Users
// @tag.description User neighbours and preferences
//
// @tag.name Items
// @tag.description Item neighbours and details
//
// @tag.name Admin
// @tag.description Snapshot reload and artifact inspection
package main
