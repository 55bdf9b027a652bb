// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package main is the entry point for the Animerec server.

Animerec serves hybrid anime recommendations: collaborative candidates taken
from a user's nearest neighbours in a trained user embedding space, fused with
content neighbours of those candidates in the item embedding space.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("animerec")
	├── DataSupervisor ("data-layer")
	│   ├── RefreshService (periodic and admin-triggered snapshot reloads)
	│   └── CacheMaintenanceService (LRU expiry sweep, badger GC)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB holding the raw CSV imports, prepared tables and embeddings
 4. Dataset import (optional): CSVs, preparation and embedding files
 5. Engine: circuit-breaker data source, embedding archive, neighbour LRU
 6. Initial snapshot load (failure leaves the service unready, not dead)
 7. Result cache: BadgerDB, in memory unless CACHE_RESULT_PATH is set
 8. HTTP: chi router, admin JWT guard, rate limiting, Prometheus, Swagger

# Configuration

Core environment variables:

	HTTP_PORT=8650
	DUCKDB_PATH=/data/animerec.duckdb
	DATASET_RATINGS_PATH=/data/rating_complete.csv
	DATASET_ANIME_PATH=/data/anime.csv
	DATASET_SYNOPSIS_PATH=/data/anime_with_synopsis.csv
	DATASET_USER_EMBEDDINGS_PATH=/data/user_embeddings.parquet
	DATASET_ITEM_EMBEDDINGS_PATH=/data/anime_embeddings.parquet
	DATASET_IMPORT_ON_STARTUP=true
	ARTIFACTS_PATH=/data/artifacts
	REFRESH_INTERVAL=1h
	AUTH_MODE=jwt               # jwt or none
	JWT_SECRET=<32+ chars>
	LOG_LEVEL=info
	LOG_FORMAT=json

# Admin Tokens

The reload and artifact endpoints require a bearer token with the admin role.
Tokens are issued offline with the configured secret:

	JWT_SECRET=... ./animerec -issue-token ops@example.org

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to 10 seconds, then the result cache and database are closed.
*/
package main
