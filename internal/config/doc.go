// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package config provides centralized configuration management for Animerec.

Configuration is layered with Koanf v2. Built-in defaults load first, an
optional YAML file overrides them, and environment variables override both.
The merged result is unmarshaled into Config and validated before use.

# Config File

The file is searched in this order, first match wins:

  - $CONFIG_PATH
  - config.yaml, config.yml (working directory)
  - /etc/animerec/config.yaml, /etc/animerec/config.yml

Example:

	server:
	  port: 8650
	database:
	  path: /data/animerec.duckdb
	dataset:
	  ratings_path: /data/dataset/rating_complete.csv
	  anime_path: /data/dataset/anime.csv
	  synopsis_path: /data/dataset/anime_with_synopsis.csv
	  user_embeddings_path: /data/dataset/user_embeddings.parquet
	  item_embeddings_path: /data/dataset/item_embeddings.parquet
	  min_user_ratings: 400
	  import_on_startup: true
	recommend:
	  user_weight: 0.5
	  content_weight: 0.5
	  top_n: 10

# Environment Variables

Only mapped names are read; anything else in the environment is ignored.

Server:
  - HTTP_HOST, HTTP_PORT (default: 8650), SERVER_TIMEOUT, ENVIRONMENT

Database:
  - DUCKDB_PATH (default: /data/animerec.duckdb)
  - DUCKDB_MAX_MEMORY (default: 2GB), DUCKDB_THREADS
  - DUCKDB_PRESERVE_INSERTION_ORDER (default: true)

Dataset:
  - DATASET_RATINGS_PATH, DATASET_ANIME_PATH, DATASET_SYNOPSIS_PATH
  - DATASET_USER_EMBEDDINGS_PATH, DATASET_ITEM_EMBEDDINGS_PATH
  - DATASET_MIN_USER_RATINGS (default: 400)
  - DATASET_IMPORT_ON_STARTUP (default: false)

Artifacts:
  - ARTIFACTS_PATH (default: /data/artifacts), ARTIFACTS_KEEP_VERSIONS (default: 3)

Recommendation engine:
  - RECOMMEND_USER_NEIGHBORS, RECOMMEND_CANDIDATES, RECOMMEND_CONTENT_NEIGHBORS
  - RECOMMEND_TOP_N, RECOMMEND_USER_WEIGHT, RECOMMEND_CONTENT_WEIGHT
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K
  - RECOMMEND_REQUEST_TIMEOUT, RECOMMEND_LOAD_TIMEOUT

Cache:
  - CACHE_ENABLED, CACHE_NEIGHBOR_CAPACITY, CACHE_NEIGHBOR_TTL
  - CACHE_RESULT_PATH (empty = in-memory), CACHE_RESULT_TTL

Security:
  - AUTH_MODE: none or jwt (default: jwt)
  - JWT_SECRET: HMAC secret for admin tokens (min 32 chars)
  - JWT_TOKEN_TTL: lifetime of tokens issued with -issue-token (default: 24h)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Refresh:
  - REFRESH_INTERVAL (default: 6h, 0 disables), REFRESH_MIN_TRIGGER_INTERVAL
  - REFRESH_REPREPARE

# Thread Safety

Config is read-only after Load returns and may be shared freely.
*/
package config
