// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/animerec/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/animerec/config.yaml",
	"/etc/animerec/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:        8650,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:                   "/data/animerec.duckdb",
			MaxMemory:              "2GB",
			Threads:                0,
			PreserveInsertionOrder: true,
		},
		Dataset: DatasetConfig{
			RatingsPath:     "/data/dataset/rating_complete.csv",
			AnimePath:       "/data/dataset/anime.csv",
			SynopsisPath:    "/data/dataset/anime_with_synopsis.csv",
			MinUserRatings:  400,
			ImportOnStartup: false,
		},
		Artifacts: ArtifactsConfig{
			Path:         "/data/artifacts",
			KeepVersions: 3,
		},
		Recommend: RecommendConfig{
			UserNeighbors:    engine.Fusion.UserNeighbors,
			Candidates:       engine.Fusion.Candidates,
			ContentNeighbors: engine.Fusion.ContentNeighbors,
			TopN:             engine.Fusion.TopN,
			UserWeight:       engine.Fusion.UserWeight,
			ContentWeight:    engine.Fusion.ContentWeight,
			DefaultK:         engine.Limits.DefaultK,
			MaxK:             engine.Limits.MaxK,
			RequestTimeout:   engine.Limits.RequestTimeout,
			LoadTimeout:      engine.Load.Timeout,
		},
		Cache: CacheConfig{
			Enabled:          true,
			NeighborCapacity: 10000,
			NeighborTTL:      30 * time.Minute,
			ResultPath:       "", // in-memory
			ResultTTL:        10 * time.Minute,
		},
		Security: SecurityConfig{
			AuthMode:          "jwt",
			JWTSecret:         "",
			TokenTTL:          24 * time.Hour,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Refresh: RefreshConfig{
			Interval:           6 * time.Hour,
			MinTriggerInterval: time.Minute,
			Reprepare:          false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// DUCKDB_PATH -> database.path
	// RECOMMEND_USER_WEIGHT -> recommend.user_weight
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":      "server.port",
	"http_host":      "server.host",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	// Database
	"duckdb_path":                     "database.path",
	"duckdb_max_memory":               "database.max_memory",
	"duckdb_threads":                  "database.threads",
	"duckdb_preserve_insertion_order": "database.preserve_insertion_order",

	// Dataset
	"dataset_ratings_path":         "dataset.ratings_path",
	"dataset_anime_path":           "dataset.anime_path",
	"dataset_synopsis_path":        "dataset.synopsis_path",
	"dataset_user_embeddings_path": "dataset.user_embeddings_path",
	"dataset_item_embeddings_path": "dataset.item_embeddings_path",
	"dataset_min_user_ratings":     "dataset.min_user_ratings",
	"dataset_import_on_startup":    "dataset.import_on_startup",

	// Artifacts
	"artifacts_path":          "artifacts.path",
	"artifacts_keep_versions": "artifacts.keep_versions",

	// Recommendation engine
	"recommend_user_neighbors":    "recommend.user_neighbors",
	"recommend_candidates":        "recommend.candidates",
	"recommend_content_neighbors": "recommend.content_neighbors",
	"recommend_top_n":             "recommend.top_n",
	"recommend_user_weight":       "recommend.user_weight",
	"recommend_content_weight":    "recommend.content_weight",
	"recommend_default_k":         "recommend.default_k",
	"recommend_max_k":             "recommend.max_k",
	"recommend_request_timeout":   "recommend.request_timeout",
	"recommend_load_timeout":      "recommend.load_timeout",

	// Cache
	"cache_enabled":           "cache.enabled",
	"cache_neighbor_capacity": "cache.neighbor_capacity",
	"cache_neighbor_ttl":      "cache.neighbor_ttl",
	"cache_result_path":       "cache.result_path",
	"cache_result_ttl":        "cache.result_ttl",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"jwt_token_ttl":       "security.token_ttl",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Refresh
	"refresh_interval":             "refresh.interval",
	"refresh_min_trigger_interval": "refresh.min_trigger_interval",
	"refresh_reprepare":            "refresh.reprepare",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//   - DATASET_MIN_USER_RATINGS -> dataset.min_user_ratings
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables
	// never pollute the config.
	return ""
}
