// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data:
//     - Database: DuckDB holding the raw and prepared dataset plus embeddings
//     - Dataset: CSV and embedding file locations, preparation thresholds
//     - Artifacts: versioned embedding archive
//
//  2. Serving:
//     - Recommend: fusion sizes, default weights and limits
//     - Cache: neighbour memoisation and response cache
//     - Refresh: periodic and manual snapshot reloads
//     - Server: HTTP listener
//
//  3. Security and Observability:
//     - Security: admin JWT guard, CORS, rate limiting
//     - Logging: log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Refresh   RefreshConfig   `koanf:"refresh"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // 0 = runtime.NumCPU()
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // required for first-appearance encode order
}

// DatasetConfig locates the raw dataset exports and the trained embeddings.
type DatasetConfig struct {
	RatingsPath  string `koanf:"ratings_path"`
	AnimePath    string `koanf:"anime_path"`
	SynopsisPath string `koanf:"synopsis_path"`

	// Embedding files are parquet or CSV with one "embedding" list column;
	// row i is the vector of encoded index i.
	UserEmbeddingsPath string `koanf:"user_embeddings_path"`
	ItemEmbeddingsPath string `koanf:"item_embeddings_path"`

	// MinUserRatings drops users with fewer ratings during preparation.
	// Default: 400
	MinUserRatings int `koanf:"min_user_ratings"`

	// ImportOnStartup imports and prepares the CSVs (and embedding files when
	// configured) before the first snapshot load.
	ImportOnStartup bool `koanf:"import_on_startup"`
}

// HasEmbeddingFiles reports whether both embedding files are configured.
func (d *DatasetConfig) HasEmbeddingFiles() bool {
	return d.UserEmbeddingsPath != "" && d.ItemEmbeddingsPath != ""
}

// ArtifactsConfig controls the embedding archive.
type ArtifactsConfig struct {
	// Path of the archive directory. Empty disables archiving.
	Path string `koanf:"path"`

	// KeepVersions is how many versions of each embedding are retained.
	// Default: 3
	KeepVersions int `koanf:"keep_versions"`
}

// RecommendConfig holds recommendation engine settings.
// Field meanings match recommend.Config; see EngineConfig.
type RecommendConfig struct {
	UserNeighbors    int           `koanf:"user_neighbors"`
	Candidates       int           `koanf:"candidates"`
	ContentNeighbors int           `koanf:"content_neighbors"`
	TopN             int           `koanf:"top_n"`
	UserWeight       float64       `koanf:"user_weight"`
	ContentWeight    float64       `koanf:"content_weight"`
	DefaultK         int           `koanf:"default_k"`
	MaxK             int           `koanf:"max_k"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	LoadTimeout      time.Duration `koanf:"load_timeout"`
}

// EngineConfig converts the section into an engine configuration.
func (r *RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Fusion: recommend.FusionConfig{
			UserNeighbors:    r.UserNeighbors,
			Candidates:       r.Candidates,
			ContentNeighbors: r.ContentNeighbors,
			TopN:             r.TopN,
			UserWeight:       r.UserWeight,
			ContentWeight:    r.ContentWeight,
		},
		Limits: recommend.LimitsConfig{
			DefaultK:       r.DefaultK,
			MaxK:           r.MaxK,
			RequestTimeout: r.RequestTimeout,
		},
		Load: recommend.LoadConfig{
			Timeout: r.LoadTimeout,
		},
	}
}

// CacheConfig holds the neighbour cache and response cache settings.
type CacheConfig struct {
	// Enabled turns both caches on or off.
	Enabled bool `koanf:"enabled"`

	NeighborCapacity int           `koanf:"neighbor_capacity"`
	NeighborTTL      time.Duration `koanf:"neighbor_ttl"`

	// ResultPath is the badger directory for cached responses.
	// Empty keeps the store in memory.
	ResultPath string        `koanf:"result_path"`
	ResultTTL  time.Duration `koanf:"result_ttl"`
}

// SecurityConfig holds authentication and HTTP protection settings
type SecurityConfig struct {
	// AuthMode guards the admin endpoints: none or jwt.
	AuthMode  string `koanf:"auth_mode"`
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the lifetime of admin tokens issued with -issue-token.
	TokenTTL time.Duration `koanf:"token_ttl"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// RefreshConfig controls snapshot reloads.
type RefreshConfig struct {
	// Interval between periodic reloads. Zero disables the timer; manual
	// reloads through the admin API still work.
	Interval time.Duration `koanf:"interval"`

	// MinTriggerInterval is the minimum spacing of manual reloads.
	MinTriggerInterval time.Duration `koanf:"min_trigger_interval"`

	// Reprepare reruns dataset preparation before each reload.
	Reprepare bool `koanf:"reprepare"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
