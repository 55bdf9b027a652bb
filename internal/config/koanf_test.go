// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "") // registers restore on cleanup
		if err := os.Unsetenv(name); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8650 {
		t.Errorf("Server.Port = %d, want 8650", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/animerec.duckdb" {
		t.Errorf("Database.Path = %q, want /data/animerec.duckdb", cfg.Database.Path)
	}
	if !cfg.Database.PreserveInsertionOrder {
		t.Error("Database.PreserveInsertionOrder should default to true")
	}
	if cfg.Dataset.MinUserRatings != 400 {
		t.Errorf("Dataset.MinUserRatings = %d, want 400", cfg.Dataset.MinUserRatings)
	}
	if cfg.Recommend.UserWeight != 0.5 || cfg.Recommend.ContentWeight != 0.5 {
		t.Errorf("weights = %v/%v, want 0.5/0.5", cfg.Recommend.UserWeight, cfg.Recommend.ContentWeight)
	}
	if cfg.Recommend.TopN != 10 {
		t.Errorf("Recommend.TopN = %d, want 10", cfg.Recommend.TopN)
	}
	if cfg.Refresh.Interval != 6*time.Hour {
		t.Errorf("Refresh.Interval = %v, want 6h", cfg.Refresh.Interval)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DUCKDB_PATH", "database.path"},
		{"DUCKDB_MAX_MEMORY", "database.max_memory"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"DATASET_RATINGS_PATH", "dataset.ratings_path"},
		{"DATASET_MIN_USER_RATINGS", "dataset.min_user_ratings"},
		{"DATASET_ITEM_EMBEDDINGS_PATH", "dataset.item_embeddings_path"},
		{"RECOMMEND_USER_WEIGHT", "recommend.user_weight"},
		{"RECOMMEND_TOP_N", "recommend.top_n"},
		{"CACHE_RESULT_TTL", "cache.result_ttl"},
		{"JWT_SECRET", "security.jwt_secret"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"REFRESH_INTERVAL", "refresh.interval"},
		{"log_format", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(path, []byte("test: true"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Remove(path) })

		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		custom := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("test: true"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, custom)
		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH with non-existent file falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATASET_MIN_USER_RATINGS", "50")
	t.Setenv("RECOMMEND_USER_WEIGHT", "0.7")
	t.Setenv("REFRESH_INTERVAL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Dataset.MinUserRatings != 50 {
		t.Errorf("Dataset.MinUserRatings = %d, want 50", cfg.Dataset.MinUserRatings)
	}
	if cfg.Recommend.UserWeight != 0.7 {
		t.Errorf("Recommend.UserWeight = %v, want 0.7", cfg.Recommend.UserWeight)
	}
	if cfg.Refresh.Interval != 30*time.Minute {
		t.Errorf("Refresh.Interval = %v, want 30m", cfg.Refresh.Interval)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example.org" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.ContentWeight != 0.5 {
		t.Errorf("Recommend.ContentWeight = %v, want 0.5 (default)", cfg.Recommend.ContentWeight)
	}
}

// TestLoadWithKoanfConfigFile tests file values and their override by env vars
func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
database:
  path: /tmp/test.duckdb
dataset:
  min_user_ratings: 10
  user_embeddings_path: /tmp/users.parquet
  item_embeddings_path: /tmp/items.parquet
recommend:
  top_n: 20
  content_weight: 0.8
security:
  auth_mode: none
  cors_origins:
    - https://one.example.org
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100 (env over file)", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/test.duckdb" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if !cfg.Dataset.HasEmbeddingFiles() {
		t.Error("HasEmbeddingFiles() = false, want true")
	}
	if cfg.Recommend.TopN != 20 || cfg.Recommend.ContentWeight != 0.8 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Security.AuthMode != "none" {
		t.Errorf("Security.AuthMode = %q, want none", cfg.Security.AuthMode)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://one.example.org" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_ValidationFailure(t *testing.T) {
	clearConfigEnv(t)

	// jwt mode without a secret
	if _, err := LoadWithKoanf(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("LoadWithKoanf() error = %v, want JWT_SECRET validation error", err)
	}
}

func TestLoadWithKoanf_MalformedFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() error = nil, want parse error")
	}
}
