// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Fusion contains the sizes and default weights of the hybrid pipeline.
	Fusion FusionConfig `json:"fusion"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Load contains snapshot loading parameters.
	Load LoadConfig `json:"load"`
}

// FusionConfig holds the hybrid pipeline parameters.
type FusionConfig struct {
	// UserNeighbors is how many similar users feed the aggregator.
	// Default: 10.
	UserNeighbors int `json:"user_neighbors"`

	// Candidates is how many collaborative candidates the aggregator keeps.
	// Default: 10.
	Candidates int `json:"candidates"`

	// ContentNeighbors is how many similar items each candidate contributes.
	// Default: 10.
	ContentNeighbors int `json:"content_neighbors"`

	// TopN is the default length of the hybrid list.
	// Default: 10.
	TopN int `json:"top_n"`

	// UserWeight is the default weight of a collaborative name.
	// Default: 0.5.
	UserWeight float64 `json:"user_weight"`

	// ContentWeight is the default weight of a content hit.
	// Default: 0.5.
	ContentWeight float64 `json:"content_weight"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the neighbour count used when a request leaves k unset.
	DefaultK int `json:"default_k"`

	// MaxK caps any requested neighbour count or list length.
	MaxK int `json:"max_k"`

	// RequestTimeout bounds a single engine call.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// LoadConfig contains snapshot loading parameters.
type LoadConfig struct {
	// Timeout bounds a full snapshot load.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fusion: FusionConfig{
			UserNeighbors:    10,
			Candidates:       10,
			ContentNeighbors: 10,
			TopN:             DefaultTopN,
			UserWeight:       0.5,
			ContentWeight:    0.5,
		},
		Limits: LimitsConfig{
			DefaultK:       10,
			MaxK:           100,
			RequestTimeout: 10 * time.Second,
		},
		Load: LoadConfig{
			Timeout: 10 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Fusion.UserNeighbors < 1 {
		return fmt.Errorf("fusion.user_neighbors must be positive, got %d", c.Fusion.UserNeighbors)
	}
	if c.Fusion.Candidates < 1 {
		return fmt.Errorf("fusion.candidates must be positive, got %d", c.Fusion.Candidates)
	}
	if c.Fusion.ContentNeighbors < 1 {
		return fmt.Errorf("fusion.content_neighbors must be positive, got %d", c.Fusion.ContentNeighbors)
	}
	if c.Fusion.TopN < 1 {
		return fmt.Errorf("fusion.top_n must be positive, got %d", c.Fusion.TopN)
	}
	if c.Fusion.UserWeight < 0 {
		return fmt.Errorf("fusion.user_weight must be non-negative, got %f", c.Fusion.UserWeight)
	}
	if c.Fusion.ContentWeight < 0 {
		return fmt.Errorf("fusion.content_weight must be non-negative, got %f", c.Fusion.ContentWeight)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Fusion.TopN > c.Limits.MaxK {
		return fmt.Errorf("fusion.top_n must be <= limits.max_k, got %d > %d", c.Fusion.TopN, c.Limits.MaxK)
	}
	if c.Limits.RequestTimeout <= 0 {
		return fmt.Errorf("limits.request_timeout must be positive, got %v", c.Limits.RequestTimeout)
	}

	if c.Load.Timeout <= 0 {
		return fmt.Errorf("load.timeout must be positive, got %v", c.Load.Timeout)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	return &Config{
		Fusion: c.Fusion,
		Limits: c.Limits,
		Load:   c.Load,
	}
}

// FusionOptions converts the fusion section into pipeline options.
func (c *Config) FusionOptions() FusionOptions {
	return FusionOptions{
		UserNeighbors:    c.Fusion.UserNeighbors,
		Candidates:       c.Fusion.Candidates,
		ContentNeighbors: c.Fusion.ContentNeighbors,
		TopN:             c.Fusion.TopN,
	}
}

// MarshalJSON renders durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type limits struct {
		DefaultK       int    `json:"default_k"`
		MaxK           int    `json:"max_k"`
		RequestTimeout string `json:"request_timeout"`
	}
	type load struct {
		Timeout string `json:"timeout"`
	}
	return json.Marshal(&struct {
		Fusion FusionConfig `json:"fusion"`
		Limits limits       `json:"limits"`
		Load   load         `json:"load"`
	}{
		Fusion: c.Fusion,
		Limits: limits{
			DefaultK:       c.Limits.DefaultK,
			MaxK:           c.Limits.MaxK,
			RequestTimeout: c.Limits.RequestTimeout.String(),
		},
		Load: load{Timeout: c.Load.Timeout.String()},
	})
}
