// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package countdown

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all solver configuration. It can be loaded from a
// YAML/JSON file with environment overrides.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after
// creation.
type Config struct {
	// Search contains engine settings.
	Search SearchConfig `json:"search" yaml:"search"`

	// Retry contains the outer tolerance-widening loop settings.
	Retry RetryConfig `json:"retry" yaml:"retry"`

	// Game contains puzzle generation settings.
	Game GameConfig `json:"game" yaml:"game"`

	// Observability contains observability settings.
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
}

// SearchConfig contains engine settings.
type SearchConfig struct {
	// MaxDepth bounds the search depth; 0 means unbounded.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

// RetryConfig contains the tolerance retry loop settings. The loop lives
// in the caller (the CLI); the core runs one search per tolerance.
type RetryConfig struct {
	InitialTolerance int `json:"initial_tolerance" yaml:"initial_tolerance"`
	MaxTolerance     int `json:"max_tolerance" yaml:"max_tolerance"`
}

// GameConfig contains puzzle generation settings.
type GameConfig struct {
	// LargeCount is how many large numbers generated instances include,
	// in [0, 4]. -1 draws the count at random per instance.
	LargeCount int `json:"large_count" yaml:"large_count"`
}

// ObservabilityConfig contains observability settings.
type ObservabilityConfig struct {
	TracingEnabled bool   `json:"tracing_enabled" yaml:"tracing_enabled"`
	LogLevel       string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			MaxDepth: 0,
		},
		Retry: RetryConfig{
			InitialTolerance: 0,
			MaxTolerance:     10,
		},
		Game: GameConfig{
			LargeCount: -1,
		},
		Observability: ObservabilityConfig{
			TracingEnabled: false,
			LogLevel:       "info",
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
//
// Inputs:
//   - configPath: Path to a YAML/JSON config file (optional, can be empty;
//     a missing file is not an error).
//
// Outputs:
//   - Config: Merged configuration.
//   - error: Non-nil if the file exists but is invalid, or the merged
//     configuration fails validation.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&config)

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadConfigFromEnv(config *Config) {
	if v := os.Getenv("COUNTDOWN_MAX_DEPTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Search.MaxDepth = i
		}
	}
	if v := os.Getenv("COUNTDOWN_INITIAL_TOLERANCE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Retry.InitialTolerance = i
		}
	}
	if v := os.Getenv("COUNTDOWN_MAX_TOLERANCE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Retry.MaxTolerance = i
		}
	}
	if v := os.Getenv("COUNTDOWN_LARGE_COUNT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Game.LargeCount = i
		}
	}
	if v := os.Getenv("COUNTDOWN_TRACING_ENABLED"); v != "" {
		config.Observability.TracingEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("COUNTDOWN_LOG_LEVEL"); v != "" {
		config.Observability.LogLevel = v
	}
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0")
	}
	if c.Retry.InitialTolerance < 0 {
		return fmt.Errorf("initial_tolerance must be >= 0")
	}
	if c.Retry.MaxTolerance < c.Retry.InitialTolerance {
		return fmt.Errorf("max_tolerance must be >= initial_tolerance")
	}
	if c.Game.LargeCount < -1 || c.Game.LargeCount > len(largePool) {
		return fmt.Errorf("large_count must be -1 or in [0, %d]", len(largePool))
	}
	return nil
}
