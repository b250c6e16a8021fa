// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/regiotrend/config.yaml",
	"/etc/regiotrend/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the location of the optional .env file.
const DotEnvPathEnvVar = "DOTENV_PATH"

const defaultDotEnvPath = ".env"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:               "data_eurostat_clean.csv",
			URL:                "",
			HTTPTimeout:        30 * time.Second,
			ReloadInterval:     time.Minute,
			DefaultYearMin:     2010,
			DefaultYearMax:     2022,
			DefaultRegionCount: 3,
			ExportFilename:     "filtered_portugal_data",
		},
		Storage: StorageConfig{
			Backend:    BackendMemory,
			DuckDBPath: "/data/regiotrend.duckdb",
			MaxMemory:  "512MB",
			Threads:    0,
		},
		Geo: GeoConfig{
			Path: "", // embedded table
		},
		Analytics: AnalyticsConfig{
			ZeroDeltaDirection: ZeroDeltaUnchanged,
			NarrativeLocale:    "en",
		},
		Features: FeaturesConfig{
			Map:   true,
			Stats: true,
			Reset: true,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			CacheTTL: 5 * time.Minute,
		},
		Security: SecurityConfig{
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
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. .env File: Optional, merged into the process environment
//  4. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile is LoadWithKoanf with an explicit config file path. An empty
// path skips the file layer.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: .env values become ordinary environment variables
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Layer 4: Load environment variables (highest priority)
	// DATASET_PATH -> dataset.path
	// FEATURE_MAP -> features.map
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

// loadDotEnv loads DOTENV_PATH (or ./.env) when it exists. Variables that
// are already set in the environment win over the file.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
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
// Env vars arrive as strings; YAML lists are left alone.
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
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Dataset
	"dataset_path":            "dataset.path",
	"dataset_url":             "dataset.url",
	"dataset_http_timeout":    "dataset.http_timeout",
	"dataset_reload_interval": "dataset.reload_interval",
	"default_year_min":        "dataset.default_year_min",
	"default_year_max":        "dataset.default_year_max",
	"default_region_count":    "dataset.default_region_count",
	"export_filename":         "dataset.export_filename",

	// Storage
	"storage_backend":   "storage.backend",
	"duckdb_path":       "storage.duckdb_path",
	"duckdb_max_memory": "storage.max_memory",
	"duckdb_threads":    "storage.threads",

	// Geo
	"geo_path": "geo.path",

	// Analytics
	"zero_delta_direction": "analytics.zero_delta_direction",
	"narrative_locale":     "analytics.narrative_locale",

	// Feature flags
	"feature_map":   "features.map",
	"feature_stats": "features.stats",
	"feature_reset": "features.reset",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// API
	"api_cache_ttl": "api.cache_ttl",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DATASET_PATH -> dataset.path
//   - DUCKDB_PATH -> storage.duckdb_path
//   - FEATURE_STATS -> features.stats
//   - HTTP_PORT -> server.port
//
// Unmapped keys return "" so unrelated environment variables are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
