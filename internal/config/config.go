// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendDuckDB = "duckdb"
)

// Zero-delta trend directions
const (
	ZeroDeltaUnchanged = "unchanged"
	ZeroDeltaDecreased = "decreased"
)

// Config holds all application configuration
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Storage   StorageConfig   `koanf:"storage"`
	Geo       GeoConfig       `koanf:"geo"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Features  FeaturesConfig  `koanf:"features"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig describes where observations come from and the dashboard
// defaults derived from them.
type DatasetConfig struct {
	// Path is a local CSV file. Ignored when URL is set.
	Path string `koanf:"path"`

	// URL is an http(s) CSV location fetched through a circuit breaker.
	URL string `koanf:"url"`

	// HTTPTimeout bounds each request to URL.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// ReloadInterval is how often the source identity is polled.
	// Zero disables polling; POST /api/v1/dataset/reload still works.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	DefaultYearMin     int `koanf:"default_year_min"`
	DefaultYearMax     int `koanf:"default_year_max"`
	DefaultRegionCount int `koanf:"default_region_count"`

	// ExportFilename is the download name without extension.
	ExportFilename string `koanf:"export_filename"`
}

// UsesHTTP reports whether the dataset is fetched over HTTP.
func (d DatasetConfig) UsesHTTP() bool {
	return d.URL != ""
}

// WithLocation returns a copy that reads from loc instead of Path and URL.
// An http(s) location becomes the URL, anything else the Path.
func (d DatasetConfig) WithLocation(loc string) DatasetConfig {
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		d.URL, d.Path = loc, ""
	} else {
		d.Path, d.URL = loc, ""
	}
	return d
}

// StorageConfig selects where the loaded table is queried from.
type StorageConfig struct {
	Backend    string `koanf:"backend"`
	DuckDBPath string `koanf:"duckdb_path"`
	MaxMemory  string `koanf:"max_memory"`
	Threads    int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// GeoConfig points at an optional region coordinate table. An empty path
// uses the embedded table.
type GeoConfig struct {
	Path string `koanf:"path"`
}

// AnalyticsConfig tunes trend classification and narrative rendering.
type AnalyticsConfig struct {
	// ZeroDeltaDirection is "unchanged" (default) or "decreased". With
	// "decreased" a flat series is labelled as a decline.
	ZeroDeltaDirection string `koanf:"zero_delta_direction"`

	// NarrativeLocale is a BCP 47 tag used to format narrative numbers.
	NarrativeLocale string `koanf:"narrative_locale"`
}

// ZeroDeltaAsDecreased reports whether flat series are reported as decreased.
func (a AnalyticsConfig) ZeroDeltaAsDecreased() bool {
	return a.ZeroDeltaDirection == ZeroDeltaDecreased
}

// FeaturesConfig toggles optional dashboard capabilities.
type FeaturesConfig struct {
	Map   bool `koanf:"map"`
	Stats bool `koanf:"stats"`
	Reset bool `koanf:"reset"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// APIConfig holds API response settings
type APIConfig struct {
	// CacheTTL is the lifetime of cached analytics responses. Zero disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file, the
// optional .env file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
