// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"url source", func(c *Config) { c.Dataset.URL = "https://example.com/data/eurostat.csv?v=2" }, ""},
		{"no source", func(c *Config) { c.Dataset.Path = " " }, "DATASET_PATH"},
		{"bad url scheme", func(c *Config) { c.Dataset.URL = "ftp://example.com/x.csv" }, "scheme"},
		{"url without host", func(c *Config) { c.Dataset.URL = "https:///x.csv" }, "host"},
		{"url without timeout", func(c *Config) {
			c.Dataset.URL = "https://example.com/x.csv"
			c.Dataset.HTTPTimeout = 0
		}, "DATASET_HTTP_TIMEOUT"},
		{"negative reload interval", func(c *Config) { c.Dataset.ReloadInterval = -time.Second }, "DATASET_RELOAD_INTERVAL"},
		{"reload disabled", func(c *Config) { c.Dataset.ReloadInterval = 0 }, ""},
		{"negative year", func(c *Config) { c.Dataset.DefaultYearMin = -1 }, "default years"},
		{"year too large", func(c *Config) { c.Dataset.DefaultYearMax = 10000 }, "default years"},
		{"inverted window", func(c *Config) { c.Dataset.DefaultYearMin = 2023 }, "DEFAULT_YEAR_MIN"},
		{"single year window", func(c *Config) { c.Dataset.DefaultYearMin = 2022 }, ""},
		{"zero region count", func(c *Config) { c.Dataset.DefaultRegionCount = 0 }, "DEFAULT_REGION_COUNT"},
		{"export with path", func(c *Config) { c.Dataset.ExportFilename = "../evil" }, "EXPORT_FILENAME"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "postgres" }, "STORAGE_BACKEND"},
		{"duckdb without path", func(c *Config) {
			c.Storage.Backend = BackendDuckDB
			c.Storage.DuckDBPath = ""
		}, "DUCKDB_PATH"},
		{"bad zero delta", func(c *Config) { c.Analytics.ZeroDeltaDirection = "flat" }, "ZERO_DELTA_DIRECTION"},
		{"bad locale", func(c *Config) { c.Analytics.NarrativeLocale = "not a tag!" }, "NARRATIVE_LOCALE"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"negative cache ttl", func(c *Config) { c.API.CacheTTL = -time.Second }, "API_CACHE_TTL"},
		{"zero cache ttl", func(c *Config) { c.API.CacheTTL = 0 }, ""},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"rate window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development wildcard CORS should not warn")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("production wildcard CORS should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://dashboard.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestDatasetUsesHTTP(t *testing.T) {
	t.Parallel()

	d := defaultConfig().Dataset
	if d.UsesHTTP() {
		t.Error("default dataset should be a file")
	}
	d.URL = "https://example.com/x.csv"
	if !d.UsesHTTP() {
		t.Error("dataset with URL should use HTTP")
	}
}

func TestDatasetWithLocation(t *testing.T) {
	t.Parallel()

	base := DatasetConfig{Path: "data.csv", URL: "https://example.org/remote.csv", DefaultRegionCount: 3}

	tests := []struct {
		loc      string
		wantPath string
		wantURL  string
	}{
		{"local.csv", "local.csv", ""},
		{"http://127.0.0.1:8080/x.csv", "", "http://127.0.0.1:8080/x.csv"},
		{"https://example.org/other.csv", "", "https://example.org/other.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			t.Parallel()
			got := base.WithLocation(tt.loc)
			if got.Path != tt.wantPath || got.URL != tt.wantURL {
				t.Errorf("WithLocation(%q) = path %q url %q", tt.loc, got.Path, got.URL)
			}
			if got.DefaultRegionCount != 3 {
				t.Error("WithLocation dropped unrelated settings")
			}
		})
	}
	if base.Path != "data.csv" {
		t.Error("WithLocation mutated the receiver")
	}
}
