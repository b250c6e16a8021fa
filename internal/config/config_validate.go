// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Year bounds accepted for the default window; matches request validation.
const (
	minYear = 0
	maxYear = 9999
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if c.API.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDataset validates the dataset source and dashboard defaults
func (c *Config) validateDataset() error {
	d := c.Dataset

	if d.URL != "" {
		if err := validateSourceURL(d.URL, "DATASET_URL"); err != nil {
			return err
		}
		if d.HTTPTimeout <= 0 {
			return fmt.Errorf("DATASET_HTTP_TIMEOUT must be positive when DATASET_URL is set")
		}
	} else if strings.TrimSpace(d.Path) == "" {
		return fmt.Errorf("one of DATASET_PATH or DATASET_URL is required")
	}

	if d.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative")
	}

	if d.DefaultYearMin < minYear || d.DefaultYearMax > maxYear {
		return fmt.Errorf("default years must be between %d and %d", minYear, maxYear)
	}
	if d.DefaultYearMin > d.DefaultYearMax {
		return fmt.Errorf("DEFAULT_YEAR_MIN (%d) must not exceed DEFAULT_YEAR_MAX (%d)", d.DefaultYearMin, d.DefaultYearMax)
	}

	if d.DefaultRegionCount < 1 {
		return fmt.Errorf("DEFAULT_REGION_COUNT must be at least 1")
	}

	if d.ExportFilename == "" || strings.ContainsAny(d.ExportFilename, `/\`) {
		return fmt.Errorf("EXPORT_FILENAME must be a bare file name, got %q", d.ExportFilename)
	}

	return nil
}

// validateSourceURL accepts http(s) URLs with a host. Paths and query
// strings are allowed since they usually identify the CSV itself.
func validateSourceURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}

// validateStorage validates the storage backend selection
func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendMemory:
		return nil
	case BackendDuckDB:
		if c.Storage.DuckDBPath == "" {
			return fmt.Errorf("DUCKDB_PATH is required when STORAGE_BACKEND=duckdb")
		}
		if c.Storage.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must not be negative")
		}
		return nil
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: %s, %s", BackendMemory, BackendDuckDB)
	}
}

// validateAnalytics validates trend and narrative settings
func (c *Config) validateAnalytics() error {
	switch c.Analytics.ZeroDeltaDirection {
	case ZeroDeltaUnchanged, ZeroDeltaDecreased:
	default:
		return fmt.Errorf("ZERO_DELTA_DIRECTION must be one of: %s, %s", ZeroDeltaUnchanged, ZeroDeltaDecreased)
	}

	if _, err := language.Parse(c.Analytics.NarrativeLocale); err != nil {
		return fmt.Errorf("NARRATIVE_LOCALE %q is not a valid language tag: %w", c.Analytics.NarrativeLocale, err)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true when a production deployment accepts any origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
