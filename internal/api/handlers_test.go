// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/models"
)

func target(path string, kv ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		values.Add(kv[i], kv[i+1])
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	if rec := s.do(t, http.MethodGet, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("live = %d, want 200", rec.Code)
	}

	// Nothing has requested the dataset yet.
	if rec := s.do(t, http.MethodGet, "/api/v1/health/ready"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready before load = %d, want 503", rec.Code)
	}
	var health models.HealthStatus
	decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/health"), &health)
	if health.Status != "degraded" || health.DatasetLoaded {
		t.Errorf("health before load = %+v", health)
	}

	s.do(t, http.MethodGet, "/api/v1/regions")

	if rec := s.do(t, http.MethodGet, "/api/v1/health/ready"); rec.Code != http.StatusOK {
		t.Errorf("ready after load = %d, want 200", rec.Code)
	}
	decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/health"), &health)
	if health.Status != "healthy" || !health.DatasetLoaded || health.Rows != 10 {
		t.Errorf("health after load = %+v", health)
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/regions")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
	}

	var resp models.RegionsResponse
	env := decodeEnvelope(t, rec, &resp)
	want := []string{"Alentejo (NUTS 2021)", "Algarve", "Centro (PT) (NUTS 2021)", "Norte", "Área Metropolitana de Lisboa"}
	if !reflect.DeepEqual(resp.Regions, want) {
		t.Errorf("Regions = %v, want %v", resp.Regions, want)
	}
	if resp.YearMin != 2005 || resp.YearMax != 2022 || resp.Rows != 10 {
		t.Errorf("bounds = %d..%d rows %d", resp.YearMin, resp.YearMax, resp.Rows)
	}
	if resp.Version == "" || env.Metadata.DatasetVersion != resp.Version {
		t.Errorf("version = %q, metadata = %q", resp.Version, env.Metadata.DatasetVersion)
	}
}

func TestDashboardDefaults(t *testing.T) {
	t.Parallel()

	t.Run("first three regions and configured window", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)

		var q models.Query
		decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/dashboard/defaults"), &q)
		want := models.Query{
			Regions: []string{"Alentejo (NUTS 2021)", "Algarve", "Centro (PT) (NUTS 2021)"},
			YearMin: 2010,
			YearMax: 2022,
		}
		if !reflect.DeepEqual(q, want) {
			t.Errorf("defaults = %+v, want %+v", q, want)
		}
	})

	t.Run("window clamped to data", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, func(c *config.Config) {
			c.Dataset.DefaultYearMin = 2000
			c.Dataset.DefaultYearMax = 2030
		})

		var q models.Query
		decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/dashboard/defaults"), &q)
		if q.YearMin != 2005 || q.YearMax != 2022 {
			t.Errorf("window = %d..%d, want 2005..2022", q.YearMin, q.YearMax)
		}
	})

	t.Run("reset disabled", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, func(c *config.Config) { c.Features.Reset = false })

		expectError(t, s.do(t, http.MethodGet, "/api/v1/dashboard/defaults"), http.StatusNotFound, CodeFeatureDisabled)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/dashboard?reset=true"), http.StatusNotFound, CodeFeatureDisabled)
	})
}

func TestGrowth(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, target("/api/v1/analytics/growth",
		"regions", "Norte,Algarve", "regions", "Centro (PT) (NUTS 2021)",
		"year_min", "2010", "year_max", "2022"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
	}

	var resp models.GrowthResponse
	decodeEnvelope(t, rec, &resp)

	if got := resp.Growth["Norte"].CAGRPercent; got != 1.6 {
		t.Errorf("Norte CAGR = %v, want 1.6", got)
	}
	if got := resp.Growth["Algarve"].CAGRPercent; got != -0.87 {
		t.Errorf("Algarve CAGR = %v, want -0.87", got)
	}
	// A single observation has no elapsed span.
	if _, ok := resp.Growth["Centro (PT) (NUTS 2021)"]; ok {
		t.Error("Centro should be omitted")
	}
	if len(resp.Query.Regions) != 3 {
		t.Errorf("query regions = %v", resp.Query.Regions)
	}
}

func TestTrendsAndNarratives(t *testing.T) {
	t.Parallel()

	t.Run("zero delta unchanged", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)

		var resp models.TrendsResponse
		decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/analytics/trends"), &resp)

		if resp.Trends["Alentejo (NUTS 2021)"].Direction != models.DirectionUnchanged {
			t.Errorf("Alentejo = %+v", resp.Trends["Alentejo (NUTS 2021)"])
		}
		algarve := resp.Trends["Algarve"]
		if algarve.Direction != models.DirectionDecreased || algarve.Delta != -10 {
			t.Errorf("Algarve = %+v", algarve)
		}

		want := []string{
			"Between 2010 and 2022, the region Alentejo (NUTS 2021) has remained unchanged.",
			"Between 2010 and 2022, the region Algarve has decreased by 10.0 index points.",
			"Between 2010 and 2022, the region Centro (PT) (NUTS 2021) has remained unchanged.",
		}
		if len(resp.Narratives) != len(want) {
			t.Fatalf("narratives = %+v", resp.Narratives)
		}
		for i, n := range resp.Narratives {
			if n.Text != want[i] {
				t.Errorf("narrative %d = %q, want %q", i, n.Text, want[i])
			}
		}
	})

	t.Run("zero delta as decreased", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, func(c *config.Config) {
			c.Analytics.ZeroDeltaDirection = config.ZeroDeltaDecreased
		})

		var resp models.TrendsResponse
		decodeEnvelope(t, s.do(t, http.MethodGet, target("/api/v1/analytics/trends", "regions", "Alentejo (NUTS 2021)")), &resp)
		if resp.Trends["Alentejo (NUTS 2021)"].Direction != models.DirectionDecreased {
			t.Errorf("Alentejo = %+v", resp.Trends["Alentejo (NUTS 2021)"])
		}
	})
}

func TestStatsAndFeatureFlags(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)

		var resp models.StatsResponse
		decodeEnvelope(t, s.do(t, http.MethodGet, target("/api/v1/analytics/stats", "regions", "Norte,Centro (PT) (NUTS 2021)")), &resp)

		norte := resp.Stats["Norte"]
		if norte.Count != 3 || norte.Mean != 108.67 || norte.Min != 100 || norte.Max != 121 || !norte.StdDev.Valid {
			t.Errorf("Norte stats = %+v", norte)
		}
		if centro := resp.Stats["Centro (PT) (NUTS 2021)"]; centro.StdDev.Valid {
			t.Errorf("single observation std dev should be undefined: %+v", centro)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, func(c *config.Config) {
			c.Features.Stats = false
			c.Features.Map = false
		})

		expectError(t, s.do(t, http.MethodGet, "/api/v1/analytics/stats"), http.StatusNotFound, CodeFeatureDisabled)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/analytics/map"), http.StatusNotFound, CodeFeatureDisabled)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/charts/map.png"), http.StatusNotFound, CodeFeatureDisabled)

		var report models.DashboardReport
		decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/dashboard"), &report)
		if report.Stats != nil || report.Map != nil {
			t.Errorf("disabled features in dashboard: %+v", report)
		}
		if len(report.Trends) == 0 {
			t.Error("dashboard should still include trends")
		}
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	var resp models.MapResponse
	decodeEnvelope(t, s.do(t, http.MethodGet, target("/api/v1/analytics/map",
		"regions", "Norte,Atlantis", "year_min", "2005", "year_max", "2022")), &resp)

	if resp.GeoVersion != "nuts2-2021.1" || resp.CenterLat != 39.5 || resp.Zoom != 5.5 {
		t.Errorf("map view = %+v", resp)
	}
	if len(resp.Averages) != 1 || resp.Averages[0].Region != "Norte" || resp.Averages[0].Mean != 108.7 {
		t.Errorf("averages = %+v", resp.Averages)
	}
}

func TestDashboardReset(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	var report models.DashboardReport
	decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/dashboard?reset=true&regions=Norte&year_min=2015"), &report)

	// reset ignores the other parameters.
	if len(report.Query.Regions) != 3 || report.Query.YearMin != 2010 {
		t.Errorf("query = %+v", report.Query)
	}
	if report.Rows != 5 {
		t.Errorf("Rows = %d, want 5", report.Rows)
	}
	if report.Stats == nil || report.Map == nil {
		t.Error("enabled features missing from dashboard")
	}
}

func TestDashboardUnpositionedRegions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	csv := "Region,Year,Value\nNorte,2010,100\nNorte,2022,121\nExtra-Regio NUTS 2,2010,5\nExtra-Regio NUTS 2,2022,6\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}
	s := newTestServerForPath(t, path, nil)

	var report models.DashboardReport
	decodeEnvelope(t, s.do(t, http.MethodGet, target("/api/v1/dashboard", "regions", "Norte,Extra-Regio NUTS 2")), &report)

	if len(report.Map) != 1 || report.Map[0].Region != "Norte" {
		t.Errorf("map = %+v, want only Norte", report.Map)
	}
	if !reflect.DeepEqual(report.Unpositioned, []string{"Extra-Regio NUTS 2"}) {
		t.Errorf("unpositioned = %v", report.Unpositioned)
	}
}

func TestEmptySelections(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
	}{
		{"inverted window", target("/api/v1/analytics/growth", "regions", "Norte", "year_min", "2022", "year_max", "2010")},
		{"explicitly empty regions", target("/api/v1/analytics/growth", "regions", "")},
		{"unknown region", target("/api/v1/analytics/growth", "regions", "Atlantis")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
			}
			var resp models.GrowthResponse
			decodeEnvelope(t, rec, &resp)
			if len(resp.Growth) != 0 {
				t.Errorf("growth = %v, want empty", resp.Growth)
			}
			if !strings.Contains(rec.Body.String(), `"growth":{}`) {
				t.Errorf("empty growth should encode as {}: %s", rec.Body.String())
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	tooMany := make([]string, 65)
	for i := range tooMany {
		tooMany[i] = "R" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}

	tests := []struct {
		name   string
		target string
	}{
		{"non-integer year", target("/api/v1/analytics/growth", "year_min", "abc")},
		{"negative year", target("/api/v1/analytics/trends", "year_min", "-1")},
		{"year too large", target("/api/v1/analytics/stats", "year_max", "10000")},
		{"too many regions", target("/api/v1/dashboard", "regions", strings.Join(tooMany, ","))},
		{"control character in region", target("/api/v1/analytics/growth", "regions", "Nor\x01te")},
		{"bad export format", target("/api/v1/export", "format", "pdf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, s.do(t, http.MethodGet, tt.target), http.StatusBadRequest, CodeValidation)
		})
	}
}

func TestAnalyticsCache(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	path := target("/api/v1/analytics/growth", "regions", "Norte")
	first := decodeEnvelope(t, s.do(t, http.MethodGet, path), nil)
	second := decodeEnvelope(t, s.do(t, http.MethodGet, path), nil)

	if first.Metadata.Cached || !second.Metadata.Cached {
		t.Errorf("cached flags = %v, %v; want false, true", first.Metadata.Cached, second.Metadata.Cached)
	}
	if string(first.Data) != string(second.Data) {
		t.Errorf("cached data differs: %s vs %s", first.Data, second.Data)
	}

	s.handler.ClearCache()
	if third := decodeEnvelope(t, s.do(t, http.MethodGet, path), nil); third.Metadata.Cached {
		t.Error("response after ClearCache should not be cached")
	}
}

func TestExport(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	t.Run("csv", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, target("/api/v1/export", "regions", "Algarve,Norte", "year_min", "2015"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="filtered_portugal_data.csv"` {
			t.Errorf("Content-Disposition = %q", got)
		}
		if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv") {
			t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
		}
		want := "Region,Year,Value\nNorte,2015,105\nNorte,2022,121\nAlgarve,2022,90\n"
		if rec.Body.String() != want {
			t.Errorf("body = %q, want %q", rec.Body.String(), want)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, target("/api/v1/export", "format", "xlsx"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
			t.Error("xlsx body is not a zip archive")
		}
		if !strings.HasSuffix(rec.Header().Get("Content-Disposition"), `.xlsx"`) {
			t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
		}
	})
}

func TestCharts(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	pngMagic := []byte("\x89PNG\r\n\x1a\n")

	for _, path := range []string{"/api/v1/charts/trends.png", "/api/v1/charts/map.png"} {
		rec := s.do(t, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d; body = %s", path, rec.Code, rec.Body.String())
		}
		if rec.Header().Get("Content-Type") != pngContentType || !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
			t.Errorf("%s did not return a PNG", path)
		}
	}

	expectError(t, s.do(t, http.MethodGet, target("/api/v1/charts/trends.png", "regions", "Atlantis")),
		http.StatusNotFound, CodeNotFound)
}

func TestReload(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/dataset/reload")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
	}
	var resp models.ReloadResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Rows != 10 || resp.Version == "" || resp.Source != s.path {
		t.Errorf("reload = %+v", resp)
	}

	expectError(t, s.do(t, http.MethodGet, "/api/v1/dataset/reload"), http.StatusMethodNotAllowed, CodeMethodNotAllowed)
}

func TestDatasetUnavailable(t *testing.T) {
	t.Parallel()
	s := newTestServerForPath(t, filepath.Join(t.TempDir(), "missing.csv"), nil)

	expectError(t, s.do(t, http.MethodGet, "/api/v1/regions"), http.StatusServiceUnavailable, CodeDatasetUnavailable)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/analytics/growth"), http.StatusServiceUnavailable, CodeDatasetUnavailable)
	expectError(t, s.do(t, http.MethodPost, "/api/v1/dataset/reload"), http.StatusServiceUnavailable, CodeDatasetUnavailable)
}

func TestNonFiniteDatasetIsUnavailable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("Region,Year,Value\nNorte,2010,100\nNorte,2022,Inf\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := newTestServerForPath(t, path, nil)

	for _, target := range []string{
		"/api/v1/analytics/trends?regions=Norte",
		"/api/v1/analytics/stats?regions=Norte",
		"/api/v1/dashboard?regions=Norte",
	} {
		expectError(t, s.do(t, http.MethodGet, target), http.StatusServiceUnavailable, CodeDatasetUnavailable)
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/nope"), http.StatusNotFound, CodeNotFound)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	s.do(t, http.MethodGet, "/api/v1/regions")
	rec := s.do(t, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Errorf("metrics status = %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, func(c *config.Config) {
		c.Security.RateLimitDisabled = false
		c.Security.RateLimitReqs = 2
	})

	for i := 0; i < 2; i++ {
		if rec := s.do(t, http.MethodGet, "/api/v1/regions"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	expectError(t, s.do(t, http.MethodGet, "/api/v1/regions"), http.StatusTooManyRequests, CodeRateLimited)

	// Health has its own budget.
	if rec := s.do(t, http.MethodGet, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestWebSocketOrigin(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, func(c *config.Config) {
		c.Security.CORSOrigins = []string{"https://dashboard.example"}
	})

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"https://dashboard.example", true},
		{"https://evil.example", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		if got := s.handler.checkWebSocketOrigin(req); got != tt.want {
			t.Errorf("origin %q allowed = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestWebSocketWithoutHub(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/ws"), http.StatusServiceUnavailable, CodeInternal)
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/health/live")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
