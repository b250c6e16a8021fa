// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/regiotrend/internal/cache"
	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/models"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{Level: "error", Format: "json", Output: io.Discard})
}

const testCSV = `Region,Year,Value
Norte,2010,100
Norte,2015,105
Norte,2022,121
Algarve,2010,100
Algarve,2022,90
Alentejo (NUTS 2021),2010,80
Alentejo (NUTS 2021),2022,80
Centro (PT) (NUTS 2021),2018,70
Área Metropolitana de Lisboa,2005,110
Área Metropolitana de Lisboa,2012,120
`

// testConfig mirrors the shipped defaults with rate limiting off.
func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.DatasetConfig{
			DefaultYearMin:     2010,
			DefaultYearMax:     2022,
			DefaultRegionCount: 3,
			ExportFilename:     "filtered_portugal_data",
		},
		Analytics: config.AnalyticsConfig{ZeroDeltaDirection: config.ZeroDeltaUnchanged, NarrativeLocale: "en"},
		Features:  config.FeaturesConfig{Map: true, Stats: true, Reset: true},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

type testServer struct {
	handler *Handler
	router  http.Handler
	path    string
}

// newTestServer serves testCSV from a temp file. mutate adjusts the config
// before the handler is built.
func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return newTestServerForPath(t, path, mutate)
}

func newTestServerForPath(t *testing.T, path string, mutate func(*config.Config)) *testServer {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	results := cache.NewWithSweep(time.Minute, 0)
	t.Cleanup(results.Close)

	h := NewHandler(Dependencies{
		Config: cfg,
		Data:   dataset.NewCache(dataset.NewFileSource(path)),
		Cache:  results,
	})
	router := NewRouter(h, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))).Setup()
	return &testServer{handler: h, router: router, path: path}
}

func (s *testServer) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// envelope is models.APIResponse with Data left raw for typed decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body = %s", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v; data = %s", err, env.Data)
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Status != "error" || env.Error == nil || env.Error.Code != code {
		t.Errorf("error envelope = %+v, want code %s", env, code)
	}
}
