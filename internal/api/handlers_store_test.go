// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// fakeStore stands in for the DuckDB mirror.
type fakeStore struct {
	pingErr    error
	version    string
	rows       int
	regions    []string
	regionsErr error
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }
func (f *fakeStore) Version() string            { return f.version }

func (f *fakeStore) Count(context.Context) (int, error) { return f.rows, nil }

func (f *fakeStore) Regions(context.Context) ([]string, error) {
	return f.regions, f.regionsErr
}

func newStoreServer(t *testing.T, store *fakeStore) *testServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	h := NewHandler(Dependencies{
		Config: cfg,
		Data:   dataset.NewCache(dataset.NewFileSource(path)),
		Store:  store,
	})
	router := NewRouter(h, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))).Setup()
	return &testServer{handler: h, router: router, path: path}
}

// loadedVersion loads the dataset and returns its version.
func (s *testServer) loadedVersion(t *testing.T) string {
	t.Helper()
	snap, err := s.handler.data.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	return snap.Identity.Version
}

func TestRegionsFromStore(t *testing.T) {
	t.Parallel()

	tableRegions := []string{"Alentejo (NUTS 2021)", "Algarve", "Centro (PT) (NUTS 2021)", "Norte", "Área Metropolitana de Lisboa"}

	tests := []struct {
		name       string
		current    bool
		regionsErr error
		want       []string
	}{
		{name: "store holds current version", current: true, want: []string{"Algarve", "Norte"}},
		{name: "store lags behind", current: false, want: tableRegions},
		{name: "store query fails", current: true, regionsErr: errors.New("connection reset"), want: tableRegions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := &fakeStore{version: "stale", regions: []string{"Algarve", "Norte"}, regionsErr: tt.regionsErr}
			s := newStoreServer(t, store)
			if tt.current {
				store.version = s.loadedVersion(t)
			}

			rec := s.do(t, http.MethodGet, "/api/v1/regions")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
			}
			var resp models.RegionsResponse
			decodeEnvelope(t, rec, &resp)
			if !reflect.DeepEqual(resp.Regions, tt.want) {
				t.Errorf("Regions = %v, want %v", resp.Regions, tt.want)
			}
			if resp.Rows != 10 {
				t.Errorf("Rows = %d, want 10", resp.Rows)
			}
		})
	}
}

func TestHealthReadyStoreRows(t *testing.T) {
	t.Parallel()

	t.Run("connected store reports mirrored rows", func(t *testing.T) {
		t.Parallel()
		s := newStoreServer(t, &fakeStore{rows: 10})
		s.loadedVersion(t)

		rec := s.do(t, http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
		}
		var data map[string]interface{}
		decodeEnvelope(t, rec, &data)
		if data["store_rows"] != float64(10) || data["store_connected"] != true {
			t.Errorf("data = %v", data)
		}
	})

	t.Run("unreachable store is not ready", func(t *testing.T) {
		t.Parallel()
		s := newStoreServer(t, &fakeStore{pingErr: errors.New("closed"), rows: 10})
		s.loadedVersion(t)

		rec := s.do(t, http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
		var data map[string]interface{}
		decodeEnvelope(t, rec, &data)
		if _, ok := data["store_rows"]; ok || data["store_connected"] != false {
			t.Errorf("data = %v", data)
		}
	})
}
