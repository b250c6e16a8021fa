// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/regiotrend/internal/config"
)

func TestSourceFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.DatasetConfig
		want string
	}{
		{"path only", config.DatasetConfig{Path: "data.csv"}, "file:data.csv"},
		{"url wins over path", config.DatasetConfig{Path: "data.csv", URL: "https://example.org/data.csv"}, "http:https://example.org/data.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SourceFor(tt.cfg).String(); got != tt.want {
				t.Errorf("SourceFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCacheFor_ReadsURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte("Region,Year,Value\nAlgarve,2010,100\n"))
	}))
	t.Cleanup(srv.Close)

	local := writeFile(t, "data.csv", sampleCSV)
	c := NewCacheFor(config.DatasetConfig{Path: local, URL: srv.URL + "/data.csv"})

	table, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if table.Len() != 1 || table.Regions()[0] != "Algarve" {
		t.Errorf("table = %v, want the remote Algarve row", table.Rows())
	}
	if c.checkInterval != RemoteCheckInterval {
		t.Errorf("checkInterval = %v, want %v", c.checkInterval, RemoteCheckInterval)
	}
}
