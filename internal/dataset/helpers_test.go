// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/regiotrend/internal/models"
)

const sampleCSV = `Region,Year,Value,Unit
Norte,2012,95.5,I15
Norte,2010,90,I15
Norte,2022,110.25,I15
Algarve,2010,100,I15
Algarve,2022,88,I15
Centro (PT) (NUTS 2021),2015,70,I15
`

// mustTable builds a Table or fails the test.
func mustTable(t *testing.T, rows ...models.Observation) Table {
	t.Helper()
	table, err := NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// writeFile writes content to a file in a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
