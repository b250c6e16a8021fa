// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/regiotrend/internal/models"
)

func loadSample(t *testing.T) Table {
	t.Helper()
	table, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return table
}

func TestFilter(t *testing.T) {
	t.Parallel()

	table := loadSample(t)

	tests := []struct {
		name  string
		query models.Query
		want  int
	}{
		{"all years one region", models.Query{Regions: []string{"Norte"}, YearMin: 2000, YearMax: 2030}, 3},
		{"window excludes ends", models.Query{Regions: []string{"Norte"}, YearMin: 2011, YearMax: 2021}, 1},
		{"inclusive bounds", models.Query{Regions: []string{"Norte", "Algarve"}, YearMin: 2010, YearMax: 2022}, 5},
		{"inverted window", models.Query{Regions: []string{"Norte"}, YearMin: 2022, YearMax: 2010}, 0},
		{"no regions", models.Query{YearMin: 2010, YearMax: 2022}, 0},
		{"unknown region", models.Query{Regions: []string{"Atlantis"}, YearMin: 2010, YearMax: 2022}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(table, tt.query)
			if got.Len() != tt.want {
				t.Fatalf("Filter() rows = %d, want %d", got.Len(), tt.want)
			}
			for _, obs := range got.Rows() {
				if obs.Year < tt.query.YearMin || obs.Year > tt.query.YearMax {
					t.Errorf("row outside window: %+v", obs)
				}
			}
		})
	}
}

func TestFilter_PreservesTableOrder(t *testing.T) {
	t.Parallel()

	got := Filter(loadSample(t), models.Query{Regions: []string{"Norte"}, YearMin: 2000, YearMax: 2030})
	years := []int{}
	for _, obs := range got.Rows() {
		years = append(years, obs.Year)
	}
	if !reflect.DeepEqual(years, []int{2012, 2010, 2022}) {
		t.Errorf("years = %v, want table order [2012 2010 2022]", years)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	table := loadSample(t)
	q := models.Query{Regions: []string{"Norte", "Algarve"}, YearMin: 2010, YearMax: 2012}

	once := Filter(table, q)
	twice := Filter(once, q)
	if !reflect.DeepEqual(once.Rows(), twice.Rows()) {
		t.Error("filtering twice changed the result")
	}
}

func TestDefaultQuery(t *testing.T) {
	t.Parallel()

	table := loadSample(t)

	q := DefaultQuery(table, 2, 2010, 2022)
	if !reflect.DeepEqual(q.Regions, []string{"Algarve", "Centro (PT) (NUTS 2021)"}) {
		t.Errorf("Regions = %v", q.Regions)
	}
	if q.YearMin != 2010 || q.YearMax != 2022 {
		t.Errorf("window = %d-%d", q.YearMin, q.YearMax)
	}

	clamped := DefaultQuery(table, 10, 2000, 2030)
	if len(clamped.Regions) != 3 {
		t.Errorf("count larger than regions should return all, got %v", clamped.Regions)
	}
	if clamped.YearMin != 2010 || clamped.YearMax != 2022 {
		t.Errorf("window not clamped: %d-%d", clamped.YearMin, clamped.YearMax)
	}
}
