// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"math"
	"testing"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func obs(region string, year int, value float64) models.Observation {
	return models.Observation{Region: region, Year: year, Value: value}
}

func mustTable(t *testing.T, rows ...models.Observation) dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// sampleTable mirrors the shape of the regional dataset: unsorted years,
// a single-observation region and a region with a zero start value.
func sampleTable(t *testing.T) dataset.Table {
	t.Helper()
	return mustTable(t,
		obs("Norte", 2012, 95.5),
		obs("Norte", 2010, 90),
		obs("Norte", 2022, 110.25),
		obs("Algarve", 2010, 100),
		obs("Algarve", 2022, 88),
		obs("Centro (PT) (NUTS 2021)", 2015, 70),
		obs("Região Autónoma dos Açores", 2010, 0),
		obs("Região Autónoma dos Açores", 2022, 50),
	)
}

type fakeLocator map[string][2]float64

func (f fakeLocator) Locate(region string) (lat, lon float64, ok bool) {
	c, ok := f[region]
	return c[0], c[1], ok
}
