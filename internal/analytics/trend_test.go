// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"testing"

	"github.com/tomtom215/regiotrend/internal/models"
)

func TestComputeTrend(t *testing.T) {
	t.Parallel()

	table := sampleTable(t)
	regions := []string{"Norte", "Algarve", "Centro (PT) (NUTS 2021)", "Atlantis"}

	trends := ComputeTrend(table, regions, 2010, 2022, TrendOptions{})

	if _, ok := trends["Atlantis"]; ok {
		t.Error("unknown region should be absent")
	}
	if _, ok := trends["Região Autónoma dos Açores"]; ok {
		t.Error("unrequested region should be absent")
	}

	norte := trends["Norte"]
	if norte.Direction != models.DirectionIncreased || !almostEqual(norte.Delta, 20.25) {
		t.Errorf("Norte = %+v, want increased by 20.25", norte)
	}
	algarve := trends["Algarve"]
	if algarve.Direction != models.DirectionDecreased || !almostEqual(algarve.Delta, -12) {
		t.Errorf("Algarve = %+v, want decreased by -12", algarve)
	}
	centro := trends["Centro (PT) (NUTS 2021)"]
	if centro.Direction != models.DirectionUnchanged || centro.Delta != 0 {
		t.Errorf("single observation = %+v, want unchanged with zero delta", centro)
	}
}

func TestComputeTrend_Window(t *testing.T) {
	t.Parallel()

	trends := ComputeTrend(sampleTable(t), []string{"Norte"}, 2011, 2022, TrendOptions{})
	norte := trends["Norte"]
	if norte.StartYear != 2012 || norte.EndYear != 2022 {
		t.Errorf("window endpoints = %d-%d, want 2012-2022", norte.StartYear, norte.EndYear)
	}
	if !almostEqual(norte.Delta, 14.75) {
		t.Errorf("Delta = %v, want 14.75", norte.Delta)
	}

	if got := ComputeTrend(sampleTable(t), []string{"Norte"}, 2022, 2010, TrendOptions{}); len(got) != 0 {
		t.Errorf("inverted window = %v, want empty", got)
	}
}

func TestComputeTrend_ZeroDelta(t *testing.T) {
	t.Parallel()

	table := mustTable(t, obs("X", 2010, 100.001), obs("X", 2020, 100.004))

	tests := []struct {
		name string
		opts TrendOptions
		want models.Direction
	}{
		{"default is unchanged", TrendOptions{}, models.DirectionUnchanged},
		{"flat counted as decreased", TrendOptions{ZeroDeltaAsDecreased: true}, models.DirectionDecreased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeTrend(table, []string{"X"}, 2010, 2020, tt.opts)["X"]
			if got.Delta != 0 {
				t.Fatalf("Delta = %v, want 0 after rounding", got.Delta)
			}
			if got.Direction != tt.want {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.want)
			}
		})
	}
}

func TestComputeTrend_DirectionMatchesDeltaSign(t *testing.T) {
	t.Parallel()

	for region, tr := range ComputeTrend(sampleTable(t), sampleTable(t).Regions(), 0, 9999, TrendOptions{}) {
		switch {
		case tr.Delta > 0 && tr.Direction != models.DirectionIncreased,
			tr.Delta < 0 && tr.Direction != models.DirectionDecreased,
			tr.Delta == 0 && tr.Direction != models.DirectionUnchanged:
			t.Errorf("%s: delta %v classified as %s", region, tr.Delta, tr.Direction)
		}
	}
}
