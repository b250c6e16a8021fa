// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

// Package charts renders dashboard figures to PNG with gonum/plot.
//
// RenderTrends draws one line per region over the years of a filtered table.
// RenderMap places region averages at their coordinates, sized by value, for
// clients that cannot draw an interactive map.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/geo"
	"github.com/tomtom215/regiotrend/internal/models"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Options controls figure size and title.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Title  string
}

// DefaultTrendOptions matches the dashboard line chart.
func DefaultTrendOptions() Options {
	return Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch, Title: "Regional Trends"}
}

// DefaultMapOptions matches the dashboard map panel.
func DefaultMapOptions() Options {
	return Options{Width: 8 * vg.Inch, Height: 8 * vg.Inch, Title: "Average Economic Value by Region"}
}

// RenderTrends writes a PNG line chart with one series per region of t.
func RenderTrends(w io.Writer, t dataset.Table, opts Options) error {
	if t.Len() == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Economic Value (Index)"
	p.X.Tick.Marker = plot.TickerFunc(yearTicks)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, region := range t.Regions() {
		series := t.Series(region)
		xys := make(plotter.XYs, len(series))
		for j, obs := range series {
			xys[j].X = float64(obs.Year)
			xys[j].Y = obs.Value
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("plot %s: %w", region, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)

		p.Add(line, points)
		p.Legend.Add(region, line, points)
	}

	return save(w, p, opts)
}

// RenderMap writes a PNG scatter of region averages at (longitude, latitude),
// with glyph size proportional to the mean.
func RenderMap(w io.Writer, averages []models.RegionAverage, view geo.View, opts Options) error {
	if len(averages) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	maxMean := 0.0
	for _, a := range averages {
		maxMean = math.Max(maxMean, math.Abs(a.Mean))
	}

	labels := plotter.XYLabels{
		XYs:    make([]plotter.XY, len(averages)),
		Labels: make([]string, len(averages)),
	}

	for i, a := range averages {
		pt := plotter.XY{X: a.Longitude, Y: a.Latitude}

		bubble, err := plotter.NewScatter(plotter.XYs{pt})
		if err != nil {
			return fmt.Errorf("plot %s: %w", a.Region, err)
		}
		bubble.GlyphStyle.Shape = draw.CircleGlyph{}
		bubble.GlyphStyle.Color = plotutil.Color(i)
		bubble.GlyphStyle.Radius = bubbleRadius(a.Mean, maxMean)
		p.Add(bubble)

		labels.XYs[i] = plotter.XY{X: pt.X, Y: pt.Y + 0.35}
		labels.Labels[i] = a.Region + " (" + strconv.FormatFloat(a.Mean, 'f', 1, 64) + ")"
	}

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("plot labels: %w", err)
	}
	p.Add(lbl)

	fitView(p, averages, view)
	return save(w, p, opts)
}

// bubbleRadius scales glyphs between 4 and 14 points.
func bubbleRadius(mean, maxMean float64) vg.Length {
	if maxMean <= 0 {
		return vg.Points(4)
	}
	return vg.Points(4 + 10*math.Abs(mean)/maxMean)
}

// fitView centres the axes on the view point while keeping every region
// inside the frame.
func fitView(p *plot.Plot, averages []models.RegionAverage, view geo.View) {
	minLon, maxLon := view.Longitude, view.Longitude
	minLat, maxLat := view.Latitude, view.Latitude
	for _, a := range averages {
		minLon, maxLon = math.Min(minLon, a.Longitude), math.Max(maxLon, a.Longitude)
		minLat, maxLat = math.Min(minLat, a.Latitude), math.Max(maxLat, a.Latitude)
	}
	p.X.Min, p.X.Max = minLon-2, maxLon+2
	p.Y.Min, p.Y.Max = minLat-1, maxLat+1
}

// yearTicks places a labelled tick on whole years, thinning them out so that
// at most about a dozen labels are shown.
func yearTicks(lo, hi float64) []plot.Tick {
	first, last := int(math.Ceil(lo)), int(math.Floor(hi))
	step := max(1, (last-first)/12+1)

	var ticks []plot.Tick
	for y := first; y <= last; y++ {
		label := ""
		if (y-first)%step == 0 {
			label = strconv.Itoa(y)
		}
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: label})
	}
	return ticks
}

func save(w io.Writer, p *plot.Plot, opts Options) error {
	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
