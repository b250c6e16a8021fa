// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/regiotrend/internal/analytics"
	"github.com/tomtom215/regiotrend/internal/charts"
	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/geo"
	"github.com/tomtom215/regiotrend/internal/models"
	"github.com/tomtom215/regiotrend/internal/validation"
)

type options struct {
	data      string
	regions   string
	from, to  int
	zeroDelta string
	locale    string
	chart     string
	mapChart  string
	export    string
	noColor   bool
}

// usageError is a command line the report cannot run with. reported is set
// when the flag package has already printed the problem and the usage text.
type usageError struct {
	err      error
	reported bool
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitStatus reports err on stderr and returns the process exit status:
// 0 for success or -h, 2 for usage errors, 1 for everything else.
func exitStatus(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		if !uerr.reported {
			fmt.Fprintf(stderr, "report: %v\n", err)
		}
		return 2
	}
	fmt.Fprintf(stderr, "report: %v\n", err)
	return 1
}

func parseFlags(cfg *config.Config, args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: report [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	opts := options{}
	fs.StringVar(&opts.data, "data", "", "CSV file path or http(s) URL (default: dataset.url, else dataset.path)")
	fs.StringVar(&opts.regions, "regions", "", "comma separated regions (default: first regions of the dataset)")
	fs.IntVar(&opts.from, "from", 0, "first year, inclusive (default: configured window clamped to the data)")
	fs.IntVar(&opts.to, "to", 0, "last year, inclusive (default: configured window clamped to the data)")
	fs.StringVar(&opts.zeroDelta, "zero-delta", cfg.Analytics.ZeroDeltaDirection, "direction for a zero change: unchanged or decreased")
	fs.StringVar(&opts.locale, "locale", cfg.Analytics.NarrativeLocale, "locale for narrative numbers")
	fs.StringVar(&opts.chart, "chart", "", "write the trend chart PNG to this path")
	fs.StringVar(&opts.mapChart, "map", "", "write the regional map PNG to this path")
	fs.StringVar(&opts.export, "export", "", "write the filtered rows to this .csv or .xlsx path")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, &usageError{err: err, reported: true}
	}
	if fs.NArg() > 0 {
		return opts, usagef("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	switch opts.zeroDelta {
	case config.ZeroDeltaUnchanged, config.ZeroDeltaDecreased:
	default:
		return opts, usagef("-zero-delta must be %q or %q", config.ZeroDeltaUnchanged, config.ZeroDeltaDecreased)
	}
	if opts.export != "" {
		format := exportFormat(opts.export)
		if format != dataset.FormatCSV && format != dataset.FormatXLSX {
			return opts, usagef("-export path must end in .csv or .xlsx: %s", opts.export)
		}
	}
	return opts, nil
}

func exportFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// run loads the dataset, analyzes the selection and writes the report to
// out. Flag problems and usage text go to stderr.
func run(cfg *config.Config, args []string, out, stderr io.Writer) error {
	opts, err := parseFlags(cfg, args, stderr)
	if err != nil {
		return err
	}
	if opts.noColor {
		color.NoColor = true
	}

	source := cfg.Dataset
	if opts.data != "" {
		source = source.WithLocation(opts.data)
	}
	table, err := dataset.NewCacheFor(source).Get(context.Background())
	if err != nil {
		return err
	}

	q := dataset.DefaultQuery(table, cfg.Dataset.DefaultRegionCount, cfg.Dataset.DefaultYearMin, cfg.Dataset.DefaultYearMax)
	if opts.from != 0 {
		q.YearMin = opts.from
	}
	if opts.to != 0 {
		q.YearMax = opts.to
	}
	if opts.regions != "" {
		q.Regions = dataset.NormalizeRegions(strings.Split(opts.regions, ","))
	}
	req := validation.AnalyticsRequest{Regions: q.Regions, YearMin: q.YearMin, YearMax: q.YearMax}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return verr
	}

	narrator, err := analytics.NewNarrator(opts.locale)
	if err != nil {
		return err
	}
	geoTable, err := geo.LoadOrDefault(cfg.Geo.Path)
	if err != nil {
		return err
	}

	filtered := dataset.Filter(table, q)
	report := analytics.AnalyzeFiltered(filtered, q, analytics.Options{
		Trend:        analytics.TrendOptions{ZeroDeltaAsDecreased: opts.zeroDelta == config.ZeroDeltaDecreased},
		Narrator:     narrator,
		IncludeStats: true,
		Locator:      geoTable,
	})

	printReport(out, report)

	if opts.chart != "" {
		if err := writeFile(opts.chart, func(w io.Writer) error {
			return charts.RenderTrends(w, filtered, charts.DefaultTrendOptions())
		}); err != nil {
			return fmt.Errorf("trend chart: %w", err)
		}
		color.New(color.FgGreen).Fprintf(out, "Trend chart written to %s\n", opts.chart)
	}
	if opts.mapChart != "" {
		if err := writeFile(opts.mapChart, func(w io.Writer) error {
			return charts.RenderMap(w, report.Map, geoTable.View(), charts.DefaultMapOptions())
		}); err != nil {
			return fmt.Errorf("map chart: %w", err)
		}
		color.New(color.FgGreen).Fprintf(out, "Map chart written to %s\n", opts.mapChart)
	}
	if opts.export != "" {
		if err := writeFile(opts.export, func(w io.Writer) error {
			return dataset.Export(w, filtered, exportFormat(opts.export))
		}); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		color.New(color.FgGreen).Fprintf(out, "%d rows written to %s\n", filtered.Len(), opts.export)
	}
	return nil
}

func printReport(out io.Writer, report models.DashboardReport) {
	q := report.Query
	color.New(color.FgCyan, color.Bold).Fprintf(out, "\n=== Regional trends %d-%d ===\n", q.YearMin, q.YearMax)
	fmt.Fprintf(out, "Regions: %s\nObservations: %d\n", strings.Join(q.Regions, ", "), report.Rows)

	if report.Rows == 0 {
		color.New(color.FgYellow).Fprintln(out, "\nNo observations match the selection.")
		return
	}

	color.New(color.FgYellow).Fprintln(out, "\nGrowth and trend")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Region", "Years", "CAGR %", "Change", "Direction", "Mean", "Std dev", "Min", "Max"})
	for _, region := range sortedRegions(report) {
		row := []string{region, "", "", "", "", "", "", "", ""}
		if g, ok := report.Growth[region]; ok {
			row[1] = fmt.Sprintf("%d-%d", g.StartYear, g.EndYear)
			row[2] = formatFloat(g.CAGRPercent)
		}
		if tr, ok := report.Trends[region]; ok {
			row[3] = formatFloat(tr.Delta)
			row[4] = string(tr.Direction)
		}
		if s, ok := report.Stats[region]; ok {
			row[5] = formatFloat(s.Mean)
			row[6] = "n/a"
			if s.StdDev.Valid {
				row[6] = formatFloat(s.StdDev.Value)
			}
			row[7] = formatFloat(s.Min)
			row[8] = formatFloat(s.Max)
		}
		table.Append(row)
	}
	table.Render()

	if len(report.Narratives) > 0 {
		color.New(color.FgYellow).Fprintln(out, "\nSummary")
		for _, n := range report.Narratives {
			directionColor(n.Direction).Fprintf(out, "  %s\n", n.Text)
		}
	}
}

// sortedRegions lists every region that has any result.
func sortedRegions(report models.DashboardReport) []string {
	seen := make(map[string]struct{})
	for r := range report.Trends {
		seen[r] = struct{}{}
	}
	for r := range report.Stats {
		seen[r] = struct{}{}
	}
	regions := make([]string, 0, len(seen))
	for r := range seen {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

func directionColor(d models.Direction) *color.Color {
	switch d {
	case models.DirectionIncreased:
		return color.New(color.FgGreen)
	case models.DirectionDecreased:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeFile renders into path, removing the file again if rendering fails.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is an operator-supplied CLI flag
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := render(f); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return fmt.Errorf("nothing to draw for this selection: %w", err)
		}
		return err
	}
	return nil
}
