// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

// Command report prints the dashboard analytics for one selection to the
// terminal and can write the trend chart, the map chart and the filtered
// rows to files.
//
//	report -regions "Norte,Algarve" -from 2010 -to 2022 -chart trends.png -export rows.xlsx
//
// Unset flags fall back to the same configuration the server reads
// (config.yaml, .env, environment), including a remote dataset.url.
// The exit status is 2 for usage errors and 1 when loading or validation
// fails.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(2)
	}
	logging.Init(logging.Config{Level: "warn", Format: "console", Output: os.Stderr})

	os.Exit(exitStatus(run(cfg, os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}
