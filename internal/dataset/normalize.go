// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeRegion trims surrounding whitespace and converts a region name to
// Unicode NFC.
func NormalizeRegion(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NormalizeRegions normalises every name and drops duplicates and blanks,
// preserving first-seen order.
func NormalizeRegions(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeRegion(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
