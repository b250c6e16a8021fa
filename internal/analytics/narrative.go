// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Narrator renders trend results as short sentences with locale-aware
// number formatting.
type Narrator struct {
	printer *message.Printer
}

// NewNarrator creates a Narrator for a BCP 47 locale such as "en" or "pt-PT".
func NewNarrator(locale string) (*Narrator, error) {
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse narrative locale %q: %w", locale, err)
	}
	return &Narrator{printer: message.NewPrinter(tag)}, nil
}

// DefaultNarrator returns an English Narrator.
func DefaultNarrator() *Narrator {
	return &Narrator{printer: message.NewPrinter(language.English)}
}

// Narrate describes one trend over the selected window, for example
//
//	Between 2010 and 2022, the region Norte has increased by 20.25 index points.
//
// Years come from the window, not from the first and last observation.
func (n *Narrator) Narrate(tr models.TrendResult, yearMin, yearMax int) string {
	prefix := "Between " + strconv.Itoa(yearMin) + " and " + strconv.Itoa(yearMax) + ", the region " + tr.Region
	if tr.Direction == models.DirectionUnchanged {
		return prefix + " has remained unchanged."
	}

	points := n.printer.Sprint(number.Decimal(math.Abs(tr.Delta),
		number.MinFractionDigits(1),
		number.MaxFractionDigits(2),
	))
	return prefix + " has " + string(tr.Direction) + " by " + points + " index points."
}

// NarrateAll narrates the trends of q.Regions in request order, skipping
// regions without a trend.
func (n *Narrator) NarrateAll(trends map[string]models.TrendResult, q models.Query) []models.Narrative {
	out := make([]models.Narrative, 0, len(trends))
	for _, region := range dataset.NormalizeRegions(q.Regions) {
		tr, ok := trends[region]
		if !ok {
			continue
		}
		out = append(out, models.Narrative{
			Region:    region,
			Direction: tr.Direction,
			Text:      n.Narrate(tr, q.YearMin, q.YearMax),
		})
	}
	return out
}
