// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package services

import (
	"context"
	"errors"
	"fmt"
)

// Poller is satisfied by *dataset.Reloader.
type Poller interface {
	Serve(ctx context.Context) error
}

// DatasetReloaderService runs the dataset version poller. Cancellation is
// a clean stop; any other return is reported as a failure so the data
// layer restarts the poller.
type DatasetReloaderService struct {
	poller Poller
	name   string
}

// NewDatasetReloaderService wraps poller.
func NewDatasetReloaderService(poller Poller) *DatasetReloaderService {
	return &DatasetReloaderService{
		poller: poller,
		name:   "dataset-reloader",
	}
}

// Serve implements suture.Service.
func (d *DatasetReloaderService) Serve(ctx context.Context) error {
	err := d.poller.Serve(ctx)
	switch {
	case err == nil:
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.New("dataset poller stopped unexpectedly")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("dataset poller failed: %w", err)
	}
}

// String implements fmt.Stringer.
func (d *DatasetReloaderService) String() string {
	return d.name
}
