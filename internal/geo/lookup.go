// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

// Package geo holds the versioned region-to-coordinate table used by the map
// layer.
//
// The default table is embedded from regions.yaml. Operators can replace it
// with their own file (geo.path) without rebuilding; both go through the same
// validation.
package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/regiotrend/internal/dataset"
)

//go:embed regions.yaml
var defaultRegions []byte

// Region is one named map position.
type Region struct {
	Name      string  `koanf:"name" json:"name"`
	Latitude  float64 `koanf:"latitude" json:"latitude"`
	Longitude float64 `koanf:"longitude" json:"longitude"`
}

// View is the initial map camera.
type View struct {
	Latitude     float64 `koanf:"latitude" json:"latitude"`
	Longitude    float64 `koanf:"longitude" json:"longitude"`
	Zoom         float64 `koanf:"zoom" json:"zoom"`
	RadiusMeters float64 `koanf:"radius_m" json:"radius_m"`
}

type document struct {
	Version string   `koanf:"version"`
	View    View     `koanf:"view"`
	Regions []Region `koanf:"regions"`
}

// Table maps normalised region names to coordinates.
type Table struct {
	version string
	view    View
	regions []Region
	byName  map[string]Region
}

// Default returns the embedded table. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Table {
	t, err := Parse(defaultRegions)
	if err != nil {
		panic(fmt.Sprintf("geo: embedded regions.yaml: %v", err))
	}
	return t
}

// Load reads a table from a YAML file.
func Load(path string) (*Table, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load geo table %s: %w", path, err)
	}
	return fromKoanf(k)
}

// Parse reads a table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse geo table: %w", err)
	}
	return fromKoanf(k)
}

// LoadOrDefault loads path, or returns the embedded table when path is empty.
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func fromKoanf(k *koanf.Koanf) (*Table, error) {
	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode geo table: %w", err)
	}
	return newTable(doc)
}

func newTable(doc document) (*Table, error) {
	if doc.Version == "" {
		return nil, errors.New("geo table: version is required")
	}
	if len(doc.Regions) == 0 {
		return nil, errors.New("geo table: no regions defined")
	}

	t := &Table{
		version: doc.Version,
		view:    doc.View,
		byName:  make(map[string]Region, len(doc.Regions)),
	}
	for _, r := range doc.Regions {
		r.Name = dataset.NormalizeRegion(r.Name)
		if r.Name == "" {
			return nil, errors.New("geo table: region with empty name")
		}
		if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
			return nil, fmt.Errorf("geo table: %s: coordinates (%v, %v) out of range", r.Name, r.Latitude, r.Longitude)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("geo table: %s defined twice", r.Name)
		}
		t.byName[r.Name] = r
		t.regions = append(t.regions, r)
	}
	sort.Slice(t.regions, func(i, j int) bool { return t.regions[i].Name < t.regions[j].Name })

	return t, nil
}

// Locate returns the coordinates of region.
func (t *Table) Locate(region string) (lat, lon float64, ok bool) {
	r, ok := t.byName[dataset.NormalizeRegion(region)]
	return r.Latitude, r.Longitude, ok
}

// Version identifies the table revision.
func (t *Table) Version() string {
	return t.version
}

// View returns the initial map camera.
func (t *Table) View() View {
	return t.view
}

// Regions returns all entries sorted by name.
func (t *Table) Regions() []Region {
	return append([]Region(nil), t.regions...)
}

// bytesProvider is a koanf.Provider over an in-memory document.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("geo: bytesProvider does not support Read")
}
