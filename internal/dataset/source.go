// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Identity names one version of a source's content. Two equal identities
// are assumed to yield the same table.
type Identity struct {
	Location string `json:"location"`
	Version  string `json:"version"`
}

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool {
	return id.Location == "" && id.Version == ""
}

func (id Identity) String() string {
	return id.Location + "@" + id.Version
}

// Source provides the raw CSV bytes of the dataset.
type Source interface {
	// Stat returns the current identity without reading the content.
	Stat(ctx context.Context) (Identity, error)

	// Open returns a reader over the content and the identity it belongs to.
	// The caller closes the reader.
	Open(ctx context.Context) (io.ReadCloser, Identity, error)

	// String describes the source for logs and metric labels.
	String() string
}

// FileSource reads the dataset from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a Source for the CSV at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Stat identifies the file by path, modification time and size.
func (s *FileSource) Stat(_ context.Context) (Identity, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return s.identity(info), nil
}

// Open opens the file and stats the open handle, so the identity matches the
// bytes being read even if the file is replaced concurrently.
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, Identity, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, Identity{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, Identity{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return f, s.identity(info), nil
}

func (s *FileSource) identity(info os.FileInfo) Identity {
	return Identity{
		Location: s.path,
		Version:  strconv.FormatInt(info.ModTime().UnixNano(), 10) + "-" + strconv.FormatInt(info.Size(), 10),
	}
}

func (s *FileSource) String() string {
	return "file:" + s.path
}
