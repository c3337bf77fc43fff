// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dict implements reading dictd .dict files.
//
// A .dict file is the concatenation of every entry body in write order. The
// file may be compressed using the dictzip format, in which case it carries a
// .dict.dz extension and supports random access by uncompressed offset.
package dict

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-dictd/index"
)

// ErrNotFound indicates that no .dict file was found for a database.
var ErrNotFound = errors.New("no dict file found")

// Dict represents a dictd database's entry data.
type Dict struct {
	r io.ReaderAt
	c io.Closer
}

// New returns a new Dict reading entry data from r.
func New(r io.ReaderAt) *Dict {
	return &Dict{r: r}
}

// Open opens the .dict or .dict.dz file for the database at the given base
// path. The base path is the database path without extension.
func Open(base string) (*Dict, error) {
	dictExts := []string{".dict.dz", ".dict", ".DICT.DZ", ".DICT"}
	var f *os.File
	var path string
	var err error
	for _, ext := range dictExts {
		path = base + ext
		f, err = os.Open(path)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, base)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".dz") {
		return &Dict{r: f, c: f}, nil
	}

	z, err := dictzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading dictzip header %q: %w", path, err)
	}
	return &Dict{r: z, c: f}, nil
}

// Entry retrieves the entry body for the given index record.
func (d *Dict) Entry(r *index.Record) ([]byte, error) {
	b := make([]byte, r.Length)
	// NOTE: if ReadAt does not read r.Length bytes then an error should be
	// returned.
	n, err := d.r.ReadAt(b, int64(r.Offset))
	if err != nil && !(errors.Is(err, io.EOF) && n == len(b)) {
		return nil, fmt.Errorf("reading entry %q: %w", r.Headword, err)
	}
	return b, nil
}

// Close closes the underlying file, if any.
func (d *Dict) Close() error {
	if d.c == nil {
		return nil
	}
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("closing dict file: %w", err)
	}
	return nil
}
