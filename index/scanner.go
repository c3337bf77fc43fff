// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictd/b64"
)

// ErrMalformed indicates that an .index line could not be parsed.
var ErrMalformed = errors.New("malformed index line")

// maxLineSize is the maximum size of a single .index line.
const maxLineSize = 1024 * 1024

// Scanner scans an index from start to end.
type Scanner struct {
	r      io.Reader
	s      *bufio.Scanner
	record *Record
	line   int
	err    error
}

// NewScanner returns a new index scanner that scans the index from start to
// end.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Scanner{
		r: r,
		s: s,
	}
}

// Open opens the .index file for the database at the given base path. The
// base path may be given with or without the .index extension.
func Open(path string) (*os.File, error) {
	if !strings.HasSuffix(path, ".index") {
		path += ".index"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening .index file: %w", err)
	}
	return f, nil
}

// Scan advances the index to the next record. It returns false if the scan
// stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		return false
	}
	s.line++

	r, err := parseLine(s.s.Bytes())
	if err != nil {
		s.err = fmt.Errorf("line %d: %w", s.line, err)
		s.record = nil
		return false
	}
	s.record = r
	return true
}

// Record returns the most recently scanned record.
func (s *Scanner) Record() *Record {
	return s.record
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader if it is an [io.Closer].
func (s *Scanner) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing index file: %w", err)
		}
	}
	return nil
}

func parseLine(line []byte) (*Record, error) {
	// Tolerate index files written with CRLF line endings.
	line = bytes.TrimSuffix(line, []byte{'\r'})

	fields := bytes.Split(line, []byte{'\t'})
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformed, len(fields))
	}

	offset, err := b64.Decode(string(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: offset: %w", ErrMalformed, err)
	}
	length, err := b64.Decode(string(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: length: %w", ErrMalformed, err)
	}

	return &Record{
		Headword: string(fields[0]),
		Offset:   offset,
		Length:   length,
	}, nil
}
