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

package dictd

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ianlewis/go-dictd/index"
)

// ErrOffsetOverflow indicates that an entry would move the running offset past
// the 32-bit range supported by the index encoding.
var ErrOffsetOverflow = errors.New("dict offset overflows 32 bits")

// WriteEntry appends entry to the dict stream and its index record to the
// index stream. offset must be the number of bytes already written to dict.
// A line feed is appended to entry if it does not already end with one. The
// returned value is the new running offset. It counts every byte written to
// dict, even when an error is returned.
//
// WriteEntry assumes that entry already contains the headword and makes no
// effort to add it.
func WriteEntry(dict, idx io.Writer, headword, entry string, offset uint32) (uint32, error) {
	r, err := writeEntry(dict, idx, headword, entry, offset)
	return r.Offset + r.Length, err
}

// writeEntry returns the record for entry. Its length is the number of bytes
// actually written to dict, so it is valid even when an error is returned.
func writeEntry(dict, idx io.Writer, headword, entry string, offset uint32) (*index.Record, error) {
	r := &index.Record{
		Headword: headword,
		Offset:   offset,
	}

	if entry == "" || entry[len(entry)-1] != '\n' {
		entry += "\n"
	}
	if uint64(offset)+uint64(len(entry)) > math.MaxUint32 {
		return r, fmt.Errorf("%w: entry %q at offset %d", ErrOffsetOverflow, headword, offset)
	}

	n, err := io.WriteString(dict, entry)
	//nolint:gosec // bounds checked above.
	r.Length = uint32(n)
	if err != nil {
		return r, fmt.Errorf("writing entry %q: %w", headword, err)
	}

	if err := index.WriteRecord(idx, r); err != nil {
		return r, err
	}
	return r, nil
}

// WriterOptions are options for a Writer.
type WriterOptions struct {
	// Offset is the initial running offset. It must equal the number of bytes
	// already present in the dict stream.
	Offset uint32

	// OnWrite, if not nil, is called with the index record of every entry
	// after it is written.
	OnWrite func(*index.Record)
}

// Writer writes entries to a dictd database. It owns the running offset into
// the dict stream. A Writer is not safe for concurrent use and must be the
// only writer of both streams.
//
// Once a write fails the streams no longer agree, and every later Write
// returns the first error.
type Writer struct {
	dict    io.Writer
	idx     io.Writer
	offset  uint32
	count   int
	onWrite func(*index.Record)
	err     error
}

// NewWriter returns a new Writer writing entry bodies to dict and index lines
// to idx.
func NewWriter(dict, idx io.Writer, opts *WriterOptions) *Writer {
	w := &Writer{
		dict: dict,
		idx:  idx,
	}
	if opts != nil {
		w.offset = opts.Offset
		w.onWrite = opts.OnWrite
	}
	return w
}

// Write writes entry under headword and advances the running offset.
func (w *Writer) Write(headword, entry string) error {
	if w.err != nil {
		return w.err
	}

	r, err := writeEntry(w.dict, w.idx, headword, entry, w.offset)
	w.offset = r.Offset + r.Length
	if err != nil {
		w.err = err
		return err
	}
	w.count++
	if w.onWrite != nil {
		w.onWrite(r)
	}
	return nil
}

// Offset returns the running offset, the number of bytes written to the dict
// stream.
func (w *Writer) Offset() uint32 {
	return w.offset
}

// Err returns the first error encountered by Write.
func (w *Writer) Err() error {
	return w.err
}

// Count returns the number of entries written.
func (w *Writer) Count() int {
	return w.count
}
