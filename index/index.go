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
	"fmt"
	"io"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dictd/internal/index"
)

// Options are options for the in-memory index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on headwords and queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

type foldedRecord struct {
	folded string
	record *Record
}

// Index is a very basic implementation of an in memory search index over an
// .index file. Records are kept in file order and are searched by their folded
// headword.
type Index struct {
	records []*Record
	index   *index.Index[*foldedRecord]
	folder  func() transform.Transformer
}

// New reads all records from r and returns a new in-memory index.
func New(r io.Reader, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	idx := &Index{
		folder: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		idx.folder = options.Folder
	}

	s := NewScanner(r)
	var folded []*foldedRecord
	for s.Scan() {
		record := s.Record()
		f, _, err := transform.String(idx.folder(), record.Headword)
		if err != nil {
			return nil, fmt.Errorf("folding headword %q: %w", record.Headword, err)
		}
		idx.records = append(idx.records, record)
		folded = append(folded, &foldedRecord{
			folded: f,
			record: record,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}

	idx.index = index.New(folded, func(r *foldedRecord) string {
		return r.folded
	})

	return idx, nil
}

// Records returns all records in file order.
func (idx *Index) Records() []*Record {
	return idx.records
}

// Search performs a query of the index and returns matching records.
func (idx *Index) Search(query string) ([]*Record, error) {
	return idx.lookup(query, idx.index.Search)
}

// Prefix returns records whose folded headword starts with the folded prefix.
func (idx *Index) Prefix(prefix string) ([]*Record, error) {
	return idx.lookup(prefix, idx.index.Prefix)
}

func (idx *Index) lookup(query string, find func(string) []*foldedRecord) ([]*Record, error) {
	folded, _, err := transform.String(idx.folder(), query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	var records []*Record
	for _, r := range find(folded) {
		records = append(records, r.record)
	}
	return records, nil
}
