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

// Package convert builds a dictd database from a directory of saved Tamil
// Lexicon pages.
package convert

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-dictd"
	"github.com/ianlewis/go-dictd/index"
	"github.com/ianlewis/go-dictd/lexicon"
)

// pageExt is the extension of saved lexicon pages.
const pageExt = ".html"

// Options are options for building a database.
type Options struct {
	// Metadata is written before the dictionary entries. If AbbrevsPath is
	// set its contents replace Metadata.Info.
	Metadata dictd.Metadata

	// AbbrevsPath is the path of the plain-text abbreviations list used as
	// the database info.
	AbbrevsPath string

	// Lexicon are the options used to extract entries from pages.
	Lexicon *lexicon.Options

	// DictZip compresses the .dict file using the dictzip format.
	DictZip bool

	// SortIndex writes the .index file sorted by headword instead of in
	// write order.
	SortIndex bool

	// Logger receives progress messages. Defaults to discarding them.
	Logger *slog.Logger
}

// DefaultOptions is the default options for Build and Run.
var DefaultOptions = &Options{
	Metadata: dictd.Metadata{
		Short: "சென்னைப் பல்கலைகழகத் தமிழ்ப் பேரகராதி",
		URL:   "https://www.tamilvu.org/ta/library-lexicon-html-lexhome-161876",
	},
}

// Stats summarizes a conversion run.
type Stats struct {
	// Pages is the number of pages converted.
	Pages int

	// Entries is the number of dictionary entries written, excluding
	// metadata.
	Entries int

	// Bytes is the size of the uncompressed .dict data.
	Bytes uint32
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Pages returns the saved pages in dir in page number order. Pages are files
// named after their page number with an .html extension. Files with
// non-numeric names sort before all numbered pages.
func Pages(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pages directory: %w", err)
	}

	type page struct {
		num  int
		name string
	}
	var pages []page
	for _, e := range dirEntries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), pageExt) {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSuffix(e.Name(), pageExt))
		if err != nil || num < 0 {
			num = -1
		}
		pages = append(pages, page{num: num, name: e.Name()})
	}

	slices.SortFunc(pages, func(a, b page) int {
		if c := cmp.Compare(a.num, b.num); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	paths := make([]string, len(pages))
	for i, p := range pages {
		paths[i] = filepath.Join(dir, p.name)
	}
	return paths, nil
}

// Run writes the metadata entries followed by the entries of every page in
// dir to w. The context is checked between pages.
func Run(ctx context.Context, w *dictd.Writer, dir string, opts *Options) (*Stats, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	log := opts.logger()

	m := opts.Metadata
	if opts.AbbrevsPath != "" {
		b, err := os.ReadFile(opts.AbbrevsPath)
		if err != nil {
			return nil, fmt.Errorf("reading abbreviations: %w", err)
		}
		m.Info = string(b)
	}
	if err := dictd.WriteMetadata(w, m); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}

	pages, err := Pages(dir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, path := range pages {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("converting pages: %w", err)
		}

		n, err := writePage(w, path, opts.Lexicon)
		if err != nil {
			return stats, err
		}
		log.Info("wrote page", "path", path, "entries", n, "offset", w.Offset())

		stats.Pages++
		stats.Entries += n
	}
	stats.Bytes = w.Offset()

	return stats, nil
}

func writePage(w *dictd.Writer, path string, opts *lexicon.Options) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	s, err := lexicon.NewScanner(bufio.NewReader(f), opts)
	if err != nil {
		return 0, fmt.Errorf("page %q: %w", path, err)
	}

	n := 0
	for s.Scan() {
		e := s.Entry()
		if err := w.Write(e.Headword, e.Body); err != nil {
			return n, fmt.Errorf("page %q: %w", path, err)
		}
		n++
	}
	if err := s.Err(); err != nil {
		return n, fmt.Errorf("page %q: %w", path, err)
	}
	return n, nil
}

// Build converts the pages in dir into a database at base. The .index file is
// written to base+".index" and the entries to base+".dict" (or base+".dict.dz"
// when DictZip is set). Partially written files are removed on failure.
func Build(ctx context.Context, base, dir string, opts *Options) (stats *Stats, err error) {
	if opts == nil {
		opts = DefaultOptions
	}

	dictPath := base + ".dict"
	if opts.DictZip {
		dictPath += ".dz"
	}
	indexPath := base + ".index"

	dictFile, err := os.Create(dictPath)
	if err != nil {
		return nil, fmt.Errorf("creating dict file: %w", err)
	}
	indexFile, err := os.Create(indexPath)
	if err != nil {
		dictFile.Close()
		os.Remove(dictPath)
		return nil, fmt.Errorf("creating index file: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeFile(dictFile), closeFile(indexFile))
		if err != nil {
			os.Remove(dictPath)
			os.Remove(indexPath)
		}
	}()

	var dictW interface {
		io.Writer
		Close() error
	}
	if opts.DictZip {
		z, zErr := dictzip.NewWriter(dictFile)
		if zErr != nil {
			return nil, fmt.Errorf("creating dictzip writer: %w", zErr)
		}
		dictW = z
	} else {
		dictW = &flushCloser{bufio.NewWriter(dictFile)}
	}
	indexBuf := bufio.NewWriter(indexFile)

	var records []*index.Record
	var w *dictd.Writer
	if opts.SortIndex {
		w = dictd.NewWriter(dictW, io.Discard, &dictd.WriterOptions{
			OnWrite: func(r *index.Record) {
				records = append(records, r)
			},
		})
	} else {
		w = dictd.NewWriter(dictW, indexBuf, nil)
	}

	stats, err = Run(ctx, w, dir, opts)
	if err != nil {
		return nil, err
	}

	if opts.SortIndex {
		index.Sort(records)
		if err := index.Write(indexBuf, records); err != nil {
			return nil, err
		}
	}

	if err := dictW.Close(); err != nil {
		return nil, fmt.Errorf("writing dict file: %w", err)
	}
	if err := indexBuf.Flush(); err != nil {
		return nil, fmt.Errorf("writing index file: %w", err)
	}

	opts.logger().Info("built database",
		"dict", dictPath,
		"index", indexPath,
		"pages", stats.Pages,
		"entries", stats.Entries,
		"bytes", stats.Bytes,
	)
	return stats, nil
}

// flushCloser flushes a buffered writer on Close.
type flushCloser struct {
	*bufio.Writer
}

func (f *flushCloser) Close() error {
	//nolint:wrapcheck // wrapped by the caller.
	return f.Flush()
}

func closeFile(f *os.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", f.Name(), err)
	}
	return nil
}
