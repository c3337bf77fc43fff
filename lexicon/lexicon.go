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

// Package lexicon extracts dictionary entries from Tamil Lexicon pages.
//
// Each page holds a table whose header cell reads "Word". Every following row
// has a headword cell and a definition cell.
package lexicon

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dictd/internal/folding"
	"github.com/ianlewis/go-dictd/normalize"
)

// ErrNoTable indicates that a page has no headword table.
var ErrNoTable = errors.New("headword table not found")

// headerText is the text of the header cell marking the headword table.
const headerText = "Word"

// Entry is a dictionary entry extracted from a page.
type Entry struct {
	// Headword is the entry's lookup key.
	Headword string

	// Body is the entry's text. It starts with the headword on its own line.
	Body string
}

// Options are options for extracting entries.
type Options struct {
	// Normalize are the options used to clean up definitions.
	Normalize *normalize.Options
}

// DefaultOptions is the default options for a Scanner.
var DefaultOptions = &Options{
	Normalize: normalize.DefaultOptions,
}

// Scanner scans the entries of a page in table row order.
type Scanner struct {
	rows       []*html.Node
	normalizer *normalize.Normalizer
	entry      *Entry
	err        error
}

// NewScanner parses the page read from r and returns a Scanner over its
// entries. It returns ErrNoTable if the page has no headword table.
func NewScanner(r io.Reader, options *Options) (*Scanner, error) {
	if options == nil {
		options = DefaultOptions
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	header := findHeader(doc)
	if header == nil || header.Parent == nil || header.Parent.Parent == nil {
		return nil, ErrNoTable
	}

	rows := findAll(header.Parent.Parent, atom.Tr)
	if len(rows) > 0 {
		// Skip the header row.
		rows = rows[1:]
	}

	return &Scanner{
		rows:       rows,
		normalizer: normalize.New(options.Normalize),
	}, nil
}

// Scan advances to the next entry. It returns false when there are no more
// rows or an error occurs.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for len(s.rows) > 0 {
		row := s.rows[0]
		s.rows = s.rows[1:]

		cells := findAll(row, atom.Td)
		if len(cells) < 2 {
			// Layout rows are not entries.
			continue
		}

		entry, err := s.entryFromCells(cells[0], cells[1])
		if err != nil {
			s.err = err
			s.entry = nil
			return false
		}
		s.entry = entry
		return true
	}
	s.entry = nil
	return false
}

// Entry returns the most recently scanned entry.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) entryFromCells(wordCell, defnCell *html.Node) (*Entry, error) {
	normalize.Superscript(wordCell)
	word, _, err := transform.String(&folding.LineBreakFolder{}, normalize.Text(wordCell))
	if err != nil {
		return nil, fmt.Errorf("folding headword: %w", err)
	}

	defn, err := s.normalizer.Definition(defnCell)
	if err != nil {
		return nil, fmt.Errorf("normalizing definition of %q: %w", word, err)
	}

	return &Entry{
		Headword: word,
		Body:     word + "\n" + defn,
	}, nil
}

// Extract returns all entries of the page read from r.
func Extract(r io.Reader, options *Options) ([]*Entry, error) {
	s, err := NewScanner(r, options)
	if err != nil {
		return nil, err
	}
	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// findHeader returns the first <td> whose only content is the header text.
func findHeader(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Td {
		if s, ok := onlyString(n); ok && s == headerText {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findHeader(c); found != nil {
			return found
		}
	}
	return nil
}

// onlyString returns the text of n if n has a single text descendant reached
// through single-child elements.
func onlyString(n *html.Node) (string, bool) {
	c := n.FirstChild
	if c == nil || c.NextSibling != nil {
		return "", false
	}
	switch c.Type {
	case html.TextNode:
		return c.Data, true
	case html.ElementNode:
		return onlyString(c)
	default:
		return "", false
	}
}

// findAll returns all descendants of n with the given tag in document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, findAll(c, a)...)
	}
	return nodes
}
