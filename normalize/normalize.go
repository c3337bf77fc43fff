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

// Package normalize turns Tamil Lexicon definition markup into the plain text
// stored in a dictd database.
//
// A definition passes through the following stages:
//  1. Unwrap: the styling wrapper and transliteration echo are removed.
//  2. Convert: the markup is converted to text (markdown by default).
//  3. Unescape: redundant escapes added by the converter are removed.
//  4. LinkCrossRefs: "See WORD." becomes "See {WORD}.".
//  5. Indent: the text is trimmed and every line indented by two spaces.
//
// Headword cells only go through Superscript.
package normalize

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options are options for a Normalizer.
type Options struct {
	// Transliteration keeps the transliteration of the headword that starts
	// each definition.
	Transliteration bool

	// Converter converts definition markup to text. Defaults to a
	// MarkdownConverter.
	Converter Converter

	// Sanitize removes markup other than basic formatting before conversion.
	Sanitize bool
}

// DefaultOptions is the default options for a Normalizer.
var DefaultOptions = &Options{
	Sanitize: true,
}

// Normalizer cleans up definition cells.
type Normalizer struct {
	transliteration bool
	converter       Converter
	policy          *bluemonday.Policy
}

// New returns a new Normalizer.
func New(options *Options) *Normalizer {
	if options == nil {
		options = DefaultOptions
	}

	n := &Normalizer{
		transliteration: options.Transliteration,
		converter:       options.Converter,
	}
	if n.converter == nil {
		n.converter = NewMarkdownConverter()
	}
	if options.Sanitize {
		n.policy = newSanitizer()
	}
	return n
}

// Definition returns the display text for a definition cell. The cell's tree
// may be modified.
func (n *Normalizer) Definition(cell *html.Node) (string, error) {
	var markup string
	var err error
	if n.transliteration {
		markup, err = renderChildren(cell)
	} else {
		markup, err = Unwrap(cell)
	}
	if err != nil {
		return "", err
	}

	if n.policy != nil {
		markup = n.policy.Sanitize(markup)
	}

	text, err := n.converter.Convert(markup)
	if err != nil {
		return "", err
	}

	text = Unescape(text)
	text = LinkCrossRefs(text)
	return Indent(text), nil
}

// Normalize parses a definition cell's inner markup and returns its display
// text.
func (n *Normalizer) Normalize(markup string) (string, error) {
	cell := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Td.String(),
		DataAtom: atom.Td,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), cell)
	if err != nil {
		return "", fmt.Errorf("parsing definition markup: %w", err)
	}
	for _, c := range nodes {
		cell.AppendChild(c)
	}
	return n.Definition(cell)
}

// Indent trims s and indents each of its lines by two spaces.
func Indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n  ")
}
