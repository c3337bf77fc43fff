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

package normalize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// identity is a converter that returns the markup unchanged.
var identity = ConverterFunc(func(markup string) (string, error) {
	return markup, nil
})

func parseCell(t *testing.T, markup string) *html.Node {
	t.Helper()

	cell := &html.Node{
		Type:     html.ElementNode,
		Data:     "td",
		DataAtom: atom.Td,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), cell)
	if err != nil {
		t.Fatalf("html.ParseFragment: %v", err)
	}
	for _, n := range nodes {
		cell.AppendChild(n)
	}
	return cell
}

func TestSuperscript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markup   string
		found    bool
		expected string
	}{
		{
			name:     "homograph number",
			markup:   "அ<sup>2</sup>",
			found:    true,
			expected: "அ²",
		},
		{
			name:     "multiple digits",
			markup:   "அ<sup>12</sup>",
			found:    true,
			expected: "அ¹²",
		},
		{
			name:     "annotation",
			markup:   "அ<sup>a</sup>",
			found:    true,
			expected: "அ(a)",
		},
		{
			name:     "only first marker",
			markup:   "அ<sup>1</sup>ஆ<sup>2</sup>",
			found:    true,
			expected: "அ¹ஆ2",
		},
		{
			name:     "nested",
			markup:   "<b>அ<sup>3</sup></b>",
			found:    true,
			expected: "அ³",
		},
		{
			name:     "no marker",
			markup:   "அம்மா",
			found:    false,
			expected: "அம்மா",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cell := parseCell(t, test.markup)
			if want, got := test.found, Superscript(cell); want != got {
				t.Fatalf("Superscript: want %v, got %v", want, got)
			}
			if diff := cmp.Diff(test.expected, Text(cell)); diff != "" {
				t.Fatalf("Text (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSuperscriptText(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"0":          "⁰",
		"1234567890": "¹²³⁴⁵⁶⁷⁸⁹⁰",
		"":           "()",
		"a":          "(a)",
		"1a":         "(1a)",
	}
	for in, expected := range tests {
		if diff := cmp.Diff(expected, SuperscriptText(in)); diff != "" {
			t.Errorf("SuperscriptText(%q) (-want, +got):\n%s", in, diff)
		}
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "line break in wrapper",
			markup:   "<font color=\"blue\">ammā<br/>mother</font>",
			expected: "mother",
		},
		{
			name:     "only first line break",
			markup:   "<font>ammā<br>mother<br>parent</font>",
			expected: "mother<br/>parent",
		},
		{
			name:     "nested line break",
			markup:   "<font><b>ammā<br/></b>mother</font>",
			expected: "</b>mother",
		},
		{
			name:     "wrapper without line break",
			markup:   "<font>ammā</font><br>mother",
			expected: "mother",
		},
		{
			name:     "no wrapper",
			markup:   "<br>mother<br>parent",
			expected: "mother<br/>parent",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Unwrap(parseCell(t, test.markup))
			if err != nil {
				t.Fatalf("Unwrap: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Unwrap (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		options  *Options
		markup   string
		expected string
	}{
		{
			name:     "escaped ordinal",
			options:  &Options{Converter: identity},
			markup:   `<font>ammā<br/>1\. first meaning</font>`,
			expected: "  1. first meaning",
		},
		{
			name:    "multi-line",
			options: &Options{Converter: identity},
			markup: "<font>ammā<br/>\n1\\. mother\n\\+ respect\n\\- lady\n</font>",
			expected: "  1. mother\n" +
				"  + respect\n" +
				"  - lady",
		},
		{
			name:     "cross-reference",
			options:  &Options{Converter: identity},
			markup:   "<font>ammā<br/>See மரம்.</font>",
			expected: "  See {மரம்}.",
		},
		{
			name:     "wrapper without line break",
			options:  &Options{Converter: identity},
			markup:   "<font>ammā</font><br>mother",
			expected: "  mother",
		},
		{
			name:     "sanitized",
			options:  &Options{Converter: identity, Sanitize: true},
			markup:   "<font>ammā<br/><script>alert(1)</script>mother</font>",
			expected: "  mother",
		},
		{
			name:     "transliteration kept",
			options:  &Options{Converter: NewTextConverter(), Transliteration: true},
			markup:   "<font>ammā<br/>mother</font>",
			expected: "  ammā\n  mother",
		},
		{
			name:     "markdown ordinal",
			options:  &Options{Converter: NewMarkdownConverter()},
			markup:   "<font>ammā<br/>1. first meaning</font>",
			expected: "  1. first meaning",
		},
		{
			name:     "markdown cross-reference",
			options:  nil,
			markup:   "<font>ammā<br/>See மரம்.</font>",
			expected: "  See {மரம்}.",
		},
		{
			name:     "markdown bold",
			options:  &Options{Converter: NewMarkdownConverter()},
			markup:   "<font>ammā<br/><b>mother</b></font>",
			expected: "  **mother**",
		},
		{
			name:     "markdown angle brackets",
			options:  nil,
			markup:   "<font>ammā<br/>mother. &lt; Skt. ambā. a &gt; b</font>",
			expected: "  mother. < Skt. ambā. a > b",
		},
		{
			name:     "markdown angle brackets unsanitized",
			options:  &Options{Converter: NewMarkdownConverter()},
			markup:   "<font>ammā<br/>mother. &lt; Skt. ambā.</font>",
			expected: "  mother. < Skt. ambā.",
		},
		{
			name:     "markdown ampersand",
			options:  nil,
			markup:   "<font>ammā<br/>Tam. &amp; Mal.</font>",
			expected: "  Tam. & Mal.",
		},
		{
			name:     "markdown link",
			options:  nil,
			markup:   `<font>ammā<br/><a href="https://example.com/lexicon">mother</a></font>`,
			expected: "  [mother](https://example.com/lexicon)",
		},
		{
			name:     "sanitized link",
			options:  &Options{Converter: identity, Sanitize: true},
			markup:   `<font>ammā<br/><a href="https://example.com/lexicon" onclick="x()">mother</a></font>`,
			expected: `  <a href="https://example.com/lexicon">mother</a>`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(test.options).Normalize(test.markup)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Normalize (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"mother":            "  mother",
		"\n\n mother \n":    "  mother",
		"one\ntwo":          "  one\n  two",
		"one\n\ntwo\n":      "  one\n  \n  two",
		"":                  "  ",
		"one\n  indented\n": "  one\n    indented",
	}
	for in, expected := range tests {
		if diff := cmp.Diff(expected, Indent(in)); diff != "" {
			t.Errorf("Indent(%q) (-want, +got):\n%s", in, diff)
		}
	}
}
