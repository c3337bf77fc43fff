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

package lexicon_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-dictd/internal/testutil"
	"github.com/ianlewis/go-dictd/lexicon"
	"github.com/ianlewis/go-dictd/normalize"
)

// identity leaves converted markup unchanged so that tests can feed the
// escape repair stages directly.
var identity = &lexicon.Options{
	Normalize: &normalize.Options{
		Converter: normalize.ConverterFunc(func(markup string) (string, error) {
			return markup, nil
		}),
	},
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     string
		options  *lexicon.Options
		expected []*lexicon.Entry
		err      error
	}{
		{
			name: "entries in row order",
			page: testutil.MakePage([]*testutil.Page{
				{Headword: "மரம்", Definition: "<font>maram<br/>tree</font>"},
				{Headword: "அம்மா<sup>2</sup>", Definition: `<font>ammā<br/>1\. first meaning</font>`},
			}),
			options: identity,
			expected: []*lexicon.Entry{
				{Headword: "மரம்", Body: "மரம்\n  tree"},
				{Headword: "அம்மா²", Body: "அம்மா²\n  1. first meaning"},
			},
		},
		{
			name: "annotation marker",
			page: testutil.MakePage([]*testutil.Page{
				{Headword: "அம்மா<sup>a</sup>", Definition: "<font>ammā<br/>mother</font>"},
			}),
			options: identity,
			expected: []*lexicon.Entry{
				{Headword: "அம்மா(a)", Body: "அம்மா(a)\n  mother"},
			},
		},
		{
			name: "headword line breaks",
			page: testutil.MakePage([]*testutil.Page{
				{Headword: "\n  அம்\nமா  \n", Definition: "<font>ammā</font><br/>mother"},
			}),
			options: identity,
			expected: []*lexicon.Entry{
				{Headword: "அம்மா", Body: "அம்மா\n  mother"},
			},
		},
		{
			name: "short rows skipped",
			page: `<html><body><table>
<tr><td>Word</td><td>Meaning</td></tr>
<tr><td colspan="2">separator</td></tr>
<tr><td>மரம்</td><td><font>maram<br/>tree</font></td></tr>
<tr></tr>
</table></body></html>`,
			options: identity,
			expected: []*lexicon.Entry{
				{Headword: "மரம்", Body: "மரம்\n  tree"},
			},
		},
		{
			name: "wrapped header",
			page: `<html><body><table>
<tr><td><b>Word</b></td><td>Meaning</td></tr>
<tr><td>மரம்</td><td><font>maram<br/>tree</font></td></tr>
</table></body></html>`,
			options: identity,
			expected: []*lexicon.Entry{
				{Headword: "மரம்", Body: "மரம்\n  tree"},
			},
		},
		{
			name: "default converter",
			page: testutil.MakePage([]*testutil.Page{
				{Headword: "மரம்", Definition: "<font>maram<br/>1. tree. See விருட்சம்.</font>"},
			}),
			options: nil,
			expected: []*lexicon.Entry{
				{Headword: "மரம்", Body: "மரம்\n  1. tree. See {விருட்சம்}."},
			},
		},
		{
			name:    "no table",
			page:    "<html><body><table><tr><td>Words</td></tr></table></body></html>",
			options: identity,
			err:     lexicon.ErrNoTable,
		},
		{
			name:     "empty table",
			page:     testutil.MakePage(nil),
			options:  identity,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, err := lexicon.Extract(strings.NewReader(test.page), test.options)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Extract err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Fatalf("Extract (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_convertError(t *testing.T) {
	t.Parallel()

	errConvert := errors.New("convert failed")
	page := testutil.MakePage([]*testutil.Page{
		{Headword: "மரம்", Definition: "<font>maram<br/>tree</font>"},
		{Headword: "அம்மா", Definition: "<font>ammā<br/>mother</font>"},
	})

	calls := 0
	s, err := lexicon.NewScanner(strings.NewReader(page), &lexicon.Options{
		Normalize: &normalize.Options{
			Converter: normalize.ConverterFunc(func(markup string) (string, error) {
				calls++
				if calls > 1 {
					return "", errConvert
				}
				return markup, nil
			}),
		},
	})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	if !s.Scan() {
		t.Fatalf("Scan: want true, err: %v", s.Err())
	}
	if diff := cmp.Diff("மரம்", s.Entry().Headword); diff != "" {
		t.Fatalf("Headword (-want, +got):\n%s", diff)
	}
	if s.Scan() {
		t.Fatal("Scan: want false")
	}
	if !errors.Is(s.Err(), errConvert) {
		t.Fatalf("Err: want %v, got %v", errConvert, s.Err())
	}
	if s.Scan() {
		t.Fatal("Scan after error: want false")
	}
}
