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

package index_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dictd/index"
	"github.com/ianlewis/go-dictd/internal/testutil"
)

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		records []*index.Record
		options *index.Options

		expected []*index.Record
	}{
		{
			name:     "empty index",
			query:    "foo",
			records:  []*index.Record{},
			expected: nil,
		},
		{
			name:  "no match",
			query: "hoge",
			records: []*index.Record{
				{Headword: "bar"},
				{Headword: "baz"},
				{Headword: "foo"},
			},
			expected: nil,
		},
		{
			name:  "unsorted index",
			query: "அம்மா",
			records: []*index.Record{
				{Headword: "மரம்", Offset: 0, Length: 10},
				{Headword: "அம்மா", Offset: 10, Length: 20},
				{Headword: "அப்பா", Offset: 30, Length: 5},
			},
			expected: []*index.Record{
				{Headword: "அம்மா", Offset: 10, Length: 20},
			},
		},
		{
			name:  "multi-match keeps file order",
			query: "hoge",
			records: []*index.Record{
				{Headword: "hoge", Offset: 345, Length: 678},
				{Headword: "fuga"},
				{Headword: "hoge", Offset: 123, Length: 456},
			},
			expected: []*index.Record{
				{Headword: "hoge", Offset: 345, Length: 678},
				{Headword: "hoge", Offset: 123, Length: 456},
			},
		},
		{
			name:  "case folding",
			query: "hoge",
			records: []*index.Record{
				{Headword: "bar"},
				{Headword: "Hoge", Offset: 1, Length: 2},
			},
			options: &index.Options{
				Folder: func() transform.Transformer {
					return cases.Fold()
				},
			},
			expected: []*index.Record{
				{Headword: "Hoge", Offset: 1, Length: 2},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx, err := index.New(bytes.NewReader(testutil.MakeIndex(test.records)), test.options)
			if err != nil {
				t.Fatalf("index.New: %v", err)
			}

			result, err := idx.Search(test.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if diff := cmp.Diff(test.expected, result); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Prefix(t *testing.T) {
	t.Parallel()

	records := []*index.Record{
		{Headword: "அம்மா", Offset: 0, Length: 1},
		{Headword: "மரம்", Offset: 1, Length: 1},
		{Headword: "அம்பு", Offset: 2, Length: 1},
	}
	idx, err := index.New(bytes.NewReader(testutil.MakeIndex(records)), nil)
	if err != nil {
		t.Fatalf("index.New: %v", err)
	}

	result, err := idx.Prefix("அம்")
	if err != nil {
		t.Fatalf("Prefix: %v", err)
	}
	expected := []*index.Record{
		{Headword: "அம்பு", Offset: 2, Length: 1},
		{Headword: "அம்மா", Offset: 0, Length: 1},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("Prefix (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(records, idx.Records()); diff != "" {
		t.Fatalf("Records (-want, +got):\n%s", diff)
	}
}
