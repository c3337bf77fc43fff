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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []*Record
		err      error
	}{
		{
			name: "metadata and entries",
			data: "00databaseutf8\tA\tB\nஅம்மா\tB\tBk\n",
			expected: []*Record{
				{Headword: "00databaseutf8", Offset: 0, Length: 1},
				{Headword: "அம்மா", Offset: 1, Length: 100},
			},
		},
		{
			name: "crlf and missing final newline",
			data: "foo\tA\tC\r\nbar\tC\tD",
			expected: []*Record{
				{Headword: "foo", Offset: 0, Length: 2},
				{Headword: "bar", Offset: 2, Length: 3},
			},
		},
		{
			name: "headword with spaces",
			data: "foo bar\tBA\tB\n",
			expected: []*Record{
				{Headword: "foo bar", Offset: 64, Length: 1},
			},
		},
		{
			name: "missing field",
			data: "foo\tA\n",
			err:  ErrMalformed,
		},
		{
			name: "bad offset",
			data: "foo\tA=\tB\n",
			err:  ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(strings.NewReader(test.data))
			var records []*Record
			for s.Scan() {
				records = append(records, s.Record())
			}
			err := s.Err()
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Err: want %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Err: %v", err)
			}
			if diff := cmp.Diff(test.expected, records); diff != "" {
				t.Fatalf("records (-want, +got):\n%s", diff)
			}
		})
	}
}
