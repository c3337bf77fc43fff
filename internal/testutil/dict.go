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

package testutil

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-dictd/index"
)

// Entry is a test dictionary entry.
type Entry struct {
	Headword string
	Body     string
}

// MakeDictOptions are options for writing a test database.
type MakeDictOptions struct {
	// DictZip indicates that the dict file should be compressed with DictZip.
	DictZip bool
}

// MakeDict creates test .dict file data and the matching index records. Bodies
// are written as-is.
func MakeDict(t *testing.T, entries []*Entry) ([]byte, []*index.Record) {
	t.Helper()

	var b []byte
	var records []*index.Record
	for _, e := range entries {
		if len(b) > math.MaxUint32 || len(e.Body) > math.MaxUint32 {
			t.Fatalf("dict data too long: %d", len(b))
		}
		records = append(records, &index.Record{
			Headword: e.Headword,
			//nolint:gosec // bounds checked above.
			Offset: uint32(len(b)),
			//nolint:gosec // bounds checked above.
			Length: uint32(len(e.Body)),
		})
		b = append(b, e.Body...)
	}
	return b, records
}

// MakeTempDB writes a test database under a temporary directory and returns
// the path of the .index file.
func MakeTempDB(t *testing.T, entries []*Entry, opts *MakeDictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDictOptions{}
	}

	dir := t.TempDir()
	base := filepath.Join(dir, "test")

	d, records := MakeDict(t, entries)
	if err := os.WriteFile(base+".index", MakeIndex(records), 0o600); err != nil {
		t.Fatal(err)
	}

	if !opts.DictZip {
		if err := os.WriteFile(base+".dict", d, 0o600); err != nil {
			t.Fatal(err)
		}
		return base + ".index"
	}

	f, err := os.Create(base + ".dict.dz")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(d); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}

	return base + ".index"
}

// Page is a test lexicon page row.
type Page struct {
	Headword   string
	Definition string
}

// MakePage builds lexicon page markup with the headword table. Cells are
// inserted as raw markup.
func MakePage(rows []*Page) string {
	var sb strings.Builder
	sb.WriteString("<html><head><title>lexicon</title></head><body>\n")
	sb.WriteString("<table>\n<tr><td>Word</td><td>Meaning</td></tr>\n")
	for _, r := range rows {
		sb.WriteString("<tr><td>")
		sb.WriteString(r.Headword)
		sb.WriteString("</td><td>")
		sb.WriteString(r.Definition)
		sb.WriteString("</td></tr>\n")
	}
	sb.WriteString("</table>\n</body></html>\n")
	return sb.String()
}
