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
	"slices"
	"strings"

	"github.com/ianlewis/go-dictd/b64"
)

// ReservedPrefix is the prefix of headwords holding database metadata.
const ReservedPrefix = "00database"

// Record is an .index file entry.
type Record struct {
	// Headword is the entry's lookup key.
	Headword string

	// Offset is the byte offset of the entry in the .dict file.
	Offset uint32

	// Length is the byte length of the entry in the .dict file.
	Length uint32
}

// String returns the record formatted as an .index line without the line
// terminator.
func (r *Record) String() string {
	return r.Headword + "\t" + b64.Encode(r.Offset) + "\t" + b64.Encode(r.Length)
}

// WriteRecord writes r to w as a single .index line.
func WriteRecord(w io.Writer, r *Record) error {
	if _, err := io.WriteString(w, r.String()+"\n"); err != nil {
		return fmt.Errorf("writing index record %q: %w", r.Headword, err)
	}
	return nil
}

// Write writes all records to w in the given order.
func Write(w io.Writer, records []*Record) error {
	for _, r := range records {
		if err := WriteRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// Sort sorts records in place in the order dictd expects to binary search
// them. Metadata records come first. Records with equal headwords keep their
// relative order.
func Sort(records []*Record) {
	slices.SortStableFunc(records, func(a, b *Record) int {
		aReserved := strings.HasPrefix(a.Headword, ReservedPrefix)
		bReserved := strings.HasPrefix(b.Headword, ReservedPrefix)
		switch {
		case aReserved && !bReserved:
			return -1
		case !aReserved && bReserved:
			return 1
		}
		return strings.Compare(a.Headword, b.Headword)
	})
}
