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
	"github.com/ianlewis/go-dictd/b64"
	"github.com/ianlewis/go-dictd/index"
)

// MakeIndex makes a test .index file given a list of records.
func MakeIndex(records []*index.Record) []byte {
	b := []byte{}
	for _, r := range records {
		b = append(b, r.Headword...)
		b = append(b, '\t')
		b = append(b, b64.Encode(r.Offset)...)
		b = append(b, '\t')
		b = append(b, b64.Encode(r.Length)...)
		b = append(b, '\n')
	}
	return b
}
