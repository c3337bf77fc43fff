// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictd

// Entry is a dictionary entry read from a database.
type Entry struct {
	headword string
	body     string
}

// Headword returns the entry's headword.
func (e *Entry) Headword() string {
	return e.headword
}

// Body returns the entry's stored text. By convention it starts with the
// headword on its own line.
func (e *Entry) Body() string {
	return e.body
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.body
}
