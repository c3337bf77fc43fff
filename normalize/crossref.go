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
	"regexp"
)

// crossRefRegex matches a cross-reference to a Tamil word. The first group is
// the word. Tamil is U+0B80-U+0BFF and the Tamil Supplement block is
// U+11FC0-U+11FFF.
var crossRefRegex = regexp.MustCompile(`See\.? ([\x{0B80}-\x{0BFF}\x{11FC0}-\x{11FFF}]+)\.`)

// LinkCrossRefs rewrites cross-references of the form "See WORD." to
// "See {WORD}." so that dictd clients render them as links.
func LinkCrossRefs(s string) string {
	for crossRefRegex.MatchString(s) {
		s = crossRefRegex.ReplaceAllString(s, "See {${1}}.")
	}
	return s
}
