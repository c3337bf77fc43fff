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
	"strings"
)

// Rule is a single rewrite pass over converted text.
type Rule struct {
	// Name identifies the rule.
	Name string

	// Apply rewrites the text.
	Apply func(string) string
}

// escapable holds the characters that markdown allows to be escaped.
const escapable = "\\`*_{}[]()#+-.!"

// space matches a single whitespace character, including unicode spaces.
const space = `[\s\x{0B}\x{85}\p{Z}]`

var (
	// An ordinal such as "12\. " at the start of a line.
	ordinalRegex = regexp.MustCompile(`(?m)^(` + space + `*\p{Nd}+)\\(\.)(` + space + `)`)

	// A literal plus at the start of a line followed by whitespace.
	plusRegex = regexp.MustCompile(`(?m)^(` + space + `*)\\(\+)(` + space + `)`)

	// A literal dash at the start of a line followed by whitespace or another
	// dash (a spaced out rule, a header underline or a rule).
	dashRegex = regexp.MustCompile(`(?m)^(` + space + `*)\\(-)(` + space + `|-)`)
)

// UnescapeRules are the escape repair passes in the order they must be
// applied. Collapsing double backslashes can expose escapes the later rules
// remove.
var UnescapeRules = []Rule{
	{Name: "backslash", Apply: CollapseBackslashes},
	{Name: "ordinal", Apply: replaceRule(ordinalRegex)},
	{Name: "plus", Apply: replaceRule(plusRegex)},
	{Name: "dash", Apply: replaceRule(dashRegex)},
}

// Unescape removes redundant escapes added by the markdown converter.
func Unescape(md string) string {
	for _, r := range UnescapeRules {
		md = r.Apply(md)
	}
	return md
}

// CollapseBackslashes replaces a doubled backslash in front of an escapable
// character with a single backslash.
func CollapseBackslashes(s string) string {
	if !strings.Contains(s, `\\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+2 < len(s) && s[i+1] == '\\' && strings.IndexByte(escapable, s[i+2]) >= 0 {
			// Drop the first backslash. The escaped character is examined on
			// the next iteration as it may start another match.
			sb.WriteByte('\\')
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// replaceRule drops the backslash matched between the first and second group
// of re. The third group is the trailing context of the match and is kept.
func replaceRule(re *regexp.Regexp) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, "${1}${2}${3}")
	}
}
