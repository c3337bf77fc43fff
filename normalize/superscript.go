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

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// superscripts maps ASCII digits to their superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
}

// SuperscriptText returns the replacement text for a superscript marker.
// Homograph numbers become superscript digits. Any other annotation is wrapped
// in parentheses.
func SuperscriptText(s string) string {
	if !isDigits(s) {
		return "(" + s + ")"
	}
	var sb strings.Builder
	for _, r := range s {
		sb.WriteRune(superscripts[r])
	}
	return sb.String()
}

// Superscript replaces the first <sup> element under n with a text node
// holding its SuperscriptText. It reports whether a marker was found.
func Superscript(n *html.Node) bool {
	sup := findFirst(n, atom.Sup)
	if sup == nil {
		return false
	}
	sup.Parent.InsertBefore(&html.Node{
		Type: html.TextNode,
		Data: SuperscriptText(Text(sup)),
	}, sup)
	sup.Parent.RemoveChild(sup)
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
