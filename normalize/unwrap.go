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

// lineBreak is how a <br> element is rendered.
const lineBreak = "<br/>"

// Unwrap returns the markup of a definition cell without its styling wrapper.
//
// Definitions are wrapped in a single <font> element that starts with an echo
// of the headword's transliteration. When the wrapper holds a line break only
// the markup after the first line break is kept. Otherwise the wrapper is
// dropped together with the cell's first line break.
//
// Unwrap modifies the cell's tree.
func Unwrap(cell *html.Node) (string, error) {
	font := findFirst(cell, atom.Font)
	if font != nil && findFirst(font, atom.Br) != nil {
		inner, err := renderChildren(font)
		if err != nil {
			return "", err
		}
		if i := strings.Index(inner, lineBreak); i >= 0 {
			return inner[i+len(lineBreak):], nil
		}
		return inner, nil
	}

	if font != nil {
		font.Parent.RemoveChild(font)
	}
	if br := findFirst(cell, atom.Br); br != nil {
		br.Parent.RemoveChild(br)
	}
	return renderChildren(cell)
}
