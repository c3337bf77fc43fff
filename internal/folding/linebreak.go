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

// Package folding implements text transformers used to normalize headwords.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// LineBreakFolder folds a headword onto a single line. It removes whitespace
// from the beginning and end of the input and drops every line feed. Other
// internal whitespace is kept as-is.
type LineBreakFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// pending holds internal whitespace that has not been emitted yet. It is
	// discarded if the input ends before another non-whitespace rune.
	pending []byte
}

// Transform implements [transform.Transformer.Transform].
func (f *LineBreakFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			if f.notStart && c != '\n' {
				f.pending = append(f.pending, src[nSrc:nSrc+size]...)
			}
			nSrc += size
			continue
		}

		// Invalid bytes are passed through unchanged.
		if nDst+len(f.pending)+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], f.pending)
		f.pending = f.pending[:0]
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		f.notStart = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *LineBreakFolder) Reset() {
	*f = LineBreakFolder{}
}
