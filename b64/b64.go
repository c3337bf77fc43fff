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

// Package b64 implements the integer encoding used by dictd .index files.
//
// Offsets and lengths in a dictd index are written as base64 numbers using the
// RFC 1421 alphabet (A-Z, a-z, 0-9, '+', '/'). A 32-bit value is split into
// six groups, most significant first, and leading zero digits ('A') are
// dropped. Zero is written as "A".
package b64

import (
	"errors"
	"fmt"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// maxDigits is the number of digits needed for a 32-bit value.
const maxDigits = 6

var (
	// ErrEmpty indicates that an empty string was decoded.
	ErrEmpty = errors.New("empty b64 value")

	// ErrInvalidChar indicates that a character outside the alphabet was
	// found.
	ErrInvalidChar = errors.New("invalid b64 character")

	// ErrOverflow indicates that the decoded value does not fit in 32 bits.
	ErrOverflow = errors.New("b64 value overflows 32 bits")
)

var decodeMap [256]int8

//nolint:gochecknoinits // init needed to build the lookup table.
func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
	}
}

// Encode encodes i as a dictd base64 number.
func Encode(i uint32) string {
	var buf [maxDigits]byte
	for n := 0; n < maxDigits; n++ {
		shift := uint(6 * (maxDigits - 1 - n))
		buf[n] = alphabet[(i>>shift)&0x3f]
	}

	// Strip leading zero digits but always keep the last digit.
	n := 0
	for n < maxDigits-1 && buf[n] == alphabet[0] {
		n++
	}
	return string(buf[n:])
}

// Decode decodes a dictd base64 number.
func Decode(s string) (uint32, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if len(s) > maxDigits {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		d := decodeMap[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidChar, s[i])
		}
		v = v<<6 | uint64(d)
	}
	if v > 0xffffffff {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return uint32(v), nil
}
