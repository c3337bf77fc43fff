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

// Package index implements reading and writing dictd .index files.
//
// The .index file contains one line per dictionary entry. Each line has three
// fields separated by a tab character:
//  1. The headword: a utf-8 string.
//  2. The offset: the byte offset of the entry in the .dict file, written as a
//     dictd base64 number (see package b64).
//  3. The length: the byte length of the entry in the .dict file, also a
//     dictd base64 number.
//
// Lines are terminated by a line feed.
package index
