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

// Package dictd implements a library for writing and reading dictd
// dictionary databases in pure Go.
//
// A dictd database contains two files:
//  1. A .dict file that contains the concatenated entry bodies. The dict file
//     can be compressed using the dictzip format (.dict.dz).
//  2. An .index file that contains one line per entry: the headword, and the
//     entry's offset and length in the .dict file as base64 numbers.
//
// Database metadata is stored as ordinary entries under reserved headwords
// such as "00databaseshort".
//
// More info on the database format can be found in the dictfmt(1) and
// dictd(8) manual pages.
package dictd
