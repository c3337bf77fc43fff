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

package dictd

// Reserved headwords holding database metadata. dictd looks these up without
// dashes.
const (
	// HeadwordInfo holds free text describing the database.
	HeadwordInfo = "00databaseinfo"

	// HeadwordShort holds the database's short name.
	HeadwordShort = "00databaseshort"

	// HeadwordURL holds the database's source URL.
	HeadwordURL = "00databaseurl"

	// HeadwordUTF8 marks the database as utf-8 encoded. Its body is empty.
	HeadwordUTF8 = "00databaseutf8"
)

// Metadata is the database metadata written before any entries.
type Metadata struct {
	// Info is free text describing the database.
	Info string

	// Short is the database's short name.
	Short string

	// URL is the database's source URL.
	URL string
}

// WriteMetadata writes the reserved metadata entries in the order dictd
// expects: info, short name, url and the utf-8 marker. It must be called
// before any dictionary entries are written.
func WriteMetadata(w *Writer, m Metadata) error {
	for _, e := range []struct {
		headword string
		body     string
	}{
		{HeadwordInfo, m.Info},
		{HeadwordShort, m.Short},
		{HeadwordURL, m.URL},
		{HeadwordUTF8, ""},
	} {
		if err := w.Write(e.headword, e.body); err != nil {
			return err
		}
	}
	return nil
}
