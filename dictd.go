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

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictd/dict"
	"github.com/ianlewis/go-dictd/index"
)

// ErrBadExtension indicates that a database path does not name an .index file.
var ErrBadExtension = errors.New("bad extension")

// Database is a dictd database opened for reading.
type Database struct {
	idx  *index.Index
	dict *dict.Dict

	indexPath string
}

// OpenAll opens all databases under a directory. This function will return
// all successfully opened databases along with any errors that occurred.
func OpenAll(path string, options *index.Options) ([]*Database, []error) {
	var dbs []*Database
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && filepath.Ext(info.Name()) == ".index" {
			db, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dbs = append(dbs, db)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dbs, errs
}

// Open opens a dictd database from the given .index file path. The matching
// .dict or .dict.dz file must exist next to it.
func Open(path string, options *index.Options) (*Database, error) {
	if ext := filepath.Ext(path); ext != ".index" {
		return nil, fmt.Errorf("%w: %v", ErrBadExtension, ext)
	}

	f, err := index.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := index.New(f, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	d, err := dict.Open(strings.TrimSuffix(path, ".index"))
	if err != nil {
		return nil, err
	}

	return &Database{
		idx:       idx,
		dict:      d,
		indexPath: path,
	}, nil
}

// Path returns the path of the database's .index file.
func (db *Database) Path() string {
	return db.indexPath
}

// Index returns the database's in-memory index.
func (db *Database) Index() *index.Index {
	return db.idx
}

// Short returns the database's short name.
func (db *Database) Short() (string, error) {
	return db.metadata(HeadwordShort)
}

// Info returns the database's description.
func (db *Database) Info() (string, error) {
	return db.metadata(HeadwordInfo)
}

// URL returns the database's source URL.
func (db *Database) URL() (string, error) {
	return db.metadata(HeadwordURL)
}

// UTF8 returns whether the database is marked as utf-8 encoded.
func (db *Database) UTF8() bool {
	records, err := db.idx.Search(HeadwordUTF8)
	return err == nil && len(records) > 0
}

// WordCount returns the number of entries excluding metadata.
func (db *Database) WordCount() int {
	n := 0
	for _, r := range db.idx.Records() {
		if !strings.HasPrefix(r.Headword, index.ReservedPrefix) {
			n++
		}
	}
	return n
}

func (db *Database) metadata(headword string) (string, error) {
	entries, err := db.Search(headword)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}
	return strings.TrimRight(entries[0].Body(), "\n"), nil
}

// Search performs a query of the database and returns matching entries.
func (db *Database) Search(query string) ([]*Entry, error) {
	records, err := db.idx.Search(query)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	return db.entries(records)
}

// Prefix returns the entries whose headwords start with prefix.
func (db *Database) Prefix(prefix string) ([]*Entry, error) {
	records, err := db.idx.Prefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	return db.entries(records)
}

func (db *Database) entries(records []*index.Record) ([]*Entry, error) {
	var entries []*Entry
	for _, r := range records {
		b, err := db.dict.Entry(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &Entry{
			headword: r.Headword,
			body:     string(b),
		})
	}
	return entries, nil
}

// Close closes the database's dict file.
func (db *Database) Close() error {
	return db.dict.Close()
}
