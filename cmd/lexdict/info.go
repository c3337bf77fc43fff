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

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictd"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "List dictd databases",
	ArgsUsage: "[DIR...]",
	Action: func(c *cli.Context) error {
		dirs := c.Args().Slice()
		if len(dirs) == 0 {
			dirs = dictLocations()
		}

		dbs, errs := openDatabases(dirs, nil)
		for _, err := range errs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
		defer closeDatabases(dbs)

		tbl := table.New("Name", "Entries", "UTF-8", "URL", "Path").WithWriter(c.App.Writer)
		for _, db := range dbs {
			short, err := db.Short()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLexdict, err)
			}
			url, err := db.URL()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLexdict, err)
			}
			tbl.AddRow(short, db.WordCount(), db.UTF8(), url, db.Path())
		}
		tbl.Print()

		return nil
	},
}

func openDatabases(dirs []string, folder *foldOptions) ([]*dictd.Database, []error) {
	var dbs []*dictd.Database
	var errs []error

	for _, path := range dirs {
		openDBs, openErrs := dictd.OpenAll(path, folder.indexOptions())

		dbs = append(dbs, openDBs...)
		errs = append(errs, openErrs...)
	}

	return dbs, errs
}

func closeDatabases(dbs []*dictd.Database) {
	for _, db := range dbs {
		db.Close()
	}
}
