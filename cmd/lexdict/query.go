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

	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dictd"
	"github.com/ianlewis/go-dictd/index"
)

// foldOptions configures headword folding for queries.
type foldOptions struct {
	caseFold bool
}

func (o *foldOptions) indexOptions() *index.Options {
	if o == nil || !o.caseFold {
		return nil
	}
	return &index.Options{
		Folder: func() transform.Transformer {
			return cases.Fold()
		},
	}
}

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up a headword in dictd databases",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "data-dir",
			Usage:   "include databases in `DIR`",
			Aliases: []string{"d"},
			Value:   cli.NewStringSlice(dictLocations()...),
		},
		&cli.BoolFlag{
			Name:  "prefix",
			Usage: "match headwords starting with QUERY",
		},
		&cli.BoolFlag{
			Name:  "fold",
			Usage: "ignore case when matching headwords",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single QUERY argument", ErrFlagParse)
		}
		query := c.Args().First()

		dbs, errs := openDatabases(c.StringSlice("data-dir"), &foldOptions{
			caseFold: c.Bool("fold"),
		})
		for _, err := range errs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
		defer closeDatabases(dbs)

		for _, db := range dbs {
			var entries []*dictd.Entry
			var err error
			if c.Bool("prefix") {
				entries, err = db.Prefix(query)
			} else {
				entries, err = db.Search(query)
			}
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				continue
			}
			if len(entries) == 0 {
				continue
			}

			short, err := db.Short()
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
			}
			fmt.Fprintf(c.App.Writer, "From %s:\n\n", short)
			for _, e := range entries {
				fmt.Fprintln(c.App.Writer, e)
			}
		}

		return nil
	},
}
