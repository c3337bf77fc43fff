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

	"github.com/ianlewis/go-dictd/index"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "Print the records of a .index file",
	ArgsUsage: "INDEX",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "print at most `N` records (0 prints all)",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single INDEX argument", ErrFlagParse)
		}

		f, err := index.Open(c.Args().First())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLexdict, err)
		}
		s := index.NewScanner(f)
		defer s.Close()

		limit := c.Int("limit")
		tbl := table.New("Headword", "Offset", "Length").WithWriter(c.App.Writer)
		for n := 0; (limit <= 0 || n < limit) && s.Scan(); n++ {
			r := s.Record()
			tbl.AddRow(r.Headword, r.Offset, r.Length)
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrLexdict, err)
		}
		tbl.Print()

		return nil
	},
}
