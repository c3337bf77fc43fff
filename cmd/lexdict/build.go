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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dictd/convert"
	"github.com/ianlewis/go-dictd/lexicon"
	"github.com/ianlewis/go-dictd/normalize"
)

// abbrevsName is the name of the abbreviations file saved with the pages.
const abbrevsName = "ABBREVS"

var buildCommand = &cli.Command{
	Name:  "build",
	Usage: "Build a dictd database from saved lexicon pages",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "pages",
			Usage:   "read saved pages from `DIR`",
			Aliases: []string{"p"},
			Value:   "./lexicon_html",
			EnvVars: []string{"LEXDICT_PAGES"},
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the database to `BASE`.index and `BASE`.dict",
			Aliases: []string{"o"},
			Value:   "uomlexicon",
			EnvVars: []string{"LEXDICT_OUTPUT"},
		},
		&cli.StringFlag{
			Name:  "abbrevs",
			Usage: "use the abbreviations list in `FILE` as the database info (default: DIR/ABBREVS)",
		},
		&cli.StringFlag{
			Name:  "short",
			Usage: "database short name",
			Value: convert.DefaultOptions.Metadata.Short,
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "database source url",
			Value: convert.DefaultOptions.Metadata.URL,
		},
		&cli.StringFlag{
			Name:  "converter",
			Usage: "convert definitions with `CONVERTER` (markdown or text)",
			Value: "markdown",
		},
		&cli.BoolFlag{
			Name:    "dictzip",
			Usage:   "compress the .dict file with dictzip",
			Aliases: []string{"z"},
		},
		&cli.BoolFlag{
			Name:  "sort-index",
			Usage: "sort the .index file by headword",
		},
		&cli.BoolFlag{
			Name:  "transliteration",
			Usage: "keep headword transliterations in definitions",
		},
		&cli.BoolFlag{
			Name:  "no-sanitize",
			Usage: "do not strip unknown markup before conversion",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
		}

		var conv normalize.Converter
		switch c.String("converter") {
		case "markdown":
			conv = normalize.NewMarkdownConverter()
		case "text":
			conv = normalize.NewTextConverter()
		default:
			return fmt.Errorf("%w: unknown converter %q", ErrFlagParse, c.String("converter"))
		}

		pages := c.String("pages")
		abbrevs := c.String("abbrevs")
		if abbrevs == "" {
			path := filepath.Join(pages, abbrevsName)
			if _, err := os.Stat(path); err == nil {
				abbrevs = path
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %w", ErrLexdict, err)
			}
		}

		opts := &convert.Options{
			Metadata:    convert.DefaultOptions.Metadata,
			AbbrevsPath: abbrevs,
			Lexicon: &lexicon.Options{
				Normalize: &normalize.Options{
					Transliteration: c.Bool("transliteration"),
					Converter:       conv,
					Sanitize:        !c.Bool("no-sanitize"),
				},
			},
			DictZip:   c.Bool("dictzip"),
			SortIndex: c.Bool("sort-index"),
			Logger:    newLogger(c),
		}
		opts.Metadata.Short = c.String("short")
		opts.Metadata.URL = c.String("url")

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
		defer stop()

		stats, err := convert.Build(ctx, c.String("output"), pages, opts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLexdict, err)
		}

		_, err = fmt.Fprintf(c.App.Writer, "wrote %d entries from %d pages (%d bytes)\n",
			stats.Entries, stats.Pages, stats.Bytes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLexdict, err)
		}
		return nil
	},
}
