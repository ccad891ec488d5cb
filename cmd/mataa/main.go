// Copyright 2026 Mataa Market
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


package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mataa-market/mataa"
	"github.com/mataa-market/mataa/analysis"
	"github.com/mataa-market/mataa/core"
	kvbadger "github.com/mataa-market/mataa/kv/badger"
	"github.com/mataa-market/mataa/lexicon"
	"github.com/mataa-market/mataa/wish"
)

func main() {
	app := &cli.App{
		Name:   "mataa",
		Usage:  "Arabic marketplace search understanding",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "lexicon",
				Usage: "Path to a YAML lexicon overlay",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a search query and print the structured result",
				ArgsUsage: "<query>",
				Action:    parseCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "suggestions",
						Usage: "Also print refinement chips and empty-result suggestions",
					},
				},
			},
			{
				Name:  "wish",
				Usage: "Manage saved searches",
				Subcommands: []*cli.Command{
					{
						Name:      "save",
						Usage:     "Save a query as a monitored wish",
						ArgsUsage: "<query>",
						Action:    wishSaveCommand,
						Flags:     wishFlags(),
					},
					{
						Name:   "list",
						Usage:  "List saved wishes",
						Action: wishListCommand,
						Flags:  wishFlags(),
					},
					{
						Name:      "viewed",
						Usage:     "Mark a wish's new matches as seen",
						ArgsUsage: "<id>",
						Action:    wishViewedCommand,
						Flags:     wishFlags(),
					},
					{
						Name:      "delete",
						Usage:     "Delete a wish",
						ArgsUsage: "<id>",
						Action:    wishDeleteCommand,
						Flags:     wishFlags(),
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Measure lexicon coverage over a query log, one query per line",
				ArgsUsage: "<file>",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "How many unresolved tokens to print",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEngine(c *cli.Context) (*mataa.Engine, error) {
	lex := lexicon.Default()
	if path := c.String("lexicon"); path != "" {
		overlay, err := lexicon.LoadOverlay(path)
		if err != nil {
			return nil, err
		}
		if err := lex.Apply(overlay); err != nil {
			return nil, err
		}
	}
	return mataa.NewEngine(mataa.WithLexicon(lex))
}

func parseCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: mataa parse <query>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	parsed := engine.Understand(query)
	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if c.Bool("suggestions") {
		fmt.Println("\nRefinements:")
		for _, chip := range engine.Refinements(parsed) {
			fmt.Printf("  [%s] %s\n", chip.Kind, chip.Label)
		}
		fmt.Println("\nEmpty-result suggestions:")
		for _, s := range engine.EmptySuggestions(parsed) {
			fmt.Printf("  %s -> %s\n", s.Label, s.Query)
		}
	}
	return nil
}

func wishFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the wish database directory",
			Required: true,
		},
	}
}

func openWishStore(c *cli.Context) (*wish.Store, *kvbadger.Store, error) {
	storage, err := kvbadger.OpenStore(c.String("db"), false)
	if err != nil {
		return nil, nil, err
	}
	store, err := wish.NewStore(storage)
	if err != nil {
		storage.Close()
		return nil, nil, err
	}
	return store, storage, nil
}

func wishSaveCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: mataa wish save <query>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	store, storage, err := openWishStore(c)
	if err != nil {
		return err
	}
	defer storage.Close()

	saved, err := store.Create(query, engine.Understand(query), nil)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s: %s\n", saved.ID, saved.DisplayText)
	return nil
}

func wishListCommand(c *cli.Context) error {
	store, storage, err := openWishStore(c)
	if err != nil {
		return err
	}
	defer storage.Close()

	wishes := store.All()
	if len(wishes) == 0 {
		fmt.Println("no saved wishes")
		return nil
	}
	for _, w := range wishes {
		active := " "
		if w.IsActive {
			active = "*"
		}
		fmt.Printf("%s %s  %s  (matches: %d, new: %d)\n", active, w.ID, w.DisplayText, w.MatchCount, w.NewMatchCount)
	}
	fmt.Printf("active new matches: %d\n", store.ActiveNewMatches())
	return nil
}

func wishViewedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: mataa wish viewed <id>")
	}

	store, storage, err := openWishStore(c)
	if err != nil {
		return err
	}
	defer storage.Close()

	updated, err := store.MarkViewed(core.WishID(c.Args().First()))
	if err != nil {
		return err
	}
	fmt.Printf("marked %s viewed\n", updated.ID)
	return nil
}

func wishDeleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: mataa wish delete <id>")
	}

	store, storage, err := openWishStore(c)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := store.Delete(core.WishID(c.Args().First())); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: mataa analyze <file>")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	var opts []analysis.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, analysis.WithPoolSize(workers))
	}
	analyzer, err := analysis.NewAnalyzer(engine.Parser(), opts...)
	if err != nil {
		return err
	}
	defer analyzer.Release()

	report, err := analyzer.Analyze(strings.Split(string(data), "\n"))
	if err != nil {
		return err
	}

	fmt.Printf("queries:         %d\n", report.Total)
	fmt.Printf("with category:   %d\n", report.WithCategory)
	fmt.Printf("with brand:      %d\n", report.WithBrand)
	fmt.Printf("with location:   %d\n", report.WithLocation)
	fmt.Printf("with price:      %d\n", report.WithPrice)
	fmt.Printf("low confidence:  %d\n", report.LowConfidence)
	fmt.Printf("mean confidence: %.2f\n", report.MeanConfidence)
	fmt.Println("top unresolved tokens:")
	for _, token := range report.TopUnresolved(c.Int("top")) {
		fmt.Printf("  %4d  %s\n", report.UnresolvedTokens[token], token)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
