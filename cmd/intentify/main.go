// Copyright 2025 Poiesic Systems
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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/intentify/analyze"
	"github.com/poiesic/intentify/config"
	"github.com/poiesic/intentify/ontology"
	"github.com/poiesic/intentify/rules"
	"github.com/poiesic/intentify/server"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "intentify",
		Usage: "Search query intent classification service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the intent analysis HTTP server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
						Value:   "intentify.yaml",
					},
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "HTTP listen address (overrides config)",
					},
				},
			},
			{
				Name:      "analyze",
				Usage:     "Analyze a single query and print the result as JSON",
				ArgsUsage: "QUERY",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
						Value:   "intentify.yaml",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Indent the JSON output",
					},
				},
			},
			{
				Name:      "batch",
				Usage:     "Analyze multiple queries and print results as a JSON array",
				ArgsUsage: "[QUERY...]",
				Action:    batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
						Value:   "intentify.yaml",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read queries from a file, one per line",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Indent the JSON output",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	addr := cfg.Server.Addr
	if c.String("addr") != "" {
		addr = c.String("addr")
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(analyzer, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(addr)
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one query argument is required")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(c.Args().First())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return printJSON(result, c.Bool("pretty"))
}

func batchCommand(c *cli.Context) error {
	queries := c.Args().Slice()
	if path := c.String("file"); path != "" {
		if len(queries) > 0 {
			return fmt.Errorf("pass queries as arguments or via --file, not both")
		}
		loaded, err := readQueryFile(path)
		if err != nil {
			return err
		}
		queries = loaded
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries provided")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	results, err := analyzer.AnalyzeBatch(context.Background(), queries)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	return printJSON(results, c.Bool("pretty"))
}

// buildAnalyzer assembles an Analyzer from configuration, loading any
// taxonomy, rule, or lexicon overrides from their files.
func buildAnalyzer(cfg *config.Config) (*analyze.Analyzer, error) {
	opts := []analyze.Option{
		analyze.WithLogger(slog.Default()),
		analyze.WithDamping(cfg.Pipeline.Damping),
		analyze.WithFallbackWeight(*cfg.Pipeline.FallbackWeight),
		analyze.WithDefaultIntent(cfg.Pipeline.DefaultIntent),
	}

	if cfg.Pipeline.PoolSize > 0 {
		opts = append(opts, analyze.WithPoolSize(cfg.Pipeline.PoolSize))
	}

	if path := cfg.Pipeline.OntologyFile; path != "" {
		tree, err := ontology.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load ontology: %w", err)
		}
		opts = append(opts, analyze.WithOntology(tree))
	}

	if path := cfg.Pipeline.RulesFile; path != "" {
		table, err := rules.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules: %w", err)
		}
		opts = append(opts, analyze.WithRules(table))
	}

	if path := cfg.Pipeline.LexiconFile; path != "" {
		lex, err := analyze.LoadLexicon(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		opts = append(opts, analyze.WithLexicon(lex))
	}

	analyzer, err := analyze.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return analyzer, nil
}

func readQueryFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	var queries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			queries = append(queries, line)
		}
	}
	return queries, nil
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
