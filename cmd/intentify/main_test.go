package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/intentify/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{"DEBUG", "Info", "WaRn", "ERROR"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestBuildAnalyzer(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		analyzer, err := buildAnalyzer(cfg)
		require.NoError(t, err)
		require.NotNil(t, analyzer)

		result, err := analyzer.Analyze("buy running shoes")
		require.NoError(t, err)
		assert.Equal(t, "transactional_purchase", result.PrimaryIntent)
	})

	t.Run("missing ontology file fails", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		cfg.Pipeline.OntologyFile = filepath.Join(t.TempDir(), "nope.yaml")

		_, err = buildAnalyzer(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ontology")
	})
}

func TestReadQueryFile(t *testing.T) {
	t.Run("skips blank lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queries.txt")
		content := "buy running shoes\n\n  what is a monad  \n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		queries, err := readQueryFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"buy running shoes", "what is a monad"}, queries)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readQueryFile(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
	})
}
