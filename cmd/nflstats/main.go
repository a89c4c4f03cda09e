// Command nflstats answers the same queries as the HTTP service from the
// command line, one subcommand per query, sharing its caches.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/server"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nflstats: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	configFile string
	verbose    bool
	output     string

	logger     *slog.Logger
	components *server.Components
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "nflstats",
		Short:         "Query cached NFL injury reports, player ratings and line rankings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./nfl-data-service.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log cache and fetch activity to stderr")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatJSON, "output format: json or yaml")

	root.AddCommand(
		newInjuriesCommand(a),
		newMaddenCommand(a),
		newPFFCommand(a),
		newRankingsCommand(a),
		newPlayersCommand(a),
		newCacheCommand(a),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	if err := validateFormat(a.output); err != nil {
		return err
	}
	_ = godotenv.Load()

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := "error"
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.NewLogger(logging.Config{Level: level, Format: cfg.Log.Format, Output: stderr})

	components, err := server.BuildComponents(cfg, a.logger, nil)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	a.components = components
	return nil
}

func (a *app) close() error {
	if a.components == nil {
		return nil
	}
	err := a.components.Close()
	a.components = nil
	return err
}

func (a *app) print(cmd *cobra.Command, v any) error {
	return writeOutput(cmd.OutOrStdout(), a.output, v)
}
