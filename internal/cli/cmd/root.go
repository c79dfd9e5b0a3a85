// Package cmd provides Cobra CLI commands for dashctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
)

var (
	app        *cli.App
	appOptions cli.AppOptions
	fixtures   string
	rootCmd    = &cobra.Command{
		Use:   "dashctl",
		Short: "Load, inspect and store declarative dashboards",
		Long: `dashctl - a dashboard scene engine on the command line.

Dashboards are JSON documents. dashctl migrates legacy documents, builds
the live scene (variables, repeats, library panels, queries), renders it
and writes it back.

Features:
  - Validate and normalize documents, one file or a whole directory
  - Render the scene tree with repeats expanded for any variable selection
  - Store dashboards with version history in a local SQLite database
  - Capture snapshots with embedded data and an expiry
  - Answer queries offline from a fixtures file

Use 'dashctl tree <file>' to see how a document loads.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOptions)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.SetFixturesPath(fixtures)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOptions.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/dashctl/config.toml)")
	flags.StringVarP(&appOptions.Output, "output", "O", "", "output format: text, json")
	flags.BoolVar(&appOptions.NoColor, "no-color", false, "disable styled output")
	flags.StringVar(&fixtures, "fixtures", "", "JSON file of canned query results")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
