package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <config|dashboard>",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of the configuration file or of dashboard documents.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "dashboard"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, args []string) error {
	switch args[0] {
	case "config":
		return cli.WriteJSON(os.Stdout, config.Schema())
	case "dashboard":
		return cli.WriteJSON(os.Stdout, cli.DocumentSchema())
	default:
		return fmt.Errorf("unknown schema %q", args[0])
	}
}
