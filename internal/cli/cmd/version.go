package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/domain/build"
)

var buildInfo build.Info

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func runVersion(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	info := buildInfo.Resolve()
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, info)
	}
	keys := []string{"version", "commit", "built", "go"}
	fmt.Println(a.Theme.KeyValues(keys, map[string]string{
		"version": info.Version,
		"commit":  info.Commit,
		"built":   info.BuildDate,
		"go":      info.GoVersion,
	}))
	return nil
}
