package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect the dashboard store",
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the database file, schema version and row counts",
	Args:  cobra.NoArgs,
	RunE:  runStoreStatus,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeStatusCmd)
}

func runStoreStatus(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	st, err := a.StoreStatus()
	if err != nil {
		return err
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, st)
	}
	count := func(n int64) string { return strconv.FormatInt(n, 10) }
	keys := []string{"path", "schema", "dashboards", "versions", "snapshots", "library panels"}
	fmt.Println(a.Theme.KeyValues(keys, map[string]string{
		"path":           st.Path,
		"schema":         count(st.SchemaVersion),
		"dashboards":     count(st.Dashboards),
		"versions":       count(st.Versions),
		"snapshots":      count(st.Snapshots),
		"library panels": count(st.LibraryPanels),
	}))
	return nil
}
