package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/cli"
)

var (
	snapshotSource  sceneSource
	snapshotVars    []string
	snapshotName    string
	snapshotExpires time.Duration
	snapshotURL     string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Create and manage snapshots",
	Long: `Snapshots freeze a dashboard with the data its panels show. They are read-only
and can expire.`,
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Capture a dashboard with its current data",
	Long: `Load a dashboard, let its queries settle, then store a snapshot. Panel data
is embedded, repeats are flattened and variables keep their selection only.

Examples:
  dashctl snapshot create --uid abc --expires 24h
  dashctl snapshot create dash.json --fixtures data.json --var host=a,b`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshotCreate,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <delete-key>",
	Short: "Delete a snapshot using its delete key",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

var snapshotPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove expired snapshots",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotPurge,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
	snapshotCmd.AddCommand(snapshotPurgeCmd)

	snapshotCreateCmd.Flags().StringVar(&snapshotSource.uid, "uid", "", "snapshot the stored dashboard with this uid")
	snapshotCreateCmd.Flags().StringArrayVar(&snapshotVars, "var", nil, "select variable values (name=v1,v2), repeatable")
	snapshotCreateCmd.Flags().StringVar(&snapshotName, "name", "", "snapshot name (default dashboard title)")
	snapshotCreateCmd.Flags().DurationVar(&snapshotExpires, "expires", 0, "lifetime, 0 keeps it forever (default from config)")
	snapshotCreateCmd.Flags().StringVar(&snapshotURL, "original-url", "", "url of the live dashboard recorded in the snapshot")
}

func runSnapshotCreate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if snapshotSource.uid != "" && len(args) > 0 {
		return fmt.Errorf("a document path cannot be combined with --uid")
	}

	s, d, err := openScene(a, snapshotSource, args)
	if err != nil {
		return err
	}
	defer s.Close()
	stop := s.Start(d, nil)
	defer stop()

	if err := settle(a, s, d); err != nil {
		return err
	}
	if err := applyVars(a, s, d, snapshotVars); err != nil {
		return err
	}

	expires := snapshotExpires
	if !cmd.Flags().Changed("expires") {
		expires = time.Duration(a.Config.Snapshots.DefaultExpiresHours) * time.Hour
	}

	store, err := a.Store()
	if err != nil {
		return err
	}
	snap, err := store.CreateSnapshotUC.Execute(a.Ctx(), usecase.CreateSnapshotInput{
		Dashboard:   d,
		Name:        snapshotName,
		Expires:     expires,
		OriginalURL: snapshotURL,
	})
	if err != nil {
		return err
	}

	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, snap)
	}
	printAlerts(a, s)
	fmt.Println(a.Theme.SnapshotInfo(snap))
	return nil
}

func runSnapshotShow(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	snap, err := store.Snapshots.GetSnapshot(a.Ctx(), args[0])
	if err != nil {
		return fmt.Errorf("get snapshot %s: %w", args[0], err)
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, snap)
	}
	fmt.Println(a.Theme.SnapshotInfo(snap))
	return nil
}

func runSnapshotDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.ManageUC.DeleteSnapshot(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(a.Theme.Success("Snapshot deleted"))
	return nil
}

func runSnapshotPurge(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	n, err := store.ManageUC.PurgeSnapshots(a.Ctx(), time.Now())
	if err != nil {
		return err
	}
	fmt.Println(a.Theme.Success("Purged %d expired snapshots", n))
	return nil
}
