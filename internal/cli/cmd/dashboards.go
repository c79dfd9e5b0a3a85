package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

var (
	importMessage string
	exportOut     string
	listLimit     int
	renameMessage string
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Store dashboard documents",
	Long: `Normalize each document and store it as a new version. A document without a
uid gets a generated one. Imports overwrite whatever version is stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <uid>",
	Short: "Print the latest stored version of a dashboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List stored dashboards",
	Long:    `List stored dashboards whose title contains query, most recently updated first.`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

var versionsCmd = &cobra.Command{
	Use:   "versions <uid>",
	Short: "Show the version history of a dashboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runVersions,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <uid>",
	Aliases: []string{"rm"},
	Short:   "Delete a dashboard and its versions",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var renameCmd = &cobra.Command{
	Use:   "rename <uid> <title>",
	Short: "Change the title of a stored dashboard",
	Long: `Load the dashboard, change its title in edit mode and save the result as a
new version.`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(renameCmd)

	importCmd.Flags().StringVarP(&importMessage, "message", "m", "", "version message")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	listCmd.Flags().IntVar(&listLimit, "limit", usecase.DefaultListLimit, "maximum dashboards to list")
	renameCmd.Flags().StringVarP(&renameMessage, "message", "m", "", "version message (default \"rename\")")
}

func runImport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}

	acks := make([]*entity.SaveAck, 0, len(args))
	for _, path := range args {
		doc, err := cli.ReadDocument(path)
		if err != nil {
			return err
		}
		ack, err := store.ImportDashboardUC.Execute(a.Ctx(), doc, importMessage)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		acks = append(acks, ack)
		if !a.JSONOutput() {
			fmt.Println(a.Theme.SaveAck("Imported", ack))
		}
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, acks)
	}
	return nil
}

func runExport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	dto, err := store.Dashboards.GetByUID(a.Ctx(), args[0])
	if err != nil {
		return fmt.Errorf("get dashboard %s: %w", args[0], err)
	}
	return cli.WriteDocumentFile(os.Stdout, exportOut, dto.Dashboard)
}

func runList(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	items, err := store.ManageUC.List(a.Ctx(), query, listLimit)
	if err != nil {
		return err
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, items)
	}
	fmt.Println(a.Theme.DashboardTable(items))
	return nil
}

func runVersions(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	versions, err := store.ManageUC.Versions(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, versions)
	}
	fmt.Println(a.Theme.VersionTable(versions))
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.ManageUC.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(a.Theme.Success("Deleted %s", args[0]))
	return nil
}

func runRename(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	s, d, err := openScene(a, sceneSource{uid: args[0]}, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	store, err := a.Store()
	if err != nil {
		return err
	}

	ctx := a.Ctx()
	if err := store.EditUC.Enter(ctx, d); err != nil {
		return err
	}
	d.SetTitle(args[1])

	message := renameMessage
	if message == "" {
		message = "rename"
	}
	ack, err := store.SaveDashboardUC.Execute(ctx, usecase.SaveDashboardInput{Dashboard: d, Message: message})
	if err != nil {
		_ = store.EditUC.Discard(ctx, d)
		return err
	}
	if err := store.EditUC.Exit(ctx, d, false); err != nil {
		return err
	}

	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, ack)
	}
	fmt.Println(a.Theme.SaveAck("Renamed", ack))
	return nil
}
