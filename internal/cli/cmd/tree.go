package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/cli/styles"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/transform"
)

var (
	treeSource   sceneSource
	treeVars     []string
	treeLocation string
	treeData     bool
	treeKeys     bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Load a dashboard and print its scene",
	Long: `Load a dashboard, wait for variables, repeats, library panels and queries
to settle, then print the scene tree.

Queries are answered from the fixtures file. Variable values and the panel
view state can be set as the interactive app would set them.

Examples:
  dashctl tree dash.json
  dashctl tree dash.json --var host=a,b --data
  dashctl tree --uid abc --url 'viewPanel=panel-3'
  dashctl tree --snapshot 5f1c... --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeSource.register(treeCmd)
	treeCmd.Flags().StringArrayVar(&treeVars, "var", nil, "select variable values (name=v1,v2), repeatable")
	treeCmd.Flags().StringVar(&treeLocation, "url", "", "query string applied to the panel view state")
	treeCmd.Flags().BoolVar(&treeData, "data", false, "show panel data state")
	treeCmd.Flags().BoolVar(&treeKeys, "keys", false, "show node keys")
}

type treeResult struct {
	Location  *string           `json:"location,omitempty"`
	Alerts    []cli.Alert       `json:"alerts,omitempty"`
	Dashboard *entity.Dashboard `json:"dashboard"`
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if treeSource.stored() && len(args) > 0 {
		return fmt.Errorf("a document path cannot be combined with --uid or --snapshot")
	}

	s, d, err := openScene(a, treeSource, args)
	if err != nil {
		return err
	}
	defer s.Close()

	var loc *cli.QueryLocation
	if cmd.Flags().Changed("url") {
		if loc, err = cli.ParseLocation(treeLocation); err != nil {
			return fmt.Errorf("invalid --url: %w", err)
		}
	}
	var stop func()
	if loc != nil {
		stop = s.Start(d, loc)
	} else {
		stop = s.Start(d, nil)
	}
	defer stop()

	if err := settle(a, s, d); err != nil {
		return err
	}
	if err := applyVars(a, s, d, treeVars); err != nil {
		return err
	}

	if a.JSONOutput() {
		doc, err := transform.Serialize(d)
		if err != nil {
			return err
		}
		res := treeResult{Alerts: s.Notifier.Alerts(), Dashboard: doc}
		if loc != nil {
			l := loc.String()
			res.Location = &l
		}
		return cli.WriteJSON(os.Stdout, res)
	}

	fmt.Println(a.Theme.RenderSceneTree(d, styles.SceneTreeOptions{ShowKeys: treeKeys, ShowData: treeData}))
	if loc != nil {
		fmt.Println(a.Theme.KeyValues([]string{"location"}, map[string]string{"location": "?" + loc.String()}))
	}
	printAlerts(a, s)
	return nil
}
