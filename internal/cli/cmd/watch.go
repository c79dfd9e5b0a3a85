package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/cli/styles"
	"github.com/grafana/grafana-sub060/internal/infrastructure/config"
	"github.com/grafana/grafana-sub060/internal/logging"
)

var (
	watchVars []string
	watchData bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reload a document whenever it changes",
	Long: `Validate and render a document, then do it again every time the file is
saved. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringArrayVar(&watchVars, "var", nil, "select variable values (name=v1,v2), repeatable")
	watchCmd.Flags().BoolVar(&watchData, "data", true, "show panel data state")
}

func runWatch(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := args[0]
	if path == cli.Stdin {
		return fmt.Errorf("watch needs a file path")
	}

	var mu sync.Mutex
	if err := a.ConfigManager.Watch(); err != nil {
		logging.FromContext(a.Ctx()).Warn().Err(err).Msg("config watch unavailable")
	}
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		mu.Lock()
		defer mu.Unlock()
		a.Config = cfg
		a.Theme = styles.NewTheme(cfg)
		logging.FromContext(a.Ctx()).Info().Msg("configuration reloaded")
	})

	render := func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Println(a.Theme.Subtitle.Render(fmt.Sprintf("%s  %s", path, time.Now().Format(time.TimeOnly))))
		if err := renderWatched(a, path); err != nil {
			fmt.Println(a.Theme.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render()
	debounce := time.Duration(a.Config.Watch.DebounceMs) * time.Millisecond
	return cli.WatchFile(ctx, path, debounce, render)
}

func renderWatched(a *cli.App, path string) error {
	res := cli.ValidateFile(a.Ctx(), path)
	if !res.OK() {
		return fmt.Errorf("%s", res.Error)
	}

	s, d, err := openScene(a, sceneSource{}, []string{path})
	if err != nil {
		return err
	}
	defer s.Close()
	stopScene := s.Start(d, nil)
	defer stopScene()

	if err := settle(a, s, d); err != nil {
		return err
	}
	if err := applyVars(a, s, d, watchVars); err != nil {
		return err
	}
	fmt.Println(a.Theme.RenderSceneTree(d, styles.SceneTreeOptions{ShowData: watchData}))
	printAlerts(a, s)
	return nil
}

