package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// sceneSource names where a command loads its dashboard from: a document
// file, a stored uid or a snapshot key.
type sceneSource struct {
	uid      string
	snapshot string
}

func (s *sceneSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.uid, "uid", "", "load the stored dashboard with this uid")
	cmd.Flags().StringVar(&s.snapshot, "snapshot", "", "load the snapshot with this key")
	cmd.MarkFlagsMutuallyExclusive("uid", "snapshot")
}

func (s *sceneSource) stored() bool {
	return s.uid != "" || s.snapshot != ""
}

// openScene builds the dashboard named by src or by the path in args on a
// new session. The caller closes the session.
func openScene(a *cli.App, src sceneSource, args []string) (*cli.Session, *dashboard.Dashboard, error) {
	ctx := a.Ctx()

	var doc *entity.Dashboard
	withLibrary := src.stored()
	if !src.stored() {
		if len(args) == 0 {
			return nil, nil, fmt.Errorf("a document path, --uid or --snapshot is required")
		}
		var err error
		doc, err = cli.ReadDocument(args[0])
		if err != nil {
			return nil, nil, err
		}
		withLibrary = cli.UsesLibraryPanels(doc)
	}

	deps, err := a.SessionDeps(withLibrary)
	if err != nil {
		return nil, nil, err
	}
	s := cli.NewSession(ctx, deps)

	var d *dashboard.Dashboard
	if doc != nil {
		d, err = s.Build(ctx, doc, entity.DashboardMeta{})
	} else {
		d, err = loadStored(ctx, a, s, src)
	}
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, d, nil
}

func loadStored(ctx context.Context, a *cli.App, s *cli.Session, src sceneSource) (*dashboard.Dashboard, error) {
	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	input := usecase.LoadDashboardInput{Kind: usecase.LoadKindDB, Key: src.uid, Env: s.Env}
	if src.snapshot != "" {
		input.Kind = usecase.LoadKindSnapshot
		input.Key = src.snapshot
	}
	out, err := store.LoadDashboardUC.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Dashboard, nil
}

// settle waits for the scene within the configured query timeout. A scene
// that does not settle is reported and left as it is.
func settle(a *cli.App, s *cli.Session, d *dashboard.Dashboard) error {
	ctx, cancel := context.WithTimeout(a.Ctx(), a.QueryTimeout())
	defer cancel()
	err := s.Settle(ctx, d)
	if errors.Is(err, cli.ErrNotSettled) {
		fmt.Println(a.Theme.Warning("Scene still loading after %s", a.QueryTimeout()))
		return nil
	}
	return err
}

// parseVarFlags turns name=v1,v2 assignments into a selection per variable.
func parseVarFlags(raw []string) (map[string][]string, []string, error) {
	values := make(map[string][]string, len(raw))
	order := make([]string, 0, len(raw))
	for _, r := range raw {
		name, list, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("invalid variable assignment %q (want name=value[,value])", r)
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		var selected []string
		for _, v := range strings.Split(list, ",") {
			if v = strings.TrimSpace(v); v != "" {
				selected = append(selected, v)
			}
		}
		values[name] = selected
	}
	return values, order, nil
}

// applyVars selects the given variable values and lets the scene react.
func applyVars(a *cli.App, s *cli.Session, d *dashboard.Dashboard, raw []string) error {
	if len(raw) == 0 {
		return nil
	}
	values, order, err := parseVarFlags(raw)
	if err != nil {
		return err
	}
	for _, name := range order {
		if err := cli.SelectVariable(d, name, values[name]...); err != nil {
			return err
		}
	}
	return settle(a, s, d)
}

// printAlerts reports the notifications a scene raised while loading.
func printAlerts(a *cli.App, s *cli.Session) {
	for _, alert := range s.Notifier.Alerts() {
		fmt.Println(a.Theme.Warning("%s", alert.String()))
	}
}
