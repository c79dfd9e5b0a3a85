package dashboard_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/grafana/grafana-sub060/internal/application/port/mocks"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

func testEnv(t *testing.T) (*scene.Environment, *mocks.MockNotifier) {
	notifier := mocks.NewMockNotifier(t)
	return &scene.Environment{Context: context.Background(), Notifier: notifier}, notifier
}

func multiVar(name string, values ...string) *variables.CustomVariable {
	options := make([]entity.VariableOption, 0, len(values))
	for _, v := range values {
		options = append(options, entity.VariableOption{Text: entity.StringValue(v), Value: entity.StringValue(v)})
	}
	return variables.NewCustomVariable(variables.MultiValueState{
		Meta:    variables.Meta{Name: name},
		Value:   entity.ListValue(values...),
		Text:    entity.ListValue(values...),
		Options: options,
		IsMulti: true,
		Query:   strings.Join(values, ","),
	})
}

func newPanel(id int, title string) *dashboard.VizPanel {
	return dashboard.NewVizPanel(dashboard.PanelKey(id), dashboard.VizPanelState{Title: title, PluginID: "timeseries"})
}

func newItem(id int, rect dashboard.Rect) *dashboard.GridItem {
	return dashboard.NewGridItem(dashboard.GridItemKey(id), dashboard.GridItemState{
		Rect: rect,
		Body: newPanel(id, fmt.Sprintf("Panel %d", id)),
	})
}

func newDashboard(env *scene.Environment, vars *variables.Set, children ...dashboard.GridChild) *dashboard.Dashboard {
	return dashboard.New(dashboard.DashboardState{
		UID:       "test",
		Title:     "Test",
		Body:      dashboard.NewGrid(children...),
		TimeRange: dashboard.NewTimeRange(dashboard.TimeRangeState{From: "now-1h", To: "now"}),
		Variables: vars,
	}, env)
}

func gridKeys(d *dashboard.Dashboard) []string {
	var keys []string
	for _, c := range d.State().Body.State().Children {
		keys = append(keys, c.Key())
	}
	return keys
}
