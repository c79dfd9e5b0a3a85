package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// repeatedRowFixture is a repeated row at y=0 holding two side by side
// panels four units high, followed by a plain row with one panel.
func repeatedRowFixture(t *testing.T, values ...string) (*dashboard.Dashboard, *variables.CustomVariable, *dashboard.Row, *dashboard.Row) {
	t.Helper()
	env, _ := testEnv(t)
	server := multiVar("server", values...)

	left := newItem(2, dashboard.Rect{Y: 1, Width: 12, Height: 4})
	left.Panel().SetTitle("CPU $server")
	right := newItem(3, dashboard.Rect{X: 12, Y: 1, Width: 12, Height: 4})

	repeated := dashboard.NewRow(dashboard.PanelKey(1), dashboard.RowState{
		Title: "Row $server",
		Behaviors: []dashboard.RowBehavior{dashboard.NewRowRepeater(dashboard.RowRepeaterState{
			VariableName: "server",
			Sources:      []dashboard.LayoutItem{left, right},
		})},
	})
	next := dashboard.NewRow(dashboard.PanelKey(10), dashboard.RowState{
		Title:    "Next",
		Y:        5,
		Children: []dashboard.LayoutItem{newItem(11, dashboard.Rect{Y: 6, Width: 24, Height: 3})},
	})

	d := newDashboard(env, variables.NewSet(server), repeated, next)
	t.Cleanup(d.ActivateAll())
	return d, server, repeated, next
}

func TestRowRepeater_SplicesOneRowPerValue(t *testing.T) {
	d, _, repeated, next := repeatedRowFixture(t, "a", "b", "c")

	assert.Equal(t, []string{"panel-1", "panel-1-clone-1", "panel-1-clone-2", "panel-10"}, gridKeys(d))

	children := d.State().Body.State().Children
	for i, want := range []string{"a", "b", "c"} {
		row := children[i].(*dashboard.Row)
		assert.Equal(t, i*5, row.State().Y)
		assert.Equal(t, want, variables.Interpolate(row, "$server"))
		require.Len(t, row.State().Children, 2)
		for _, item := range row.State().Children {
			assert.Equal(t, 1+i*5, item.Rect().Y)
			assert.True(t, item.IsActive())
		}
		panel := row.State().Children[0].Panel()
		assert.Equal(t, "CPU "+want, panel.InterpolatedTitle())
		assert.Equal(t, 2, panel.PanelID())
	}
	assert.Same(t, repeated, children[0])
	assert.Nil(t, children[1].(*dashboard.Row).Repeater())

	assert.Equal(t, "grid-item-2", repeated.State().Children[0].Key())
	assert.Equal(t, "panel-2-row-0", repeated.State().Children[0].Panel().Key())
	second := children[1].(*dashboard.Row)
	assert.Equal(t, "grid-item-2-clone-1", second.State().Children[0].Key())
	assert.Equal(t, "panel-2-row-1", second.State().Children[0].Panel().Key())

	assert.Equal(t, 15, next.State().Y)
	assert.Equal(t, 16, next.State().Children[0].Rect().Y)
	assert.Equal(t, dashboard.RepeatExpanded, repeated.Repeater().State().Phase)
}

func TestRowRepeater_ReexpansionPurgesStaleClones(t *testing.T) {
	d, server, repeated, next := repeatedRowFixture(t, "a", "b", "c")

	stale := d.State().Body.State().Children[2]
	server.SelectValues("a")

	assert.Equal(t, []string{"panel-1", "panel-10"}, gridKeys(d))
	assert.False(t, stale.IsActive())
	assert.Equal(t, 5, next.State().Y)
	assert.Equal(t, 6, next.State().Children[0].Rect().Y)
	assert.Len(t, repeated.State().Children, 2)

	server.SelectValues("a", "b")
	assert.Equal(t, []string{"panel-1", "panel-1-clone-1", "panel-10"}, gridKeys(d))
	assert.Equal(t, 10, next.State().Y)
}

func TestRowRepeater_KeysStayUnique(t *testing.T) {
	d, _, _, _ := repeatedRowFixture(t, "a", "b", "c")

	seen := map[string]bool{}
	scene.Walk(d, func(o scene.Object) bool {
		assert.False(t, seen[o.Key()], "duplicate key %s", o.Key())
		seen[o.Key()] = true
		return true
	})
}

func TestRowContentHeight(t *testing.T) {
	assert.Equal(t, 0, dashboard.RowContentHeight(nil))
	items := []dashboard.LayoutItem{
		newItem(1, dashboard.Rect{Y: 3, Width: 12, Height: 4}),
		newItem(2, dashboard.Rect{Y: 5, Width: 12, Height: 6}),
	}
	assert.Equal(t, 8, dashboard.RowContentHeight(items))
}

func TestRowRepeater_MissingVariable(t *testing.T) {
	env, notifier := testEnv(t)
	notifier.EXPECT().Notify(mock.Anything, port.NotificationError, "Row repeat failed", mock.Anything).Once()

	row := dashboard.NewRow(dashboard.PanelKey(1), dashboard.RowState{
		Behaviors: []dashboard.RowBehavior{dashboard.NewRowRepeater(dashboard.RowRepeaterState{
			VariableName: "missing",
			Sources:      []dashboard.LayoutItem{newItem(2, dashboard.Rect{Y: 1, Width: 24, Height: 4})},
		})},
	})
	d := newDashboard(env, nil, row)
	t.Cleanup(d.ActivateAll())

	assert.Equal(t, []string{"panel-1"}, gridKeys(d))
	assert.Empty(t, row.State().Children)
	assert.Equal(t, dashboard.RepeatIdle, row.Repeater().State().Phase)
}
