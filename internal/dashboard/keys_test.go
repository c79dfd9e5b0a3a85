package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/variables"
)

func TestPanelIDFromKey(t *testing.T) {
	tests := []struct {
		key string
		id  int
		ok  bool
	}{
		{key: "panel-12", id: 12, ok: true},
		{key: "panel-12-clone-3", id: 12, ok: true},
		{key: "panel-4-row-2", id: 4, ok: true},
		{key: "grid-item-4", ok: false},
		{key: "panel-x", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, ok := dashboard.PanelIDFromKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestCloneKeys(t *testing.T) {
	assert.Equal(t, "panel-2-clone-1", dashboard.CloneKey("panel-2", 1))
	assert.True(t, dashboard.IsCloneKey("panel-2-clone-1"))
	assert.False(t, dashboard.IsCloneKey("panel-2"))
	assert.True(t, dashboard.IsCloneOf("panel-2-clone-1", "panel-2"))
	assert.False(t, dashboard.IsCloneOf("panel-20-clone-1", "panel-2"))
}

func TestFindVizPanelByID(t *testing.T) {
	env, _ := testEnv(t)
	repeater := newRepeater(entity.RepeatDirectionHorizontal, 0)
	d := newDashboard(env, variables.NewSet(multiVar("server", "1", "2")), newItem(1, dashboard.Rect{Width: 24, Height: 4}), repeater)
	t.Cleanup(d.ActivateAll())

	p, err := dashboard.FindVizPanelByID(d, 2)
	require.NoError(t, err)
	assert.Equal(t, "panel-2", p.Key())

	_, err = dashboard.FindVizPanelByID(d, 42)
	require.ErrorIs(t, err, dashboard.ErrPanelNotFound)

	clone, err := dashboard.FindVizPanelByKey(d, "panel-2-clone-1")
	require.NoError(t, err)
	item, ok := dashboard.LayoutItemOf(clone)
	require.True(t, ok)
	assert.Same(t, repeater, item)
}

func TestPanelTimeRange_Resolve(t *testing.T) {
	base := entity.TimeRange{From: "now-6h", To: "now"}
	tests := []struct {
		name  string
		state dashboard.PanelTimeRangeState
		want  entity.TimeRange
	}{
		{name: "no override", want: base},
		{name: "relative", state: dashboard.PanelTimeRangeState{TimeFrom: "15m"}, want: entity.TimeRange{From: "now-15m", To: "now"}},
		{name: "shift", state: dashboard.PanelTimeRangeState{TimeShift: "1h"}, want: entity.TimeRange{From: "now-6h-1h", To: "now-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.NewPanelTimeRange(tt.state).Resolve(base))
		})
	}
}
