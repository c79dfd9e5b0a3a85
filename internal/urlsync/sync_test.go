package urlsync_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/application/port/mocks"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/urlsync"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// fixture is a plain panel 1 followed by panel 2 repeated over
// server=a,b.
func fixture(t *testing.T) (*dashboard.Dashboard, *mocks.MockNotifier) {
	t.Helper()
	notifier := mocks.NewMockNotifier(t)
	env := &scene.Environment{Context: context.Background(), Notifier: notifier}

	server := variables.NewCustomVariable(variables.MultiValueState{
		Meta:    variables.Meta{Name: "server"},
		Value:   entity.ListValue("a", "b"),
		Text:    entity.ListValue("a", "b"),
		IsMulti: true,
		Query:   "a,b",
	})
	plain := dashboard.NewGridItem(dashboard.GridItemKey(1), dashboard.GridItemState{
		Rect: dashboard.Rect{Width: 24, Height: 8},
		Body: dashboard.NewVizPanel(dashboard.PanelKey(1), dashboard.VizPanelState{Title: "CPU"}),
	})
	repeater := dashboard.NewPanelRepeaterItem(dashboard.GridItemKey(2), dashboard.PanelRepeaterItemState{
		Rect:         dashboard.Rect{Y: 8, Width: 24, Height: 8},
		Source:       dashboard.NewVizPanel(dashboard.PanelKey(2), dashboard.VizPanelState{Title: "$server"}),
		VariableName: "server",
		ItemHeight:   8,
	})
	d := dashboard.New(dashboard.DashboardState{
		UID:       "url",
		Body:      dashboard.NewGrid(plain, repeater),
		TimeRange: dashboard.NewTimeRange(dashboard.TimeRangeState{From: "now-1h", To: "now"}),
		Variables: variables.NewSet(server),
	}, env)
	return d, notifier
}

func strptr(s string) *string { return &s }

func TestSyncer_ResolvesPanelByID(t *testing.T) {
	d, _ := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{urlsync.ParamViewPanel: {"1"}})

	stop := urlsync.New(d, loc).Start()
	t.Cleanup(stop)

	assert.Equal(t, "panel-1", d.State().ViewPanelKey)
	assert.Empty(t, d.State().InspectPanelKey)
}

func TestSyncer_ResolvesPanelByKey(t *testing.T) {
	d, _ := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{urlsync.ParamInspect: {"panel-2"}})

	t.Cleanup(urlsync.New(d, loc).Start())

	assert.Equal(t, "panel-2", d.State().InspectPanelKey)
}

func TestSyncer_MissingPanelIsStripped(t *testing.T) {
	d, notifier := fixture(t)
	d.SetInspectPanel("panel-1")
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{urlsync.ParamInspect: {"42"}})
	notifier.EXPECT().Notify(mock.Anything, port.NotificationError, "Panel not found", mock.Anything).Once()
	loc.EXPECT().Update(map[string]*string{urlsync.ParamInspect: nil}).Once()

	t.Cleanup(urlsync.New(d, loc).Start())

	assert.Empty(t, d.State().InspectPanelKey)
}

func TestSyncer_CloneKeyWaitsForRepeats(t *testing.T) {
	d, _ := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{urlsync.ParamViewPanel: {"panel-2-clone-1"}})

	t.Cleanup(urlsync.New(d, loc).Start())
	assert.Empty(t, d.State().ViewPanelKey)

	t.Cleanup(d.ActivateAll())
	assert.Equal(t, "panel-2-clone-1", d.State().ViewPanelKey)
}

func TestSyncer_CloneKeyRetriedOnce(t *testing.T) {
	d, notifier := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{urlsync.ParamViewPanel: {"panel-2-clone-7"}})
	notifier.EXPECT().Notify(mock.Anything, port.NotificationError, "Panel not found", mock.Anything).Once()
	loc.EXPECT().Update(map[string]*string{urlsync.ParamViewPanel: nil}).Once()

	t.Cleanup(urlsync.New(d, loc).Start())
	t.Cleanup(d.ActivateAll())

	assert.Empty(t, d.State().ViewPanelKey)
}

func TestSyncer_WritesStateChanges(t *testing.T) {
	d, _ := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{})
	loc.EXPECT().Update(map[string]*string{urlsync.ParamViewPanel: strptr("panel-1")}).Once()
	loc.EXPECT().Update(map[string]*string{urlsync.ParamViewPanel: nil}).Once()

	t.Cleanup(urlsync.New(d, loc).Start())

	d.SetViewPanel("panel-1")
	d.SetTitle("renamed")
	d.SetViewPanel("")
}

func TestSyncer_StopsWriting(t *testing.T) {
	d, _ := fixture(t)
	loc := mocks.NewMockLocation(t)
	loc.EXPECT().Query().Return(url.Values{})

	stop := urlsync.New(d, loc).Start()
	stop()

	d.SetViewPanel("panel-1")
}

func TestKeys(t *testing.T) {
	assert.ElementsMatch(t, []string{"viewPanel", "inspect"}, urlsync.Keys())
}
