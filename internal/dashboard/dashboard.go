package dashboard

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// DashboardState is the root state: document-level settings, the layout
// body and the view state owned by URL sync and edit mode.
type DashboardState struct {
	ID           int64
	UID          string
	Title        string
	Description  string
	Tags         []string
	Editable     *bool
	GraphTooltip int
	Links        []entity.DashboardLink
	Timepicker   *entity.TimePicker
	Refresh      string
	LiveNow      bool
	Version      int
	Snapshot     *entity.SnapshotInfo

	Body        *Grid
	TimeRange   *TimeRange
	Variables   *variables.Set
	FilterSets  []*variables.AdHocFilterSet
	Annotations *AnnotationLayers

	Meta            entity.DashboardMeta
	IsEditing       bool
	IsDirty         bool
	InspectPanelKey string
	ViewPanelKey    string
}

// Dashboard is the scene root.
type Dashboard struct {
	scene.Base[DashboardState]

	env     *scene.Environment
	initial *entity.Dashboard
	tracker func()
}

// New creates a dashboard root bound to env.
func New(state DashboardState, env *scene.Environment) *Dashboard {
	d := &Dashboard{env: env}
	key := ""
	if state.UID != "" {
		key = "dashboard-" + state.UID
	}
	d.Init(d, key, state)
	return d
}

// Environment implements scene.EnvironmentProvider.
func (d *Dashboard) Environment() *scene.Environment { return d.env }

// SetEnvironment rebinds the collaborators; used before activation.
func (d *Dashboard) SetEnvironment(env *scene.Environment) { d.env = env }

// Children implements scene.Object. The time range and variables come
// first so they are active before any panel.
func (d *Dashboard) Children() []scene.Object {
	s := d.State()
	out := scene.AppendObjects(nil, s.TimeRange, s.Variables)
	for _, f := range s.FilterSets {
		out = scene.AppendObjects(out, f)
	}
	return scene.AppendObjects(out, s.Annotations, s.Body)
}

// VariableSet implements variables.Scope.
func (d *Dashboard) VariableSet() *variables.Set { return d.State().Variables }

// CurrentTimeRange implements variables.TimeRangeSource.
func (d *Dashboard) CurrentTimeRange() entity.TimeRange {
	if tr := d.State().TimeRange; tr != nil {
		return tr.Value()
	}
	return entity.TimeRange{From: DefaultTimeFrom, To: DefaultTimeTo}
}

// ActivateAll activates the whole dashboard and returns the deactivation.
func (d *Dashboard) ActivateAll() func() {
	return scene.ActivateTree(d)
}

// SetViewPanel records the panel shown full screen; empty clears it.
func (d *Dashboard) SetViewPanel(key string) {
	d.UpdateState(func(s *DashboardState) { s.ViewPanelKey = key })
}

// SetInspectPanel records the panel being inspected; empty clears it.
func (d *Dashboard) SetInspectPanel(key string) {
	d.UpdateState(func(s *DashboardState) { s.InspectPanelKey = key })
}

// SetTitle is a user edit.
func (d *Dashboard) SetTitle(title string) {
	d.UpdateState(func(s *DashboardState) { s.Title = title })
}
