package dashboard

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// DisplayModeTransparent renders a panel without background.
const DisplayModeTransparent = "transparent"

// VizPanelState is everything needed to render one visualization.
type VizPanelState struct {
	Title         string
	Description   string
	PluginID      string
	PluginVersion string
	Options       map[string]any
	FieldConfig   *entity.FieldConfigSource
	DisplayMode   string
	Links         []entity.PanelLink
	Data          DataProvider
	TimeRange     *PanelTimeRange
	// Variables holds the repeat-local bindings of a repeat clone.
	Variables *variables.Set
	// Error is shown in place of the visualization.
	Error string
}

// VizPanel is a visualization bound to a data provider.
type VizPanel struct {
	scene.Base[VizPanelState]
}

// NewVizPanel creates a panel. Keys are PanelKey(id) for document panels.
func NewVizPanel(key string, state VizPanelState) *VizPanel {
	p := &VizPanel{}
	p.Init(p, key, state)
	return p
}

// Children implements scene.Object.
func (p *VizPanel) Children() []scene.Object {
	s := p.State()
	return scene.AppendObjects(nil, s.Variables, s.Data, s.TimeRange)
}

// VariableSet implements variables.Scope.
func (p *VizPanel) VariableSet() *variables.Set { return p.State().Variables }

// VariableDependencies implements variables.DependencyProvider.
func (p *VizPanel) VariableDependencies() []string {
	return variables.ExtractVariableNames(p.State().Title)
}

// InterpolatedTitle resolves variable references in the title.
func (p *VizPanel) InterpolatedTitle() string {
	return variables.Interpolate(p, p.State().Title)
}

// PanelID returns the document id encoded in the key.
func (p *VizPanel) PanelID() int {
	id, _ := PanelIDFromKey(p.Key())
	return id
}

// SetTitle is a user edit.
func (p *VizPanel) SetTitle(title string) {
	p.UpdateState(func(s *VizPanelState) { s.Title = title })
}

// Data returns the latest result of the panel's provider.
func (p *VizPanel) Data() entity.PanelData {
	if d := p.State().Data; d != nil {
		return d.Data()
	}
	return entity.PanelData{State: entity.LoadingStateNotStarted}
}

// clone deep-copies the panel under key. Descendants keep their keys.
func (p *VizPanel) clone(key string) *VizPanel {
	s := p.State()
	s.Options = entity.CloneMap(s.Options)
	s.FieldConfig = s.FieldConfig.Clone()
	if s.Links != nil {
		s.Links = append([]entity.PanelLink(nil), s.Links...)
	}
	s.Data = cloneProvider(s.Data)
	if s.TimeRange != nil {
		s.TimeRange = s.TimeRange.clone()
	}
	if s.Variables != nil {
		s.Variables = s.Variables.Clone()
	}
	return NewVizPanel(key, s)
}
