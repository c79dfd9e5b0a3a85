// Package transform converts between the declarative dashboard document
// and the live scene graph.
package transform

import (
	"context"
	"fmt"
	"sort"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// Deserialize builds the scene graph for doc. The document should have
// been through Migrate. Structural problems abort with a
// *StructuralError; nothing is built in that case.
func Deserialize(ctx context.Context, doc *entity.Dashboard, meta entity.DashboardMeta, env *scene.Environment) (*dashboard.Dashboard, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := checkPanelIDs(doc.Panels); err != nil {
		return nil, err
	}

	vars, filterSets, err := buildVariables(doc.Templating.List)
	if err != nil {
		return nil, err
	}
	children, err := buildLayout(doc.Panels)
	if err != nil {
		return nil, err
	}

	layers := make([]*dashboard.AnnotationLayer, 0, len(doc.Annotations.List))
	for _, a := range doc.Annotations.List {
		layers = append(layers, dashboard.NewAnnotationLayer(a.Clone()))
	}

	tr := dashboard.TimeRangeState{
		Timezone:             doc.Timezone,
		WeekStart:            doc.WeekStart,
		FiscalYearStartMonth: doc.FiscalYearStartMonth,
	}
	if doc.Time != nil {
		tr.From, tr.To = doc.Time.From, doc.Time.To
	}

	if doc.Snapshot != nil {
		meta.IsSnapshot = true
	}

	d := dashboard.New(dashboard.DashboardState{
		ID:           doc.ID,
		UID:          doc.UID,
		Title:        doc.Title,
		Description:  doc.Description,
		Tags:         append([]string(nil), doc.Tags...),
		Editable:     cloneBool(doc.Editable),
		GraphTooltip: doc.GraphTooltip,
		Links:        append([]entity.DashboardLink(nil), doc.Links...),
		Timepicker:   cloneTimePicker(doc.Timepicker),
		Refresh:      doc.Refresh,
		LiveNow:      doc.LiveNow,
		Version:      doc.Version,
		Snapshot:     cloneSnapshotInfo(doc.Snapshot),
		Body:         dashboard.NewGrid(children...),
		TimeRange:    dashboard.NewTimeRange(tr),
		Variables:    variables.NewSet(vars...),
		FilterSets:   filterSets,
		Annotations:  dashboard.NewAnnotationLayers(layers...),
		Meta:         meta,
	}, env)

	logging.FromContext(ctx).Debug().
		Str("dashboard_uid", doc.UID).
		Int("panels", doc.CountPanels()).
		Int("variables", len(vars)).
		Msg("dashboard deserialized")
	return d, nil
}

func checkPanelIDs(panels []*entity.Panel) error {
	seen := make(map[int]bool)
	for i, p := range panels {
		if p == nil {
			return structural(fmt.Sprintf("panels[%d]", i), fmt.Errorf("%w: null panel record", ErrRowShape))
		}
		if seen[p.ID] {
			return structural(fmt.Sprintf("panels[%d]", i), fmt.Errorf("%w: %d", ErrDuplicatePanelID, p.ID))
		}
		seen[p.ID] = true
		for j, nested := range p.Panels {
			if nested == nil {
				continue
			}
			if seen[nested.ID] {
				return structural(fmt.Sprintf("panels[%d].panels[%d]", i, j), fmt.Errorf("%w: %d", ErrDuplicatePanelID, nested.ID))
			}
			seen[nested.ID] = true
		}
	}
	return nil
}

// layoutBuilder walks the ordered panel list. Panels following an
// expanded row record belong to that row until the next row record.
type layoutBuilder struct {
	children         []dashboard.GridChild
	currentRow       *entity.Panel
	currentRowPanels []dashboard.LayoutItem
}

func buildLayout(panels []*entity.Panel) ([]dashboard.GridChild, error) {
	b := &layoutBuilder{}
	for i, p := range panels {
		path := fmt.Sprintf("panels[%d]", i)
		if p.IsRow() {
			b.flush()
			if p.Collapsed {
				nested, err := buildNested(path, p.Panels)
				if err != nil {
					return nil, err
				}
				b.children = append(b.children, buildRow(p, nested))
				continue
			}
			if len(p.Panels) > 0 {
				return nil, structural(path, fmt.Errorf("%w: expanded row %d carries nested panels", ErrRowShape, p.ID))
			}
			b.currentRow = p
			continue
		}

		item := buildLayoutItem(p)
		if b.currentRow != nil {
			b.currentRowPanels = append(b.currentRowPanels, item)
			continue
		}
		b.children = append(b.children, item)
	}
	b.flush()
	return b.children, nil
}

func (b *layoutBuilder) flush() {
	if b.currentRow == nil {
		return
	}
	b.children = append(b.children, buildRow(b.currentRow, b.currentRowPanels))
	b.currentRow = nil
	b.currentRowPanels = nil
}

func buildNested(path string, panels []*entity.Panel) ([]dashboard.LayoutItem, error) {
	items := make([]dashboard.LayoutItem, 0, len(panels))
	for j, p := range panels {
		if p == nil {
			continue
		}
		if p.IsRow() {
			return nil, structural(fmt.Sprintf("%s.panels[%d]", path, j), fmt.Errorf("%w: row %d nested in a collapsed row", ErrRowShape, p.ID))
		}
		items = append(items, buildLayoutItem(p))
	}
	return items, nil
}

// buildRow creates the row node. A repeated row starts without children:
// its behavior owns the items as repeat sources.
func buildRow(p *entity.Panel, items []dashboard.LayoutItem) *dashboard.Row {
	state := dashboard.RowState{
		Title:       p.Title,
		Y:           p.GridPos.Y,
		IsCollapsed: p.Collapsed,
		Children:    items,
	}
	if p.Repeat != "" {
		state.Children = nil
		state.Behaviors = []dashboard.RowBehavior{dashboard.NewRowRepeater(dashboard.RowRepeaterState{
			VariableName: p.Repeat,
			Sources:      items,
		})}
	}
	return dashboard.NewRow(dashboard.PanelKey(p.ID), state)
}

func buildLayoutItem(p *entity.Panel) dashboard.LayoutItem {
	rect := dashboard.RectFromGridPos(p.GridPos)

	if p.IsLibraryReference() {
		return dashboard.NewLibraryPanelItem(dashboard.GridItemKey(p.ID), dashboard.LibraryPanelItemState{
			Rect:    rect,
			PanelID: p.ID,
			UID:     p.LibraryPanel.UID,
			Name:    p.LibraryPanel.Name,
			Title:   p.Title,
		}, buildLibraryPanel)
	}

	panel := BuildVizPanel(p)
	if p.Repeat != "" {
		return dashboard.NewPanelRepeaterItem(dashboard.GridItemKey(p.ID), dashboard.PanelRepeaterItemState{
			Rect:            rect,
			Source:          panel,
			VariableName:    p.Repeat,
			RepeatDirection: p.RepeatDirection,
			MaxPerRow:       p.MaxPerRow,
			ItemHeight:      p.GridPos.H,
		})
	}
	return dashboard.NewGridItem(dashboard.GridItemKey(p.ID), dashboard.GridItemState{Rect: rect, Body: panel})
}

// buildLibraryPanel turns a fetched library panel model into the panel
// hosted at id.
func buildLibraryPanel(model *entity.Panel, id int) (*dashboard.VizPanel, error) {
	if model == nil {
		return nil, fmt.Errorf("library panel %d has no model", id)
	}
	p := entity.ClonePanel(model)
	p.ID = id
	return BuildVizPanel(p), nil
}

// BuildVizPanel creates the panel node for a plain panel record: its data
// provider, transformation pipeline and time override.
func BuildVizPanel(p *entity.Panel) *dashboard.VizPanel {
	state := dashboard.VizPanelState{
		Title:         p.Title,
		Description:   p.Description,
		PluginID:      p.Type,
		PluginVersion: p.PluginVersion,
		Options:       entity.CloneMap(p.Options),
		FieldConfig:   p.FieldConfig.Clone(),
		Links:         append([]entity.PanelLink(nil), p.Links...),
		Data:          buildDataProvider(p),
	}
	if p.Transparent {
		state.DisplayMode = dashboard.DisplayModeTransparent
	}
	if p.TimeFrom != "" || p.TimeShift != "" || p.HideTimeOverride {
		state.TimeRange = dashboard.NewPanelTimeRange(dashboard.PanelTimeRangeState{
			TimeFrom:         p.TimeFrom,
			TimeShift:        p.TimeShift,
			HideTimeOverride: p.HideTimeOverride,
		})
	}
	if len(p.ScopedVars) > 0 {
		state.Variables = scopedVarSet(p.ScopedVars)
	}
	return dashboard.NewVizPanel(dashboard.PanelKey(p.ID), state)
}

func buildDataProvider(p *entity.Panel) dashboard.DataProvider {
	if len(p.Targets) == 0 && p.Datasource == nil && len(p.Transformations) == 0 &&
		p.MaxDataPoints == nil && p.Interval == "" {
		return nil
	}

	var provider dashboard.DataProvider
	if isSharedQuery(p) {
		provider = dashboard.NewSharedQuery(p.Targets[0].PanelID())
	} else {
		state := dashboard.QueryRunnerState{Interval: p.Interval}
		if p.Datasource != nil {
			ds := *p.Datasource
			state.Datasource = &ds
		}
		if p.Targets != nil {
			state.Queries = make([]entity.Query, 0, len(p.Targets))
			for _, q := range p.Targets {
				state.Queries = append(state.Queries, q.Clone())
			}
		}
		if p.MaxDataPoints != nil {
			n := *p.MaxDataPoints
			state.MaxDataPoints = &n
		}
		provider = dashboard.NewQueryRunner(state)
	}

	if len(p.Transformations) == 0 {
		return provider
	}
	transformations := make([]entity.Transformation, len(p.Transformations))
	for i, t := range p.Transformations {
		t.Options = entity.CloneMap(t.Options)
		transformations[i] = t
	}
	return dashboard.NewDataTransformer(dashboard.DataTransformerState{
		Transformations: transformations,
		Inner:           provider,
	})
}

func isSharedQuery(p *entity.Panel) bool {
	return p.Datasource != nil && p.Datasource.UID == entity.SharedDashboardQueryUID && len(p.Targets) > 0
}

// scopedVarSet binds the values a materialized repeat clone was captured
// with.
func scopedVarSet(scoped map[string]entity.ScopedVar) *variables.Set {
	names := make([]string, 0, len(scoped))
	for name := range scoped {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]variables.Variable, 0, len(names))
	for _, name := range names {
		sv := scoped[name]
		vars = append(vars, variables.NewLocalValueVariable(name, sv.Value.String(), sv.Text.String()))
	}
	return variables.NewSet(vars...)
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneTimePicker(tp *entity.TimePicker) *entity.TimePicker {
	if tp == nil {
		return nil
	}
	out := *tp
	out.RefreshIntervals = append([]string(nil), tp.RefreshIntervals...)
	return &out
}

func cloneSnapshotInfo(s *entity.SnapshotInfo) *entity.SnapshotInfo {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}
