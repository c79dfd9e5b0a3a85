package transform

import (
	"fmt"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// Serialize writes the save model of d. Generated repeat clones are left
// out: a repeater contributes its template, a repeated row its sources.
// The scene is only read.
func Serialize(d *dashboard.Dashboard) (*entity.Dashboard, error) {
	doc, err := documentFields(d)
	if err != nil {
		return nil, err
	}
	w := &panelWriter{}
	if body := d.State().Body; body != nil {
		for _, child := range body.State().Children {
			if err := w.writeGridChild(child); err != nil {
				return nil, err
			}
		}
	}
	doc.Panels = w.panels
	return doc, nil
}

// documentFields writes everything but the panel list.
func documentFields(d *dashboard.Dashboard) (*entity.Dashboard, error) {
	s := d.State()
	doc := &entity.Dashboard{
		ID:            s.ID,
		UID:           s.UID,
		Title:         s.Title,
		Description:   s.Description,
		Tags:          append([]string(nil), s.Tags...),
		Editable:      cloneBool(s.Editable),
		GraphTooltip:  s.GraphTooltip,
		Links:         append([]entity.DashboardLink(nil), s.Links...),
		Timepicker:    cloneTimePicker(s.Timepicker),
		Refresh:       s.Refresh,
		LiveNow:       s.LiveNow,
		SchemaVersion: entity.SchemaVersion,
		Version:       s.Version,
		Snapshot:      cloneSnapshotInfo(s.Snapshot),
		Panels:        []*entity.Panel{},
		Templating:    entity.Templating{List: []*entity.Variable{}},
		Annotations:   entity.AnnotationList{List: []*entity.Annotation{}},
	}

	if tr := s.TimeRange; tr != nil {
		ts := tr.State()
		if ts.From != "" || ts.To != "" {
			doc.Time = &entity.TimeRange{From: ts.From, To: ts.To}
		}
		doc.Timezone = ts.Timezone
		doc.WeekStart = ts.WeekStart
		doc.FiscalYearStartMonth = ts.FiscalYearStartMonth
	}

	if set := s.Variables; set != nil {
		for _, v := range set.State().Variables {
			rec, err := variableRecord(v)
			if err != nil {
				return nil, err
			}
			doc.Templating.List = append(doc.Templating.List, rec)
		}
	}
	for _, f := range s.FilterSets {
		doc.Templating.List = append(doc.Templating.List, filterSetRecord(f))
	}

	if a := s.Annotations; a != nil {
		for _, l := range a.State().Layers {
			if def := l.State().Definition; def != nil {
				doc.Annotations.List = append(doc.Annotations.List, def.Clone())
			}
		}
	}
	return doc, nil
}

type panelWriter struct {
	panels []*entity.Panel
}

func (w *panelWriter) writeGridChild(child dashboard.GridChild) error {
	if dashboard.IsCloneKey(child.Key()) {
		return nil
	}
	switch x := child.(type) {
	case *dashboard.Row:
		return w.writeRow(x)
	case dashboard.LayoutItem:
		rec, err := layoutItemRecord(x)
		if err != nil {
			return err
		}
		w.panels = append(w.panels, rec)
		return nil
	default:
		return fmt.Errorf("%w: grid child %T", ErrUnsupportedNode, child)
	}
}

func (w *panelWriter) writeRow(row *dashboard.Row) error {
	s := row.State()
	id, _ := dashboard.PanelIDFromKey(row.Key())
	rec := &entity.Panel{
		ID:        id,
		Type:      entity.PanelTypeRow,
		Title:     s.Title,
		GridPos:   entity.GridPos{X: 0, Y: s.Y, W: entity.GridColumnCount, H: 1},
		Collapsed: s.IsCollapsed,
	}
	items := s.Children
	if rr := row.Repeater(); rr != nil {
		rec.Repeat = rr.State().VariableName
		items = rr.State().Sources
	}

	nested := make([]*entity.Panel, 0, len(items))
	for _, item := range items {
		if dashboard.IsCloneKey(item.Key()) {
			continue
		}
		p, err := layoutItemRecord(item)
		if err != nil {
			return err
		}
		nested = append(nested, p)
	}

	if s.IsCollapsed {
		rec.Panels = nested
		w.panels = append(w.panels, rec)
		return nil
	}
	w.panels = append(w.panels, rec)
	w.panels = append(w.panels, nested...)
	return nil
}

func layoutItemRecord(item dashboard.LayoutItem) (*entity.Panel, error) {
	switch x := item.(type) {
	case *dashboard.GridItem:
		body := x.Panel()
		if body == nil {
			return nil, fmt.Errorf("%w: grid item %s without panel", ErrUnsupportedNode, x.Key())
		}
		rec := vizPanelRecord(body)
		rec.GridPos = x.Rect().GridPos()
		rec.ScopedVars = ownScopedVars(body.State().Variables)
		return rec, nil
	case *dashboard.PanelRepeaterItem:
		s := x.State()
		if s.Source == nil {
			return nil, fmt.Errorf("%w: panel repeater %s without source", ErrUnsupportedNode, x.Key())
		}
		rec := vizPanelRecord(s.Source)
		rec.GridPos = entity.GridPos{X: s.X, Y: s.Y, W: s.Width, H: s.ItemHeight}
		rec.Repeat = s.VariableName
		rec.RepeatDirection = s.RepeatDirection
		rec.MaxPerRow = s.MaxPerRow
		return rec, nil
	case *dashboard.LibraryPanelItem:
		s := x.State()
		return &entity.Panel{
			ID:      s.PanelID,
			Title:   s.Title,
			GridPos: s.Rect.GridPos(),
			LibraryPanel: &entity.LibraryPanelRef{
				UID:  s.UID,
				Name: s.Name,
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: layout item %T", ErrUnsupportedNode, item)
	}
}

func vizPanelRecord(p *dashboard.VizPanel) *entity.Panel {
	s := p.State()
	rec := &entity.Panel{
		ID:            p.PanelID(),
		Type:          s.PluginID,
		Title:         s.Title,
		Description:   s.Description,
		PluginVersion: s.PluginVersion,
		Options:       entity.CloneMap(s.Options),
		FieldConfig:   s.FieldConfig.Clone(),
		Links:         append([]entity.PanelLink(nil), s.Links...),
		Transparent:   s.DisplayMode == dashboard.DisplayModeTransparent,
	}
	if tr := s.TimeRange; tr != nil {
		ts := tr.State()
		rec.TimeFrom = ts.TimeFrom
		rec.TimeShift = ts.TimeShift
		rec.HideTimeOverride = ts.HideTimeOverride
	}
	writeDataProvider(rec, s.Data)
	return rec
}

// writeDataProvider records the query side of a panel. A transformation
// pipeline is unwrapped: its list goes to the record and its inner
// provider supplies the targets.
func writeDataProvider(rec *entity.Panel, provider dashboard.DataProvider) {
	if t, ok := provider.(*dashboard.DataTransformer); ok {
		rec.Transformations = cloneTransformations(t.State().Transformations)
		provider = t.State().Inner
	}
	switch x := provider.(type) {
	case *dashboard.QueryRunner:
		s := x.State()
		rec.Datasource = cloneDatasource(s.Datasource)
		if s.Queries != nil {
			rec.Targets = make([]entity.Query, 0, len(s.Queries))
			for _, q := range s.Queries {
				rec.Targets = append(rec.Targets, q.Clone())
			}
		}
		if s.MaxDataPoints != nil {
			n := *s.MaxDataPoints
			rec.MaxDataPoints = &n
		}
		rec.Interval = s.Interval
	case *dashboard.SharedQuery:
		rec.Datasource = &entity.DataSourceRef{UID: entity.SharedDashboardQueryUID, Type: "datasource"}
		rec.Targets = []entity.Query{sharedQueryTarget(x.State().PanelID)}
	}
}

func sharedQueryTarget(panelID int) entity.Query {
	return entity.Query{
		"refId": "A",
		"datasource": map[string]any{
			"uid":  entity.SharedDashboardQueryUID,
			"type": "datasource",
		},
		"panelId": panelID,
	}
}

func cloneTransformations(in []entity.Transformation) []entity.Transformation {
	if in == nil {
		return nil
	}
	out := make([]entity.Transformation, len(in))
	for i, t := range in {
		t.Options = entity.CloneMap(t.Options)
		out[i] = t
	}
	return out
}

// ownScopedVars returns the local bindings held directly by set.
func ownScopedVars(set *variables.Set) map[string]entity.ScopedVar {
	if set == nil {
		return nil
	}
	var out map[string]entity.ScopedVar
	for _, v := range set.State().Variables {
		local, ok := v.(*variables.LocalValueVariable)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]entity.ScopedVar)
		}
		out[local.Name()] = entity.ScopedVar{Text: local.Text(), Value: local.Value()}
	}
	return out
}
