package transform

import (
	"fmt"
	"time"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// SnapshotOptions describes the captured snapshot.
type SnapshotOptions struct {
	Timestamp   time.Time
	OriginalURL string
}

// SerializeSnapshot writes a self-contained copy of d for external
// sharing. Every panel carries the data it currently shows instead of its
// queries, repeats are materialized into plain panels carrying their
// scoped values, and variables are cut down to their current selection.
// The scene is only read.
func SerializeSnapshot(d *dashboard.Dashboard, opts SnapshotOptions) (*entity.Dashboard, error) {
	doc, err := documentFields(d)
	if err != nil {
		return nil, err
	}
	for _, v := range doc.Templating.List {
		stripVariable(v)
	}
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	doc.Snapshot = &entity.SnapshotInfo{
		Timestamp:   ts.UTC().Format(time.RFC3339),
		OriginalURL: opts.OriginalURL,
	}

	w := &snapshotWriter{seen: make(map[int]bool), nextID: maxSceneID(d)}
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

type snapshotWriter struct {
	panels []*entity.Panel
	seen   map[int]bool
	nextID int
}

// id keeps the first use of an id and hands out fresh ones to the
// materialized clones sharing it.
func (w *snapshotWriter) id(id int) int {
	if id > 0 && !w.seen[id] {
		w.seen[id] = true
		return id
	}
	w.nextID++
	w.seen[w.nextID] = true
	return w.nextID
}

func (w *snapshotWriter) writeGridChild(child dashboard.GridChild) error {
	switch x := child.(type) {
	case *dashboard.Row:
		return w.writeRow(x)
	case dashboard.LayoutItem:
		recs, err := w.itemRecords(x)
		if err != nil {
			return err
		}
		w.panels = append(w.panels, recs...)
		return nil
	default:
		return fmt.Errorf("%w: grid child %T", ErrUnsupportedNode, child)
	}
}

func (w *snapshotWriter) writeRow(row *dashboard.Row) error {
	s := row.State()
	id, _ := dashboard.PanelIDFromKey(row.Key())
	rec := &entity.Panel{
		ID:        w.id(id),
		Type:      entity.PanelTypeRow,
		Title:     s.Title,
		GridPos:   entity.GridPos{X: 0, Y: s.Y, W: entity.GridColumnCount, H: 1},
		Collapsed: s.IsCollapsed,
	}
	if scoped := variables.LocalScopedVars(row); len(scoped) > 0 {
		rec.ScopedVars = scoped
	}
	items := s.Children
	if rr := row.Repeater(); rr != nil && len(items) == 0 {
		items = rr.State().Sources
	}

	var nested []*entity.Panel
	for _, item := range items {
		recs, err := w.itemRecords(item)
		if err != nil {
			return err
		}
		nested = append(nested, recs...)
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

func (w *snapshotWriter) itemRecords(item dashboard.LayoutItem) ([]*entity.Panel, error) {
	switch x := item.(type) {
	case *dashboard.GridItem:
		if x.Panel() == nil {
			return nil, nil
		}
		return []*entity.Panel{w.panelRecord(x.Panel(), x.Rect())}, nil
	case *dashboard.PanelRepeaterItem:
		s := x.State()
		panels := s.RepeatedPanels
		if len(panels) == 0 && s.Source != nil {
			panels = []*dashboard.VizPanel{s.Source}
		}
		rects := x.PanelRects()
		out := make([]*entity.Panel, 0, len(panels))
		for i, p := range panels {
			out = append(out, w.panelRecord(p, rects[i]))
		}
		return out, nil
	case *dashboard.LibraryPanelItem:
		s := x.State()
		if s.Body != nil && s.IsLoaded {
			return []*entity.Panel{w.panelRecord(s.Body, s.Rect)}, nil
		}
		return []*entity.Panel{{
			ID:           w.id(s.PanelID),
			Title:        s.Title,
			GridPos:      s.Rect.GridPos(),
			LibraryPanel: &entity.LibraryPanelRef{UID: s.UID, Name: s.Name},
		}}, nil
	default:
		return nil, fmt.Errorf("%w: layout item %T", ErrUnsupportedNode, item)
	}
}

func (w *snapshotWriter) panelRecord(p *dashboard.VizPanel, rect dashboard.Rect) *entity.Panel {
	rec := vizPanelRecord(p)
	rec.ID = w.id(rec.ID)
	rec.GridPos = rect.GridPos()
	if scoped := variables.LocalScopedVars(p); len(scoped) > 0 {
		rec.ScopedVars = scoped
	}
	embedData(rec, p.State().Data)
	return rec
}

// embedData swaps the live queries for the frames the panel currently
// has. Transformations stay: they are applied again on replay.
func embedData(rec *entity.Panel, provider dashboard.DataProvider) {
	if t, ok := provider.(*dashboard.DataTransformer); ok {
		provider = t.State().Inner
	}
	frames := []entity.DataFrame{}
	if provider != nil {
		if series := provider.Data().Series; series != nil {
			frames = entity.CloneFrames(series)
		}
	}
	rec.Datasource = &entity.DataSourceRef{UID: entity.GrafanaDatasourceUID, Type: "datasource"}
	rec.Targets = []entity.Query{snapshotTarget(frames)}
	rec.MaxDataPoints = nil
	rec.Interval = ""
}

// stripVariable removes everything that would let a snapshot reach a
// datasource: query variables keep only their selected options.
func stripVariable(v *entity.Variable) {
	switch v.Type {
	case entity.VariableTypeQuery, entity.VariableTypeDatasource:
	default:
		return
	}
	if v.Current != nil && !v.Current.Value.IsAll() {
		v.Options = selectedOptions(v.Current)
	}
	v.Query = nil
	v.Definition = ""
	v.Regex = ""
	v.Datasource = nil
	v.Refresh = entity.RefreshNever
}

func selectedOptions(current *entity.VariableOption) []entity.VariableOption {
	values := current.Value.Values()
	texts := current.Text.Values()
	out := make([]entity.VariableOption, 0, len(values))
	for i, val := range values {
		text := val
		if i < len(texts) {
			text = texts[i]
		}
		out = append(out, entity.VariableOption{
			Text:     entity.StringValue(text),
			Value:    entity.StringValue(val),
			Selected: true,
		})
	}
	return out
}

// maxSceneID is the highest panel or row id used anywhere in the scene.
func maxSceneID(d *dashboard.Dashboard) int {
	maxID := 0
	scene.Walk(d, func(o scene.Object) bool {
		if id, ok := dashboard.PanelIDFromKey(o.Key()); ok {
			maxID = max(maxID, id)
		}
		return true
	})
	if body := d.State().Body; body != nil {
		for _, c := range body.State().Children {
			row, ok := c.(*dashboard.Row)
			if !ok || row.Repeater() == nil {
				continue
			}
			for _, src := range row.Repeater().State().Sources {
				if p := src.Panel(); p != nil {
					maxID = max(maxID, p.PanelID())
				}
			}
		}
	}
	return maxID
}
