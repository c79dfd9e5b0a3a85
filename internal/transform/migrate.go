package transform

import (
	"context"
	"math"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// Pre-grid layout constants.
const (
	legacyColumns      = 12
	legacyPanelSpan    = 4
	legacyRowHeight    = 250
	legacyPanelMinimum = 3
	// pixels per grid unit: a 30px cell plus its 8px margin
	gridUnitPixels = 38
)

// Migrate normalizes doc into the current schema and returns a migrated
// copy; doc itself is left untouched. It converts the pre-grid "rows"
// layout, turns legacy snapshotData into snapshot targets and reassigns
// missing or duplicate panel ids.
func Migrate(ctx context.Context, doc *entity.Dashboard) (*entity.Dashboard, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	log := logging.FromContext(ctx)

	out := *doc
	out.Panels = make([]*entity.Panel, 0, len(doc.Panels))
	for _, p := range doc.Panels {
		out.Panels = append(out.Panels, entity.ClonePanel(p))
	}

	if len(doc.LegacyRows) > 0 {
		maxID := out.MaxPanelID()
		for _, r := range doc.LegacyRows {
			for _, lp := range r.Panels {
				maxID = max(maxID, lp.ID)
			}
		}
		out.Panels = append(out.Panels, upgradeLegacyRows(doc.LegacyRows, maxID)...)
		out.LegacyRows = nil
		log.Debug().Str("dashboard_uid", doc.UID).Int("rows", len(doc.LegacyRows)).Msg("converted legacy rows to grid layout")
	}

	forEachPanel(out.Panels, migrateSnapshotData)
	if n := reassignPanelIDs(out.Panels); n > 0 {
		log.Debug().Str("dashboard_uid", doc.UID).Int("panels", n).Msg("reassigned panel ids")
	}

	if out.SchemaVersion < entity.SchemaVersion {
		out.SchemaVersion = entity.SchemaVersion
	}
	return &out, nil
}

func forEachPanel(panels []*entity.Panel, fn func(p *entity.Panel)) {
	for _, p := range panels {
		fn(p)
		for _, nested := range p.Panels {
			fn(nested)
		}
	}
}

// migrateSnapshotData moves legacy embedded frames into a snapshot target.
func migrateSnapshotData(p *entity.Panel) {
	if len(p.SnapshotData) == 0 {
		return
	}
	p.Datasource = &entity.DataSourceRef{UID: entity.GrafanaDatasourceUID, Type: "datasource"}
	p.Targets = []entity.Query{snapshotTarget(p.SnapshotData)}
	p.SnapshotData = nil
}

func snapshotTarget(frames []entity.DataFrame) entity.Query {
	return entity.Query{
		"refId":     "A",
		"queryType": entity.SnapshotQueryType,
		"snapshot":  entity.CloneFrames(frames),
		"datasource": map[string]any{
			"uid":  entity.GrafanaDatasourceUID,
			"type": "datasource",
		},
	}
}

// reassignPanelIDs gives every panel without an id, or with an id already
// taken, a fresh one. It returns the number of changed panels.
func reassignPanelIDs(panels []*entity.Panel) int {
	next := 0
	forEachPanel(panels, func(p *entity.Panel) { next = max(next, p.ID) })

	seen := make(map[int]bool)
	changed := 0
	forEachPanel(panels, func(p *entity.Panel) {
		if p.ID > 0 && !seen[p.ID] {
			seen[p.ID] = true
			return
		}
		next++
		p.ID = next
		seen[p.ID] = true
		changed++
	})
	return changed
}

// upgradeLegacyRows lays the pre-grid rows out on the 24 column grid.
// Row records are only emitted when the rows carry information (more than
// one row, a visible title, a repeat or a collapsed state).
func upgradeLegacyRows(rows []*entity.LegacyRow, maxID int) []*entity.Panel {
	showRows := len(rows) > 1
	for _, r := range rows {
		if r.ShowTitle || r.Collapse || r.Repeat != "" {
			showRows = true
		}
	}

	nextID := maxID
	var out []*entity.Panel
	y := 0
	for _, r := range rows {
		if r.RepeatIteration != 0 {
			// generated by a legacy repeat; rebuilt on expansion
			continue
		}
		rowHeight := legacyHeightUnits(int(r.Height), legacyRowHeight)

		var rowPanel *entity.Panel
		if showRows {
			nextID++
			rowPanel = &entity.Panel{
				ID:        nextID,
				Type:      entity.PanelTypeRow,
				Title:     r.Title,
				GridPos:   entity.GridPos{X: 0, Y: y, W: entity.GridColumnCount, H: 1},
				Collapsed: r.Collapse,
				Repeat:    r.Repeat,
			}
			out = append(out, rowPanel)
			y++
		}

		x, lineHeight, top := 0, 0, y
		var placed []*entity.Panel
		for _, lp := range r.Panels {
			p := entity.ClonePanel(&lp.Panel)
			span := lp.Span
			if span <= 0 {
				span = legacyPanelSpan
			}
			w := int(math.Floor(span)) * entity.GridColumnCount / legacyColumns
			w = max(min(w, entity.GridColumnCount), 1)
			h := rowHeight
			if lp.Height > 0 {
				h = legacyHeightUnits(int(lp.Height), legacyRowHeight)
			}
			if x+w > entity.GridColumnCount {
				top += lineHeight
				x, lineHeight = 0, 0
			}
			p.GridPos = entity.GridPos{X: x, Y: top, W: w, H: h}
			x += w
			lineHeight = max(lineHeight, h)
			placed = append(placed, p)
		}
		contentBottom := top + lineHeight

		if rowPanel != nil && rowPanel.Collapsed {
			rowPanel.Panels = placed
			continue
		}
		out = append(out, placed...)
		y = max(y, contentBottom)
	}
	return out
}

// legacyHeightUnits converts a pixel height into grid units.
func legacyHeightUnits(pixels, fallback int) int {
	if pixels <= 0 {
		pixels = fallback
	}
	units := int(math.Ceil(float64(pixels) / gridUnitPixels))
	return max(units, legacyPanelMinimum)
}
