package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GridColumnCount is the width of the dashboard grid in columns.
const GridColumnCount = 24

// PanelTypeRow is the type tag of row records in the panel list.
const PanelTypeRow = "row"

// Repeat directions.
const (
	RepeatDirectionHorizontal = "h"
	RepeatDirectionVertical   = "v"
)

// Well-known datasource uids.
const (
	// SharedDashboardQueryUID marks a panel that reuses another panel's results.
	SharedDashboardQueryUID = "-- Dashboard --"
	// GrafanaDatasourceUID is the built-in datasource that replays snapshot data.
	GrafanaDatasourceUID = "grafana"
	// SnapshotQueryType is the query type of embedded snapshot targets.
	SnapshotQueryType = "snapshot"
)

// GridPos positions a panel on the grid in grid units.
type GridPos struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Bottom returns the first grid row below the panel.
func (g GridPos) Bottom() int {
	return g.Y + g.H
}

// Panel is one entry of the ordered panel list. Rows share the same record
// shape and are told apart by Type == "row".
type Panel struct {
	ID               int                  `json:"id"`
	Type             string               `json:"type"`
	Title            string               `json:"title,omitempty"`
	Description      string               `json:"description,omitempty"`
	GridPos          GridPos              `json:"gridPos"`
	Datasource       *DataSourceRef       `json:"datasource,omitempty"`
	Targets          []Query              `json:"targets,omitempty"`
	MaxDataPoints    *int                 `json:"maxDataPoints,omitempty"`
	Interval         string               `json:"interval,omitempty"`
	Options          map[string]any       `json:"options,omitempty"`
	FieldConfig      *FieldConfigSource   `json:"fieldConfig,omitempty"`
	Transformations  []Transformation     `json:"transformations,omitempty"`
	TimeFrom         string               `json:"timeFrom,omitempty"`
	TimeShift        string               `json:"timeShift,omitempty"`
	HideTimeOverride bool                 `json:"hideTimeOverride,omitempty"`
	Transparent      bool                 `json:"transparent,omitempty"`
	PluginVersion    string               `json:"pluginVersion,omitempty"`
	Links            []PanelLink          `json:"links,omitempty"`
	Repeat           string               `json:"repeat,omitempty"`
	RepeatDirection  string               `json:"repeatDirection,omitempty"`
	MaxPerRow        int                  `json:"maxPerRow,omitempty"`
	LibraryPanel     *LibraryPanelRef     `json:"libraryPanel,omitempty"`
	Collapsed        bool                 `json:"collapsed,omitempty"`
	Panels           []*Panel             `json:"panels,omitempty"`
	ScopedVars       map[string]ScopedVar `json:"scopedVars,omitempty"`
	SnapshotData     []DataFrame          `json:"snapshotData,omitempty"`
}

// IsRow reports whether the record is a row.
func (p *Panel) IsRow() bool {
	return p.Type == PanelTypeRow
}

// IsLibraryReference reports whether the record only points at a separately
// stored library panel, without an inline model.
func (p *Panel) IsLibraryReference() bool {
	return p.LibraryPanel != nil && p.LibraryPanel.UID != "" && p.LibraryPanel.Model == nil
}

// DataSourceRef identifies a datasource.
type DataSourceRef struct {
	UID  string `json:"uid,omitempty"`
	Type string `json:"type,omitempty"`
}

// UnmarshalJSON accepts both the reference object and the legacy plain
// datasource name.
func (r *DataSourceRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.UID = name
		r.Type = ""
		return nil
	}
	type plain DataSourceRef
	var ref plain
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("datasource reference: %w", err)
	}
	*r = DataSourceRef(ref)
	return nil
}

// Query is a datasource query (a panel target). Its shape belongs to the
// datasource, so it is kept opaque apart from a few well-known keys.
type Query map[string]any

// RefID returns the query's refId.
func (q Query) RefID() string {
	s, _ := q["refId"].(string)
	return s
}

// QueryType returns the query's queryType.
func (q Query) QueryType() string {
	s, _ := q["queryType"].(string)
	return s
}

// PanelID returns the referenced panel id of a shared dashboard query.
func (q Query) PanelID() int {
	switch v := q["panelId"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// SnapshotFrames decodes the frames embedded in a snapshot target.
func (q Query) SnapshotFrames() ([]DataFrame, error) {
	raw, ok := q["snapshot"]
	if !ok || raw == nil {
		return nil, nil
	}
	if frames, ok := raw.([]DataFrame); ok {
		return frames, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot frames: %w", err)
	}
	var frames []DataFrame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("decode snapshot frames: %w", err)
	}
	return frames, nil
}

// Clone deep-copies the query.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	return Query(CloneMap(q))
}

// FieldConfigSource holds field defaults and overrides.
type FieldConfigSource struct {
	Defaults  map[string]any   `json:"defaults"`
	Overrides []map[string]any `json:"overrides"`
}

// Clone deep-copies the field config.
func (f *FieldConfigSource) Clone() *FieldConfigSource {
	if f == nil {
		return nil
	}
	out := &FieldConfigSource{Defaults: CloneMap(f.Defaults)}
	if f.Overrides != nil {
		out.Overrides = make([]map[string]any, len(f.Overrides))
		for i, o := range f.Overrides {
			out.Overrides[i] = CloneMap(o)
		}
	}
	return out
}

// Transformation is one step of a panel's data transformation pipeline.
type Transformation struct {
	ID       string         `json:"id"`
	Options  map[string]any `json:"options"`
	Disabled bool           `json:"disabled,omitempty"`
	Topic    string         `json:"topic,omitempty"`
}

// PanelLink is a link shown in a panel header.
type PanelLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	TargetBlank bool   `json:"targetBlank,omitempty"`
}

// LibraryPanelRef points at a separately stored panel definition.
type LibraryPanelRef struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Model *Panel `json:"model,omitempty"`
}

// LibraryPanel is a stored, reusable panel definition.
type LibraryPanel struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version"`
	Model       *Panel `json:"model"`
}

// ScopedVar is the value a repeated panel was bound to.
type ScopedVar struct {
	Text  VariableValue `json:"text"`
	Value VariableValue `json:"value"`
}

// LegacyRow is a row of the pre-grid layout (documents with a "rows" list).
type LegacyRow struct {
	Title           string         `json:"title,omitempty"`
	Collapse        bool           `json:"collapse,omitempty"`
	ShowTitle       bool           `json:"showTitle,omitempty"`
	Repeat          string         `json:"repeat,omitempty"`
	RepeatIteration int64          `json:"repeatIteration,omitempty"`
	Height          LegacyHeight   `json:"height,omitempty"`
	Panels          []*LegacyPanel `json:"panels,omitempty"`
}

// LegacyPanel is a panel of the pre-grid layout, sized by span (12 columns).
type LegacyPanel struct {
	Panel
	Span    float64      `json:"span,omitempty"`
	MinSpan float64      `json:"minSpan,omitempty"`
	Height  LegacyHeight `json:"height,omitempty"`
}

// LegacyHeight is a pixel height written either as a number or "250px".
type LegacyHeight int

// UnmarshalJSON parses numbers and "NNNpx" strings.
func (h *LegacyHeight) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*h = LegacyHeight(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("legacy height: %w", err)
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		*h = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("legacy height %q: %w", s, err)
	}
	*h = LegacyHeight(parsed)
	return nil
}
