// Package entity contains the declarative dashboard document and the data
// shapes exchanged with collaborators. These are pure Go types with no
// infrastructure dependencies.
package entity

// SchemaVersion is the document schema version written by the serializer.
const SchemaVersion = 39

// Dashboard is the persisted, order-significant dashboard document.
// It is only ever produced by a load or by the serializer and is never fed
// back into a live scene without going through deserialization.
type Dashboard struct {
	ID                   int64           `json:"id,omitempty"`
	UID                  string          `json:"uid,omitempty"`
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Tags                 []string        `json:"tags,omitempty"`
	Editable             *bool           `json:"editable,omitempty"`
	GraphTooltip         int             `json:"graphTooltip,omitempty"`
	Links                []DashboardLink `json:"links,omitempty"`
	Time                 *TimeRange      `json:"time,omitempty"`
	Timepicker           *TimePicker     `json:"timepicker,omitempty"`
	Timezone             string          `json:"timezone,omitempty"`
	WeekStart            string          `json:"weekStart,omitempty"`
	FiscalYearStartMonth int             `json:"fiscalYearStartMonth,omitempty"`
	Refresh              string          `json:"refresh,omitempty"`
	LiveNow              bool            `json:"liveNow,omitempty"`
	SchemaVersion        int             `json:"schemaVersion,omitempty"`
	Version              int             `json:"version,omitempty"`
	Panels               []*Panel        `json:"panels"`
	Templating           Templating      `json:"templating"`
	Annotations          AnnotationList  `json:"annotations"`
	Snapshot             *SnapshotInfo   `json:"snapshot,omitempty"`
	LegacyRows           []*LegacyRow    `json:"rows,omitempty"`
}

// TimeRange is a raw (unparsed) time range such as {"now-6h", "now"}.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TimePicker holds the time picker settings of a dashboard.
type TimePicker struct {
	Hidden           bool     `json:"hidden,omitempty"`
	RefreshIntervals []string `json:"refresh_intervals,omitempty"`
	NowDelay         string   `json:"nowDelay,omitempty"`
}

// DashboardLink is a link shown in the dashboard controls.
type DashboardLink struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	URL         string   `json:"url,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Tooltip     string   `json:"tooltip,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AsDropdown  bool     `json:"asDropdown,omitempty"`
	TargetBlank bool     `json:"targetBlank,omitempty"`
	IncludeVars bool     `json:"includeVars,omitempty"`
	KeepTime    bool     `json:"keepTime,omitempty"`
}

// Templating wraps the variable list.
type Templating struct {
	List []*Variable `json:"list"`
}

// AnnotationList wraps the annotation query list.
type AnnotationList struct {
	List []*Annotation `json:"list"`
}

// SnapshotInfo marks a document as a captured snapshot.
type SnapshotInfo struct {
	Timestamp   string `json:"timestamp,omitempty"`
	OriginalURL string `json:"originalUrl,omitempty"`
}

// DashboardMeta is opaque permission/version metadata returned by the
// persistence collaborator. The engine passes it through unchanged.
type DashboardMeta struct {
	Slug       string `json:"slug,omitempty"`
	URL        string `json:"url,omitempty"`
	FolderUID  string `json:"folderUid,omitempty"`
	CanSave    bool   `json:"canSave"`
	CanEdit    bool   `json:"canEdit"`
	CanShare   bool   `json:"canShare"`
	Created    string `json:"created,omitempty"`
	Updated    string `json:"updated,omitempty"`
	Version    int    `json:"version,omitempty"`
	IsNew      bool   `json:"isNew,omitempty"`
	IsSnapshot bool   `json:"isSnapshot,omitempty"`
}

// DashboardDTO is what a load returns: the document plus its metadata.
type DashboardDTO struct {
	Dashboard *Dashboard    `json:"dashboard"`
	Meta      DashboardMeta `json:"meta"`
}

// SaveAck is the persistence acknowledgement for a saved document.
type SaveAck struct {
	UID     string `json:"uid"`
	Version int    `json:"version"`
	Status  string `json:"status"`
}

// PanelByID returns the first panel (searching collapsed rows too) with id.
func (d *Dashboard) PanelByID(id int) *Panel {
	for _, p := range d.Panels {
		if p.ID == id {
			return p
		}
		for _, nested := range p.Panels {
			if nested.ID == id {
				return nested
			}
		}
	}
	return nil
}

// MaxPanelID returns the highest panel id in the document, rows included.
func (d *Dashboard) MaxPanelID() int {
	maxID := 0
	for _, p := range d.Panels {
		if p.ID > maxID {
			maxID = p.ID
		}
		for _, nested := range p.Panels {
			if nested.ID > maxID {
				maxID = nested.ID
			}
		}
	}
	return maxID
}

// CountPanels returns the number of non-row panels, nested ones included.
func (d *Dashboard) CountPanels() int {
	count := 0
	for _, p := range d.Panels {
		if !p.IsRow() {
			count++
			continue
		}
		count += len(p.Panels)
	}
	return count
}
