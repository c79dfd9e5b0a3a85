package dashboard

import (
	"slices"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// EnterEditMode records initial as the save model to diff and discard
// against and starts dirty tracking.
func (d *Dashboard) EnterEditMode(initial *entity.Dashboard) {
	if d.State().IsEditing {
		return
	}
	d.initial = initial
	d.tracker = d.SubscribeToEvent(scene.EventStateChanged, d.trackChange)
	d.UpdateState(func(s *DashboardState) {
		s.IsEditing = true
		s.IsDirty = false
	})
}

// ExitEditMode stops dirty tracking. The dirty flag is kept so callers can
// still ask whether there are unsaved changes.
func (d *Dashboard) ExitEditMode() {
	if d.tracker != nil {
		d.tracker()
		d.tracker = nil
	}
	d.UpdateState(func(s *DashboardState) { s.IsEditing = false })
}

// InitialSaveModel is the document edit mode started from.
func (d *Dashboard) InitialSaveModel() *entity.Dashboard { return d.initial }

// MarkSaved makes saved the new baseline and clears the dirty flag.
func (d *Dashboard) MarkSaved(saved *entity.Dashboard, version int) {
	d.initial = saved
	s := d.State()
	s.IsDirty = false
	s.Version = version
	if saved != nil && saved.UID != "" {
		s.UID = saved.UID
	}
	// the save itself is not an edit
	d.SetGeneratedState(s)
}

// ReplaceContent swaps in the document content of other (a dashboard
// freshly built from the save model), keeping this root, its environment
// and the view state. Used to discard edits.
func (d *Dashboard) ReplaceContent(other *Dashboard) {
	next := other.State()
	cur := d.State()
	next.Meta = cur.Meta
	next.IsEditing = cur.IsEditing
	next.IsDirty = false
	next.InspectPanelKey = cur.InspectPanelKey
	next.ViewPanelKey = cur.ViewPanelKey
	// detach from the throwaway root before adopting
	other.SetGeneratedState(DashboardState{})
	d.SetGeneratedState(next)
}

func (d *Dashboard) trackChange(evt scene.Event) {
	e, ok := evt.(*scene.StateChangedEvent)
	if !ok || e.Generated || d.State().IsDirty {
		return
	}
	switch obj := e.Object.(type) {
	case *Dashboard:
		if obj != d {
			return
		}
		prev, okPrev := e.Prev.(DashboardState)
		next, okNext := e.Next.(DashboardState)
		if !okPrev || !okNext || !documentChanged(prev, next) {
			return
		}
	case variables.Variable, *variables.AdHocFilterSet, *TimeRange:
		// runtime selections are not document edits
		return
	}
	d.UpdateState(func(s *DashboardState) { s.IsDirty = true })
}

func documentChanged(prev, next DashboardState) bool {
	return prev.UID != next.UID ||
		prev.Title != next.Title ||
		prev.Description != next.Description ||
		!slices.Equal(prev.Tags, next.Tags) ||
		!boolPtrEqual(prev.Editable, next.Editable) ||
		prev.GraphTooltip != next.GraphTooltip ||
		!slices.EqualFunc(prev.Links, next.Links, linkEqual) ||
		prev.Timepicker != next.Timepicker ||
		prev.Refresh != next.Refresh ||
		prev.LiveNow != next.LiveNow ||
		prev.Body != next.Body ||
		prev.TimeRange != next.TimeRange ||
		prev.Variables != next.Variables ||
		!slices.Equal(prev.FilterSets, next.FilterSets) ||
		prev.Annotations != next.Annotations
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func linkEqual(a, b entity.DashboardLink) bool {
	return a.Title == b.Title &&
		a.Type == b.Type &&
		a.URL == b.URL &&
		a.Icon == b.Icon &&
		a.Tooltip == b.Tooltip &&
		slices.Equal(a.Tags, b.Tags) &&
		a.AsDropdown == b.AsDropdown &&
		a.TargetBlank == b.TargetBlank &&
		a.IncludeVars == b.IncludeVars &&
		a.KeepTime == b.KeepTime
}
