package dashboard

import (
	"strings"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// Default dashboard time range.
const (
	DefaultTimeFrom = "now-6h"
	DefaultTimeTo   = "now"
)

// TimeRangeState is the dashboard time range and calendar settings.
type TimeRangeState struct {
	From                 string
	To                   string
	Timezone             string
	WeekStart            string
	FiscalYearStartMonth int
}

// TimeRange is the dashboard-wide time range.
type TimeRange struct {
	scene.Base[TimeRangeState]
}

// NewTimeRange creates a time range node.
func NewTimeRange(state TimeRangeState) *TimeRange {
	t := &TimeRange{}
	t.Init(t, "", state)
	return t
}

// Value returns the range, falling back to the defaults for unset ends.
func (t *TimeRange) Value() entity.TimeRange {
	s := t.State()
	out := entity.TimeRange{From: s.From, To: s.To}
	if out.From == "" {
		out.From = DefaultTimeFrom
	}
	if out.To == "" {
		out.To = DefaultTimeTo
	}
	return out
}

// SetRange changes the range. Active query runners re-run.
func (t *TimeRange) SetRange(from, to string) {
	t.UpdateState(func(s *TimeRangeState) {
		s.From = from
		s.To = to
	})
}

// PanelTimeRangeState is a per-panel time override.
type PanelTimeRangeState struct {
	TimeFrom         string
	TimeShift        string
	HideTimeOverride bool
}

// PanelTimeRange overrides or shifts the dashboard range for one panel.
type PanelTimeRange struct {
	scene.Base[PanelTimeRangeState]
}

// NewPanelTimeRange creates a panel time override.
func NewPanelTimeRange(state PanelTimeRangeState) *PanelTimeRange {
	t := &PanelTimeRange{}
	t.Init(t, "", state)
	return t
}

// Resolve applies the override to the dashboard range: a relative
// TimeFrom replaces the start, TimeShift moves both ends back.
func (t *PanelTimeRange) Resolve(parent entity.TimeRange) entity.TimeRange {
	s := t.State()
	out := parent
	if s.TimeFrom != "" {
		out.From = "now-" + strings.TrimPrefix(s.TimeFrom, "now-")
		out.To = "now"
	}
	if s.TimeShift != "" {
		shift := "-" + strings.TrimPrefix(s.TimeShift, "-")
		out.From = shiftExpr(out.From, shift)
		out.To = shiftExpr(out.To, shift)
	}
	return out
}

func shiftExpr(expr, shift string) string {
	if strings.HasPrefix(expr, "now") {
		return expr + shift
	}
	return expr
}

func (t *PanelTimeRange) clone() *PanelTimeRange {
	c := NewPanelTimeRange(t.State())
	scene.Rekey(c, t.Key())
	return c
}
