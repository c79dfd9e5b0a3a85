package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// VersionBadge renders a dashboard version badge.
func (t *Theme) VersionBadge(version int) string {
	return t.BadgeMuted.Render(fmt.Sprintf("v%d", version))
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// LoadingBadge renders the loading state of a panel's data.
func (t *Theme) LoadingBadge(state entity.LoadingState) string {
	switch state {
	case entity.LoadingStateDone:
		return t.StatusBadge("done", t.Surface, t.SuccessColor)
	case entity.LoadingStateError:
		return t.StatusBadge("error", t.Surface, t.ErrorColor)
	case entity.LoadingStateLoading, entity.LoadingStateStreaming:
		return t.StatusBadge("loading", t.Surface, t.WarningColor)
	default:
		return t.MutedBadge("no data")
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)
	switch {
	case diff < 0:
		return "in " + span(-diff)
	case diff < time.Minute:
		return "just now"
	default:
		return span(diff) + " ago"
	}
}

func span(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "<1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
	}
}
