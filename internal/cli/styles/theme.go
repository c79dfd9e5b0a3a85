// Package styles renders dashctl output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/grafana/grafana-sub060/internal/infrastructure/config"
)

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Border  string
	Surface string
	Error   string
	Warning string
	Success string
}

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Accent       lipgloss.Color
	Border       lipgloss.Color
	Surface      lipgloss.Color
	ErrorColor   lipgloss.Color
	WarningColor lipgloss.Color
	SuccessColor lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	Box lipgloss.Style
}

// DefaultPalette is the palette used when color output is on.
func DefaultPalette() Palette {
	return Palette{
		Text:    "#d8d9da",
		Muted:   "#8e8e8e",
		Accent:  "#f46800",
		Border:  "#464c54",
		Surface: "#22252b",
		Error:   "#e02f44",
		Warning: "#ff9830",
		Success: "#56a64b",
	}
}

// NewTheme picks the palette from the output settings. A nil config or
// output.color=false gives a colorless theme.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil || !cfg.Output.Color {
		return NewThemeFromPalette(Palette{})
	}
	return NewThemeFromPalette(DefaultPalette())
}

func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Text:         lipgloss.Color(p.Text),
		Muted:        lipgloss.Color(p.Muted),
		Accent:       lipgloss.Color(p.Accent),
		Border:       lipgloss.Color(p.Border),
		Surface:      lipgloss.Color(p.Surface),
		ErrorColor:   lipgloss.Color(p.Error),
		WarningColor: lipgloss.Color(p.Warning),
		SuccessColor: lipgloss.Color(p.Success),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	padded := func(s lipgloss.Style) lipgloss.Style { return s.Padding(0, 1) }

	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.ErrorColor)
	t.WarningStyle = fg(t.WarningColor)
	t.SuccessStyle = fg(t.SuccessColor)

	t.Badge = padded(fg(t.Surface).Background(t.Accent))
	t.BadgeMuted = padded(fg(t.Text).Background(t.Surface))
	t.TableHeader = padded(fg(t.Accent).Bold(true))
	t.TableCell = padded(fg(t.Text))
	t.Box = padded(lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(t.Border))
	return t
}
