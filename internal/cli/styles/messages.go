package styles

import (
	"fmt"
	"strings"
)

// Success renders a confirmation line.
func (t *Theme) Success(format string, args ...any) string {
	return fmt.Sprintf("%s %s", t.SuccessStyle.Render(IconCheck), fmt.Sprintf(format, args...))
}

// Warning renders a warning line.
func (t *Theme) Warning(format string, args ...any) string {
	return fmt.Sprintf("%s %s", t.WarningStyle.Render(IconWarning), fmt.Sprintf(format, args...))
}

// Info renders an informational line.
func (t *Theme) Info(format string, args ...any) string {
	return fmt.Sprintf("%s %s", t.Highlight.Render(IconInfo), fmt.Sprintf(format, args...))
}

// Error renders err as a failure line.
func (t *Theme) Error(err error) string {
	return fmt.Sprintf("%s %s", t.ErrorStyle.Render(IconX), t.ErrorStyle.Render(err.Error()))
}

// KeyValues renders aligned key/value pairs in the given key order.
func (t *Theme) KeyValues(keys []string, values map[string]string) string {
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			t.Highlight.Render(k)+strings.Repeat(" ", width-len(k)),
			t.Normal.Render(values[k]),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}
