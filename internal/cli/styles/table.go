package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// Table renders rows under headers with the theme's border and cell styles.
func (t *Theme) Table(headers []string, rows [][]string) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.TableHeader
			}
			return t.TableCell
		}).
		Headers(headers...).
		Rows(rows...)
	return tbl.String()
}

// DashboardTable lists stored dashboards.
func (t *Theme) DashboardTable(items []*entity.DashboardSummary) string {
	if len(items) == 0 {
		return t.Subtle.Render("  No dashboards found")
	}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			d.UID,
			d.Title,
			strings.Join(d.Tags, ", "),
			d.FolderUID,
			strconv.Itoa(d.Version),
			RelativeTime(d.Updated),
		})
	}
	return t.Table([]string{"UID", "Title", "Tags", "Folder", "Version", "Updated"}, rows)
}

// VersionTable lists the stored versions of one dashboard.
func (t *Theme) VersionTable(versions []*entity.DashboardVersion) string {
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		rows = append(rows, []string{
			strconv.Itoa(v.Version),
			v.Message,
			v.Created.Local().Format(time.DateTime),
		})
	}
	return t.Table([]string{"Version", "Message", "Created"}, rows)
}

// LibraryPanelTable lists stored library panels.
func (t *Theme) LibraryPanelTable(panels []*entity.LibraryPanel) string {
	if len(panels) == 0 {
		return t.Subtle.Render("  No library panels found")
	}
	rows := make([][]string, 0, len(panels))
	for _, p := range panels {
		rows = append(rows, []string{p.UID, p.Name, strconv.Itoa(p.Version), p.Description})
	}
	return t.Table([]string{"UID", "Name", "Version", "Description"}, rows)
}

// SnapshotInfo renders a created snapshot with its keys.
func (t *Theme) SnapshotInfo(snap *entity.Snapshot) string {
	expires := "never"
	if !snap.Expires.IsZero() {
		expires = RelativeTime(snap.Expires)
	}
	lines := []string{
		fmt.Sprintf("%s %s", t.Highlight.Render(IconCamera), t.Title.Render(snap.Name)),
		fmt.Sprintf("  %s %s", t.Subtle.Render("key:       "), snap.Key),
		fmt.Sprintf("  %s %s", t.Subtle.Render("delete key:"), snap.DeleteKey),
		fmt.Sprintf("  %s %d", t.Subtle.Render("panels:    "), snap.Dashboard.CountPanels()),
		fmt.Sprintf("  %s %s", t.Subtle.Render("expires:   "), expires),
	}
	return t.Box.Render(strings.Join(lines, "\n"))
}

// SaveAck renders the acknowledgement of a stored dashboard.
func (t *Theme) SaveAck(verb string, ack *entity.SaveAck) string {
	return fmt.Sprintf("%s %s %s %s",
		t.SuccessStyle.Render(IconCheck),
		t.Normal.Render(verb),
		t.Highlight.Render(ack.UID),
		t.VersionBadge(ack.Version),
	)
}
