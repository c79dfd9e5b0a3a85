package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// SceneTreeOptions selects what RenderSceneTree shows beside the layout.
type SceneTreeOptions struct {
	ShowKeys bool
	ShowData bool
}

// RenderSceneTree draws the layout of a built dashboard: variables, rows,
// repeaters and panels with their grid rectangles.
func (t *Theme) RenderSceneTree(d *dashboard.Dashboard, opts SceneTreeOptions) string {
	s := d.State()
	root := tree.Root(fmt.Sprintf("%s %s %s",
		t.Highlight.Render(IconDashboard),
		t.Title.Render(s.Title),
		t.Subtle.Render(s.UID),
	)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(t.Subtle)

	if vars := t.variableNodes(s.Variables); vars != nil {
		root.Child(vars)
	}
	if s.Body != nil {
		for _, child := range s.Body.State().Children {
			root.Child(t.gridChildNode(child, opts))
		}
	}
	return root.String()
}

func (t *Theme) variableNodes(set *variables.Set) *tree.Tree {
	if set == nil || len(set.State().Variables) == 0 {
		return nil
	}
	node := tree.Root(t.Subtitle.Render(IconVariable + " variables"))
	for _, v := range set.State().Variables {
		value := v.Text().String()
		if v.IsLoading() {
			value = t.WarningStyle.Render("loading")
		}
		node.Child(fmt.Sprintf("%s %s = %s",
			t.Normal.Render(v.Name()),
			t.Subtle.Render("("+string(v.Kind())+")"),
			value,
		))
	}
	return node
}

func (t *Theme) gridChildNode(child dashboard.GridChild, opts SceneTreeOptions) any {
	switch c := child.(type) {
	case *dashboard.Row:
		return t.rowNode(c, opts)
	case dashboard.LayoutItem:
		return t.layoutItemNode(c, opts)
	default:
		return t.Subtle.Render(fmt.Sprintf("%T", child))
	}
}

func (t *Theme) rowNode(row *dashboard.Row, opts SceneTreeOptions) *tree.Tree {
	s := row.State()
	label := []string{t.Highlight.Render(IconRow), t.Title.Render(s.Title), t.Subtle.Render(fmt.Sprintf("y=%d", s.Y))}
	if s.IsCollapsed {
		label = append(label, t.MutedBadge(IconCollapse+" collapsed"))
	}
	if rr := row.Repeater(); rr != nil {
		label = append(label, t.MutedBadge(fmt.Sprintf("%s $%s %s", IconRepeat, rr.State().VariableName, rr.State().Phase)))
	}
	if opts.ShowKeys {
		label = append(label, t.Subtle.Render("["+row.Key()+"]"))
	}
	node := tree.Root(strings.Join(label, " "))
	for _, item := range s.Children {
		node.Child(t.layoutItemNode(item, opts))
	}
	return node
}

func (t *Theme) layoutItemNode(item dashboard.LayoutItem, opts SceneTreeOptions) any {
	switch it := item.(type) {
	case *dashboard.PanelRepeaterItem:
		s := it.State()
		label := fmt.Sprintf("%s %s %s %s",
			t.Highlight.Render(IconRepeat),
			t.Normal.Render("$"+s.VariableName),
			t.Subtle.Render(rectText(s.Rect)),
			t.MutedBadge(s.Phase.String()),
		)
		node := tree.Root(label)
		panels := s.RepeatedPanels
		if len(panels) == 0 && s.Source != nil {
			panels = []*dashboard.VizPanel{s.Source}
		}
		for _, p := range panels {
			node.Child(t.panelLabel(p, "", opts))
		}
		return node
	case *dashboard.LibraryPanelItem:
		s := it.State()
		if s.Body == nil {
			return fmt.Sprintf("%s %s %s", t.Highlight.Render(IconLibrary), t.Normal.Render(s.Name), t.Subtle.Render(rectText(s.Rect)))
		}
		return t.panelLabel(s.Body, IconLibrary+" "+rectText(s.Rect), opts)
	case *dashboard.GridItem:
		return t.panelLabel(it.Panel(), rectText(it.Rect()), opts)
	default:
		return t.Subtle.Render(fmt.Sprintf("%T", item))
	}
}

func (t *Theme) panelLabel(p *dashboard.VizPanel, suffix string, opts SceneTreeOptions) string {
	if p == nil {
		return t.Subtle.Render("(empty)")
	}
	s := p.State()
	parts := []string{
		t.Highlight.Render(IconPanel),
		t.Normal.Render(p.InterpolatedTitle()),
		t.Subtle.Render(s.PluginID),
	}
	if suffix != "" {
		parts = append(parts, t.Subtle.Render(suffix))
	}
	if s.Error != "" {
		parts = append(parts, t.ErrorStyle.Render(IconX+" "+s.Error))
	}
	if opts.ShowData {
		data := p.Data()
		parts = append(parts, t.LoadingBadge(data.State))
		if len(data.Series) > 0 {
			rows := 0
			for _, f := range data.Series {
				rows += f.Len()
			}
			parts = append(parts, t.Subtle.Render(fmt.Sprintf("%d frames/%d rows", len(data.Series), rows)))
		}
		if data.Error != nil {
			parts = append(parts, t.ErrorStyle.Render(data.Error.Message))
		}
	}
	if opts.ShowKeys {
		parts = append(parts, t.Subtle.Render("["+p.Key()+"]"))
	}
	return strings.Join(parts, " ")
}

func rectText(r dashboard.Rect) string {
	return fmt.Sprintf("x=%d y=%d w=%d h=%d", r.X, r.Y, r.Width, r.Height)
}
