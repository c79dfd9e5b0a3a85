package dashboard

import (
	"fmt"
	"math"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// RowRepeaterState names the repeat variable and owns the template items.
// Sources are templates: they are never attached to the live tree.
type RowRepeaterState struct {
	VariableName string
	Sources      []LayoutItem
	Phase        RepeatPhase
}

// RowRepeater repeats its row once per value of a multi-value variable.
type RowRepeater struct {
	scene.Base[RowRepeaterState]
}

// NewRowRepeater creates a row repeat behavior.
func NewRowRepeater(state RowRepeaterState) *RowRepeater {
	b := &RowRepeater{}
	b.Init(b, "", state)
	b.AddActivationHandler(b.onActivate)
	return b
}

func (b *RowRepeater) rowBehavior() {}

// VariableDependencies implements variables.DependencyProvider.
func (b *RowRepeater) VariableDependencies() []string {
	return []string{b.State().VariableName}
}

// scopeRoot is where the repeat variable is resolved: above the row, so
// the row's own repeat binding does not shadow it.
func (b *RowRepeater) scopeRoot() scene.Object {
	if row := b.Parent(); row != nil {
		return row.Parent()
	}
	return nil
}

func (b *RowRepeater) onActivate() func() {
	unsub := variables.SubscribeDependencies(b.scopeRoot(), b.VariableDependencies(), func(string) {
		b.onDependencyChanged()
	})
	b.onDependencyChanged()
	return unsub
}

func (b *RowRepeater) onDependencyChanged() {
	if variables.AnyLoading(b.scopeRoot(), b.State().VariableName) {
		if s := b.State(); s.Phase != RepeatWaitingForVariable {
			s.Phase = RepeatWaitingForVariable
			b.SetGeneratedState(s)
		}
		return
	}
	// PerformRepeat already logged and notified any error
	_ = b.PerformRepeat()
}

// RowContentHeight is the vertical extent of items.
func RowContentHeight(items []LayoutItem) int {
	if len(items) == 0 {
		return 0
	}
	minY, maxY := math.MaxInt, 0
	for _, it := range items {
		r := it.Rect()
		minY = min(minY, r.Y)
		maxY = max(maxY, r.Bottom())
	}
	return maxY - minY
}

// PerformRepeat rebuilds the repeated rows: stale clones of the row are
// purged, one row per value is spliced in at the row's position and the
// entries after it move by the net height change.
func (b *RowRepeater) PerformRepeat() error {
	env := scene.EnvironmentOf(b)

	row, ok := b.Parent().(*Row)
	if !ok {
		return b.fail(env, fmt.Errorf("%w: row repeater %s is not attached to a row", ErrInvalidRepeatParent, b.Key()))
	}
	grid, ok := row.Parent().(*Grid)
	if !ok {
		return b.fail(env, fmt.Errorf("%w: row %s is not a grid child", ErrInvalidRepeatParent, row.Key()))
	}
	name := b.State().VariableName
	v, err := variables.LookupMultiValue(name, grid)
	if err != nil {
		return b.fail(env, err)
	}

	resolved := variables.ResolveMultiValues(v)
	sources := b.State().Sources
	contentHeight := RowContentHeight(sources)
	rowY := row.State().Y

	rows := make([]GridChild, 0, max(resolved.Len(), 1))
	for i := range resolved.Values {
		children := make([]LayoutItem, 0, len(sources))
		for _, src := range sources {
			key := src.Key()
			if i > 0 {
				key = CloneKey(key, i)
			}
			item := cloneLayoutItem(src, key)
			r := item.Rect()
			r.Y += (contentHeight + 1) * i
			item.SetRect(r)
			suffixDescendantKeys(item, rowSuffix(i))
			children = append(children, item)
		}
		local := variables.NewSet(variables.NewLocalValueVariable(name, resolved.Values[i], resolved.Texts[i]))
		rows = append(rows, b.rowClone(row, i, local, contentHeight, children))
	}
	if len(rows) == 0 {
		s := row.State()
		s.Variables = nil
		s.Children = nil
		row.SetGeneratedState(s)
		rows = append(rows, row)
	}

	newEnd := rowY + len(rows)*(contentHeight+1)
	if err := spliceRows(grid, row, rows, newEnd); err != nil {
		return b.fail(env, err)
	}

	s := b.State()
	s.Phase = RepeatExpanded
	b.SetGeneratedState(s)

	env.Logger().Debug().
		Str("row", row.Key()).
		Str("variable", name).
		Int("count", resolved.Len()).
		Msg("row repeat processed")
	b.Publish(&scene.RepeatsProcessedEvent{Source: b}, true)
	return nil
}

// rowClone returns the row for value index: the original row itself for
// index 0, a behavior-less copy below it otherwise.
func (b *RowRepeater) rowClone(row *Row, index int, local *variables.Set, contentHeight int, children []LayoutItem) *Row {
	s := row.State()
	s.Variables = local
	s.Children = children
	if index == 0 {
		row.SetGeneratedState(s)
		return row
	}
	s.Behaviors = nil
	s.Y = s.Y + (contentHeight+1)*index
	return NewRow(CloneKey(row.Key(), index), s)
}

// spliceRows replaces row and its previous clones in the grid with rows
// and shifts the entries after it so the first one starts at newEnd.
func spliceRows(grid *Grid, row *Row, rows []GridChild, newEnd int) error {
	all := make([]GridChild, 0, len(grid.State().Children))
	for _, c := range grid.State().Children {
		if IsCloneOf(c.Key(), row.Key()) {
			continue
		}
		all = append(all, c)
	}
	index := -1
	for i, c := range all {
		if c == row {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: row %s not found in grid", ErrInvalidRepeatParent, row.Key())
	}

	after := all[index+1:]
	if len(after) > 0 {
		diff := newEnd - after[0].Rect().Y
		if diff != 0 {
			for _, c := range after {
				moveBy(c, diff)
			}
		}
	}

	children := make([]GridChild, 0, len(all)-1+len(rows))
	children = append(children, all[:index]...)
	children = append(children, rows...)
	children = append(children, after...)
	grid.SetGeneratedState(GridState{Children: children})
	return nil
}

func (b *RowRepeater) fail(env *scene.Environment, err error) error {
	env.Logger().Error().Err(err).Str("behavior", b.Key()).Msg("row repeat failed")
	env.Notify(port.NotificationError, "Row repeat failed", err.Error())
	return err
}

func cloneLayoutItem(item LayoutItem, key string) LayoutItem {
	switch x := item.(type) {
	case *GridItem:
		return x.clone(key)
	case *PanelRepeaterItem:
		return x.clone(key)
	case *LibraryPanelItem:
		return x.clone(key)
	default:
		panic(fmt.Sprintf("dashboard: unknown layout item %T", item))
	}
}
