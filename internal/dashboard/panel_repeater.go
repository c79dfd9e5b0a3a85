package dashboard

import (
	"fmt"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// DefaultMaxPerRow bounds horizontal repeats without an explicit maxPerRow.
const DefaultMaxPerRow = 4

// RepeatPhase is the state of a repeater's variable watch.
type RepeatPhase int

const (
	RepeatIdle RepeatPhase = iota
	RepeatWaitingForVariable
	RepeatExpanded
)

func (p RepeatPhase) String() string {
	switch p {
	case RepeatWaitingForVariable:
		return "waiting-for-variable"
	case RepeatExpanded:
		return "expanded"
	default:
		return "idle"
	}
}

// PanelRepeaterItemState holds a template panel and its expansion.
type PanelRepeaterItemState struct {
	Rect
	Source          *VizPanel
	RepeatedPanels  []*VizPanel
	VariableName    string
	RepeatDirection string
	// MaxPerRow is the document value; zero means unset.
	MaxPerRow  int
	ItemHeight int
	Phase      RepeatPhase
}

// PanelRepeaterItem expands Source into one panel per value of a
// multi-value variable.
type PanelRepeaterItem struct {
	scene.Base[PanelRepeaterItemState]
}

// NewPanelRepeaterItem creates a panel repeater.
func NewPanelRepeaterItem(key string, state PanelRepeaterItemState) *PanelRepeaterItem {
	r := &PanelRepeaterItem{}
	r.Init(r, key, state)
	r.AddActivationHandler(r.onActivate)
	return r
}

func (r *PanelRepeaterItem) gridChild()  {}
func (r *PanelRepeaterItem) layoutItem() {}

// Children implements scene.Object. Before expansion the source stands in
// for the repeated panels.
func (r *PanelRepeaterItem) Children() []scene.Object {
	s := r.State()
	if len(s.RepeatedPanels) == 0 {
		return scene.AppendObjects(nil, s.Source)
	}
	out := make([]scene.Object, 0, len(s.RepeatedPanels))
	for _, p := range s.RepeatedPanels {
		out = scene.AppendObjects(out, p)
	}
	return out
}

// Rect implements GridChild.
func (r *PanelRepeaterItem) Rect() Rect { return r.State().Rect }

// SetRect implements GridChild.
func (r *PanelRepeaterItem) SetRect(rect Rect) {
	s := r.State()
	s.Rect = rect
	r.SetGeneratedState(s)
}

// Panel implements LayoutItem.
func (r *PanelRepeaterItem) Panel() *VizPanel { return r.State().Source }

// VariableDependencies implements variables.DependencyProvider.
func (r *PanelRepeaterItem) VariableDependencies() []string {
	return []string{r.State().VariableName}
}

// MaxPerRowOrDefault returns the horizontal bound.
func (r *PanelRepeaterItem) MaxPerRowOrDefault() int {
	if m := r.State().MaxPerRow; m > 0 {
		return m
	}
	return DefaultMaxPerRow
}

// IsHorizontal reports the repeat direction; "h" is the default.
func (r *PanelRepeaterItem) IsHorizontal() bool {
	return r.State().RepeatDirection != entity.RepeatDirectionVertical
}

func (r *PanelRepeaterItem) panelCount() int {
	if n := len(r.State().RepeatedPanels); n > 0 {
		return n
	}
	return 1
}

// TotalHeight is the container height for count panels of itemHeight.
func TotalHeight(count, itemHeight, maxPerRow int, horizontal bool) int {
	if count < 1 {
		count = 1
	}
	if !horizontal {
		return count * itemHeight
	}
	if maxPerRow < 1 {
		maxPerRow = DefaultMaxPerRow
	}
	return ceilDiv(count, maxPerRow) * itemHeight
}

// SetHeight resizes the container and redistributes the item height over
// the current row (horizontal) or panel (vertical) count.
func (r *PanelRepeaterItem) SetHeight(height int) {
	s := r.State()
	count := r.panelCount()
	if r.IsHorizontal() {
		s.ItemHeight = ceilDiv(height, ceilDiv(count, r.MaxPerRowOrDefault()))
	} else {
		s.ItemHeight = ceilDiv(height, count)
	}
	s.Height = height
	r.SetState(s)
}

// PanelRects lays out the repeated panels: row-major bounded by maxPerRow
// for horizontal repeats, stacked for vertical ones.
func (r *PanelRepeaterItem) PanelRects() []Rect {
	s := r.State()
	count := r.panelCount()
	out := make([]Rect, count)
	if !r.IsHorizontal() {
		for i := range out {
			out[i] = Rect{X: s.X, Y: s.Y + i*s.ItemHeight, Width: s.Width, Height: s.ItemHeight}
		}
		return out
	}
	rows := ceilDiv(count, r.MaxPerRowOrDefault())
	columns := ceilDiv(count, rows)
	w := entity.GridColumnCount / columns
	for i := range out {
		out[i] = Rect{
			X:      (i % columns) * w,
			Y:      s.Y + (i/columns)*s.ItemHeight,
			Width:  w,
			Height: s.ItemHeight,
		}
	}
	return out
}

func (r *PanelRepeaterItem) onActivate() func() {
	unsub := variables.SubscribeDependencies(r.Parent(), r.VariableDependencies(), func(string) {
		r.onDependencyChanged()
	})
	r.onDependencyChanged()
	return unsub
}

func (r *PanelRepeaterItem) onDependencyChanged() {
	if variables.AnyLoading(r.Parent(), r.State().VariableName) {
		if s := r.State(); s.Phase != RepeatWaitingForVariable {
			s.Phase = RepeatWaitingForVariable
			r.SetGeneratedState(s)
		}
		return
	}
	// PerformRepeat already logged and notified any error
	_ = r.PerformRepeat()
}

// PerformRepeat (re-)expands the source. On a configuration error it
// reports a diagnostic and leaves the state untouched.
func (r *PanelRepeaterItem) PerformRepeat() error {
	env := scene.EnvironmentOf(r)
	s := r.State()

	switch r.Parent().(type) {
	case *Grid, *Row:
	default:
		return r.fail(env, fmt.Errorf("%w: panel repeater %s", ErrInvalidRepeatParent, r.Key()))
	}
	if s.Source == nil {
		return r.fail(env, fmt.Errorf("panel repeater %s has no source panel", r.Key()))
	}
	v, err := variables.LookupMultiValue(s.VariableName, r.Parent())
	if err != nil {
		return r.fail(env, err)
	}

	resolved := variables.ResolveMultiValues(v)
	panels := make([]*VizPanel, 0, resolved.Len())
	for i := range resolved.Values {
		local := variables.NewSet(variables.NewLocalValueVariable(s.VariableName, resolved.Values[i], resolved.Texts[i]))
		if i == 0 {
			src := s.Source.State()
			src.Variables = local
			s.Source.SetGeneratedState(src)
			panels = append(panels, s.Source)
			continue
		}
		clone := s.Source.clone(CloneKey(s.Source.Key(), i))
		suffixDescendantKeys(clone, cloneSeparator+fmt.Sprint(i))
		cs := clone.State()
		cs.Variables = local
		clone.SetGeneratedState(cs)
		panels = append(panels, clone)
	}
	if len(panels) == 0 {
		src := s.Source.State()
		src.Variables = nil
		s.Source.SetGeneratedState(src)
	}

	prevBottom := s.Bottom()
	s = r.State()
	s.RepeatedPanels = panels
	s.Phase = RepeatExpanded
	s.Height = TotalHeight(len(panels), s.ItemHeight, s.MaxPerRow, r.IsHorizontal())
	r.SetGeneratedState(s)

	if delta := s.Bottom() - prevBottom; delta != 0 {
		r.pushSiblings(prevBottom, delta)
	}

	env.Logger().Debug().
		Str("repeater", r.Key()).
		Str("variable", s.VariableName).
		Int("count", len(panels)).
		Msg("panel repeat processed")
	r.Publish(&scene.RepeatsProcessedEvent{Source: r}, true)
	return nil
}

// pushSiblings moves the entries below the repeater when its height
// changed. Inside an expanded row the following grid entries move too.
func (r *PanelRepeaterItem) pushSiblings(fromY, delta int) {
	switch parent := r.Parent().(type) {
	case *Grid:
		shiftAfter(parent.State().Children, fromY, delta, r)
	case *Row:
		items := make([]GridChild, 0, len(parent.State().Children))
		for _, it := range parent.State().Children {
			items = append(items, it)
		}
		shiftAfter(items, fromY, delta, r)
		if grid, ok := parent.Parent().(*Grid); ok && !parent.State().IsCollapsed {
			idx := grid.IndexOf(parent)
			if idx >= 0 {
				shiftAfter(grid.State().Children[idx+1:], fromY, delta, nil)
			}
		}
	}
}

func (r *PanelRepeaterItem) fail(env *scene.Environment, err error) error {
	env.Logger().Error().Err(err).Str("repeater", r.Key()).Msg("panel repeat failed")
	env.Notify(port.NotificationError, "Panel repeat failed", err.Error())
	return err
}

func (r *PanelRepeaterItem) clone(key string) *PanelRepeaterItem {
	s := r.State()
	if s.Source != nil {
		s.Source = s.Source.clone(s.Source.Key())
	}
	s.RepeatedPanels = nil
	s.Phase = RepeatIdle
	return NewPanelRepeaterItem(key, s)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
