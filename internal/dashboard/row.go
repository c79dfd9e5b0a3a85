package dashboard

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// RowBehavior is attached to a row: only *RowRepeater today.
type RowBehavior interface {
	scene.Object
	rowBehavior()
}

// RowState is a titled band of the grid.
type RowState struct {
	Title       string
	Y           int
	IsCollapsed bool
	Children    []LayoutItem
	Behaviors   []RowBehavior
	// Variables binds the repeat value of a repeated row.
	Variables *variables.Set
}

// Row groups the layout items below it. Collapsed rows hide their
// children.
type Row struct {
	scene.Base[RowState]
}

// NewRow creates a row. Keys are PanelKey(id) for document rows.
func NewRow(key string, state RowState) *Row {
	r := &Row{}
	r.Init(r, key, state)
	return r
}

func (r *Row) gridChild() {}

// Children implements scene.Object.
func (r *Row) Children() []scene.Object {
	s := r.State()
	out := scene.AppendObjects(nil, s.Variables)
	for _, b := range s.Behaviors {
		out = scene.AppendObjects(out, b)
	}
	for _, c := range s.Children {
		out = scene.AppendObjects(out, c)
	}
	return out
}

// Rect implements GridChild. Rows span the grid and are one unit high.
func (r *Row) Rect() Rect {
	return Rect{Y: r.State().Y, Width: entity.GridColumnCount, Height: 1}
}

// SetRect implements GridChild; only Y is meaningful.
func (r *Row) SetRect(rect Rect) {
	s := r.State()
	s.Y = rect.Y
	r.SetGeneratedState(s)
}

// VariableSet implements variables.Scope.
func (r *Row) VariableSet() *variables.Set { return r.State().Variables }

// Repeater returns the row repeat behavior, if any.
func (r *Row) Repeater() *RowRepeater {
	for _, b := range r.State().Behaviors {
		if rr, ok := b.(*RowRepeater); ok {
			return rr
		}
	}
	return nil
}

// SetCollapsed folds or unfolds the row. User-originated.
func (r *Row) SetCollapsed(collapsed bool) {
	r.UpdateState(func(s *RowState) { s.IsCollapsed = collapsed })
}
