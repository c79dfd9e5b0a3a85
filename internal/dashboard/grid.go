package dashboard

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// Rect is a position in grid units.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bottom is the first grid row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// GridPos converts to the document shape.
func (r Rect) GridPos() entity.GridPos {
	return entity.GridPos{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// RectFromGridPos converts from the document shape.
func RectFromGridPos(g entity.GridPos) Rect {
	return Rect{X: g.X, Y: g.Y, Width: g.W, Height: g.H}
}

// GridChild is a direct child of the grid: *GridItem, *PanelRepeaterItem,
// *LibraryPanelItem or *Row.
type GridChild interface {
	scene.Object
	Rect() Rect
	// SetRect moves the child. Layout moves are engine changes and never
	// mark the dashboard dirty.
	SetRect(r Rect)

	gridChild()
}

// LayoutItem is a positioned panel holder that may live inside a row:
// *GridItem, *PanelRepeaterItem or *LibraryPanelItem.
type LayoutItem interface {
	GridChild
	// Panel returns the hosted panel, nil while a library panel is unloaded.
	Panel() *VizPanel

	layoutItem()
}

// GridState lists the grid children in document order.
type GridState struct {
	Children []GridChild
}

// Grid is the 24-column layout container at the root of a dashboard body.
type Grid struct {
	scene.Base[GridState]
}

// NewGrid creates a grid.
func NewGrid(children ...GridChild) *Grid {
	g := &Grid{}
	g.Init(g, "", GridState{Children: children})
	return g
}

// Children implements scene.Object.
func (g *Grid) Children() []scene.Object {
	out := make([]scene.Object, 0, len(g.State().Children))
	for _, c := range g.State().Children {
		out = scene.AppendObjects(out, c)
	}
	return out
}

// IndexOf returns the position of child among the grid children, or -1.
func (g *Grid) IndexOf(child GridChild) int {
	for i, c := range g.State().Children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddChild appends a child. User-originated.
func (g *Grid) AddChild(child GridChild) {
	children := append(append([]GridChild(nil), g.State().Children...), child)
	g.SetState(GridState{Children: children})
}

// RemoveChild removes a child. User-originated.
func (g *Grid) RemoveChild(child GridChild) {
	children := make([]GridChild, 0, len(g.State().Children))
	for _, c := range g.State().Children {
		if c != child {
			children = append(children, c)
		}
	}
	g.SetState(GridState{Children: children})
}

// shiftAfter moves every layout entry starting at or below fromY by delta.
// Rows carry their children along. skip is left in place.
func shiftAfter(children []GridChild, fromY, delta int, skip GridChild) {
	if delta == 0 {
		return
	}
	for _, c := range children {
		if c == skip {
			continue
		}
		r := c.Rect()
		if r.Y < fromY {
			continue
		}
		moveBy(c, delta)
	}
}

// moveBy shifts c vertically; a row moves its children with it.
func moveBy(c GridChild, delta int) {
	r := c.Rect()
	r.Y += delta
	c.SetRect(r)
	if row, ok := c.(*Row); ok {
		for _, item := range row.State().Children {
			ir := item.Rect()
			ir.Y += delta
			item.SetRect(ir)
		}
	}
}
