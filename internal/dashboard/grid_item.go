package dashboard

import "github.com/grafana/grafana-sub060/internal/scene"

// GridItemState positions a single panel.
type GridItemState struct {
	Rect
	Body *VizPanel
}

// GridItem is a plain positioned panel.
type GridItem struct {
	scene.Base[GridItemState]
}

// NewGridItem creates a grid item. An empty key gets a generated one.
func NewGridItem(key string, state GridItemState) *GridItem {
	g := &GridItem{}
	g.Init(g, key, state)
	return g
}

func (g *GridItem) gridChild()  {}
func (g *GridItem) layoutItem() {}

// Children implements scene.Object.
func (g *GridItem) Children() []scene.Object {
	return scene.AppendObjects(nil, g.State().Body)
}

// Rect implements GridChild.
func (g *GridItem) Rect() Rect { return g.State().Rect }

// SetRect implements GridChild.
func (g *GridItem) SetRect(r Rect) {
	s := g.State()
	s.Rect = r
	g.SetGeneratedState(s)
}

// Panel implements LayoutItem.
func (g *GridItem) Panel() *VizPanel { return g.State().Body }

// clone deep-copies the item under key, keeping descendant keys.
func (g *GridItem) clone(key string) *GridItem {
	s := g.State()
	if s.Body != nil {
		s.Body = s.Body.clone(s.Body.Key())
	}
	return NewGridItem(key, s)
}
