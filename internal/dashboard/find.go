package dashboard

import (
	"fmt"

	"github.com/grafana/grafana-sub060/internal/scene"
)

// FindVizPanelByKey returns the panel carrying key under root.
func FindVizPanelByKey(root scene.Object, key string) (*VizPanel, error) {
	p, err := scene.FindByKeyAs[*VizPanel](root, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPanelNotFound, err)
	}
	return p, nil
}

// FindVizPanelByID returns the first panel in document order whose key
// encodes id. Repeat clones share the id of their template, which comes
// first.
func FindVizPanelByID(root scene.Object, id int) (*VizPanel, error) {
	if p, err := scene.FindByKeyAs[*VizPanel](root, PanelKey(id)); err == nil {
		return p, nil
	}
	found := scene.FindByPredicate(root, func(o scene.Object) bool {
		p, ok := o.(*VizPanel)
		if !ok {
			return false
		}
		pid, ok := PanelIDFromKey(p.Key())
		return ok && pid == id
	})
	if found == nil {
		return nil, fmt.Errorf("%w: id %d", ErrPanelNotFound, id)
	}
	return found.(*VizPanel), nil
}

// LayoutItemOf returns the layout item hosting panel.
func LayoutItemOf(panel *VizPanel) (LayoutItem, bool) {
	return scene.Ancestor[LayoutItem](panel)
}
