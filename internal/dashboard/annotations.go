package dashboard

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// AnnotationLayerState wraps one annotation query definition.
type AnnotationLayerState struct {
	Definition *entity.Annotation
}

// AnnotationLayer is one annotation query of the dashboard.
type AnnotationLayer struct {
	scene.Base[AnnotationLayerState]
}

// NewAnnotationLayer creates a layer from a document annotation.
func NewAnnotationLayer(def *entity.Annotation) *AnnotationLayer {
	l := &AnnotationLayer{}
	l.Init(l, "", AnnotationLayerState{Definition: def})
	return l
}

// Name returns the layer name.
func (l *AnnotationLayer) Name() string {
	if d := l.State().Definition; d != nil {
		return d.Name
	}
	return ""
}

// IsEnabled reports whether the layer is toggled on.
func (l *AnnotationLayer) IsEnabled() bool {
	d := l.State().Definition
	return d != nil && d.Enable
}

// SetEnabled toggles the layer.
func (l *AnnotationLayer) SetEnabled(enabled bool) {
	def := l.State().Definition.Clone()
	if def == nil {
		return
	}
	def.Enable = enabled
	l.SetState(AnnotationLayerState{Definition: def})
}

// AnnotationLayersState lists the layers in document order.
type AnnotationLayersState struct {
	Layers []*AnnotationLayer
}

// AnnotationLayers groups the dashboard annotation layers.
type AnnotationLayers struct {
	scene.Base[AnnotationLayersState]
}

// NewAnnotationLayers creates the layer group.
func NewAnnotationLayers(layers ...*AnnotationLayer) *AnnotationLayers {
	a := &AnnotationLayers{}
	a.Init(a, "", AnnotationLayersState{Layers: layers})
	return a
}

// Children implements scene.Object.
func (a *AnnotationLayers) Children() []scene.Object {
	out := make([]scene.Object, 0, len(a.State().Layers))
	for _, l := range a.State().Layers {
		out = scene.AppendObjects(out, l)
	}
	return out
}
