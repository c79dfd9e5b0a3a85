package variables

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// Resolved is a multi-value selection expanded into parallel lists.
type Resolved struct {
	Values []string
	Texts  []string
}

// Len returns the number of resolved values.
func (r Resolved) Len() int { return len(r.Values) }

// ResolveMultiValues expands the all sentinel into every option and
// normalizes every other selection into lists. Texts always has the same
// length as Values.
func ResolveMultiValues(v MultiValue) Resolved {
	if v == nil {
		return Resolved{Values: []string{}, Texts: []string{}}
	}
	value := v.Value()
	if value.IsAll() {
		var out Resolved
		out.Values = []string{}
		out.Texts = []string{}
		for _, o := range v.Options() {
			val := o.Value.String()
			if val == entity.AllVariableValue {
				continue
			}
			out.Values = append(out.Values, val)
			out.Texts = append(out.Texts, o.Text.String())
		}
		return out
	}

	values := value.Values()
	texts := v.Text().Values()
	out := Resolved{Values: values, Texts: make([]string, len(values))}
	for i, val := range values {
		switch {
		case i < len(texts):
			out.Texts[i] = texts[i]
		default:
			out.Texts[i] = optionText(v.Options(), val)
		}
	}
	return out
}

// DependencyProvider is implemented by nodes that reference variables.
type DependencyProvider interface {
	VariableDependencies() []string
}

// HasLoadingDependency reports whether any variable obj depends on is
// still loading. Unknown names are ignored.
func HasLoadingDependency(obj scene.Object) bool {
	deps, ok := obj.(DependencyProvider)
	if !ok {
		return false
	}
	return AnyLoading(obj, deps.VariableDependencies()...)
}

// AnyLoading reports whether any of names, as seen from obj, is loading.
func AnyLoading(from scene.Object, names ...string) bool {
	for _, name := range names {
		if v, ok := Lookup(name, from); ok && v.IsLoading() {
			return true
		}
	}
	return false
}
