package variables

import (
	"fmt"

	"github.com/grafana/grafana-sub060/internal/scene"
)

// SetState lists the variables of one scope, in document order.
type SetState struct {
	Variables []Variable
}

// Set is a variable scope. Dashboards, rows and repeat clones own one.
type Set struct {
	scene.Base[SetState]
}

// NewSet creates a variable set.
func NewSet(vars ...Variable) *Set {
	s := &Set{}
	s.Init(s, "", SetState{Variables: vars})
	return s
}

// Children implements scene.Object.
func (s *Set) Children() []scene.Object {
	out := make([]scene.Object, 0, len(s.State().Variables))
	for _, v := range s.State().Variables {
		out = scene.AppendObjects(out, v)
	}
	return out
}

// ByName returns the variable of this set named name.
func (s *Set) ByName(name string) (Variable, bool) {
	for _, v := range s.State().Variables {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// VariableSet lets a set act as its own scope.
func (s *Set) VariableSet() *Set { return s }

// Scope is implemented by nodes that own a variable set.
type Scope interface {
	VariableSet() *Set
}

// Lookup finds the variable called name visible from obj, nearest scope
// first.
func Lookup(name string, from scene.Object) (Variable, bool) {
	for cur := from; cur != nil; cur = cur.Parent() {
		scope, ok := cur.(Scope)
		if !ok {
			continue
		}
		set := scope.VariableSet()
		if set == nil {
			continue
		}
		if v, ok := set.ByName(name); ok {
			return v, true
		}
	}
	return nil, false
}

// LookupMultiValue is Lookup restricted to repeat-capable variables.
func LookupMultiValue(name string, from scene.Object) (MultiValue, error) {
	v, ok := Lookup(name, from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, name)
	}
	mv, ok := v.(MultiValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotMultiValue, name, v.Kind())
	}
	return mv, nil
}

// Scopes returns the variable sets visible from obj, nearest first.
func Scopes(from scene.Object) []*Set {
	var out []*Set
	for cur := from; cur != nil; cur = cur.Parent() {
		scope, ok := cur.(Scope)
		if !ok {
			continue
		}
		if set := scope.VariableSet(); set != nil && (len(out) == 0 || out[len(out)-1] != set) {
			out = append(out, set)
		}
	}
	return out
}

// Clone deep-copies the set and its variables, keeping keys.
func (s *Set) Clone() *Set {
	vars := make([]Variable, 0, len(s.State().Variables))
	for _, v := range s.State().Variables {
		vars = append(vars, CloneVariable(v))
	}
	out := &Set{}
	out.Init(out, s.Key(), SetState{Variables: vars})
	return out
}

// CloneVariable copies a variable into a fresh, inactive object with the
// same key.
func CloneVariable(v Variable) Variable {
	switch x := v.(type) {
	case *CustomVariable:
		c := NewCustomVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *QueryVariable:
		c := NewQueryVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *DataSourceVariable:
		c := NewDataSourceVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *IntervalVariable:
		c := NewIntervalVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *ConstantVariable:
		c := NewConstantVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *TextBoxVariable:
		c := NewTextBoxVariable(x.State())
		scene.Rekey(c, x.Key())
		return c
	case *LocalValueVariable:
		s := x.State()
		c := NewLocalValueVariable(s.Name, s.Value, s.Text)
		scene.Rekey(c, x.Key())
		return c
	default:
		panic("variables: unknown variable kind")
	}
}
