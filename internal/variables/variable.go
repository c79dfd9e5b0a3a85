// Package variables implements dashboard template variables: the variable
// kinds, scoping through variable sets, multi-value resolution, dependency
// tracking and interpolation.
package variables

import (
	"errors"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// KindLocalValue is the kind of the per-clone variables created by repeats.
// It never appears in documents.
const KindLocalValue entity.VariableType = "local"

var (
	// ErrVariableNotFound is returned when no variable of a name is in scope.
	ErrVariableNotFound = errors.New("variable not found")
	// ErrNotMultiValue is returned when a variable cannot drive a repeat.
	ErrNotMultiValue = errors.New("variable is not multi-value capable")
)

// Variable is the closed set of variable kinds.
type Variable interface {
	scene.Object
	Name() string
	Kind() entity.VariableType
	Value() entity.VariableValue
	Text() entity.VariableValue
	// IsLoading reports whether the variable is still resolving its options.
	IsLoading() bool

	variable()
}

// MultiValue is implemented by the option-list kinds (custom, query,
// datasource). Only these can drive a repeat.
type MultiValue interface {
	Variable
	Options() []entity.VariableOption
	IsMulti() bool
	IncludeAll() bool
	// SetValue is a user selection.
	SetValue(value, text entity.VariableValue)
}

// Meta holds the presentation fields every document variable carries.
type Meta struct {
	Name        string
	Label       string
	Description string
	Hide        entity.VariableHide
	SkipURLSync bool
}
