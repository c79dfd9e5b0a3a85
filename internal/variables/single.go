package variables

import (
	"strings"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// IntervalState is the state of an interval variable.
type IntervalState struct {
	Meta
	Value     entity.VariableValue
	Text      entity.VariableValue
	Query     string
	Options   []entity.VariableOption
	Auto      bool
	AutoCount int
	AutoMin   string
	Refresh   entity.VariableRefresh
}

// IntervalVariable selects one of a fixed list of intervals.
type IntervalVariable struct {
	scene.Base[IntervalState]
}

// NewIntervalVariable creates an interval variable.
func NewIntervalVariable(state IntervalState) *IntervalVariable {
	v := &IntervalVariable{}
	v.Init(v, "", state)
	return v
}

func (v *IntervalVariable) variable() {}

// Name implements Variable.
func (v *IntervalVariable) Name() string { return v.State().Name }

// Kind implements Variable.
func (v *IntervalVariable) Kind() entity.VariableType { return entity.VariableTypeInterval }

// Value implements Variable.
func (v *IntervalVariable) Value() entity.VariableValue {
	if s := v.State(); !s.Value.IsEmpty() {
		return s.Value
	}
	if intervals := v.Intervals(); len(intervals) > 0 {
		return entity.StringValue(intervals[0])
	}
	return entity.VariableValue{}
}

// Text implements Variable.
func (v *IntervalVariable) Text() entity.VariableValue {
	if s := v.State(); !s.Text.IsEmpty() {
		return s.Text
	}
	return v.Value()
}

// IsLoading implements Variable.
func (v *IntervalVariable) IsLoading() bool { return false }

// Intervals splits the query into its interval list.
func (v *IntervalVariable) Intervals() []string {
	var out []string
	for _, part := range strings.Split(v.State().Query, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ConstantState is the state of constant and text box variables.
type ConstantState struct {
	Meta
	Query string
	Value entity.VariableValue
	Text  entity.VariableValue
	// Options is carried for documents that list the single option.
	Options []entity.VariableOption
}

// ConstantVariable is a hidden fixed value.
type ConstantVariable struct {
	scene.Base[ConstantState]
}

// NewConstantVariable creates a constant variable.
func NewConstantVariable(state ConstantState) *ConstantVariable {
	v := &ConstantVariable{}
	v.Init(v, "", state)
	return v
}

func (v *ConstantVariable) variable() {}

// Name implements Variable.
func (v *ConstantVariable) Name() string { return v.State().Name }

// Kind implements Variable.
func (v *ConstantVariable) Kind() entity.VariableType { return entity.VariableTypeConstant }

// Value implements Variable. The query is the value.
func (v *ConstantVariable) Value() entity.VariableValue { return entity.StringValue(v.State().Query) }

// Text implements Variable.
func (v *ConstantVariable) Text() entity.VariableValue { return v.Value() }

// IsLoading implements Variable.
func (v *ConstantVariable) IsLoading() bool { return false }

// TextBoxVariable is free text with the query as its default.
type TextBoxVariable struct {
	scene.Base[ConstantState]
}

// NewTextBoxVariable creates a text box variable.
func NewTextBoxVariable(state ConstantState) *TextBoxVariable {
	v := &TextBoxVariable{}
	v.Init(v, "", state)
	return v
}

func (v *TextBoxVariable) variable() {}

// Name implements Variable.
func (v *TextBoxVariable) Name() string { return v.State().Name }

// Kind implements Variable.
func (v *TextBoxVariable) Kind() entity.VariableType { return entity.VariableTypeTextBox }

// Value implements Variable.
func (v *TextBoxVariable) Value() entity.VariableValue {
	if s := v.State(); !s.Value.IsEmpty() {
		return s.Value
	}
	return entity.StringValue(v.State().Query)
}

// Text implements Variable.
func (v *TextBoxVariable) Text() entity.VariableValue {
	if s := v.State(); !s.Text.IsEmpty() {
		return s.Text
	}
	return v.Value()
}

// IsLoading implements Variable.
func (v *TextBoxVariable) IsLoading() bool { return false }

// SetText sets the typed value.
func (v *TextBoxVariable) SetText(text string) {
	v.UpdateState(func(s *ConstantState) {
		s.Value = entity.StringValue(text)
		s.Text = entity.StringValue(text)
	})
}

// LocalValueState binds a name to one value of a repeated variable.
type LocalValueState struct {
	Name  string
	Value string
	Text  string
}

// LocalValueVariable is attached to every repeat clone so expressions
// inside the clone resolve to that clone's value.
type LocalValueVariable struct {
	scene.Base[LocalValueState]
}

// NewLocalValueVariable creates a local value binding.
func NewLocalValueVariable(name, value, text string) *LocalValueVariable {
	v := &LocalValueVariable{}
	v.Init(v, "", LocalValueState{Name: name, Value: value, Text: text})
	return v
}

func (v *LocalValueVariable) variable() {}

// Name implements Variable.
func (v *LocalValueVariable) Name() string { return v.State().Name }

// Kind implements Variable.
func (v *LocalValueVariable) Kind() entity.VariableType { return KindLocalValue }

// Value implements Variable.
func (v *LocalValueVariable) Value() entity.VariableValue { return entity.StringValue(v.State().Value) }

// Text implements Variable.
func (v *LocalValueVariable) Text() entity.VariableValue { return entity.StringValue(v.State().Text) }

// IsLoading implements Variable.
func (v *LocalValueVariable) IsLoading() bool { return false }
