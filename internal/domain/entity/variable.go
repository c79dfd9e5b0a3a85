package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VariableType is the closed set of variable kinds a document may declare.
type VariableType string

const (
	VariableTypeCustom     VariableType = "custom"
	VariableTypeQuery      VariableType = "query"
	VariableTypeDatasource VariableType = "datasource"
	VariableTypeInterval   VariableType = "interval"
	VariableTypeConstant   VariableType = "constant"
	VariableTypeTextBox    VariableType = "textbox"
	VariableTypeAdHoc      VariableType = "adhoc"
)

// IsKnown reports whether t is one of the supported variable kinds.
func (t VariableType) IsKnown() bool {
	switch t {
	case VariableTypeCustom, VariableTypeQuery, VariableTypeDatasource,
		VariableTypeInterval, VariableTypeConstant, VariableTypeTextBox, VariableTypeAdHoc:
		return true
	}
	return false
}

// VariableHide controls whether a variable is shown in the controls.
type VariableHide int

const (
	HideNothing VariableHide = iota
	HideLabel
	HideVariable
)

// VariableRefresh controls when query variables reload their options.
type VariableRefresh int

const (
	RefreshNever VariableRefresh = iota
	RefreshOnDashboardLoad
	RefreshOnTimeRangeChanged
)

// All-value sentinel shared by multi-value variables.
const (
	AllVariableValue = "$__all"
	AllVariableText  = "All"
)

// Variable is a templating record.
type Variable struct {
	Type        VariableType     `json:"type"`
	Name        string           `json:"name"`
	Label       string           `json:"label,omitempty"`
	Description string           `json:"description,omitempty"`
	Hide        VariableHide     `json:"hide,omitempty"`
	SkipURLSync bool             `json:"skipUrlSync,omitempty"`
	Current     *VariableOption  `json:"current,omitempty"`
	Options     []VariableOption `json:"options,omitempty"`
	Multi       bool             `json:"multi,omitempty"`
	IncludeAll  bool             `json:"includeAll,omitempty"`
	AllValue    string           `json:"allValue,omitempty"`
	Query       any              `json:"query,omitempty"`
	Datasource  *DataSourceRef   `json:"datasource,omitempty"`
	Definition  string           `json:"definition,omitempty"`
	Regex       string           `json:"regex,omitempty"`
	Sort        int              `json:"sort,omitempty"`
	Refresh     VariableRefresh  `json:"refresh,omitempty"`
	Auto        bool             `json:"auto,omitempty"`
	AutoCount   int              `json:"auto_count,omitempty"`
	AutoMin     string           `json:"auto_min,omitempty"`
	Filters     []AdHocFilter    `json:"filters,omitempty"`
	BaseFilters []AdHocFilter    `json:"baseFilters,omitempty"`
}

// QueryString returns the query as text. Object queries are JSON encoded.
func (v *Variable) QueryString() string {
	switch q := v.Query.(type) {
	case nil:
		return ""
	case string:
		return q
	default:
		data, err := json.Marshal(q)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// VariableOption is one selectable option (also the shape of "current").
type VariableOption struct {
	Text     VariableValue `json:"text"`
	Value    VariableValue `json:"value"`
	Selected bool          `json:"selected,omitempty"`
}

// AdHocFilter is a key/operator/value filter of an ad hoc filter set.
type AdHocFilter struct {
	Key       string `json:"key"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
	Condition string `json:"condition,omitempty"`
}

// VariableValue is a variable selection that may be written as a single
// string or as a list. The written shape is remembered so that encoding
// reproduces it.
type VariableValue struct {
	values []string
	list   bool
}

// StringValue returns a single-valued selection.
func StringValue(s string) VariableValue {
	return VariableValue{values: []string{s}}
}

// ListValue returns a list-shaped selection.
func ListValue(values ...string) VariableValue {
	out := make([]string, len(values))
	copy(out, values)
	return VariableValue{values: out, list: true}
}

// Values returns the selection as a list. The result is never nil.
func (v VariableValue) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// IsList reports whether the selection was written as a list.
func (v VariableValue) IsList() bool {
	return v.list
}

// IsEmpty reports whether there is no selected value at all.
func (v VariableValue) IsEmpty() bool {
	return len(v.values) == 0
}

// String returns the first value, or the values joined by "," for lists.
func (v VariableValue) String() string {
	if len(v.values) == 0 {
		return ""
	}
	if !v.list {
		return v.values[0]
	}
	return strings.Join(v.values, ",")
}

// IsAll reports whether the selection is the all-value sentinel.
func (v VariableValue) IsAll() bool {
	for _, s := range v.values {
		if s == AllVariableValue {
			return true
		}
	}
	return false
}

// MarshalJSON writes the remembered shape.
func (v VariableValue) MarshalJSON() ([]byte, error) {
	if v.list {
		if v.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.values)
	}
	if len(v.values) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(v.values[0])
}

// UnmarshalJSON accepts strings, numbers, booleans, null and lists of those.
func (v *VariableValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("variable value list: %w", err)
		}
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok, err := scalarString(item)
			if err != nil {
				return err
			}
			if ok {
				values = append(values, s)
			}
		}
		*v = VariableValue{values: values, list: true}
		return nil
	}
	s, ok, err := scalarString(data)
	if err != nil {
		return err
	}
	if !ok {
		*v = VariableValue{}
		return nil
	}
	*v = VariableValue{values: []string{s}}
	return nil
}

func scalarString(data json.RawMessage) (string, bool, error) {
	var anyValue any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&anyValue); err != nil {
		return "", false, fmt.Errorf("variable value: %w", err)
	}
	switch x := anyValue.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case json.Number:
		return x.String(), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	default:
		// objects have no meaningful text form; keep their encoding
		return string(data), true, nil
	}
}
