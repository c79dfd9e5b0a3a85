package transform

import (
	"fmt"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// buildVariables classifies the templating records. Ad hoc filter records
// go to the filter set list, everything else to the variable list.
func buildVariables(list []*entity.Variable) ([]variables.Variable, []*variables.AdHocFilterSet, error) {
	vars := make([]variables.Variable, 0, len(list))
	var filterSets []*variables.AdHocFilterSet
	for i, v := range list {
		if v == nil {
			continue
		}
		if v.Type == entity.VariableTypeAdHoc {
			filterSets = append(filterSets, variables.NewAdHocFilterSet(variables.AdHocFilterSetState{
				Meta:        metaOf(v),
				Datasource:  cloneDatasource(v.Datasource),
				Filters:     append([]entity.AdHocFilter(nil), v.Filters...),
				BaseFilters: append([]entity.AdHocFilter(nil), v.BaseFilters...),
			}))
			continue
		}
		built, err := buildVariable(v)
		if err != nil {
			return nil, nil, structural(fmt.Sprintf("templating.list[%d]", i), err)
		}
		vars = append(vars, built)
	}
	return vars, filterSets, nil
}

func buildVariable(v *entity.Variable) (variables.Variable, error) {
	var value, text entity.VariableValue
	if v.Current != nil {
		value, text = v.Current.Value, v.Current.Text
	}
	options := append([]entity.VariableOption(nil), v.Options...)

	switch v.Type {
	case entity.VariableTypeCustom, entity.VariableTypeQuery, entity.VariableTypeDatasource:
		state := variables.MultiValueState{
			Meta:       metaOf(v),
			Value:      value,
			Text:       text,
			Options:    options,
			IsMulti:    v.Multi,
			IncludeAll: v.IncludeAll,
			AllValue:   v.AllValue,
			Query:      v.Query,
			Datasource: cloneDatasource(v.Datasource),
			Definition: v.Definition,
			Regex:      v.Regex,
			Sort:       v.Sort,
			Refresh:    v.Refresh,
		}
		switch v.Type {
		case entity.VariableTypeCustom:
			return variables.NewCustomVariable(state), nil
		case entity.VariableTypeQuery:
			return variables.NewQueryVariable(state), nil
		default:
			return variables.NewDataSourceVariable(state), nil
		}
	case entity.VariableTypeInterval:
		return variables.NewIntervalVariable(variables.IntervalState{
			Meta:      metaOf(v),
			Value:     value,
			Text:      text,
			Query:     v.QueryString(),
			Options:   options,
			Auto:      v.Auto,
			AutoCount: v.AutoCount,
			AutoMin:   v.AutoMin,
			Refresh:   v.Refresh,
		}), nil
	case entity.VariableTypeConstant:
		return variables.NewConstantVariable(variables.ConstantState{
			Meta:    metaOf(v),
			Query:   v.QueryString(),
			Value:   value,
			Text:    text,
			Options: options,
		}), nil
	case entity.VariableTypeTextBox:
		return variables.NewTextBoxVariable(variables.ConstantState{
			Meta:    metaOf(v),
			Query:   v.QueryString(),
			Value:   value,
			Text:    text,
			Options: options,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q (variable %s)", ErrUnknownVariableType, v.Type, v.Name)
	}
}

func metaOf(v *entity.Variable) variables.Meta {
	return variables.Meta{
		Name:        v.Name,
		Label:       v.Label,
		Description: v.Description,
		Hide:        v.Hide,
		SkipURLSync: v.SkipURLSync,
	}
}

// variableRecord is the inverse of buildVariable.
func variableRecord(v variables.Variable) (*entity.Variable, error) {
	switch x := v.(type) {
	case *variables.CustomVariable:
		return multiValueRecord(entity.VariableTypeCustom, x.State()), nil
	case *variables.QueryVariable:
		return multiValueRecord(entity.VariableTypeQuery, x.State()), nil
	case *variables.DataSourceVariable:
		return multiValueRecord(entity.VariableTypeDatasource, x.State()), nil
	case *variables.IntervalVariable:
		s := x.State()
		rec := metaRecord(entity.VariableTypeInterval, s.Meta)
		rec.Current = currentOf(s.Value, s.Text)
		rec.Options = append([]entity.VariableOption(nil), s.Options...)
		rec.Query = queryOrNil(s.Query)
		rec.Auto = s.Auto
		rec.AutoCount = s.AutoCount
		rec.AutoMin = s.AutoMin
		rec.Refresh = s.Refresh
		return rec, nil
	case *variables.ConstantVariable:
		return constantRecord(entity.VariableTypeConstant, x.State()), nil
	case *variables.TextBoxVariable:
		return constantRecord(entity.VariableTypeTextBox, x.State()), nil
	default:
		return nil, fmt.Errorf("%w: variable %s of kind %s", ErrUnsupportedNode, v.Name(), v.Kind())
	}
}

func filterSetRecord(f *variables.AdHocFilterSet) *entity.Variable {
	s := f.State()
	rec := metaRecord(entity.VariableTypeAdHoc, s.Meta)
	rec.Datasource = cloneDatasource(s.Datasource)
	rec.Filters = append([]entity.AdHocFilter(nil), s.Filters...)
	rec.BaseFilters = append([]entity.AdHocFilter(nil), s.BaseFilters...)
	return rec
}

func multiValueRecord(kind entity.VariableType, s variables.MultiValueState) *entity.Variable {
	rec := metaRecord(kind, s.Meta)
	rec.Current = currentOf(s.Value, s.Text)
	rec.Options = append([]entity.VariableOption(nil), s.Options...)
	rec.Multi = s.IsMulti
	rec.IncludeAll = s.IncludeAll
	rec.AllValue = s.AllValue
	rec.Query = s.Query
	rec.Datasource = cloneDatasource(s.Datasource)
	rec.Definition = s.Definition
	rec.Regex = s.Regex
	rec.Sort = s.Sort
	rec.Refresh = s.Refresh
	return rec
}

func constantRecord(kind entity.VariableType, s variables.ConstantState) *entity.Variable {
	rec := metaRecord(kind, s.Meta)
	rec.Current = currentOf(s.Value, s.Text)
	rec.Options = append([]entity.VariableOption(nil), s.Options...)
	rec.Query = queryOrNil(s.Query)
	return rec
}

func metaRecord(kind entity.VariableType, m variables.Meta) *entity.Variable {
	return &entity.Variable{
		Type:        kind,
		Name:        m.Name,
		Label:       m.Label,
		Description: m.Description,
		Hide:        m.Hide,
		SkipURLSync: m.SkipURLSync,
	}
}

func currentOf(value, text entity.VariableValue) *entity.VariableOption {
	if value.IsEmpty() && text.IsEmpty() && !value.IsList() && !text.IsList() {
		return nil
	}
	return &entity.VariableOption{Value: value, Text: text}
}

func queryOrNil(q string) any {
	if q == "" {
		return nil
	}
	return q
}

func cloneDatasource(ds *entity.DataSourceRef) *entity.DataSourceRef {
	if ds == nil {
		return nil
	}
	out := *ds
	return &out
}
