package variables

import (
	"context"
	"regexp"
	"strings"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// MultiValueState is the state of custom, query and datasource variables.
type MultiValueState struct {
	Meta
	Value      entity.VariableValue
	Text       entity.VariableValue
	Options    []entity.VariableOption
	IsMulti    bool
	IncludeAll bool
	AllValue   string
	// Query is kept in its document shape (string or object).
	Query      any
	Datasource *entity.DataSourceRef
	Definition string
	Regex      string
	Sort       int
	Refresh    entity.VariableRefresh
	Loading    bool
	Error      string
}

type multiValueBase struct {
	scene.Base[MultiValueState]
}

func (v *multiValueBase) variable() {}

// Name implements Variable.
func (v *multiValueBase) Name() string { return v.State().Name }

// Value implements Variable.
func (v *multiValueBase) Value() entity.VariableValue { return v.State().Value }

// Text implements Variable.
func (v *multiValueBase) Text() entity.VariableValue { return v.State().Text }

// IsLoading implements Variable.
func (v *multiValueBase) IsLoading() bool { return v.State().Loading }

// Options implements MultiValue.
func (v *multiValueBase) Options() []entity.VariableOption { return v.State().Options }

// IsMulti implements MultiValue.
func (v *multiValueBase) IsMulti() bool { return v.State().IsMulti }

// IncludeAll implements MultiValue.
func (v *multiValueBase) IncludeAll() bool { return v.State().IncludeAll }

// SetValue implements MultiValue.
func (v *multiValueBase) SetValue(value, text entity.VariableValue) {
	v.UpdateState(func(s *MultiValueState) {
		s.Value = value
		s.Text = text
	})
}

// SelectValues selects values by option value, taking texts from the
// option list.
func (v *multiValueBase) SelectValues(values ...string) {
	s := v.State()
	texts := make([]string, 0, len(values))
	for _, val := range values {
		texts = append(texts, optionText(s.Options, val))
	}
	if s.IsMulti {
		v.SetValue(entity.ListValue(values...), entity.ListValue(texts...))
		return
	}
	if len(values) == 0 {
		v.SetValue(entity.VariableValue{}, entity.VariableValue{})
		return
	}
	v.SetValue(entity.StringValue(values[0]), entity.StringValue(texts[0]))
}

// applyOptions installs a freshly resolved option list and re-validates
// the selection against it. Engine-originated, so published as generated.
func (v *multiValueBase) applyOptions(options []entity.VariableOption, loadErr error) {
	s := v.State()
	s.Loading = false
	if loadErr != nil {
		s.Error = loadErr.Error()
		v.SetGeneratedState(s)
		return
	}
	s.Error = ""
	s.Options = options
	s.Value, s.Text = validateSelection(s)
	v.SetGeneratedState(s)
}

// validateSelection keeps the selected values that still exist, falling
// back to the first option.
func validateSelection(s MultiValueState) (entity.VariableValue, entity.VariableValue) {
	if s.Value.IsAll() && s.IncludeAll {
		return s.Value, s.Text
	}
	var keep, texts []string
	for _, val := range s.Value.Values() {
		if hasOption(s.Options, val) {
			keep = append(keep, val)
			texts = append(texts, optionText(s.Options, val))
		}
	}
	if len(keep) == 0 {
		if len(s.Options) == 0 {
			return s.Value, s.Text
		}
		first := s.Options[0]
		keep = []string{first.Value.String()}
		texts = []string{first.Text.String()}
	}
	if s.IsMulti || s.Value.IsList() {
		return entity.ListValue(keep...), entity.ListValue(texts...)
	}
	return entity.StringValue(keep[0]), entity.StringValue(texts[0])
}

func hasOption(options []entity.VariableOption, value string) bool {
	for _, o := range options {
		if o.Value.String() == value {
			return true
		}
	}
	return false
}

func optionText(options []entity.VariableOption, value string) string {
	for _, o := range options {
		if o.Value.String() == value {
			return o.Text.String()
		}
	}
	return value
}

// CustomVariable takes its options from a comma separated query.
type CustomVariable struct {
	multiValueBase
}

// NewCustomVariable creates a custom variable. Options are parsed from
// the query on activation when the state carries none.
func NewCustomVariable(state MultiValueState) *CustomVariable {
	v := &CustomVariable{}
	v.Init(v, "", state)
	v.AddActivationHandler(func() func() {
		if len(v.State().Options) == 0 {
			v.applyOptions(ParseCustomOptions(queryText(v.State().Query)), nil)
		}
		return nil
	})
	return v
}

// Kind implements Variable.
func (v *CustomVariable) Kind() entity.VariableType { return entity.VariableTypeCustom }

var customEntry = regexp.MustCompile(`(?:\\,|[^,])+`)

// ParseCustomOptions parses "a, b, text : value" into options. Escaped
// commas ("\,") stay inside an entry.
func ParseCustomOptions(query string) []entity.VariableOption {
	matches := customEntry.FindAllString(query, -1)
	options := make([]entity.VariableOption, 0, len(matches))
	for _, m := range matches {
		entry := strings.TrimSpace(strings.ReplaceAll(m, `\,`, ","))
		if entry == "" {
			continue
		}
		text, value := entry, entry
		if t, val, ok := strings.Cut(entry, " : "); ok {
			text, value = strings.TrimSpace(t), strings.TrimSpace(val)
		}
		options = append(options, entity.VariableOption{
			Text:  entity.StringValue(text),
			Value: entity.StringValue(value),
		})
	}
	return options
}

// QueryVariable resolves its options through the variable options loader.
type QueryVariable struct {
	multiValueBase
}

// NewQueryVariable creates a query-backed variable.
func NewQueryVariable(state MultiValueState) *QueryVariable {
	v := &QueryVariable{}
	v.Init(v, "", state)
	v.AddActivationHandler(func() func() {
		return loadOptions(&v.multiValueBase, entity.VariableTypeQuery)
	})
	return v
}

// Kind implements Variable.
func (v *QueryVariable) Kind() entity.VariableType { return entity.VariableTypeQuery }

// DataSourceVariable lists datasource instances of a plugin type.
type DataSourceVariable struct {
	multiValueBase
}

// NewDataSourceVariable creates a datasource variable; Query holds the
// plugin id.
func NewDataSourceVariable(state MultiValueState) *DataSourceVariable {
	v := &DataSourceVariable{}
	v.Init(v, "", state)
	v.AddActivationHandler(func() func() {
		return loadOptions(&v.multiValueBase, entity.VariableTypeDatasource)
	})
	return v
}

// Kind implements Variable.
func (v *DataSourceVariable) Kind() entity.VariableType { return entity.VariableTypeDatasource }

// TimeRangeSource is implemented by the node that owns the dashboard time
// range.
type TimeRangeSource interface {
	CurrentTimeRange() entity.TimeRange
}

func loadOptions(v *multiValueBase, kind entity.VariableType) func() {
	env := scene.EnvironmentOf(v)
	s := v.State()
	if env.VariableOptions == nil {
		return nil
	}
	if s.Refresh == entity.RefreshNever && len(s.Options) > 0 {
		return nil
	}

	req := port.OptionsRequest{
		Name:       s.Name,
		Type:       kind,
		Query:      queryText(s.Query),
		Datasource: s.Datasource,
		Regex:      s.Regex,
		Sort:       s.Sort,
	}
	if tr, ok := scene.Ancestor[TimeRangeSource](v); ok {
		req.TimeRange = tr.CurrentTimeRange()
	}

	ctx, cancel := context.WithCancel(env.Ctx())
	loader := env.VariableOptions
	s.Loading = true
	v.SetGeneratedState(s)

	env.Go(ctx, func(ctx context.Context) func() {
		options, err := loader.LoadOptions(ctx, req)
		if err != nil {
			env.Logger().Warn().Err(err).Str("variable", req.Name).Msg("variable options load failed")
		}
		return func() { v.applyOptions(options, err) }
	})

	return func() {
		cancel()
		if v.State().Loading {
			s := v.State()
			s.Loading = false
			v.SetGeneratedState(s)
		}
	}
}

func queryText(q any) string {
	switch x := q.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return (&entity.Variable{Query: q}).QueryString()
	}
}
