package query

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// OptionsPrefix marks fixture keys holding variable options: "$<name>".
const OptionsPrefix = "$"

// Variable option sort orders as stored in documents.
const (
	sortDisabled = iota
	sortAlphaAsc
	sortAlphaDesc
	sortNumericAsc
	sortNumericDesc
	sortAlphaCaseInsensitiveAsc
	sortAlphaCaseInsensitiveDesc
)

// StaticOptionsLoader implements port.VariableOptionsLoader from Fixtures.
// The values of the first field of every frame under "$<name>" become the
// options, filtered by the variable regex and ordered by its sort.
type StaticOptionsLoader struct {
	fixtures Fixtures
}

var _ port.VariableOptionsLoader = (*StaticOptionsLoader)(nil)

// NewStaticOptionsLoader creates a loader over fixtures.
func NewStaticOptionsLoader(fixtures Fixtures) *StaticOptionsLoader {
	if fixtures == nil {
		fixtures = Fixtures{}
	}
	return &StaticOptionsLoader{fixtures: fixtures}
}

// LoadOptions implements port.VariableOptionsLoader.
func (l *StaticOptionsLoader) LoadOptions(ctx context.Context, req port.OptionsRequest) ([]entity.VariableOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frames, ok := l.fixtures[OptionsPrefix+req.Name]
	if !ok {
		return nil, fmt.Errorf("no option fixture for variable %q", req.Name)
	}

	re, err := compileVariableRegex(req.Regex)
	if err != nil {
		return nil, fmt.Errorf("invalid regex for variable %q: %w", req.Name, err)
	}

	seen := make(map[string]struct{})
	var values []string
	for _, f := range frames {
		if len(f.Fields) == 0 {
			continue
		}
		for _, raw := range f.Fields[0].Values {
			v, keep := applyRegex(re, fmt.Sprint(raw))
			if !keep {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sortValues(values, req.Sort)

	options := make([]entity.VariableOption, 0, len(values))
	for _, v := range values {
		options = append(options, entity.VariableOption{
			Text:  entity.StringValue(v),
			Value: entity.StringValue(v),
		})
	}
	return options, nil
}

// compileVariableRegex accepts both "pattern" and "/pattern/flags".
func compileVariableRegex(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	if strings.HasPrefix(expr, "/") {
		if end := strings.LastIndex(expr, "/"); end > 0 {
			flags := expr[end+1:]
			expr = expr[1:end]
			if strings.Contains(flags, "i") {
				expr = "(?i)" + expr
			}
		}
	}
	return regexp.Compile(expr)
}

// applyRegex keeps values matching re. A capture group replaces the value
// with its first submatch.
func applyRegex(re *regexp.Regexp, value string) (string, bool) {
	if re == nil {
		return value, true
	}
	m := re.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return value, true
}

func sortValues(values []string, order int) {
	switch order {
	case sortAlphaAsc:
		sort.Strings(values)
	case sortAlphaDesc:
		sort.Sort(sort.Reverse(sort.StringSlice(values)))
	case sortNumericAsc, sortNumericDesc:
		sort.SliceStable(values, func(i, j int) bool {
			a, b := leadingNumber(values[i]), leadingNumber(values[j])
			if order == sortNumericDesc {
				return a > b
			}
			return a < b
		})
	case sortAlphaCaseInsensitiveAsc, sortAlphaCaseInsensitiveDesc:
		sort.SliceStable(values, func(i, j int) bool {
			a, b := strings.ToLower(values[i]), strings.ToLower(values[j])
			if order == sortAlphaCaseInsensitiveDesc {
				return a > b
			}
			return a < b
		})
	case sortDisabled:
	}
}

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// leadingNumber returns the first number found in s, or -1 when there is none.
func leadingNumber(s string) float64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return -1
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return -1
	}
	return n
}
