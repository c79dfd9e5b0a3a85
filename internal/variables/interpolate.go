package variables

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// Interpolation formats accepted in ${var:format}.
const (
	FormatGlob  = "glob"
	FormatCSV   = "csv"
	FormatPipe  = "pipe"
	FormatRaw   = "raw"
	FormatJSON  = "json"
	FormatRegex = "regex"
	FormatText  = "text"
)

// Interpolate replaces variable references in text with values visible
// from obj. References to unknown variables are left untouched.
func Interpolate(from scene.Object, text string) string {
	if !strings.ContainsAny(text, "$[") {
		return text
	}
	return variablePattern.ReplaceAllStringFunc(text, func(match string) string {
		m := variablePattern.FindStringSubmatch(match)
		name := firstNonEmpty(m[1], m[2], m[4])
		format := firstNonEmpty(m[3], m[6])
		v, ok := Lookup(name, from)
		if !ok {
			return match
		}
		return formatValue(v, format)
	})
}

func formatValue(v Variable, format string) string {
	if format == FormatText {
		return strings.Join(v.Text().Values(), " + ")
	}
	values := v.Value().Values()
	if mv, ok := v.(MultiValue); ok && v.Value().IsAll() {
		if all := allValueOf(mv); all != "" {
			return all
		}
		values = ResolveMultiValues(mv).Values
	}
	if len(values) == 1 && !v.Value().IsList() {
		if format == FormatRegex {
			return regexp.QuoteMeta(values[0])
		}
		if format == FormatJSON {
			data, _ := json.Marshal(values[0])
			return string(data)
		}
		return values[0]
	}

	switch format {
	case FormatCSV, FormatRaw:
		return strings.Join(values, ",")
	case FormatPipe:
		return strings.Join(values, "|")
	case FormatJSON:
		data, _ := json.Marshal(values)
		return string(data)
	case FormatRegex:
		quoted := make([]string, len(values))
		for i, val := range values {
			quoted[i] = regexp.QuoteMeta(val)
		}
		return "(" + strings.Join(quoted, "|") + ")"
	default:
		if len(values) == 1 {
			return values[0]
		}
		return "{" + strings.Join(values, ",") + "}"
	}
}

func allValueOf(v MultiValue) string {
	type allValuer interface{ State() MultiValueState }
	if s, ok := v.(allValuer); ok {
		return s.State().AllValue
	}
	return ""
}

// ScopedVars collects every variable visible from obj, nearest scope
// winning, as scoped values.
func ScopedVars(from scene.Object) map[string]entity.ScopedVar {
	out := make(map[string]entity.ScopedVar)
	for _, set := range Scopes(from) {
		for _, v := range set.State().Variables {
			if _, shadowed := out[v.Name()]; shadowed {
				continue
			}
			out[v.Name()] = entity.ScopedVar{Text: v.Text(), Value: v.Value()}
		}
	}
	return out
}

// LocalScopedVars collects only the repeat-local bindings visible from
// obj.
func LocalScopedVars(from scene.Object) map[string]entity.ScopedVar {
	out := make(map[string]entity.ScopedVar)
	for _, set := range Scopes(from) {
		for _, v := range set.State().Variables {
			local, ok := v.(*LocalValueVariable)
			if !ok {
				continue
			}
			if _, shadowed := out[local.Name()]; shadowed {
				continue
			}
			out[local.Name()] = entity.ScopedVar{Text: local.Text(), Value: local.Value()}
		}
	}
	return out
}
