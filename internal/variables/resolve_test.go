package variables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/variables"
)

func opts(values ...string) []entity.VariableOption {
	out := make([]entity.VariableOption, 0, len(values))
	for _, v := range values {
		out = append(out, entity.VariableOption{Text: entity.StringValue("T" + v), Value: entity.StringValue(v)})
	}
	return out
}

func TestResolveMultiValues(t *testing.T) {
	tests := []struct {
		name       string
		state      variables.MultiValueState
		wantValues []string
		wantTexts  []string
	}{
		{
			name: "all sentinel expands to every option",
			state: variables.MultiValueState{
				Value:      entity.ListValue(entity.AllVariableValue),
				Text:       entity.ListValue(entity.AllVariableText),
				Options:    opts("a", "b", "c"),
				IsMulti:    true,
				IncludeAll: true,
			},
			wantValues: []string{"a", "b", "c"},
			wantTexts:  []string{"Ta", "Tb", "Tc"},
		},
		{
			name: "single string selection becomes one element lists",
			state: variables.MultiValueState{
				Value:   entity.StringValue("b"),
				Text:    entity.StringValue("Tb"),
				Options: opts("a", "b"),
			},
			wantValues: []string{"b"},
			wantTexts:  []string{"Tb"},
		},
		{
			name: "explicit list keeps selection order",
			state: variables.MultiValueState{
				Value:   entity.ListValue("c", "a"),
				Text:    entity.ListValue("Tc", "Ta"),
				Options: opts("a", "b", "c"),
				IsMulti: true,
			},
			wantValues: []string{"c", "a"},
			wantTexts:  []string{"Tc", "Ta"},
		},
		{
			name: "missing texts are filled from options",
			state: variables.MultiValueState{
				Value:   entity.ListValue("a", "zz"),
				Options: opts("a"),
				IsMulti: true,
			},
			wantValues: []string{"a", "zz"},
			wantTexts:  []string{"Ta", "zz"},
		},
		{
			name:       "empty selection",
			state:      variables.MultiValueState{},
			wantValues: []string{},
			wantTexts:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := variables.NewCustomVariable(tt.state)
			got := variables.ResolveMultiValues(v)
			assert.Equal(t, tt.wantValues, got.Values)
			assert.Equal(t, tt.wantTexts, got.Texts)
		})
	}
}

func TestResolveMultiValues_Nil(t *testing.T) {
	got := variables.ResolveMultiValues(nil)
	assert.Equal(t, 0, got.Len())
}

func TestParseCustomOptions(t *testing.T) {
	got := variables.ParseCustomOptions(`a, b , Label : val, with\, comma`)

	values := make([]string, 0, len(got))
	texts := make([]string, 0, len(got))
	for _, o := range got {
		values = append(values, o.Value.String())
		texts = append(texts, o.Text.String())
	}
	assert.Equal(t, []string{"a", "b", "val", "with, comma"}, values)
	assert.Equal(t, []string{"a", "b", "Label", "with, comma"}, texts)
}
