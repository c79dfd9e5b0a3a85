package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/infrastructure/query"
)

func optionFrames(values ...any) []entity.DataFrame {
	return []entity.DataFrame{{Fields: []entity.Field{{Name: "text", Values: values}}}}
}

func optionValues(opts []entity.VariableOption) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value.String())
	}
	return out
}

func TestStaticOptionsLoader_SortAndRegex(t *testing.T) {
	loader := query.NewStaticOptionsLoader(query.Fixtures{
		"$server": optionFrames("web-10", "web-2", "db-1", "web-2"),
	})

	tests := []struct {
		name  string
		regex string
		sort  int
		want  []string
	}{
		{"document order with duplicates dropped", "", 0, []string{"web-10", "web-2", "db-1"}},
		{"alphabetical", "", 1, []string{"db-1", "web-10", "web-2"}},
		{"alphabetical descending", "", 2, []string{"web-2", "web-10", "db-1"}},
		{"numeric", "", 3, []string{"db-1", "web-2", "web-10"}},
		{"filter", "/^web/", 0, []string{"web-10", "web-2"}},
		{"capture group", "web-(\\d+)", 3, []string{"2", "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := loader.LoadOptions(context.Background(), port.OptionsRequest{
				Name:  "server",
				Regex: tt.regex,
				Sort:  tt.sort,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, optionValues(opts))
		})
	}
}

func TestStaticOptionsLoader_MissingFixture(t *testing.T) {
	loader := query.NewStaticOptionsLoader(nil)
	_, err := loader.LoadOptions(context.Background(), port.OptionsRequest{Name: "region"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestStaticOptionsLoader_InvalidRegex(t *testing.T) {
	loader := query.NewStaticOptionsLoader(query.Fixtures{"$x": optionFrames("a")})
	_, err := loader.LoadOptions(context.Background(), port.OptionsRequest{Name: "x", Regex: "("})
	require.Error(t, err)
}
