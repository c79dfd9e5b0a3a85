package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/infrastructure/query"
)

func tableData() entity.PanelData {
	return entity.PanelData{
		State: entity.LoadingStateDone,
		Series: []entity.DataFrame{{
			RefID: "A",
			Fields: []entity.Field{
				{Name: "time", Values: []any{1.0, 2.0, 3.0}},
				{Name: "value", Values: []any{10.0, 20.0, 30.0}},
				{Name: "host", Values: []any{"a", "b", "c"}},
			},
		}},
	}
}

func fieldNames(f entity.DataFrame) []string {
	var out []string
	for _, fld := range f.Fields {
		out = append(out, fld.Name)
	}
	return out
}

func TestFrameTransformer_Pipeline(t *testing.T) {
	in := tableData()
	out, err := query.FrameTransformer{}.Transform(context.Background(), []entity.Transformation{
		{ID: query.TransformLimit, Options: map[string]any{"limitField": 2.0}},
		{ID: query.TransformOrganize, Options: map[string]any{
			"excludeByName": map[string]any{"host": true},
			"renameByName":  map[string]any{"value": "cpu"},
		}},
		{ID: "reduce", Options: map[string]any{}},
		{ID: query.TransformLimit, Disabled: true, Options: map[string]any{"limitField": 0.0}},
	}, in)
	require.NoError(t, err)

	require.Len(t, out.Series, 1)
	assert.Equal(t, []string{"time", "cpu"}, fieldNames(out.Series[0]))
	assert.Equal(t, 2, out.Series[0].Len())

	// input untouched
	assert.Equal(t, []string{"time", "value", "host"}, fieldNames(in.Series[0]))
	assert.Equal(t, 3, in.Series[0].Len())
}

func TestFrameTransformer_FilterFieldsByName(t *testing.T) {
	out, err := query.FrameTransformer{}.Transform(context.Background(), []entity.Transformation{
		{ID: query.TransformFilterFieldsByName, Options: map[string]any{
			"include": map[string]any{"names": []any{"host"}},
		}},
	}, tableData())
	require.NoError(t, err)
	assert.Equal(t, []string{"host"}, fieldNames(out.Series[0]))
}

func TestFrameTransformer_InvalidLimit(t *testing.T) {
	in := tableData()
	out, err := query.FrameTransformer{}.Transform(context.Background(), []entity.Transformation{
		{ID: query.TransformLimit, Options: map[string]any{"limitField": "ten"}},
	}, in)
	require.Error(t, err)
	assert.Equal(t, in, out)
}
