package transform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/transform"
)

func TestMigrate_LegacyRows(t *testing.T) {
	doc := parseDoc(t, `{
	  "title": "Old",
	  "schemaVersion": 14,
	  "rows": [
	    {
	      "title": "Overview", "showTitle": true, "height": "250px",
	      "panels": [
	        {"id": 1, "type": "graph", "title": "A", "span": 6},
	        {"id": 2, "type": "graph", "title": "B", "span": 6},
	        {"id": 3, "type": "singlestat", "title": "C", "span": 12, "height": 100}
	      ]
	    },
	    {
	      "title": "Details", "collapse": true,
	      "panels": [{"id": 5, "type": "table", "title": "D"}]
	    }
	  ],
	  "templating": {"list": []},
	  "annotations": {"list": []}
	}`)

	out, err := transform.Migrate(context.Background(), doc)
	require.NoError(t, err)

	assert.Nil(t, out.LegacyRows)
	assert.Equal(t, entity.SchemaVersion, out.SchemaVersion)
	require.Len(t, out.Panels, 5)

	overview := out.Panels[0]
	assert.True(t, overview.IsRow())
	assert.Equal(t, 6, overview.ID)
	assert.Equal(t, "Overview", overview.Title)
	assert.Equal(t, entity.GridPos{X: 0, Y: 0, W: 24, H: 1}, overview.GridPos)

	assert.Equal(t, entity.GridPos{X: 0, Y: 1, W: 12, H: 7}, out.Panels[1].GridPos)
	assert.Equal(t, entity.GridPos{X: 12, Y: 1, W: 12, H: 7}, out.Panels[2].GridPos)
	assert.Equal(t, entity.GridPos{X: 0, Y: 8, W: 24, H: 3}, out.Panels[3].GridPos)

	details := out.Panels[4]
	assert.True(t, details.IsRow())
	assert.True(t, details.Collapsed)
	assert.Equal(t, 7, details.ID)
	assert.Equal(t, 11, details.GridPos.Y)
	require.Len(t, details.Panels, 1)
	assert.Equal(t, entity.GridPos{X: 0, Y: 12, W: 8, H: 7}, details.Panels[0].GridPos)

	assert.Len(t, doc.LegacyRows, 2, "input must not be modified")
}

func TestMigrate_SingleUntitledRowHasNoRowRecord(t *testing.T) {
	doc := parseDoc(t, `{"title": "Old", "rows": [{"panels": [{"id": 1, "type": "graph", "span": 12}]}],
	  "templating": {"list": []}, "annotations": {"list": []}}`)

	out, err := transform.Migrate(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, out.Panels, 1)
	assert.False(t, out.Panels[0].IsRow())
	assert.Equal(t, entity.GridPos{X: 0, Y: 0, W: 24, H: 7}, out.Panels[0].GridPos)
}

func TestMigrate_SnapshotDataBecomesTarget(t *testing.T) {
	doc := parseDoc(t, `{"title": "Snap", "panels": [
	  {"id": 1, "type": "timeseries", "gridPos": {"x": 0, "y": 0, "w": 24, "h": 8},
	   "snapshotData": [{"name": "cpu", "fields": [{"name": "value", "type": "number", "values": [1, 2]}]}]}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	out, err := transform.Migrate(context.Background(), doc)
	require.NoError(t, err)

	p := out.Panels[0]
	assert.Nil(t, p.SnapshotData)
	require.NotNil(t, p.Datasource)
	assert.Equal(t, entity.GrafanaDatasourceUID, p.Datasource.UID)
	require.Len(t, p.Targets, 1)
	assert.Equal(t, entity.SnapshotQueryType, p.Targets[0].QueryType())
	frames, err := p.Targets[0].SnapshotFrames()
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "cpu", frames[0].Name)

	assert.NotNil(t, doc.Panels[0].SnapshotData, "input must not be modified")
}

func TestMigrate_ReassignsMissingAndDuplicateIDs(t *testing.T) {
	doc := parseDoc(t, `{"title": "Ids", "panels": [
	  {"type": "text", "gridPos": {"x": 0, "y": 0, "w": 4, "h": 4}},
	  {"id": 4, "type": "text", "gridPos": {"x": 4, "y": 0, "w": 4, "h": 4}},
	  {"id": 4, "type": "text", "gridPos": {"x": 8, "y": 0, "w": 4, "h": 4}}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	out, err := transform.Migrate(context.Background(), doc)
	require.NoError(t, err)

	ids := []int{out.Panels[0].ID, out.Panels[1].ID, out.Panels[2].ID}
	assert.Equal(t, []int{5, 4, 6}, ids)
}

func TestMigrate_NilDocument(t *testing.T) {
	_, err := transform.Migrate(context.Background(), nil)
	assert.ErrorIs(t, err, transform.ErrNilDocument)
}

func TestNormalize_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	first, err := transform.Normalize(ctx, parseDoc(t, `{
	  "title": "Old",
	  "rows": [{"title": "R", "showTitle": true, "panels": [{"type": "graph", "span": 6}]}],
	  "templating": {"list": []},
	  "annotations": {"list": []}
	}`))
	require.NoError(t, err)

	second, err := transform.Normalize(ctx, first)
	require.NoError(t, err)
	assert.JSONEq(t, encode(t, first), encode(t, second))
	assert.Equal(t, entity.SchemaVersion, second.SchemaVersion)
}
