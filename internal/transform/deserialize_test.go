package transform_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/transform"
)

func TestRoundTrip_PreservesDocument(t *testing.T) {
	d := load(t, fullDoc)

	doc, err := transform.Serialize(d)
	require.NoError(t, err)
	assert.JSONEq(t, fullDoc, encode(t, doc))
}

func TestRoundTrip_IgnoresRepeatClones(t *testing.T) {
	d := load(t, fullDoc)
	before, err := transform.Serialize(d)
	require.NoError(t, err)

	t.Cleanup(d.ActivateAll())
	repeater := gridChildren(d)[1].(*dashboard.Row).State().Children[0].(*dashboard.PanelRepeaterItem)
	require.Len(t, repeater.State().RepeatedPanels, 2)

	after, err := transform.Serialize(d)
	require.NoError(t, err)
	assert.JSONEq(t, encode(t, before), encode(t, after))
}

func TestDeserialize_BuildsLayout(t *testing.T) {
	d := load(t, fullDoc)

	children := gridChildren(d)
	require.Len(t, children, 3)

	item, ok := children[0].(*dashboard.GridItem)
	require.True(t, ok)
	assert.Equal(t, "grid-item-1", item.Key())
	assert.Equal(t, dashboard.Rect{Width: 12, Height: 8}, item.Rect())
	runner, ok := item.Panel().State().Data.(*dashboard.QueryRunner)
	require.True(t, ok)
	assert.Equal(t, "prom", runner.State().Datasource.UID)

	hosts, ok := children[1].(*dashboard.Row)
	require.True(t, ok)
	assert.Equal(t, "panel-2", hosts.Key())
	assert.False(t, hosts.State().IsCollapsed)
	require.Len(t, hosts.State().Children, 1)
	repeater, ok := hosts.State().Children[0].(*dashboard.PanelRepeaterItem)
	require.True(t, ok)
	assert.Equal(t, "host", repeater.State().VariableName)
	assert.Equal(t, 3, repeater.State().MaxPerRow)
	assert.Equal(t, 4, repeater.State().ItemHeight)

	hidden, ok := children[2].(*dashboard.Row)
	require.True(t, ok)
	assert.True(t, hidden.State().IsCollapsed)
	require.Len(t, hidden.State().Children, 1)
	assert.Nil(t, hidden.State().Children[0].Panel().State().Data)

	assert.Equal(t, "utc", d.State().TimeRange.State().Timezone)
	v, ok := d.VariableSet().ByName("host")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v.Value().Values())
}

func TestDeserialize_RepeatedRowOwnsSources(t *testing.T) {
	d := load(t, `{
	  "title": "Rows",
	  "panels": [
	    {"id": 1, "type": "row", "title": "$dc", "repeat": "dc", "gridPos": {"x": 0, "y": 0, "w": 24, "h": 1}},
	    {"id": 2, "type": "graph", "title": "Load", "gridPos": {"x": 0, "y": 1, "w": 24, "h": 6}}
	  ],
	  "templating": {"list": [{"type": "custom", "name": "dc", "query": "eu,us"}]},
	  "annotations": {"list": []}
	}`)

	row := gridChildren(d)[0].(*dashboard.Row)
	assert.Empty(t, row.State().Children)
	rr := row.Repeater()
	require.NotNil(t, rr)
	assert.Equal(t, "dc", rr.State().VariableName)
	require.Len(t, rr.State().Sources, 1)
	assert.Equal(t, "grid-item-2", rr.State().Sources[0].Key())

	doc, err := transform.Serialize(d)
	require.NoError(t, err)
	require.Len(t, doc.Panels, 2)
	assert.Equal(t, "dc", doc.Panels[0].Repeat)
	assert.Equal(t, 2, doc.Panels[1].ID)
}

func TestDeserialize_UnknownVariableType(t *testing.T) {
	doc := parseDoc(t, `{
	  "title": "Bad",
	  "panels": [],
	  "templating": {"list": [{"type": "custom", "name": "ok", "query": "a"}, {"type": "system", "name": "x"}]},
	  "annotations": {"list": []}
	}`)

	_, err := transform.Deserialize(context.Background(), doc, entity.DashboardMeta{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrUnknownVariableType)
	var structErr *transform.StructuralError
	require.True(t, errors.As(err, &structErr))
	assert.Equal(t, "templating.list[1]", structErr.Path)
}

func TestDeserialize_RowShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		path string
	}{
		{
			name: "expanded row with nested panels",
			raw: `{"title": "x", "panels": [
			  {"id": 1, "type": "row", "gridPos": {"x": 0, "y": 0, "w": 24, "h": 1},
			   "panels": [{"id": 2, "type": "text", "gridPos": {"x": 0, "y": 1, "w": 4, "h": 4}}]}
			], "templating": {"list": []}, "annotations": {"list": []}}`,
			path: "panels[0]",
		},
		{
			name: "row nested in a collapsed row",
			raw: `{"title": "x", "panels": [
			  {"id": 1, "type": "row", "collapsed": true, "gridPos": {"x": 0, "y": 0, "w": 24, "h": 1},
			   "panels": [{"id": 2, "type": "row", "gridPos": {"x": 0, "y": 1, "w": 24, "h": 1}}]}
			], "templating": {"list": []}, "annotations": {"list": []}}`,
			path: "panels[0].panels[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transform.Deserialize(context.Background(), parseDoc(t, tt.raw), entity.DashboardMeta{}, nil)
			require.ErrorIs(t, err, transform.ErrRowShape)
			var structErr *transform.StructuralError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.path, structErr.Path)
		})
	}
}

func TestDeserialize_DuplicatePanelID(t *testing.T) {
	doc := parseDoc(t, `{"title": "x", "panels": [
	  {"id": 7, "type": "text", "gridPos": {"x": 0, "y": 0, "w": 4, "h": 4}},
	  {"id": 7, "type": "text", "gridPos": {"x": 4, "y": 0, "w": 4, "h": 4}}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	_, err := transform.Deserialize(context.Background(), doc, entity.DashboardMeta{}, nil)
	assert.ErrorIs(t, err, transform.ErrDuplicatePanelID)

	migrated, err := transform.Migrate(context.Background(), doc)
	require.NoError(t, err)
	_, err = transform.Deserialize(context.Background(), migrated, entity.DashboardMeta{}, nil)
	assert.NoError(t, err)
}

func TestDeserialize_SharedQuery(t *testing.T) {
	d := load(t, `{"title": "Shared", "panels": [
	  {"id": 1, "type": "timeseries", "gridPos": {"x": 0, "y": 0, "w": 12, "h": 8},
	   "datasource": {"uid": "prom", "type": "prometheus"}, "targets": [{"refId": "A", "expr": "up"}]},
	  {"id": 2, "type": "stat", "gridPos": {"x": 12, "y": 0, "w": 12, "h": 8},
	   "datasource": {"uid": "-- Dashboard --", "type": "datasource"},
	   "targets": [{"refId": "A", "panelId": 1, "withTransforms": true}]}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	item := gridChildren(d)[1].(*dashboard.GridItem)
	shared, ok := item.Panel().State().Data.(*dashboard.SharedQuery)
	require.True(t, ok)
	assert.Equal(t, 1, shared.State().PanelID)

	doc, err := transform.Serialize(d)
	require.NoError(t, err)
	rec := doc.Panels[1]
	assert.Equal(t, entity.SharedDashboardQueryUID, rec.Datasource.UID)
	require.Len(t, rec.Targets, 1)
	assert.Equal(t, 1, rec.Targets[0].PanelID())
	assert.Equal(t, "A", rec.Targets[0].RefID())
}

func TestDeserialize_TransformationsWrapProvider(t *testing.T) {
	d := load(t, `{"title": "T", "panels": [
	  {"id": 1, "type": "table", "gridPos": {"x": 0, "y": 0, "w": 24, "h": 8},
	   "datasource": {"uid": "prom"}, "targets": [{"refId": "A"}],
	   "transformations": [{"id": "organize", "options": {"excludeByName": {"Time": true}}}]}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	data := gridChildren(d)[0].(*dashboard.GridItem).Panel().State().Data
	tr, ok := data.(*dashboard.DataTransformer)
	require.True(t, ok)
	require.Len(t, tr.State().Transformations, 1)
	assert.Equal(t, "organize", tr.State().Transformations[0].ID)
	_, ok = tr.State().Inner.(*dashboard.QueryRunner)
	assert.True(t, ok)
}

func TestDeserialize_SnapshotDocumentSetsMeta(t *testing.T) {
	doc := parseDoc(t, `{"title": "Snap", "panels": [], "templating": {"list": []},
	  "annotations": {"list": []}, "snapshot": {"timestamp": "2026-01-02T03:04:05Z"}}`)

	d, err := transform.Deserialize(context.Background(), doc, entity.DashboardMeta{}, &scene.Environment{})
	require.NoError(t, err)
	assert.True(t, d.State().Meta.IsSnapshot)
	require.NotNil(t, d.State().Snapshot)
	assert.Equal(t, "2026-01-02T03:04:05Z", d.State().Snapshot.Timestamp)
}

func TestDeserialize_NilDocument(t *testing.T) {
	_, err := transform.Deserialize(context.Background(), nil, entity.DashboardMeta{}, nil)
	assert.ErrorIs(t, err, transform.ErrNilDocument)
}

func TestRoundTrip_QueryOptionsWithoutTargets(t *testing.T) {
	d := load(t, `{"title": "Q", "panels": [
	  {"id": 4, "type": "text", "gridPos": {"x": 0, "y": 0, "w": 12, "h": 4}, "maxDataPoints": 50},
	  {"id": 5, "type": "text", "gridPos": {"x": 12, "y": 0, "w": 12, "h": 4}, "interval": "1m"},
	  {"id": 6, "type": "text", "gridPos": {"x": 0, "y": 4, "w": 24, "h": 4}}
	], "templating": {"list": []}, "annotations": {"list": []}}`)

	items := gridChildren(d)
	_, ok := items[0].(*dashboard.GridItem).Panel().State().Data.(*dashboard.QueryRunner)
	assert.True(t, ok)
	assert.Nil(t, items[2].(*dashboard.GridItem).Panel().State().Data)

	doc, err := transform.Serialize(d)
	require.NoError(t, err)
	require.Len(t, doc.Panels, 3)
	require.NotNil(t, doc.Panels[0].MaxDataPoints)
	assert.Equal(t, 50, *doc.Panels[0].MaxDataPoints)
	assert.Equal(t, "1m", doc.Panels[1].Interval)
	assert.Nil(t, doc.Panels[2].MaxDataPoints)
	assert.Empty(t, doc.Panels[2].Interval)
	assert.Empty(t, doc.Panels[2].Targets)
}
