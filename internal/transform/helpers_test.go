package transform_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/transform"
)

func parseDoc(t *testing.T, raw string) *entity.Dashboard {
	t.Helper()
	var doc entity.Dashboard
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func load(t *testing.T, raw string) *dashboard.Dashboard {
	t.Helper()
	ctx := context.Background()
	doc, err := transform.Migrate(ctx, parseDoc(t, raw))
	require.NoError(t, err)
	d, err := transform.Deserialize(ctx, doc, entity.DashboardMeta{}, &scene.Environment{Context: ctx})
	require.NoError(t, err)
	return d
}

func encode(t *testing.T, doc *entity.Dashboard) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func gridChildren(d *dashboard.Dashboard) []dashboard.GridChild {
	return d.State().Body.State().Children
}

// fullDoc exercises every record shape the serializer writes back.
const fullDoc = `{
  "uid": "rt",
  "title": "Round trip",
  "tags": ["ops"],
  "editable": true,
  "time": {"from": "now-6h", "to": "now"},
  "timezone": "utc",
  "refresh": "30s",
  "schemaVersion": 39,
  "version": 3,
  "panels": [
    {
      "id": 1, "type": "timeseries", "title": "CPU",
      "gridPos": {"x": 0, "y": 0, "w": 12, "h": 8},
      "datasource": {"uid": "prom", "type": "prometheus"},
      "targets": [{"refId": "A", "expr": "up"}],
      "options": {"legend": {"showLegend": true}}
    },
    {"id": 2, "type": "row", "title": "Hosts", "gridPos": {"x": 0, "y": 8, "w": 24, "h": 1}},
    {
      "id": 3, "type": "stat", "title": "Mem $host",
      "gridPos": {"x": 0, "y": 9, "w": 8, "h": 4},
      "repeat": "host", "repeatDirection": "h", "maxPerRow": 3,
      "datasource": {"uid": "prom", "type": "prometheus"},
      "targets": [{"refId": "A", "expr": "mem"}]
    },
    {
      "id": 4, "type": "row", "title": "Hidden", "collapsed": true,
      "gridPos": {"x": 0, "y": 13, "w": 24, "h": 1},
      "panels": [
        {"id": 5, "type": "text", "title": "Notes", "gridPos": {"x": 0, "y": 14, "w": 24, "h": 3}}
      ]
    }
  ],
  "templating": {"list": [
    {
      "type": "custom", "name": "host",
      "current": {"text": ["a", "b"], "value": ["a", "b"]},
      "options": [{"text": "a", "value": "a"}, {"text": "b", "value": "b"}],
      "multi": true, "query": "a,b"
    }
  ]},
  "annotations": {"list": []}
}`
