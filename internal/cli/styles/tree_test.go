package styles_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/cli/styles"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/infrastructure/config"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/transform"
)

func plainTheme() *styles.Theme {
	cfg := config.DefaultConfig()
	cfg.Output.Color = false
	return styles.NewTheme(cfg)
}

const treeDoc = `{
  "uid": "tree",
  "title": "Layout",
  "schemaVersion": 39,
  "panels": [
    {"id": 1, "type": "timeseries", "title": "CPU", "gridPos": {"x": 0, "y": 0, "w": 12, "h": 8}},
    {"id": 2, "type": "row", "title": "Details", "collapsed": true, "gridPos": {"x": 0, "y": 8, "w": 24, "h": 1},
     "panels": [{"id": 3, "type": "text", "title": "Notes", "gridPos": {"x": 0, "y": 9, "w": 24, "h": 3}}]}
  ],
  "templating": {"list": [
    {"name": "env", "type": "custom", "query": "prod,dev", "current": {"text": "prod", "value": "prod"}}
  ]},
  "annotations": {"list": []}
}`

func TestRenderSceneTree(t *testing.T) {
	ctx := context.Background()
	var doc entity.Dashboard
	require.NoError(t, json.Unmarshal([]byte(treeDoc), &doc))
	d, err := transform.Deserialize(ctx, &doc, entity.DashboardMeta{}, &scene.Environment{Context: ctx})
	require.NoError(t, err)

	out := plainTheme().RenderSceneTree(d, styles.SceneTreeOptions{ShowKeys: true})

	for _, want := range []string{"Layout", "CPU", "Details", "collapsed", "Notes", "env", "x=0 y=0 w=12 h=8", "[panel-1]"} {
		assert.Contains(t, out, want)
	}
}

func TestTables(t *testing.T) {
	theme := plainTheme()

	out := theme.DashboardTable([]*entity.DashboardSummary{
		{UID: "abc", Title: "Overview", Tags: []string{"ops", "prod"}, Version: 4, Updated: time.Now()},
	})
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "ops, prod")
	assert.Contains(t, out, "just now")

	assert.Contains(t, theme.DashboardTable(nil), "No dashboards found")
	assert.Contains(t, theme.LibraryPanelTable(nil), "No library panels found")

	out = theme.VersionTable([]*entity.DashboardVersion{{UID: "abc", Version: 2, Message: "tweak"}})
	assert.Contains(t, out, "tweak")
}

func TestMessages(t *testing.T) {
	theme := plainTheme()
	assert.Contains(t, theme.Success("saved %s", "abc"), "saved abc")
	assert.Contains(t, theme.Error(errors.New("boom")), "boom")

	out := theme.KeyValues([]string{"a", "long.key"}, map[string]string{"a": "1", "long.key": "2"})
	assert.Contains(t, out, "a         1")
	assert.Contains(t, out, "long.key  2")
}
