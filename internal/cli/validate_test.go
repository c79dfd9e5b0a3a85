package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", simpleDoc)
	legacy := writeFile(t, dir, "legacy.json", `{"title": "Old", "schemaVersion": 16,
	  "rows": [{"title": "R", "height": "250px", "panels": [{"id": 1, "type": "text", "span": 6}]}],
	  "templating": {"list": []}, "annotations": {"list": []}}`)
	bad := writeFile(t, dir, "bad.json", `{"title": "Bad", "panels": [],
	  "templating": {"list": [{"type": "system", "name": "x"}]}, "annotations": {"list": []}}`)
	broken := writeFile(t, dir, "broken.json", `{"title":`)

	results, err := cli.ValidateFiles(testContext(), []string{good, legacy, bad, broken, dir + "/missing.json"}, 2)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].OK())
	assert.Equal(t, "simple", results[0].UID)
	assert.Equal(t, 2, results[0].Panels)
	require.NotNil(t, results[0].Normalized)
	assert.Equal(t, entity.SchemaVersion, results[0].Normalized.SchemaVersion)

	assert.True(t, results[1].OK(), results[1].Error)
	assert.Equal(t, 16, results[1].SchemaVersion)
	assert.Equal(t, 1, results[1].Panels)

	assert.False(t, results[2].OK())
	assert.True(t, results[2].Structural)

	assert.False(t, results[3].OK())
	assert.False(t, results[3].Structural)

	assert.False(t, results[4].OK())
	assert.Equal(t, dir+"/missing.json", results[4].Path)
}

func TestValidateFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := cli.ValidateFiles(ctx, []string{"a.json"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
