package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("warn", "console")
	return logging.WithContext(context.Background(), logger)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const simpleDoc = `{
  "uid": "simple",
  "title": "Simple",
  "schemaVersion": 39,
  "panels": [
    {"id": 1, "type": "text", "title": "Notes", "gridPos": {"x": 0, "y": 0, "w": 12, "h": 4}},
    {"id": 2, "type": "row", "title": "More", "gridPos": {"x": 0, "y": 4, "w": 24, "h": 1}},
    {"id": 3, "type": "stat", "title": "Up", "gridPos": {"x": 0, "y": 5, "w": 6, "h": 4}}
  ],
  "templating": {"list": []},
  "annotations": {"list": []}
}`

var mockAnything = mock.Anything

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
