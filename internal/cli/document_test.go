package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/cli"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
	}{
		{"plain document", `{"title": "Plain", "panels": []}`, "Plain"},
		{"wrapped payload", `{"dashboard": {"title": "Wrapped", "panels": []}, "meta": {"canSave": true}}`, "Wrapped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := cli.DecodeDocument(strings.NewReader(tt.input), "input")
			require.NoError(t, err)
			assert.Equal(t, tt.title, doc.Title)
		})
	}
}

func TestDecodeDocument_Invalid(t *testing.T) {
	_, err := cli.DecodeDocument(strings.NewReader(`{"title": `), "broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := cli.ReadDocument("/nonexistent/dash.json")
	require.Error(t, err)
}

func TestWriteDocumentFile(t *testing.T) {
	dir := t.TempDir()
	doc := &entity.Dashboard{Title: "Out", Panels: []*entity.Panel{}}

	var buf bytes.Buffer
	require.NoError(t, cli.WriteDocumentFile(&buf, "", doc))
	assert.Contains(t, buf.String(), "\"title\": \"Out\"")

	path := dir + "/out.json"
	require.NoError(t, cli.WriteDocumentFile(&buf, path, doc))
	back, err := cli.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Out", back.Title)
}

func TestDocumentSchema(t *testing.T) {
	schema := cli.DocumentSchema()
	require.NotNil(t, schema.Properties)

	panels, ok := schema.Properties.Get("panels")
	require.True(t, ok)
	assert.Equal(t, "array", panels.Type)

	_, ok = schema.Properties.Get("templating")
	assert.True(t, ok)
}

func TestUsesLibraryPanels(t *testing.T) {
	plain := &entity.Dashboard{Panels: []*entity.Panel{{ID: 1, Type: "text"}}}
	assert.False(t, cli.UsesLibraryPanels(plain))

	nested := &entity.Dashboard{Panels: []*entity.Panel{{
		ID: 1, Type: "row",
		Panels: []*entity.Panel{{ID: 2, LibraryPanel: &entity.LibraryPanelRef{UID: "lp"}}},
	}}}
	assert.True(t, cli.UsesLibraryPanels(nested))
}
