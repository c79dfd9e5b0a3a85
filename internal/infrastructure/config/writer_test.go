package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	in := "title = \"x\"\n\n[watch]\n  debounce_ms = 1\n[logging]\n  level = \"info\"\n\n\n[database]\n  path = \"\"\n"
	want := "title = \"x\"\n\n[database]\n  path = \"\"\n\n[logging]\n  level = \"info\"\n\n[watch]\n  debounce_ms = 1\n"
	assert.Equal(t, want, sortTOMLSections(in))
	assert.Equal(t, "", sortTOMLSections("\n\n"))
}

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Query.FixturesPath = "/tmp/frames.json"
	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)

	assert.Error(t, WriteConfigOrdered(nil, path))
}

func TestSchema(t *testing.T) {
	schema := Schema()
	require.NotNil(t, schema.Definitions["Config"])
	props := schema.Definitions["Config"].Properties
	_, ok := props.Get("library_panels")
	assert.True(t, ok)
}
