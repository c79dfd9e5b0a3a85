package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarFlags(t *testing.T) {
	values, order, err := parseVarFlags([]string{"host=a, b", "env=prod", "host=c", "empty="})
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "env", "empty"}, order)
	assert.Equal(t, []string{"c"}, values["host"])
	assert.Equal(t, []string{"prod"}, values["env"])
	assert.Empty(t, values["empty"])

	for _, bad := range []string{"host", "=a"} {
		_, _, err := parseVarFlags([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}

	paths, err := expandPaths([]string{dir, "missing.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		"missing.json",
	}, paths)
}

func TestReadLibraryPanel(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	lp, err := readLibraryPanel(write("ok.json", `{"uid": "cpu", "model": {"type": "stat", "title": "CPU"}}`))
	require.NoError(t, err)
	assert.Equal(t, "cpu", lp.UID)
	assert.Equal(t, "CPU", lp.Name)

	_, err = readLibraryPanel(write("nouid.json", `{"name": "x", "model": {"type": "stat"}}`))
	assert.ErrorContains(t, err, "no uid")

	_, err = readLibraryPanel(write("nomodel.json", `{"uid": "x"}`))
	assert.ErrorContains(t, err, "no model")
}

func TestCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"validate", "normalize", "tree", "import", "export", "list",
		"versions", "delete", "rename", "snapshot", "library", "config", "schema", "watch", "gen-docs", "version", "store"} {
		assert.True(t, names[want], want)
	}
}
