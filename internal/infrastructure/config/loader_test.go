package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at a temp dir and clears the
// environment overrides the manager binds.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("DASHCTL_LOG_LEVEL", "")
	t.Setenv("DASHCTL_LOG_FORMAT", "")
	t.Setenv("DASHCTL_DB", "")
	return root
}

func TestManager_LoadCreatesDefaults(t *testing.T) {
	root := isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, defaultLibraryPanelCacheSize, cfg.LibraryPanels.CacheSize)
	assert.Equal(t, filepath.Join(root, "data", "dashctl", "dashctl.sqlite"), cfg.Database.Path)

	configFile := filepath.Join(root, "config", "dashctl", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "dashctl", "config.schema.json"))
	assert.Equal(t, configFile, m.GetConfigFile())
}

func TestManager_FileAndEnvOverrides(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "config", "dashctl")
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[query]
timeout_seconds = 5

[output]
format = "JSON"
`), filePerm))
	t.Setenv("DASHCTL_LOG_LEVEL", "debug")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 5, cfg.Query.TimeoutSeconds)
	assert.Equal(t, OutputFormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, defaultWatchDebounceMs, cfg.Watch.DebounceMs)
}

func TestManager_InvalidFile(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[query]\ntimeout_seconds = 0\n"), filePerm))

	m, err := NewManager()
	require.NoError(t, err)
	m.SetConfigFile(path)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query.timeout_seconds must be at least 1")
}

func TestManager_ExplicitFileMustExist(t *testing.T) {
	root := isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	m.SetConfigFile(filepath.Join(root, "missing.toml"))
	assert.Error(t, m.Load())
}

func TestManager_Set(t *testing.T) {
	isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	require.NoError(t, m.Set("snapshots.default_expires_hours", "24"))
	assert.Equal(t, 24, m.Get().Snapshots.DefaultExpiresHours)

	err = m.Set("query.timeout_seconds", "0")
	require.Error(t, err)
	assert.Equal(t, defaultQueryTimeoutSeconds, m.Get().Query.TimeoutSeconds)

	assert.Error(t, m.Set("no.such_key", "1"))

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 24, reloaded.Get().Snapshots.DefaultExpiresHours)

	v, ok := reloaded.Value("snapshots.default_expires_hours")
	require.True(t, ok)
	assert.EqualValues(t, 24, v)
	assert.Contains(t, reloaded.Keys(), "watch.debounce_ms")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Logging.Level = "error"
	assert.Equal(t, "info", m.Get().Logging.Level)
}
