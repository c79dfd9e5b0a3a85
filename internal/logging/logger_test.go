package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "scene")
	ctx = WithDashboardUID(ctx, "abc")
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"scene"`)
	assert.Contains(t, out, `"dashboard_uid":"abc"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_Missing(t *testing.T) {
	// a context without a logger yields a usable no-op logger
	FromContext(context.Background()).Info().Msg("dropped")
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewWithFile("info", "json", FileConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written"`)
	assert.NotContains(t, string(data), "hidden")

	_, closer, err = NewWithFile("info", "console", FileConfig{})
	require.NoError(t, err)
	assert.Nil(t, closer)
}
