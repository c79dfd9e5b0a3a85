package cli_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/cli"
)

func TestWatchFile_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dash.json", simpleDoc)
	writeFile(t, dir, "other.json", "{}")

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- cli.WatchFile(ctx, path, 50*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte(simpleDoc), 0o600))
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	err := cli.WatchFile(testContext(), "/nonexistent/dir/dash.json", time.Millisecond, func() {})
	require.Error(t, err)
}
