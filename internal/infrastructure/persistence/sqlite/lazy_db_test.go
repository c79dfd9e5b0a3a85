package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "nested", "dashctl.db")
	lazy := sqlite.NewLazyDB(path)

	assert.False(t, lazy.IsInitialized())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "store file must not exist before first use")

	first, err := lazy.DB(ctx)
	require.NoError(t, err)
	second, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, path)
	assert.Equal(t, path, lazy.Path())

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "dashctl.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const workers = 8
	handles := make([]*sql.DB, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handles[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
}

func TestLazyDB_CloseUnopened(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "dashctl.db"))
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPath(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")

	// the failure is remembered
	_, err = lazy.DB(testCtx())
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_Status(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "dashctl.db")
	lazy := sqlite.NewLazyDB(path)
	t.Cleanup(func() { _ = lazy.Close() })

	st, err := lazy.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, path, st.Path)
	assert.Equal(t, int64(3), st.SchemaVersion)
	assert.Zero(t, st.Dashboards)
	assert.Zero(t, st.Versions)
	assert.Zero(t, st.Snapshots)
	assert.Zero(t, st.LibraryPanels)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}
