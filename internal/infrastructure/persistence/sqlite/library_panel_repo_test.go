package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/infrastructure/persistence/sqlite"
)

func TestLibraryPanelRepository_UpsertBumpsVersion(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLibraryPanelRepository(openTestDB(t))

	lp := &entity.LibraryPanel{
		UID:   "lib-1",
		Name:  "Shared CPU",
		Model: &entity.Panel{Type: "timeseries", Title: "CPU"},
	}
	require.NoError(t, repo.SaveLibraryPanel(ctx, lp))
	assert.Equal(t, 1, lp.Version)

	lp.Model.Title = "CPU (all hosts)"
	require.NoError(t, repo.SaveLibraryPanel(ctx, lp))
	assert.Equal(t, 2, lp.Version)

	got, err := repo.GetLibraryPanel(ctx, "lib-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	require.NotNil(t, got.Model)
	assert.Equal(t, "CPU (all hosts)", got.Model.Title)
}

func TestLibraryPanelRepository_ListAndMissing(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLibraryPanelRepository(openTestDB(t))

	for _, lp := range []*entity.LibraryPanel{
		{UID: "b", Name: "beta", Model: &entity.Panel{Type: "stat"}},
		{UID: "a", Name: "Alpha", Model: &entity.Panel{Type: "text"}},
	} {
		require.NoError(t, repo.SaveLibraryPanel(ctx, lp))
	}

	list, err := repo.ListLibraryPanels(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Nil(t, list[0].Model)

	_, err = repo.GetLibraryPanel(ctx, "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.Error(t, repo.SaveLibraryPanel(ctx, &entity.LibraryPanel{UID: "x"}))
}
