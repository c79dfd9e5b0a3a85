package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	repomocks "github.com/grafana/grafana-sub060/internal/domain/repository/mocks"
	"github.com/grafana/grafana-sub060/internal/transform"
)

func TestLoadDashboardUseCase_LoadsFromDatabase(t *testing.T) {
	ctx := testContext()

	dashboards := repomocks.NewMockDashboardRepository(t)
	snapshots := repomocks.NewMockSnapshotRepository(t)

	meta := entity.DashboardMeta{CanEdit: true, CanSave: true, FolderUID: "ops"}
	dashboards.EXPECT().GetByUID(mock.Anything, "abc").
		Return(&entity.DashboardDTO{Dashboard: sampleDoc(), Meta: meta}, nil)

	uc := usecase.NewLoadDashboardUseCase(dashboards, snapshots)
	out, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: usecase.LoadKindDB, Key: "abc"})
	require.NoError(t, err)

	assert.Equal(t, meta, out.Meta)
	assert.Equal(t, "Sample", out.Dashboard.State().Title)
	assert.Equal(t, "abc", out.Dashboard.State().UID)
	assert.Equal(t, entity.SchemaVersion, out.Document.SchemaVersion)
	assert.Len(t, out.Dashboard.State().Body.State().Children, 1)
}

func TestLoadDashboardUseCase_LoadsSnapshot(t *testing.T) {
	ctx := testContext()

	dashboards := repomocks.NewMockDashboardRepository(t)
	snapshots := repomocks.NewMockSnapshotRepository(t)

	doc := sampleDoc()
	doc.Snapshot = &entity.SnapshotInfo{Timestamp: "2026-05-01T00:00:00Z"}
	snapshots.EXPECT().GetSnapshot(mock.Anything, "k1").Return(&entity.Snapshot{
		Key:       "k1",
		Name:      "shared",
		Dashboard: doc,
		Created:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	uc := usecase.NewLoadDashboardUseCase(dashboards, snapshots)
	out, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: usecase.LoadKindSnapshot, Key: "k1"})
	require.NoError(t, err)

	assert.True(t, out.Meta.IsSnapshot)
	assert.False(t, out.Meta.CanSave)
	assert.Equal(t, "2026-05-01T00:00:00Z", out.Meta.Created)
}

func TestLoadDashboardUseCase_Errors(t *testing.T) {
	ctx := testContext()

	t.Run("empty key", func(t *testing.T) {
		uc := usecase.NewLoadDashboardUseCase(repomocks.NewMockDashboardRepository(t), repomocks.NewMockSnapshotRepository(t))
		_, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: usecase.LoadKindDB})
		assert.ErrorIs(t, err, usecase.ErrEmptyKey)
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := usecase.NewLoadDashboardUseCase(repomocks.NewMockDashboardRepository(t), repomocks.NewMockSnapshotRepository(t))
		_, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: "home", Key: "x"})
		assert.ErrorIs(t, err, usecase.ErrUnknownLoadKind)
	})

	t.Run("not found", func(t *testing.T) {
		dashboards := repomocks.NewMockDashboardRepository(t)
		dashboards.EXPECT().GetByUID(mock.Anything, "gone").Return(nil, entity.ErrNotFound)

		uc := usecase.NewLoadDashboardUseCase(dashboards, repomocks.NewMockSnapshotRepository(t))
		_, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: usecase.LoadKindDB, Key: "gone"})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("structural", func(t *testing.T) {
		doc := sampleDoc()
		doc.Templating.List = []*entity.Variable{{Type: "system", Name: "x"}}
		dashboards := repomocks.NewMockDashboardRepository(t)
		dashboards.EXPECT().GetByUID(mock.Anything, "abc").Return(&entity.DashboardDTO{Dashboard: doc}, nil)

		uc := usecase.NewLoadDashboardUseCase(dashboards, repomocks.NewMockSnapshotRepository(t))
		_, err := uc.Execute(ctx, usecase.LoadDashboardInput{Kind: usecase.LoadKindDB, Key: "abc"})
		var structErr *transform.StructuralError
		require.True(t, errors.As(err, &structErr))
		assert.ErrorIs(t, err, transform.ErrUnknownVariableType)
	})
}
