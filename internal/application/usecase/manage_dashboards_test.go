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
)

func TestManageDashboardsUseCase_ListAppliesDefaultLimit(t *testing.T) {
	ctx := testContext()

	dashboards := repomocks.NewMockDashboardRepository(t)
	dashboards.EXPECT().List(mock.Anything, "cpu", usecase.DefaultListLimit).
		Return([]*entity.DashboardSummary{{UID: "a", Title: "CPU"}}, nil)

	uc := usecase.NewManageDashboardsUseCase(dashboards, repomocks.NewMockSnapshotRepository(t))
	list, err := uc.List(ctx, "cpu", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CPU", list[0].Title)
}

func TestManageDashboardsUseCase_DeleteWrapsErrors(t *testing.T) {
	ctx := testContext()

	dashboards := repomocks.NewMockDashboardRepository(t)
	dashboards.EXPECT().Delete(mock.Anything, "a").Return(entity.ErrNotFound)

	uc := usecase.NewManageDashboardsUseCase(dashboards, repomocks.NewMockSnapshotRepository(t))
	err := uc.Delete(ctx, "a")
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestManageDashboardsUseCase_DeleteSnapshot(t *testing.T) {
	ctx := testContext()

	snapshots := repomocks.NewMockSnapshotRepository(t)
	snapshots.EXPECT().DeleteSnapshot(mock.Anything, "dk").Return(nil)

	uc := usecase.NewManageDashboardsUseCase(repomocks.NewMockDashboardRepository(t), snapshots)
	assert.NoError(t, uc.DeleteSnapshot(ctx, "dk"))
}

func TestManageDashboardsUseCase_PurgeSnapshots(t *testing.T) {
	ctx := testContext()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	snapshots := repomocks.NewMockSnapshotRepository(t)
	snapshots.EXPECT().PurgeExpired(mock.Anything, now).Return(int64(2), nil)

	uc := usecase.NewManageDashboardsUseCase(repomocks.NewMockDashboardRepository(t), snapshots)
	n, err := uc.PurgeSnapshots(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
