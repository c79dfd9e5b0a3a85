package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	repomocks "github.com/grafana/grafana-sub060/internal/domain/repository/mocks"
)

func TestCreateSnapshotUseCase_StoresSnapshot(t *testing.T) {
	ctx := testContext()

	snapshots := repomocks.NewMockSnapshotRepository(t)
	snapshots.EXPECT().SaveSnapshot(mock.Anything, mock.MatchedBy(func(s *entity.Snapshot) bool {
		return len(s.Key) == 32 && len(s.DeleteKey) == 32 && s.Key != s.DeleteKey &&
			s.Name == "Sample" && s.Dashboard.Snapshot != nil &&
			s.Expires.Sub(s.Created) == time.Hour
	})).Return(nil)

	d := buildSample(t, entity.DashboardMeta{})
	uc := usecase.NewCreateSnapshotUseCase(snapshots)
	snap, err := uc.Execute(ctx, usecase.CreateSnapshotInput{Dashboard: d, Expires: time.Hour, OriginalURL: "/d/abc"})
	require.NoError(t, err)

	assert.Equal(t, "/d/abc", snap.Dashboard.Snapshot.OriginalURL)
	assert.Nil(t, d.State().Snapshot)
	assert.False(t, snap.IsExpired(snap.Created))
	assert.True(t, snap.IsExpired(snap.Created.Add(time.Hour)))
}

func TestCreateSnapshotUseCase_NeverExpiresByDefault(t *testing.T) {
	ctx := testContext()

	snapshots := repomocks.NewMockSnapshotRepository(t)
	snapshots.EXPECT().SaveSnapshot(mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewCreateSnapshotUseCase(snapshots)
	snap, err := uc.Execute(ctx, usecase.CreateSnapshotInput{Dashboard: buildSample(t, entity.DashboardMeta{}), Name: "mine"})
	require.NoError(t, err)

	assert.Equal(t, "mine", snap.Name)
	assert.True(t, snap.Expires.IsZero())
	assert.False(t, snap.IsExpired(time.Now().Add(24*365*time.Hour)))
}
