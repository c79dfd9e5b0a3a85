package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

func TestEditDashboardUseCase_DiscardRestoresBaseline(t *testing.T) {
	ctx := testContext()
	d := buildSample(t, entity.DashboardMeta{CanEdit: true})
	uc := usecase.NewEditDashboardUseCase()

	require.NoError(t, uc.Enter(ctx, d))
	assert.True(t, d.State().IsEditing)
	assert.False(t, d.State().IsDirty)

	d.SetTitle("Changed")
	panel, err := dashboard.FindVizPanelByID(d, 1)
	require.NoError(t, err)
	panel.SetTitle("Changed too")
	assert.True(t, d.State().IsDirty)

	require.ErrorIs(t, uc.Exit(ctx, d, false), usecase.ErrUnsavedChanges)
	assert.True(t, d.State().IsEditing)

	require.NoError(t, uc.Discard(ctx, d))
	assert.False(t, d.State().IsEditing)
	assert.False(t, d.State().IsDirty)
	assert.Equal(t, "Sample", d.State().Title)
	assert.True(t, d.State().Meta.CanEdit)

	panel, err = dashboard.FindVizPanelByID(d, 1)
	require.NoError(t, err)
	assert.Equal(t, "Notes", panel.State().Title)
}

func TestEditDashboardUseCase_ExitClean(t *testing.T) {
	ctx := testContext()
	d := buildSample(t, entity.DashboardMeta{})
	uc := usecase.NewEditDashboardUseCase()

	require.NoError(t, uc.Enter(ctx, d))
	require.NoError(t, uc.Exit(ctx, d, false))
	assert.False(t, d.State().IsEditing)

	assert.ErrorIs(t, uc.Discard(ctx, d), dashboard.ErrNotEditing)
}

func TestEditDashboardUseCase_ForceExitKeepsChanges(t *testing.T) {
	ctx := testContext()
	d := buildSample(t, entity.DashboardMeta{})
	uc := usecase.NewEditDashboardUseCase()

	require.NoError(t, uc.Enter(ctx, d))
	d.SetTitle("Kept")
	require.NoError(t, uc.Exit(ctx, d, true))
	assert.Equal(t, "Kept", d.State().Title)
	assert.False(t, d.State().IsEditing)
}

func TestEditDashboardUseCase_RefusesSnapshots(t *testing.T) {
	d := buildSample(t, entity.DashboardMeta{IsSnapshot: true})
	assert.ErrorIs(t, usecase.NewEditDashboardUseCase().Enter(testContext(), d), usecase.ErrReadOnlySnapshot)
}
