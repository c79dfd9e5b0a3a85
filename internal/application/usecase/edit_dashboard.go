package usecase

import (
	"context"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/transform"
)

// EditDashboardUseCase drives the edit session of a live dashboard.
type EditDashboardUseCase struct{}

// NewEditDashboardUseCase creates a new edit use case.
func NewEditDashboardUseCase() *EditDashboardUseCase {
	return &EditDashboardUseCase{}
}

// Enter starts edit mode with the current save model as baseline.
func (uc *EditDashboardUseCase) Enter(ctx context.Context, d *dashboard.Dashboard) error {
	if d == nil {
		return ErrNilDashboard
	}
	if d.State().Meta.IsSnapshot {
		return ErrReadOnlySnapshot
	}
	if d.State().IsEditing {
		return nil
	}
	initial, err := transform.Serialize(d)
	if err != nil {
		return fmt.Errorf("failed to capture edit baseline: %w", err)
	}
	d.EnterEditMode(initial)
	logging.FromContext(ctx).Debug().Str("dashboard_uid", d.State().UID).Msg("edit mode entered")
	return nil
}

// Exit leaves edit mode. A dirty dashboard is refused with
// ErrUnsavedChanges unless force is set.
func (uc *EditDashboardUseCase) Exit(ctx context.Context, d *dashboard.Dashboard, force bool) error {
	if d == nil {
		return ErrNilDashboard
	}
	if !d.State().IsEditing {
		return nil
	}
	if d.State().IsDirty && !force {
		return ErrUnsavedChanges
	}
	d.ExitEditMode()
	logging.FromContext(ctx).Debug().Str("dashboard_uid", d.State().UID).Msg("edit mode exited")
	return nil
}

// Discard throws away every change made since edit mode started by
// rebuilding the content from the baseline, then leaves edit mode.
func (uc *EditDashboardUseCase) Discard(ctx context.Context, d *dashboard.Dashboard) error {
	if d == nil {
		return ErrNilDashboard
	}
	initial := d.InitialSaveModel()
	if !d.State().IsEditing || initial == nil {
		return dashboard.ErrNotEditing
	}
	fresh, err := transform.Deserialize(ctx, initial, d.State().Meta, nil)
	if err != nil {
		return fmt.Errorf("failed to rebuild dashboard: %w", err)
	}
	d.ReplaceContent(fresh)
	d.ExitEditMode()
	logging.FromContext(ctx).Info().Str("dashboard_uid", d.State().UID).Msg("changes discarded")
	return nil
}
