package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// DefaultListLimit bounds listings that pass no limit.
const DefaultListLimit = 100

// ManageDashboardsUseCase lists, inspects and deletes stored dashboards.
type ManageDashboardsUseCase struct {
	dashboards repository.DashboardRepository
	snapshots  repository.SnapshotRepository
}

// NewManageDashboardsUseCase creates a new dashboard management use case.
func NewManageDashboardsUseCase(
	dashboards repository.DashboardRepository,
	snapshots repository.SnapshotRepository,
) *ManageDashboardsUseCase {
	return &ManageDashboardsUseCase{dashboards: dashboards, snapshots: snapshots}
}

// List returns stored dashboards matching query.
func (uc *ManageDashboardsUseCase) List(ctx context.Context, query string, limit int) ([]*entity.DashboardSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list, err := uc.dashboards.List(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	return list, nil
}

// Versions returns the stored versions of a dashboard, newest first.
func (uc *ManageDashboardsUseCase) Versions(ctx context.Context, uid string) ([]*entity.DashboardVersion, error) {
	versions, err := uc.dashboards.Versions(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions of %s: %w", uid, err)
	}
	return versions, nil
}

// Delete removes a dashboard with all its versions.
func (uc *ManageDashboardsUseCase) Delete(ctx context.Context, uid string) error {
	if err := uc.dashboards.Delete(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete dashboard %s: %w", uid, err)
	}
	logging.FromContext(ctx).Info().Str("uid", uid).Msg("dashboard deleted")
	return nil
}

// DeleteSnapshot removes the snapshot authorized by deleteKey.
func (uc *ManageDashboardsUseCase) DeleteSnapshot(ctx context.Context, deleteKey string) error {
	if err := uc.snapshots.DeleteSnapshot(ctx, deleteKey); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// PurgeSnapshots removes every snapshot that expired by now.
func (uc *ManageDashboardsUseCase) PurgeSnapshots(ctx context.Context, now time.Time) (int64, error) {
	n, err := uc.snapshots.PurgeExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge snapshots: %w", err)
	}
	if n > 0 {
		logging.FromContext(ctx).Info().Int64("count", n).Msg("expired snapshots purged")
	}
	return n, nil
}
