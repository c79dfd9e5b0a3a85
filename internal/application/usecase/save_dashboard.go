package usecase

import (
	"context"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/transform"
)

// SaveDashboardUseCase serializes a live dashboard and stores it.
type SaveDashboardUseCase struct {
	dashboards repository.DashboardRepository
}

// NewSaveDashboardUseCase creates a new save use case.
func NewSaveDashboardUseCase(dashboards repository.DashboardRepository) *SaveDashboardUseCase {
	return &SaveDashboardUseCase{dashboards: dashboards}
}

// SaveDashboardInput contains parameters for a save.
type SaveDashboardInput struct {
	Dashboard *dashboard.Dashboard
	Message   string
	Overwrite bool
}

// Execute writes the save model of the dashboard. On success the stored
// document becomes the edit baseline and the dirty flag is cleared.
func (uc *SaveDashboardUseCase) Execute(ctx context.Context, input SaveDashboardInput) (*entity.SaveAck, error) {
	d := input.Dashboard
	if d == nil {
		return nil, ErrNilDashboard
	}
	if d.State().Meta.IsSnapshot {
		return nil, ErrReadOnlySnapshot
	}
	log := logging.FromContext(logging.WithDashboardUID(ctx, d.State().UID))

	doc, err := transform.Serialize(d)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize dashboard: %w", err)
	}

	ack, err := uc.dashboards.Save(ctx, doc, entity.SaveOptions{
		Message:   input.Message,
		FolderUID: d.State().Meta.FolderUID,
		Overwrite: input.Overwrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save dashboard: %w", err)
	}

	doc.UID = ack.UID
	doc.Version = ack.Version
	d.MarkSaved(doc, ack.Version)

	log.Info().Str("uid", ack.UID).Int("version", ack.Version).Msg("dashboard saved")
	return ack, nil
}

// ImportDashboardUseCase stores an external document after normalizing it.
type ImportDashboardUseCase struct {
	dashboards repository.DashboardRepository
}

// NewImportDashboardUseCase creates a new import use case.
func NewImportDashboardUseCase(dashboards repository.DashboardRepository) *ImportDashboardUseCase {
	return &ImportDashboardUseCase{dashboards: dashboards}
}

// Execute migrates doc, checks that it builds and stores the normalized
// result. Imports always overwrite.
func (uc *ImportDashboardUseCase) Execute(ctx context.Context, doc *entity.Dashboard, message string) (*entity.SaveAck, error) {
	normalized, err := transform.Normalize(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard: %w", err)
	}
	ack, err := uc.dashboards.Save(ctx, normalized, entity.SaveOptions{Message: message, Overwrite: true})
	if err != nil {
		return nil, fmt.Errorf("failed to save dashboard: %w", err)
	}
	logging.FromContext(ctx).Info().Str("uid", ack.UID).Int("version", ack.Version).Msg("dashboard imported")
	return ack, nil
}
