package repository

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// DashboardRepository defines operations for dashboard document persistence.
type DashboardRepository interface {
	// GetByUID loads the latest version of a dashboard with its metadata.
	GetByUID(ctx context.Context, uid string) (*entity.DashboardDTO, error)

	// Save stores doc as a new version. A document without a uid gets a
	// generated one. Returns entity.ErrVersionConflict when doc.Version is
	// not the stored version and opts.Overwrite is unset.
	Save(ctx context.Context, doc *entity.Dashboard, opts entity.SaveOptions) (*entity.SaveAck, error)

	// List returns dashboards whose title contains query (all when empty).
	List(ctx context.Context, query string, limit int) ([]*entity.DashboardSummary, error)

	// Versions returns the stored versions of a dashboard, newest first.
	Versions(ctx context.Context, uid string) ([]*entity.DashboardVersion, error)

	// Delete removes a dashboard and its versions.
	Delete(ctx context.Context, uid string) error
}
