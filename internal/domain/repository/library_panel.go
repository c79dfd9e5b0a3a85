package repository

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// LibraryPanelRepository stores library panel definitions.
type LibraryPanelRepository interface {
	GetLibraryPanel(ctx context.Context, uid string) (*entity.LibraryPanel, error)
	// SaveLibraryPanel upserts lp and bumps its version.
	SaveLibraryPanel(ctx context.Context, lp *entity.LibraryPanel) error
	ListLibraryPanels(ctx context.Context) ([]*entity.LibraryPanel, error)
}
