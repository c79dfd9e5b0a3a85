package cli

import (
	"context"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/infrastructure/query"
	"github.com/grafana/grafana-sub060/internal/transform"
	"github.com/grafana/grafana-sub060/internal/urlsync"
)

// SessionDeps builds the offline collaborators from config. The library
// panel loader needs the store, which is opened only when withLibrary is
// set.
func (a *App) SessionDeps(withLibrary bool) (SessionDeps, error) {
	fixtures, err := a.Fixtures()
	if err != nil {
		return SessionDeps{}, err
	}
	deps := SessionDeps{
		Queries:         query.NewStaticExecutor(fixtures),
		Transformer:     query.FrameTransformer{},
		VariableOptions: query.NewStaticOptionsLoader(fixtures),
	}
	if withLibrary {
		store, err := a.Store()
		if err != nil {
			return SessionDeps{}, err
		}
		deps.LibraryPanels = store.Library
	}
	return deps, nil
}

// Build migrates doc and builds its scene bound to the session.
func (s *Session) Build(ctx context.Context, doc *entity.Dashboard, meta entity.DashboardMeta) (*dashboard.Dashboard, error) {
	migrated, err := transform.Migrate(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate dashboard: %w", err)
	}
	d, err := transform.Deserialize(ctx, migrated, meta, s.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return d, nil
}

// Start keeps the panel view state of d in step with loc (when given) and
// activates the whole scene. The returned function undoes both.
func (s *Session) Start(d *dashboard.Dashboard, loc port.Location) func() {
	var stopSync func()
	if loc != nil {
		stopSync = urlsync.New(d, loc).Start()
	}
	deactivate := d.ActivateAll()
	return func() {
		deactivate()
		if stopSync != nil {
			stopSync()
		}
	}
}
