// Package cli wires the dashctl commands to the engine, the SQLite store
// and the offline collaborators.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/grafana/grafana-sub060/internal/application/usecase"
	"github.com/grafana/grafana-sub060/internal/cli/styles"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/infrastructure/cache"
	"github.com/grafana/grafana-sub060/internal/infrastructure/config"
	"github.com/grafana/grafana-sub060/internal/infrastructure/librarypanel"
	"github.com/grafana/grafana-sub060/internal/infrastructure/persistence/sqlite"
	"github.com/grafana/grafana-sub060/internal/infrastructure/query"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// AppOptions are the global command line overrides.
type AppOptions struct {
	// ConfigFile replaces the XDG config file when set.
	ConfigFile string
	// Output overrides the configured output format.
	Output string
	// NoColor disables styled output.
	NoColor bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	db      *sqlite.LazyDB
	logFile io.Closer

	storeOnce sync.Once
	store     *Store
	storeErr  error

	fixturesOnce sync.Once
	fixtures     query.Fixtures
	fixturesErr  error

	ctx context.Context
}

// Store groups the repositories and use cases backed by the database.
type Store struct {
	Dashboards    repository.DashboardRepository
	Snapshots     repository.SnapshotRepository
	LibraryPanels repository.LibraryPanelRepository
	Library       *librarypanel.Loader

	LoadDashboardUC   *usecase.LoadDashboardUseCase
	SaveDashboardUC   *usecase.SaveDashboardUseCase
	ImportDashboardUC *usecase.ImportDashboardUseCase
	CreateSnapshotUC  *usecase.CreateSnapshotUseCase
	ManageUC          *usecase.ManageDashboardsUseCase
	EditUC            *usecase.EditDashboardUseCase
}

// NewApp loads configuration and prepares the logger. The database is
// opened on first use of Store.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	if opts.Output != "" {
		cfg.Output.Format = opts.Output
	}
	if opts.NoColor {
		cfg.Output.Color = false
	}

	logger, logFile, err := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logging.FileConfig{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Str("db_path", cfg.Database.Path).Msg("dashctl starting")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		db:            sqlite.NewLazyDB(cfg.Database.Path),
		logFile:       logFile,
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// JSONOutput reports whether results should be printed as JSON.
func (a *App) JSONOutput() bool {
	return a.Config.Output.Format == config.OutputFormatJSON
}

// Store opens the database and builds the repositories and use cases.
func (a *App) Store() (*Store, error) {
	a.storeOnce.Do(func() {
		a.store, a.storeErr = a.openStore(a.ctx)
	})
	return a.store, a.storeErr
}

func (a *App) openStore(ctx context.Context) (*Store, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	dashboards := sqlite.NewDashboardRepository(db)
	snapshots := sqlite.NewSnapshotRepository(db)
	libraryPanels := sqlite.NewLibraryPanelRepository(db)

	lpCfg := a.Config.LibraryPanels
	var lpCache *cache.LRU[string, *entity.LibraryPanel]
	if lpCfg.CacheSize > 0 {
		lpCache = cache.NewLRU[string, *entity.LibraryPanel](lpCfg.CacheSize, time.Duration(lpCfg.CacheTTLSeconds)*time.Second)
	}
	var loader *librarypanel.Loader
	if lpCache != nil {
		loader = librarypanel.NewLoader(libraryPanels, lpCache)
	} else {
		loader = librarypanel.NewLoader(libraryPanels, nil)
	}

	s := &Store{
		Dashboards:        dashboards,
		Snapshots:         snapshots,
		LibraryPanels:     libraryPanels,
		Library:           loader,
		LoadDashboardUC:   usecase.NewLoadDashboardUseCase(dashboards, snapshots),
		SaveDashboardUC:   usecase.NewSaveDashboardUseCase(dashboards),
		ImportDashboardUC: usecase.NewImportDashboardUseCase(dashboards),
		CreateSnapshotUC:  usecase.NewCreateSnapshotUseCase(snapshots),
		ManageUC:          usecase.NewManageDashboardsUseCase(dashboards, snapshots),
		EditUC:            usecase.NewEditDashboardUseCase(),
	}

	if a.Config.Snapshots.PurgeOnOpen {
		if _, err := s.ManageUC.PurgeSnapshots(ctx, time.Now()); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("snapshot purge on open failed")
		}
	}
	return s, nil
}

// StoreStatus opens the store and reports its schema version and row
// counts.
func (a *App) StoreStatus() (*sqlite.StoreStatus, error) {
	if _, err := a.Store(); err != nil {
		return nil, err
	}
	return a.db.Status(a.ctx)
}

// Fixtures returns the canned query results named by the config, or an
// empty set when none is configured.
func (a *App) Fixtures() (query.Fixtures, error) {
	a.fixturesOnce.Do(func() {
		path := a.Config.Query.FixturesPath
		if path == "" {
			a.fixtures = query.Fixtures{}
			return
		}
		a.fixtures, a.fixturesErr = query.LoadFixtures(path)
	})
	return a.fixtures, a.fixturesErr
}

// SetFixturesPath overrides the configured fixtures file. It must be
// called before Fixtures.
func (a *App) SetFixturesPath(path string) {
	if path != "" {
		a.Config.Query.FixturesPath = path
	}
}

// QueryTimeout bounds how long a scene may take to settle.
func (a *App) QueryTimeout() time.Duration {
	return time.Duration(a.Config.Query.TimeoutSeconds) * time.Second
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil && a.db.IsInitialized() {
		logging.FromContext(a.ctx).Debug().Str("path", a.db.Path()).Msg("closing dashboard store")
		err = a.db.Close()
	}
	if a.logFile != nil {
		err = errors.Join(err, a.logFile.Close())
	}
	return err
}
