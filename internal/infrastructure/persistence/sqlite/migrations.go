package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/grafana/grafana-sub060/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations applies all pending embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	provider, err := newMigrationProvider(db)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		log.Debug().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("migration applied")
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get db version after migration: %w", err)
	}
	if len(results) > 0 {
		log.Info().Int("applied", len(results)).Int64("version", version).Msg("database migrations applied")
	} else {
		log.Debug().Int64("version", version).Msg("database schema up to date")
	}
	return nil
}

// SchemaVersion returns the highest applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

// StoreStatus summarizes the content of the store.
type StoreStatus struct {
	Path          string `json:"path"`
	SchemaVersion int64  `json:"schemaVersion"`
	Dashboards    int64  `json:"dashboards"`
	Versions      int64  `json:"versions"`
	Snapshots     int64  `json:"snapshots"`
	LibraryPanels int64  `json:"libraryPanels"`
}

// Status counts the stored rows per table.
func (l *LazyDB) Status(ctx context.Context) (*StoreStatus, error) {
	db, err := l.DB(ctx)
	if err != nil {
		return nil, err
	}
	st := &StoreStatus{Path: l.path}
	if st.SchemaVersion, err = SchemaVersion(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	counts := []struct {
		table string
		dst   *int64
	}{
		{"dashboards", &st.Dashboards},
		{"dashboard_versions", &st.Versions},
		{"snapshots", &st.Snapshots},
		{"library_panels", &st.LibraryPanels},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	return st, nil
}
