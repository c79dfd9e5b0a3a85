package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
)

type libraryPanelRepo struct {
	db *sql.DB
}

// NewLibraryPanelRepository creates a new SQLite-backed library panel repository.
func NewLibraryPanelRepository(db *sql.DB) repository.LibraryPanelRepository {
	return &libraryPanelRepo{db: db}
}

func (r *libraryPanelRepo) GetLibraryPanel(ctx context.Context, uid string) (*entity.LibraryPanel, error) {
	lp := entity.LibraryPanel{UID: uid}
	var model string
	err := r.db.QueryRowContext(ctx,
		`SELECT name, description, version, model FROM library_panels WHERE uid = ?`, uid,
	).Scan(&lp.Name, &lp.Description, &lp.Version, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("library panel %s: %w", uid, entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(model), &lp.Model); err != nil {
		return nil, fmt.Errorf("failed to decode library panel %s: %w", uid, err)
	}
	return &lp, nil
}

func (r *libraryPanelRepo) SaveLibraryPanel(ctx context.Context, lp *entity.LibraryPanel) error {
	if lp == nil || lp.UID == "" || lp.Model == nil {
		return fmt.Errorf("library panel needs a uid and a model")
	}
	model, err := json.Marshal(lp.Model)
	if err != nil {
		return fmt.Errorf("failed to encode library panel: %w", err)
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO library_panels (uid, name, description, version, model)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(uid) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			version = library_panels.version + 1,
			model = excluded.model
		RETURNING version`,
		lp.UID, lp.Name, lp.Description, string(model),
	)
	if err := row.Scan(&lp.Version); err != nil {
		return fmt.Errorf("failed to upsert library panel: %w", err)
	}
	return nil
}

func (r *libraryPanelRepo) ListLibraryPanels(ctx context.Context) ([]*entity.LibraryPanel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uid, name, description, version FROM library_panels ORDER BY name COLLATE NOCASE, uid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	list := []*entity.LibraryPanel{}
	for rows.Next() {
		var lp entity.LibraryPanel
		if err := rows.Scan(&lp.UID, &lp.Name, &lp.Description, &lp.Version); err != nil {
			return nil, err
		}
		list = append(list, &lp)
	}
	return list, rows.Err()
}
