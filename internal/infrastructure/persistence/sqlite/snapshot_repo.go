package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
)

type snapshotRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSnapshotRepository creates a new SQLite-backed snapshot repository.
func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepo{db: db, now: time.Now}
}

func (r *snapshotRepo) SaveSnapshot(ctx context.Context, snap *entity.Snapshot) error {
	if snap == nil || snap.Dashboard == nil {
		return fmt.Errorf("cannot save empty snapshot")
	}
	data, err := json.Marshal(snap.Dashboard)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	var expires int64
	if !snap.Expires.IsZero() {
		expires = snap.Expires.Unix()
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, delete_key, name, data, created, expires) VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Key, snap.DeleteKey, snap.Name, string(data), snap.Created.Unix(), expires,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) GetSnapshot(ctx context.Context, key string) (*entity.Snapshot, error) {
	var (
		snap             = entity.Snapshot{Key: key}
		data             string
		created, expires int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT delete_key, name, data, created, expires FROM snapshots WHERE key = ?`, key,
	).Scan(&snap.DeleteKey, &snap.Name, &data, &created, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %s: %w", key, entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	snap.Created = time.Unix(created, 0).UTC()
	if expires > 0 {
		snap.Expires = time.Unix(expires, 0).UTC()
	}
	if snap.IsExpired(r.now()) {
		return nil, fmt.Errorf("snapshot %s expired: %w", key, entity.ErrNotFound)
	}

	snap.Dashboard = &entity.Dashboard{}
	if err := json.Unmarshal([]byte(data), snap.Dashboard); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return &snap, nil
}

func (r *snapshotRepo) DeleteSnapshot(ctx context.Context, deleteKey string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE delete_key = ?`, deleteKey)
	if err != nil {
		return err
	}
	return expectAffected(res, "snapshot")
}

func (r *snapshotRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE expires > 0 AND expires <= ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
