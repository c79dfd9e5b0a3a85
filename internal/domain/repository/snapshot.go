package repository

import (
	"context"
	"time"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// SnapshotRepository stores snapshot documents.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snap *entity.Snapshot) error
	// GetSnapshot returns entity.ErrNotFound for unknown or expired keys.
	GetSnapshot(ctx context.Context, key string) (*entity.Snapshot, error)
	DeleteSnapshot(ctx context.Context, deleteKey string) error
	// PurgeExpired removes snapshots that expired at now and returns how
	// many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
