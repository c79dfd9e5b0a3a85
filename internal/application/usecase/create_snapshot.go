package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/transform"
)

// CreateSnapshotUseCase captures a live dashboard with its current data
// and stores it under a generated key.
type CreateSnapshotUseCase struct {
	snapshots repository.SnapshotRepository
	now       func() time.Time
}

// NewCreateSnapshotUseCase creates a new snapshot use case.
func NewCreateSnapshotUseCase(snapshots repository.SnapshotRepository) *CreateSnapshotUseCase {
	return &CreateSnapshotUseCase{snapshots: snapshots, now: time.Now}
}

// CreateSnapshotInput contains parameters for a snapshot.
type CreateSnapshotInput struct {
	Dashboard *dashboard.Dashboard
	// Name defaults to the dashboard title.
	Name string
	// Expires is the snapshot lifetime; zero keeps it forever.
	Expires     time.Duration
	OriginalURL string
}

// Execute serializes the snapshot and stores it. The live dashboard is
// left as it is.
func (uc *CreateSnapshotUseCase) Execute(ctx context.Context, input CreateSnapshotInput) (*entity.Snapshot, error) {
	d := input.Dashboard
	if d == nil {
		return nil, ErrNilDashboard
	}
	now := uc.now()

	doc, err := transform.SerializeSnapshot(d, transform.SnapshotOptions{
		Timestamp:   now,
		OriginalURL: input.OriginalURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	snap := &entity.Snapshot{
		Key:       randomKey(16),
		DeleteKey: randomKey(16),
		Name:      input.Name,
		Dashboard: doc,
		Created:   now,
	}
	if snap.Name == "" {
		snap.Name = d.State().Title
	}
	if input.Expires > 0 {
		snap.Expires = now.Add(input.Expires)
	}

	if err := uc.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("key", snap.Key).
		Str("dashboard_uid", d.State().UID).
		Int("panels", doc.CountPanels()).
		Msg("snapshot created")
	return snap, nil
}

// randomKey returns n random bytes hex encoded.
func randomKey(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
