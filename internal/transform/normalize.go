package transform

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// Normalize migrates doc and writes it back through a detached scene:
// the result is what a save of the untouched dashboard would store.
func Normalize(ctx context.Context, doc *entity.Dashboard) (*entity.Dashboard, error) {
	migrated, err := Migrate(ctx, doc)
	if err != nil {
		return nil, err
	}
	d, err := Deserialize(ctx, migrated, entity.DashboardMeta{}, nil)
	if err != nil {
		return nil, err
	}
	return Serialize(d)
}
