package port

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// QueryRequest is everything the query collaborator needs to run a panel's queries.
type QueryRequest struct {
	// Key identifies the requesting data provider.
	Key           string
	PanelID       int
	Datasource    *entity.DataSourceRef
	Queries       []entity.Query
	TimeRange     entity.TimeRange
	Timezone      string
	MaxDataPoints int
	Interval      string
	// ScopedVars are the resolved variables visible from the requesting panel,
	// repeat-local values included.
	ScopedVars map[string]entity.ScopedVar
}

// QueryExecutor runs queries and streams result batches. Only the latest
// batch and its loading state are consumed. The channel is closed when the
// request completes or ctx is cancelled.
type QueryExecutor interface {
	Execute(ctx context.Context, req QueryRequest) (<-chan entity.PanelData, error)
}

// Transformer applies a transformation pipeline to a result batch.
type Transformer interface {
	Transform(ctx context.Context, transformations []entity.Transformation, data entity.PanelData) (entity.PanelData, error)
}
