package port

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// LibraryPanelLoader fetches a stored library panel definition by uid.
type LibraryPanelLoader interface {
	LoadLibraryPanel(ctx context.Context, uid string) (*entity.LibraryPanel, error)
}

// OptionsRequest asks for the options of a query-backed or datasource-backed variable.
type OptionsRequest struct {
	Name       string
	Type       entity.VariableType
	Query      string
	Datasource *entity.DataSourceRef
	Regex      string
	Sort       int
	TimeRange  entity.TimeRange
}

// VariableOptionsLoader resolves variable options off the UI loop.
type VariableOptionsLoader interface {
	LoadOptions(ctx context.Context, req OptionsRequest) ([]entity.VariableOption, error)
}
