package variables

import (
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// AdHocFilterSetState is the state of an ad hoc filter set.
type AdHocFilterSetState struct {
	Meta
	Datasource  *entity.DataSourceRef
	Filters     []entity.AdHocFilter
	BaseFilters []entity.AdHocFilter
}

// AdHocFilterSet holds key/operator/value filters applied to every query
// of its datasource. Filter sets live beside, not inside, the variable set.
type AdHocFilterSet struct {
	scene.Base[AdHocFilterSetState]
}

// NewAdHocFilterSet creates a filter set.
func NewAdHocFilterSet(state AdHocFilterSetState) *AdHocFilterSet {
	s := &AdHocFilterSet{}
	s.Init(s, "", state)
	return s
}

// Name returns the filter set name.
func (s *AdHocFilterSet) Name() string { return s.State().Name }

// SetFilters replaces the filter list.
func (s *AdHocFilterSet) SetFilters(filters []entity.AdHocFilter) {
	s.UpdateState(func(st *AdHocFilterSetState) { st.Filters = filters })
}
