// Package query provides offline data collaborators: a query executor and
// a variable options loader answering from canned frames, and a
// transformer for frame-reshaping transformations. They back rendering
// snapshots and exercising repeats without a datasource.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// Wildcard is the fixture key matching every query without a more specific entry.
const Wildcard = "*"

// Fixtures maps lookup keys to frames. A query is answered by the first
// key present among "<panelId>/<refId>", "<datasourceUid>/<refId>",
// "<refId>" and Wildcard.
type Fixtures map[string][]entity.DataFrame

// StaticExecutor implements port.QueryExecutor from Fixtures.
type StaticExecutor struct {
	fixtures Fixtures
}

var _ port.QueryExecutor = (*StaticExecutor)(nil)

// NewStaticExecutor creates an executor over fixtures.
func NewStaticExecutor(fixtures Fixtures) *StaticExecutor {
	if fixtures == nil {
		fixtures = Fixtures{}
	}
	return &StaticExecutor{fixtures: fixtures}
}

// LoadFixtures reads a JSON object of key to frame list.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	return f, nil
}

// Execute streams a Loading batch followed by the Done batch. Queries with
// no fixture contribute no frames.
func (e *StaticExecutor) Execute(ctx context.Context, req port.QueryRequest) (<-chan entity.PanelData, error) {
	log := logging.FromContext(ctx)

	var series []entity.DataFrame
	for _, q := range req.Queries {
		frames, key := e.lookup(req, q.RefID())
		if key == "" {
			log.Debug().Str("runner", req.Key).Str("ref_id", q.RefID()).Msg("no fixture for query")
			continue
		}
		for _, f := range entity.CloneFrames(frames) {
			if f.RefID == "" {
				f.RefID = q.RefID()
			}
			series = append(series, f)
		}
	}

	ch := make(chan entity.PanelData, 2)
	go func() {
		defer close(ch)
		batches := []entity.PanelData{
			{State: entity.LoadingStateLoading, TimeRange: req.TimeRange},
			{State: entity.LoadingStateDone, Series: series, TimeRange: req.TimeRange},
		}
		for _, b := range batches {
			select {
			case <-ctx.Done():
				return
			case ch <- b:
			}
		}
	}()
	return ch, nil
}

func (e *StaticExecutor) lookup(req port.QueryRequest, refID string) ([]entity.DataFrame, string) {
	keys := make([]string, 0, 4)
	if req.PanelID > 0 {
		keys = append(keys, strconv.Itoa(req.PanelID)+"/"+refID)
	}
	if req.Datasource != nil && req.Datasource.UID != "" {
		keys = append(keys, req.Datasource.UID+"/"+refID)
	}
	keys = append(keys, refID, Wildcard)
	for _, k := range keys {
		if frames, ok := e.fixtures[k]; ok {
			return frames, k
		}
	}
	return nil, ""
}
