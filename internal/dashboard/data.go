package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// DataProvider is the closed set of panel data sources: *QueryRunner,
// *DataTransformer or *SharedQuery.
type DataProvider interface {
	scene.Object
	Data() entity.PanelData

	dataProvider()
}

func cloneProvider(p DataProvider) DataProvider {
	switch x := p.(type) {
	case nil:
		return nil
	case *QueryRunner:
		return x.clone()
	case *DataTransformer:
		return x.clone()
	case *SharedQuery:
		return x.clone()
	default:
		panic(fmt.Sprintf("dashboard: unknown data provider %T", p))
	}
}

// QueryRunnerState holds the panel queries and their latest result.
type QueryRunnerState struct {
	Datasource    *entity.DataSourceRef
	Queries       []entity.Query
	MaxDataPoints *int
	Interval      string
	Data          entity.PanelData
}

// QueryRunner executes its queries through the environment's query
// executor. Snapshot queries carrying embedded frames are replayed
// without the executor.
type QueryRunner struct {
	scene.Base[QueryRunnerState]

	runCancel context.CancelFunc
}

// NewQueryRunner creates a query runner.
func NewQueryRunner(state QueryRunnerState) *QueryRunner {
	r := &QueryRunner{}
	r.Init(r, "", state)
	r.AddActivationHandler(r.onActivate)
	return r
}

func (r *QueryRunner) dataProvider() {}

// Data implements DataProvider.
func (r *QueryRunner) Data() entity.PanelData { return r.State().Data }

// VariableDependencies implements variables.DependencyProvider.
func (r *QueryRunner) VariableDependencies() []string {
	s := r.State()
	var texts []string
	if s.Datasource != nil {
		texts = append(texts, s.Datasource.UID)
	}
	if data, err := json.Marshal(s.Queries); err == nil {
		texts = append(texts, string(data))
	}
	texts = append(texts, s.Interval)
	return variables.ExtractVariableNames(texts...)
}

// SetQueries is a user edit; the runner re-runs when active.
func (r *QueryRunner) SetQueries(queries []entity.Query) {
	r.UpdateState(func(s *QueryRunnerState) { s.Queries = queries })
	if r.IsActive() {
		r.RunQueries()
	}
}

func (r *QueryRunner) onActivate() func() {
	var unsubs []func()
	unsubs = append(unsubs, variables.SubscribeDependencies(r, r.VariableDependencies(), func(string) {
		r.RunQueries()
	}))
	if d, ok := scene.Ancestor[*Dashboard](r); ok && d.State().TimeRange != nil {
		unsubs = append(unsubs, d.State().TimeRange.Subscribe(func(_, _ TimeRangeState) {
			r.RunQueries()
		}))
	}
	if p, ok := scene.Ancestor[*VizPanel](r); ok {
		unsubs = append(unsubs, p.Subscribe(func(next, prev VizPanelState) {
			if next.Variables != prev.Variables {
				r.RunQueries()
			}
		}))
	}

	r.RunQueries()

	return func() {
		for _, u := range unsubs {
			u()
		}
		r.cancelRun()
		if env := scene.EnvironmentOf(r); env.Coalescer != nil {
			env.Coalescer.Cancel(r.Key())
		}
	}
}

func (r *QueryRunner) cancelRun() {
	if r.runCancel != nil {
		r.runCancel()
		r.runCancel = nil
	}
}

// RunQueries (re-)executes the queries unless a dependency is still
// loading; the dependency subscription re-runs once it resolves.
func (r *QueryRunner) RunQueries() {
	if variables.HasLoadingDependency(r) {
		return
	}
	scene.EnvironmentOf(r).Schedule(r.Key(), r.run)
}

func (r *QueryRunner) run() {
	if !r.IsActive() {
		return
	}
	s := r.State()
	if frames, ok := snapshotFrames(s.Queries); ok {
		r.setData(entity.PanelData{State: entity.LoadingStateDone, Series: frames})
		return
	}

	env := scene.EnvironmentOf(r)
	if env.Queries == nil || len(s.Queries) == 0 {
		return
	}

	r.cancelRun()
	ctx, cancel := context.WithCancel(env.Ctx())
	r.runCancel = cancel

	req := r.buildRequest()
	loading := s.Data
	loading.State = entity.LoadingStateLoading
	r.setData(loading)

	stream, err := env.Queries.Execute(ctx, req)
	if err != nil {
		env.Logger().Warn().Err(err).Str("runner", r.Key()).Msg("query execution failed")
		r.setData(entity.PanelData{
			State: entity.LoadingStateError,
			Error: &entity.QueryError{Message: err.Error()},
		})
		return
	}

	if env.Post == nil {
		for data := range stream {
			if ctx.Err() != nil {
				return
			}
			r.setData(data)
		}
		return
	}
	post := env.Post
	go func() {
		for data := range stream {
			batch := data
			post(func() {
				if ctx.Err() == nil {
					r.setData(batch)
				}
			})
		}
	}()
}

func (r *QueryRunner) buildRequest() port.QueryRequest {
	s := r.State()
	req := port.QueryRequest{
		Key:        r.Key(),
		Datasource: s.Datasource,
		Queries:    make([]entity.Query, 0, len(s.Queries)),
		Interval:   variables.Interpolate(r, s.Interval),
		ScopedVars: variables.ScopedVars(r),
	}
	if s.Datasource != nil {
		ds := *s.Datasource
		ds.UID = variables.Interpolate(r, ds.UID)
		req.Datasource = &ds
	}
	for _, q := range s.Queries {
		req.Queries = append(req.Queries, q.Clone())
	}
	if s.MaxDataPoints != nil {
		req.MaxDataPoints = *s.MaxDataPoints
	}

	var panelRange *PanelTimeRange
	if p, ok := scene.Ancestor[*VizPanel](r); ok {
		req.PanelID = p.PanelID()
		panelRange = p.State().TimeRange
	}
	if d, ok := scene.Ancestor[*Dashboard](r); ok {
		req.TimeRange = d.CurrentTimeRange()
		if tr := d.State().TimeRange; tr != nil {
			req.Timezone = tr.State().Timezone
		}
	}
	if panelRange != nil {
		req.TimeRange = panelRange.Resolve(req.TimeRange)
	}
	return req
}

func (r *QueryRunner) setData(data entity.PanelData) {
	s := r.State()
	s.Data = data
	r.SetGeneratedState(s)
}

func (r *QueryRunner) clone() *QueryRunner {
	s := r.State()
	if s.Datasource != nil {
		ds := *s.Datasource
		s.Datasource = &ds
	}
	queries := make([]entity.Query, 0, len(s.Queries))
	for _, q := range s.Queries {
		queries = append(queries, q.Clone())
	}
	if s.Queries != nil {
		s.Queries = queries
	}
	if s.MaxDataPoints != nil {
		n := *s.MaxDataPoints
		s.MaxDataPoints = &n
	}
	s.Data = entity.PanelData{}
	c := NewQueryRunner(s)
	scene.Rekey(c, r.Key())
	return c
}

// IsSnapshot reports whether every query replays embedded frames.
func (r *QueryRunner) IsSnapshot() bool {
	_, ok := snapshotFrames(r.State().Queries)
	return ok
}

func snapshotFrames(queries []entity.Query) ([]entity.DataFrame, bool) {
	if len(queries) == 0 {
		return nil, false
	}
	var frames []entity.DataFrame
	for _, q := range queries {
		if q.QueryType() != entity.SnapshotQueryType {
			return nil, false
		}
		f, err := q.SnapshotFrames()
		if err != nil {
			return nil, false
		}
		frames = append(frames, f...)
	}
	return frames, true
}

// DataTransformerState wraps an inner provider with a transformation list.
type DataTransformerState struct {
	Transformations []entity.Transformation
	Inner           DataProvider
	Data            entity.PanelData
}

// DataTransformer applies its transformations to every result of the
// inner provider.
type DataTransformer struct {
	scene.Base[DataTransformerState]
}

// NewDataTransformer creates a transformation pipeline.
func NewDataTransformer(state DataTransformerState) *DataTransformer {
	t := &DataTransformer{}
	t.Init(t, "", state)
	t.AddActivationHandler(t.onActivate)
	return t
}

func (t *DataTransformer) dataProvider() {}

// Data implements DataProvider.
func (t *DataTransformer) Data() entity.PanelData { return t.State().Data }

// Children implements scene.Object.
func (t *DataTransformer) Children() []scene.Object {
	return scene.AppendObjects(nil, t.State().Inner)
}

func (t *DataTransformer) onActivate() func() {
	inner := t.State().Inner
	if inner == nil {
		return nil
	}
	unsub := inner.SubscribeToEvent(scene.EventStateChanged, func(evt scene.Event) {
		if e, ok := evt.(*scene.StateChangedEvent); ok && e.Object == inner {
			t.apply(inner.Data())
		}
	})
	t.apply(inner.Data())
	return unsub
}

func (t *DataTransformer) apply(data entity.PanelData) {
	env := scene.EnvironmentOf(t)
	out := data
	if env.Transformer != nil && len(t.State().Transformations) > 0 && data.State == entity.LoadingStateDone {
		transformed, err := env.Transformer.Transform(env.Ctx(), t.State().Transformations, data)
		if err != nil {
			out.State = entity.LoadingStateError
			out.Error = &entity.QueryError{Message: err.Error()}
		} else {
			out = transformed
		}
	}
	s := t.State()
	s.Data = out
	t.SetGeneratedState(s)
}

func (t *DataTransformer) clone() *DataTransformer {
	s := t.State()
	s.Transformations = cloneTransformations(s.Transformations)
	s.Inner = cloneProvider(s.Inner)
	s.Data = entity.PanelData{}
	c := NewDataTransformer(s)
	scene.Rekey(c, t.Key())
	return c
}

func cloneTransformations(in []entity.Transformation) []entity.Transformation {
	if in == nil {
		return nil
	}
	out := make([]entity.Transformation, len(in))
	for i, tr := range in {
		tr.Options = entity.CloneMap(tr.Options)
		out[i] = tr
	}
	return out
}

// SharedQueryState references another panel's results.
type SharedQueryState struct {
	PanelID int
	Data    entity.PanelData
}

// SharedQuery mirrors the data of the panel with PanelID.
type SharedQuery struct {
	scene.Base[SharedQueryState]
}

// NewSharedQuery creates a shared query provider.
func NewSharedQuery(panelID int) *SharedQuery {
	q := &SharedQuery{}
	q.Init(q, "", SharedQueryState{PanelID: panelID})
	q.AddActivationHandler(q.onActivate)
	return q
}

func (q *SharedQuery) dataProvider() {}

// Data implements DataProvider.
func (q *SharedQuery) Data() entity.PanelData { return q.State().Data }

func (q *SharedQuery) onActivate() func() {
	source, err := FindVizPanelByID(scene.Root(q), q.State().PanelID)
	if err != nil || source.State().Data == nil {
		q.setData(entity.PanelData{
			State: entity.LoadingStateError,
			Error: &entity.QueryError{Message: "shared query source panel " + strconv.Itoa(q.State().PanelID) + " not found"},
		})
		return nil
	}
	provider := source.State().Data
	unsub := provider.SubscribeToEvent(scene.EventStateChanged, func(evt scene.Event) {
		if e, ok := evt.(*scene.StateChangedEvent); ok && e.Object == provider {
			q.setData(provider.Data())
		}
	})
	q.setData(provider.Data())
	return unsub
}

func (q *SharedQuery) setData(data entity.PanelData) {
	s := q.State()
	s.Data = data
	q.SetGeneratedState(s)
}

func (q *SharedQuery) clone() *SharedQuery {
	c := NewSharedQuery(q.State().PanelID)
	scene.Rekey(c, q.Key())
	return c
}
