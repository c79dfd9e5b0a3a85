// Package urlsync keeps the panel view state of a dashboard (the panel
// shown full screen and the panel being inspected) in step with the
// location query string.
package urlsync

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/scene"
)

// Query parameters owned by the syncer.
const (
	ParamViewPanel = "viewPanel"
	ParamInspect   = "inspect"
)

type binding struct {
	param string
	get   func(s dashboard.DashboardState) string
	set   func(d *dashboard.Dashboard, key string)
}

var bindings = []binding{
	{
		param: ParamViewPanel,
		get:   func(s dashboard.DashboardState) string { return s.ViewPanelKey },
		set:   (*dashboard.Dashboard).SetViewPanel,
	},
	{
		param: ParamInspect,
		get:   func(s dashboard.DashboardState) string { return s.InspectPanelKey },
		set:   (*dashboard.Dashboard).SetInspectPanel,
	},
}

// Keys returns the query parameters the syncer reads and writes. Other
// parameters are never touched.
func Keys() []string {
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.param)
	}
	return keys
}

// Syncer maps panel references in the query string to dashboard state and
// back. It must be used on the scene loop.
type Syncer struct {
	dash *dashboard.Dashboard
	loc  port.Location

	// pending holds clone keys waiting for the next repeat pass, by param
	pending map[string]string
	// applying suppresses the outbound write of changes made while
	// applying the location
	applying bool
}

// New creates a syncer for d.
func New(d *dashboard.Dashboard, loc port.Location) *Syncer {
	return &Syncer{
		dash:    d,
		loc:     loc,
		pending: make(map[string]string),
	}
}

// Start applies the current location, then keeps both sides in step until
// the returned function is called.
func (s *Syncer) Start() func() {
	unsubState := s.dash.Subscribe(s.onStateChanged)
	unsubRepeats := s.dash.SubscribeToEvent(scene.EventRepeatsProcessed, func(scene.Event) {
		s.retryPending()
	})
	s.ApplyLocation(s.loc.Query())
	return func() {
		unsubState()
		unsubRepeats()
		clear(s.pending)
	}
}

// ApplyLocation resolves the owned parameters of query. A parameter naming
// a panel that does not exist raises an alert and is removed from the
// location. A repeat clone key that does not exist yet is retried once
// after the next repeat pass.
func (s *Syncer) ApplyLocation(query url.Values) {
	s.applying = true
	defer func() { s.applying = false }()
	for _, b := range bindings {
		s.apply(b, query.Get(b.param), false)
	}
}

func (s *Syncer) apply(b binding, value string, retried bool) {
	delete(s.pending, b.param)
	current := b.get(s.dash.State())
	if value == "" {
		if current != "" {
			b.set(s.dash, "")
		}
		return
	}

	panel, err := s.resolve(value)
	if err == nil {
		if panel.Key() != current {
			b.set(s.dash, panel.Key())
		}
		return
	}

	env := scene.EnvironmentOf(s.dash)
	if !retried && dashboard.IsCloneKey(value) {
		env.Logger().Debug().Str("param", b.param).Str("key", value).Msg("waiting for repeats to resolve panel")
		s.pending[b.param] = value
		return
	}

	env.Logger().Warn().Err(err).Str("param", b.param).Str("value", value).Msg("url references a missing panel")
	env.Notify(port.NotificationError, "Panel not found", fmt.Sprintf("%s=%s does not match any panel", b.param, value))
	if current != "" {
		b.set(s.dash, "")
	}
	s.loc.Update(map[string]*string{b.param: nil})
}

func (s *Syncer) resolve(value string) (*dashboard.VizPanel, error) {
	if id, err := strconv.Atoi(value); err == nil {
		return dashboard.FindVizPanelByID(s.dash, id)
	}
	return dashboard.FindVizPanelByKey(s.dash, value)
}

func (s *Syncer) retryPending() {
	if len(s.pending) == 0 {
		return
	}
	s.applying = true
	defer func() { s.applying = false }()
	for _, b := range bindings {
		if value, ok := s.pending[b.param]; ok {
			s.apply(b, value, true)
		}
	}
}

func (s *Syncer) onStateChanged(next, prev dashboard.DashboardState) {
	if s.applying {
		return
	}
	changes := make(map[string]*string)
	for _, b := range bindings {
		n := b.get(next)
		if n == b.get(prev) {
			continue
		}
		if n == "" {
			changes[b.param] = nil
			continue
		}
		changes[b.param] = &n
	}
	if len(changes) > 0 {
		s.loc.Update(changes)
	}
}
