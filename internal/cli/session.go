package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/dashboard"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/mainloop"
	"github.com/grafana/grafana-sub060/internal/scene"
	"github.com/grafana/grafana-sub060/internal/variables"
)

// ErrNotSettled is returned when a scene keeps loading past its deadline.
var ErrNotSettled = errors.New("scene did not settle")

// SessionDeps are the collaborators a session binds to its scene.
type SessionDeps struct {
	Queries         port.QueryExecutor
	Transformer     port.Transformer
	VariableOptions port.VariableOptionsLoader
	LibraryPanels   port.LibraryPanelLoader
}

// Session runs one dashboard scene on a loop owned by the calling
// goroutine. Collaborator results are posted to the queue and applied by
// Settle.
type Session struct {
	Queue    *mainloop.Queue
	Env      *scene.Environment
	Notifier *Notifier

	cancel context.CancelFunc
}

// NewSession creates a session whose scene work is scoped to ctx.
func NewSession(ctx context.Context, deps SessionDeps) *Session {
	ctx, cancel := context.WithCancel(logging.WithComponent(ctx, "scene"))
	q := mainloop.NewQueue()
	n := NewNotifier()
	return &Session{
		Queue:    q,
		Notifier: n,
		Env: &scene.Environment{
			Context:         ctx,
			Post:            q.Post,
			Coalescer:       mainloop.NewCoalescer(q.Post),
			Queries:         deps.Queries,
			Transformer:     deps.Transformer,
			VariableOptions: deps.VariableOptions,
			LibraryPanels:   deps.LibraryPanels,
			Notifier:        n,
		},
		cancel: cancel,
	}
}

// Settle runs loop tasks until nothing under root is loading and the
// queue is empty, or ctx ends.
func (s *Session) Settle(ctx context.Context, root scene.Object) error {
	for {
		s.Queue.RunPending()
		if !Busy(root) && s.Queue.Len() == 0 {
			return nil
		}
		if !s.Queue.RunNext(ctx) {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrNotSettled, err)
			}
			return ErrNotSettled
		}
	}
}

// Close cancels outstanding collaborator work and stops the queue.
func (s *Session) Close() {
	s.cancel()
	s.Env.Coalescer.Destroy()
	s.Queue.Close()
}

// Busy reports whether any node under root is still waiting for a
// collaborator: a loading variable, a running query or an unresolved
// library panel.
func Busy(root scene.Object) bool {
	found := scene.FindByPredicate(root, func(o scene.Object) bool {
		if !o.IsActive() {
			return false
		}
		switch n := o.(type) {
		case variables.Variable:
			return n.IsLoading()
		case *dashboard.QueryRunner:
			st := n.Data().State
			return st == entity.LoadingStateLoading || st == entity.LoadingStateStreaming
		case *dashboard.LibraryPanelItem:
			st := n.State()
			return !st.IsLoaded && st.Error == "" && scene.EnvironmentOf(n).LibraryPanels != nil
		}
		return false
	})
	return found != nil
}

// valueSelector is implemented by the option-list variable kinds.
type valueSelector interface {
	SelectValues(values ...string)
}

// SelectVariable sets the value of the dashboard variable name. Several
// values select a multi-value variable.
func SelectVariable(d *dashboard.Dashboard, name string, values ...string) error {
	set := d.VariableSet()
	if set == nil {
		return fmt.Errorf("%w: %s", variables.ErrVariableNotFound, name)
	}
	v, ok := set.ByName(name)
	if !ok {
		return fmt.Errorf("%w: %s", variables.ErrVariableNotFound, name)
	}
	sel, ok := v.(valueSelector)
	if !ok {
		return fmt.Errorf("variable %s (%s) has no selectable options", name, v.Kind())
	}
	sel.SelectValues(values...)
	return nil
}
