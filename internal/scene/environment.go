package scene

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/mainloop"
)

// Environment carries the collaborators a scene needs. It is attached to
// the root (usually the dashboard) and found from any node by walking up.
type Environment struct {
	// Context scopes every asynchronous operation started by the scene.
	Context context.Context
	// Post schedules fn on the loop goroutine. Nil means results are
	// applied synchronously on the calling goroutine.
	Post func(fn func())
	// Coalescer merges bursts of same-key work (query re-runs). Optional.
	Coalescer       *mainloop.Coalescer
	Queries         port.QueryExecutor
	Transformer     port.Transformer
	VariableOptions port.VariableOptionsLoader
	LibraryPanels   port.LibraryPanelLoader
	Notifier        port.Notifier
}

// EnvironmentProvider is implemented by nodes that hold an Environment.
type EnvironmentProvider interface {
	Environment() *Environment
}

var defaultEnvironment = &Environment{
	Context:  context.Background(),
	Notifier: port.NopNotifier{},
}

// EnvironmentOf returns the nearest Environment above (or at) obj, or an
// inert default.
func EnvironmentOf(obj Object) *Environment {
	for cur := obj; !isNil(cur); cur = cur.Parent() {
		if p, ok := cur.(EnvironmentProvider); ok {
			if env := p.Environment(); env != nil {
				return env
			}
		}
	}
	return defaultEnvironment
}

// Ctx returns the environment context, never nil.
func (e *Environment) Ctx() context.Context {
	if e == nil || e.Context == nil {
		return context.Background()
	}
	return e.Context
}

// Logger returns the logger carried by the environment context.
func (e *Environment) Logger() *zerolog.Logger {
	return logging.FromContext(e.Ctx())
}

// Notify raises a user-visible alert.
func (e *Environment) Notify(notifType port.NotificationType, title string, details ...string) {
	if e == nil || e.Notifier == nil {
		return
	}
	e.Notifier.Notify(e.Ctx(), notifType, title, details...)
}

// Go runs work off the loop and applies the returned continuation on it.
// The continuation is dropped once ctx is done, so a deactivated node
// never sees late results.
func (e *Environment) Go(ctx context.Context, work func(ctx context.Context) func()) {
	if e == nil || e.Post == nil {
		if apply := work(ctx); apply != nil && ctx.Err() == nil {
			apply()
		}
		return
	}
	post := e.Post
	go func() {
		apply := work(ctx)
		if apply == nil || ctx.Err() != nil {
			return
		}
		post(func() {
			if ctx.Err() == nil {
				apply()
			}
		})
	}()
}

// Schedule runs fn for key, merging bursts through the coalescer when one
// is configured and running fn immediately otherwise.
func (e *Environment) Schedule(key string, fn func()) {
	if e == nil || e.Coalescer == nil {
		fn()
		return
	}
	e.Coalescer.Post(key, fn)
}
