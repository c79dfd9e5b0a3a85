package variables

import (
	"regexp"

	"github.com/grafana/grafana-sub060/internal/scene"
)

// variablePattern matches $var, [[var]], [[var:fmt]], ${var}, ${var.field}
// and ${var:fmt}.
var variablePattern = regexp.MustCompile(`\$(\w+)|\[\[(\w+?)(?::(\w+))?\]\]|\$\{(\w+)(?:\.([^:^\}]+))?(?::([^\}]+))?\}`)

// ExtractVariableNames returns the distinct variable names referenced by
// texts, in first-seen order.
func ExtractVariableNames(texts ...string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, text := range texts {
		for _, m := range variablePattern.FindAllStringSubmatch(text, -1) {
			name := firstNonEmpty(m[1], m[2], m[4])
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type depSnapshot struct {
	value   string
	text    string
	loading bool
	found   bool
}

func snapshotOf(name string, from scene.Object) depSnapshot {
	v, ok := Lookup(name, from)
	if !ok {
		return depSnapshot{}
	}
	return depSnapshot{
		value:   v.Value().String(),
		text:    v.Text().String(),
		loading: v.IsLoading(),
		found:   true,
	}
}

// SubscribeDependencies calls fn with the variable name whenever one of
// names, as seen from obj, changes value or finishes loading. It listens
// on every variable set in obj's scope chain at subscription time.
func SubscribeDependencies(from scene.Object, names []string, fn func(name string)) func() {
	if len(names) == 0 {
		return func() {}
	}
	last := make(map[string]depSnapshot, len(names))
	for _, name := range names {
		last[name] = snapshotOf(name, from)
	}

	handler := func(evt scene.Event) {
		changed, ok := evt.(*scene.StateChangedEvent)
		if !ok {
			return
		}
		v, ok := changed.Object.(Variable)
		if !ok {
			return
		}
		name := v.Name()
		prev, tracked := last[name]
		if !tracked {
			return
		}
		next := snapshotOf(name, from)
		last[name] = next
		switch {
		case next.loading:
			return
		case prev.loading:
			fn(name)
		case prev.value != next.value || prev.text != next.text || prev.found != next.found:
			fn(name)
		}
	}

	var unsubs []func()
	for _, set := range Scopes(from) {
		unsubs = append(unsubs, set.SubscribeToEvent(scene.EventStateChanged, handler))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
