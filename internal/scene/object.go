// Package scene is the scene-graph runtime: stateful nodes with a parent
// back-reference, synchronous change notification, bubbling events and an
// activation lifecycle.
//
// All mutation happens on a single loop goroutine. SetState notifies
// synchronously and handlers may call SetState on other nodes.
package scene

import (
	"reflect"
	"sync"
)

// Object is a node of the scene graph.
type Object interface {
	// Key is unique across the whole tree at any instant.
	Key() string
	// Parent is a non-owning back-reference; nil for the root or detached nodes.
	Parent() Object
	// Children lists owned children in document order.
	Children() []Object
	IsActive() bool
	// Activate runs the node's activation handlers and returns the matching
	// deactivation. Children are not activated.
	Activate() func()
	Deactivate()
	SubscribeToEvent(eventType EventType, handler func(Event)) func()
	Publish(evt Event, bubble bool)

	sceneNode() *node
}

// node is the non-generic part of every scene object.
type node struct {
	key      string
	self     Object
	parent   Object
	active   bool
	handlers []func() func()
	cleanups []func()
	events   map[EventType][]*eventSub
}

type eventSub struct {
	handler func(Event)
	removed bool
}

func (n *node) sceneNode() *node { return n }

// Key returns the node key.
func (n *node) Key() string { return n.key }

// Parent returns the owning node, if attached.
func (n *node) Parent() Object { return n.parent }

// IsActive reports whether the node is activated.
func (n *node) IsActive() bool { return n.active }

// Children is overridden by nodes that own children.
func (n *node) Children() []Object { return nil }

// AddActivationHandler registers fn to run on every activation. The
// returned cleanup, if any, runs on deactivation.
func (n *node) AddActivationHandler(fn func() func()) {
	n.handlers = append(n.handlers, fn)
}

// Activate implements Object. Activating an active node is a no-op.
func (n *node) Activate() func() {
	if n.active {
		return func() {}
	}
	n.active = true
	for _, h := range n.handlers {
		if cleanup := h(); cleanup != nil {
			n.cleanups = append(n.cleanups, cleanup)
		}
		if !n.active {
			// a handler deactivated us
			break
		}
	}
	var once sync.Once
	return func() { once.Do(n.Deactivate) }
}

// Deactivate runs cleanups in reverse registration order.
func (n *node) Deactivate() {
	if !n.active {
		return
	}
	n.active = false
	cleanups := n.cleanups
	n.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// SubscribeToEvent registers handler for events of eventType published on,
// or bubbled through, this node.
func (n *node) SubscribeToEvent(eventType EventType, handler func(Event)) func() {
	if n.events == nil {
		n.events = make(map[EventType][]*eventSub)
	}
	sub := &eventSub{handler: handler}
	n.events[eventType] = append(n.events[eventType], sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		subs := n.events[eventType]
		kept := make([]*eventSub, 0, len(subs))
		for _, s := range subs {
			if s != sub {
				kept = append(kept, s)
			}
		}
		n.events[eventType] = kept
	}
}

// Publish delivers evt to this node's subscribers and, when bubble is set,
// to every ancestor's.
func (n *node) Publish(evt Event, bubble bool) {
	var cur Object = n.self
	for cur != nil {
		cur.sceneNode().dispatch(evt)
		if !bubble {
			return
		}
		cur = cur.Parent()
	}
}

func (n *node) dispatch(evt Event) {
	subs := n.events[evt.Type()]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*eventSub, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if !s.removed {
			s.handler(evt)
		}
	}
}

// Base is embedded by every concrete scene object. S is the object's
// immutable state record: replace it through SetState, never mutate it.
type Base[S any] struct {
	node
	state S
	subs  []*stateSub[S]
}

type stateSub[S any] struct {
	fn      func(next, prev S)
	removed bool
}

// Init wires the base to its concrete object. An empty key gets a
// generated one.
func (b *Base[S]) Init(self Object, key string, state S) {
	if key == "" {
		key = NewKey()
	}
	b.self = self
	b.key = key
	b.state = state
	adopt(self)
}

// State returns the current state record.
func (b *Base[S]) State() S {
	return b.state
}

// SetState replaces the state record and notifies subscribers with
// (next, prev). Every call notifies; there is no batching.
func (b *Base[S]) SetState(next S) {
	b.setState(next, false)
}

// SetGeneratedState is SetState for changes the engine derives on its own
// (repeat expansion, layout reflow). The published StateChangedEvent is
// flagged so edit-mode dirty tracking ignores it.
func (b *Base[S]) SetGeneratedState(next S) {
	b.setState(next, true)
}

// UpdateState copies the state, lets fn edit the copy and sets it. fn must
// replace slices and maps it changes rather than editing them in place.
func (b *Base[S]) UpdateState(fn func(s *S)) {
	next := b.state
	fn(&next)
	b.SetState(next)
}

// Subscribe registers fn for state changes.
func (b *Base[S]) Subscribe(fn func(next, prev S)) func() {
	sub := &stateSub[S]{fn: fn}
	b.subs = append(b.subs, sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		kept := make([]*stateSub[S], 0, len(b.subs))
		for _, s := range b.subs {
			if s != sub {
				kept = append(kept, s)
			}
		}
		b.subs = kept
	}
}

func (b *Base[S]) setState(next S, generated bool) {
	prevChildren := b.self.Children()
	prev := b.state
	b.state = next
	adopt(b.self)

	subs := make([]*stateSub[S], len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		if !s.removed {
			s.fn(next, prev)
		}
	}

	b.self.Publish(&StateChangedEvent{Object: b.self, Prev: prev, Next: next, Generated: generated}, true)
	reconcile(b.self, prevChildren)
}

// adopt points every child of obj back at obj.
func adopt(obj Object) {
	for _, child := range obj.Children() {
		child.sceneNode().parent = obj
	}
}

// reconcile deactivates children that left obj and, when obj is active,
// activates children that joined it.
func reconcile(obj Object, prevChildren []Object) {
	current := obj.Children()
	if len(prevChildren) > 0 {
		still := make(map[Object]struct{}, len(current))
		for _, c := range current {
			still[c] = struct{}{}
		}
		for _, c := range prevChildren {
			if _, ok := still[c]; ok {
				continue
			}
			if c.Parent() == obj {
				c.sceneNode().parent = nil
			}
			DeactivateTree(c)
		}
	}
	if !obj.IsActive() {
		return
	}
	for _, c := range current {
		if !c.IsActive() {
			activateSubtree(c)
		}
	}
}

// AppendObjects appends the non-nil objects to list. Typed nil pointers
// are skipped too, so optional state fields can be passed directly.
func AppendObjects(list []Object, objs ...Object) []Object {
	for _, o := range objs {
		if isNil(o) {
			continue
		}
		list = append(list, o)
	}
	return list
}

func isNil(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
