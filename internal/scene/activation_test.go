package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafana/grafana-sub060/internal/scene"
)

func trackActivation(b *box, log *[]string) {
	b.AddActivationHandler(func() func() {
		*log = append(*log, "on:"+b.Key())
		return func() { *log = append(*log, "off:"+b.Key()) }
	})
}

func TestActivate_IsIdempotent(t *testing.T) {
	var log []string
	b := newBox("b", "x")
	trackActivation(b, &log)

	deactivate := b.Activate()
	b.Activate()
	assert.True(t, b.IsActive())
	assert.Equal(t, []string{"on:b"}, log)

	deactivate()
	deactivate()
	assert.False(t, b.IsActive())
	assert.Equal(t, []string{"on:b", "off:b"}, log)
}

func TestActivateTree_ChildrenBeforeParents(t *testing.T) {
	var log []string
	leaf := newBox("leaf", "l")
	mid := newBox("mid", "m", leaf)
	root := newBox("root", "r", mid)
	for _, b := range []*box{leaf, mid, root} {
		trackActivation(b, &log)
	}

	deactivate := scene.ActivateTree(root)
	assert.Equal(t, []string{"on:leaf", "on:mid", "on:root"}, log)

	log = nil
	deactivate()
	assert.Equal(t, []string{"off:leaf", "off:mid", "off:root"}, log)
}

func TestSetState_ReconcilesMountedChildren(t *testing.T) {
	var log []string
	first := newBox("first", "1")
	root := newBox("root", "r", first)
	trackActivation(first, &log)
	scene.ActivateTree(root)

	second := newBox("second", "2")
	trackActivation(second, &log)
	root.SetState(boxState{Items: []*box{second}})

	assert.False(t, first.IsActive())
	assert.Nil(t, first.Parent())
	assert.True(t, second.IsActive())
	assert.Equal(t, root, second.Parent())
	assert.Equal(t, []string{"on:first", "off:first", "on:second"}, log)
}

func TestSetState_InactiveParentDoesNotActivateNewChildren(t *testing.T) {
	root := newBox("root", "r")
	child := newBox("child", "c")

	root.SetState(boxState{Items: []*box{child}})

	assert.False(t, child.IsActive())
	assert.Equal(t, root, child.Parent())
}

func TestActivateTree_ActivatesChildrenAddedDuringActivation(t *testing.T) {
	late := newBox("late", "l")
	root := newBox("root", "r")
	root.AddActivationHandler(func() func() {
		root.SetState(boxState{Items: []*box{late}})
		return nil
	})

	scene.ActivateTree(root)
	assert.True(t, late.IsActive())
}
