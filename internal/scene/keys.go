package scene

import (
	"strconv"
	"sync/atomic"
)

var keyCounter atomic.Uint64

// NewKey returns a process-unique generated key.
func NewKey() string {
	return "scene-" + strconv.FormatUint(keyCounter.Add(1), 10)
}

// Rekey replaces obj's key. The caller keeps keys unique within the tree.
func Rekey(obj Object, key string) {
	obj.sceneNode().key = key
}
