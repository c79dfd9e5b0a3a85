package scene

import "sync"

// ActivateTree activates root and all its descendants, children before
// parents, and returns the matching deactivation.
func ActivateTree(root Object) func() {
	activateSubtree(root)
	var once sync.Once
	return func() { once.Do(func() { DeactivateTree(root) }) }
}

func activateSubtree(obj Object) {
	for _, c := range obj.Children() {
		activateSubtree(c)
	}
	if !obj.IsActive() {
		obj.Activate()
	}
	// children may have been replaced while the subtree activated
	for _, c := range obj.Children() {
		if !c.IsActive() {
			activateSubtree(c)
		}
	}
}

// DeactivateTree deactivates root and its descendants, children first.
func DeactivateTree(root Object) {
	for _, c := range root.Children() {
		DeactivateTree(c)
	}
	root.Deactivate()
}
