package dashboard

import "errors"

var (
	// ErrInvalidRepeatParent is returned when a repeater is not placed in
	// the layout container it expands into.
	ErrInvalidRepeatParent = errors.New("repeater has an unexpected parent")
	// ErrPanelNotFound is returned by panel lookups that match nothing.
	ErrPanelNotFound = errors.New("panel not found")
	// ErrNotEditing is returned by edit operations outside edit mode.
	ErrNotEditing = errors.New("dashboard is not in edit mode")
)
