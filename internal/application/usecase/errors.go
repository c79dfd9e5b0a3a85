package usecase

import "errors"

var (
	// ErrUnknownLoadKind is returned for a load kind other than db or snapshot.
	ErrUnknownLoadKind = errors.New("unknown dashboard load kind")
	// ErrEmptyKey is returned when a load names no uid or key.
	ErrEmptyKey = errors.New("empty dashboard uid or snapshot key")
	// ErrReadOnlySnapshot is returned when saving or editing a snapshot.
	ErrReadOnlySnapshot = errors.New("snapshots are read-only")
	// ErrUnsavedChanges is returned when leaving edit mode with a dirty dashboard.
	ErrUnsavedChanges = errors.New("dashboard has unsaved changes")
	// ErrNilDashboard is returned when no dashboard is given.
	ErrNilDashboard = errors.New("nil dashboard")
)
