package entity

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by stores when a uid or key matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict is returned when a save is based on an outdated
	// version and overwrite was not requested.
	ErrVersionConflict = errors.New("dashboard version conflict")
)

// SaveOptions qualifies a dashboard save.
type SaveOptions struct {
	Message   string
	FolderUID string
	// Overwrite ignores the stored version.
	Overwrite bool
}

// DashboardSummary is one entry of a dashboard listing.
type DashboardSummary struct {
	UID       string    `json:"uid"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags,omitempty"`
	FolderUID string    `json:"folderUid,omitempty"`
	Version   int       `json:"version"`
	Updated   time.Time `json:"updated"`
}

// DashboardVersion is a stored revision of a dashboard.
type DashboardVersion struct {
	UID     string    `json:"uid"`
	Version int       `json:"version"`
	Message string    `json:"message,omitempty"`
	Created time.Time `json:"created"`
}

// Snapshot is a stored snapshot document. Key is the public lookup key,
// DeleteKey authorizes removal.
type Snapshot struct {
	Key       string     `json:"key"`
	DeleteKey string     `json:"deleteKey"`
	Name      string     `json:"name"`
	Dashboard *Dashboard `json:"dashboard"`
	Created   time.Time  `json:"created"`
	// Expires is zero for snapshots that never expire.
	Expires time.Time `json:"expires,omitzero"`
}

// IsExpired reports whether the snapshot expired at now.
func (s *Snapshot) IsExpired(now time.Time) bool {
	return !s.Expires.IsZero() && !now.Before(s.Expires)
}
