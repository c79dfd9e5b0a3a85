// Package port defines the collaborators the scene engine and the use
// cases depend on. Infrastructure packages implement them.
package port

import (
	"context"
	"database/sql"
)

// StoreProvider hands out the connection to the dashboard store. The store
// may be opened and migrated on the first call.
type StoreProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// IsInitialized reports whether DB has opened the store.
	IsInitialized() bool
	Close() error
}
