package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// LazyDB opens the store on first use. Commands that only work on files
// never create the database.
type LazyDB struct {
	path string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

var _ port.StoreProvider = (*LazyDB)(nil)

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens and migrates the store once. Later calls, including concurrent
// ones, get the same handle or the same error.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() { l.open(ctx) })

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("open store %s: %w", l.path, l.err)
	}
	if l.db == nil {
		return nil, fmt.Errorf("store %s is closed", l.path)
	}
	return l.db, nil
}

func (l *LazyDB) open(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("path", l.path).Logger()
	log.Debug().Msg("opening dashboard store")

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Msg("dashboard store unavailable")
	}

	l.mu.Lock()
	l.db, l.err = db, err
	l.mu.Unlock()
}

func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path is the database file the store opens.
func (l *LazyDB) Path() string {
	return l.path
}
