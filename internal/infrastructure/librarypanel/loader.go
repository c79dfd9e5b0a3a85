// Package librarypanel loads stored library panel definitions for the
// scene engine.
package librarypanel

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/domain/repository"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// Loader implements port.LibraryPanelLoader over a repository. Concurrent
// loads of the same uid share one fetch and results are cached.
type Loader struct {
	repo  repository.LibraryPanelRepository
	cache port.Cache[string, *entity.LibraryPanel]
	group singleflight.Group
}

var _ port.LibraryPanelLoader = (*Loader)(nil)

// NewLoader creates a loader. cache may be nil to always fetch.
func NewLoader(repo repository.LibraryPanelRepository, cache port.Cache[string, *entity.LibraryPanel]) *Loader {
	return &Loader{repo: repo, cache: cache}
}

// LoadLibraryPanel returns a copy of the stored definition of uid.
func (l *Loader) LoadLibraryPanel(ctx context.Context, uid string) (*entity.LibraryPanel, error) {
	if l.cache != nil {
		if lp, ok := l.cache.Get(uid); ok {
			return clone(lp), nil
		}
	}

	ch := l.group.DoChan(uid, func() (any, error) {
		// a cancelled caller must not fail the others sharing this fetch
		lp, err := l.repo.GetLibraryPanel(context.WithoutCancel(ctx), uid)
		if err != nil {
			return nil, err
		}
		if l.cache != nil {
			l.cache.Set(uid, lp)
		}
		logging.FromContext(ctx).Debug().Str("uid", uid).Int("version", lp.Version).Msg("library panel fetched")
		return lp, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("failed to load library panel %s: %w", uid, res.Err)
		}
		return clone(res.Val.(*entity.LibraryPanel)), nil
	}
}

// Invalidate drops the cached definition of uid.
func (l *Loader) Invalidate(uid string) {
	if l.cache != nil {
		l.cache.Remove(uid)
	}
	l.group.Forget(uid)
}

func clone(lp *entity.LibraryPanel) *entity.LibraryPanel {
	out := *lp
	out.Model = entity.ClonePanel(lp.Model)
	return &out
}
