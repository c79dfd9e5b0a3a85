package cli

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
	"github.com/grafana/grafana-sub060/internal/transform"
)

// ValidationResult is the outcome of checking one document file.
type ValidationResult struct {
	Path          string `json:"path"`
	UID           string `json:"uid,omitempty"`
	Title         string `json:"title,omitempty"`
	SchemaVersion int    `json:"schemaVersion,omitempty"`
	Panels        int    `json:"panels"`
	// Structural is set when the document itself is malformed, as opposed
	// to unreadable.
	Structural bool   `json:"structural,omitempty"`
	Error      string `json:"error,omitempty"`

	// Normalized is the document a save of the loaded dashboard would store.
	Normalized *entity.Dashboard `json:"-"`
}

// OK reports whether the document loaded.
func (r ValidationResult) OK() bool {
	return r.Error == ""
}

// ValidateFiles migrates and builds every document in paths, at most limit
// at a time (GOMAXPROCS when limit is not positive). Results keep the
// order of paths.
func ValidateFiles(ctx context.Context, paths []string, limit int) ([]ValidationResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]ValidationResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ValidateFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ValidateFile migrates and builds one document.
func ValidateFile(ctx context.Context, path string) ValidationResult {
	log := logging.FromContext(ctx)
	res := ValidationResult{Path: path}

	doc, err := ReadDocument(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.UID = doc.UID
	res.Title = doc.Title
	res.SchemaVersion = doc.SchemaVersion

	normalized, err := transform.Normalize(ctx, doc)
	if err != nil {
		var structural *transform.StructuralError
		res.Structural = errors.As(err, &structural)
		res.Error = err.Error()
		log.Debug().Err(err).Str("path", path).Msg("document rejected")
		return res
	}
	res.Panels = normalized.CountPanels()
	res.Normalized = normalized
	return res
}
