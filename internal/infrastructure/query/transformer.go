package query

import (
	"context"
	"fmt"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// Transformation ids understood by FrameTransformer.
const (
	TransformLimit              = "limit"
	TransformOrganize           = "organize"
	TransformFilterFieldsByName = "filterFieldsByName"
)

// FrameTransformer implements port.Transformer for the transformations
// that only reshape frames. Unknown ids pass the data through.
type FrameTransformer struct{}

var _ port.Transformer = FrameTransformer{}

// Transform implements port.Transformer.
func (FrameTransformer) Transform(ctx context.Context, transformations []entity.Transformation, data entity.PanelData) (entity.PanelData, error) {
	log := logging.FromContext(ctx)
	out := data
	out.Series = entity.CloneFrames(data.Series)

	for _, t := range transformations {
		if t.Disabled {
			continue
		}
		var err error
		switch t.ID {
		case TransformLimit:
			err = limitFrames(out.Series, t.Options)
		case TransformOrganize:
			out.Series = organizeFrames(out.Series, t.Options)
		case TransformFilterFieldsByName:
			out.Series = filterFields(out.Series, t.Options)
		default:
			log.Debug().Str("transformation", t.ID).Msg("unsupported transformation skipped")
		}
		if err != nil {
			return data, fmt.Errorf("transformation %s: %w", t.ID, err)
		}
	}
	return out, nil
}

func limitFrames(frames []entity.DataFrame, opts map[string]any) error {
	limit, ok := number(opts["limitField"])
	if !ok {
		return fmt.Errorf("limitField must be a number")
	}
	if limit < 0 {
		return fmt.Errorf("limitField must not be negative")
	}
	n := int(limit)
	for i := range frames {
		for j := range frames[i].Fields {
			if vals := frames[i].Fields[j].Values; len(vals) > n {
				frames[i].Fields[j].Values = vals[:n]
			}
		}
	}
	return nil
}

func organizeFrames(frames []entity.DataFrame, opts map[string]any) []entity.DataFrame {
	exclude, _ := opts["excludeByName"].(map[string]any)
	rename, _ := opts["renameByName"].(map[string]any)
	for i := range frames {
		kept := frames[i].Fields[:0]
		for _, f := range frames[i].Fields {
			if hidden, _ := exclude[f.Name].(bool); hidden {
				continue
			}
			if to, ok := rename[f.Name].(string); ok && to != "" {
				f.Name = to
			}
			kept = append(kept, f)
		}
		frames[i].Fields = kept
	}
	return frames
}

func filterFields(frames []entity.DataFrame, opts map[string]any) []entity.DataFrame {
	include, _ := opts["include"].(map[string]any)
	raw, _ := include["names"].([]any)
	if len(raw) == 0 {
		return frames
	}
	names := make(map[string]struct{}, len(raw))
	for _, n := range raw {
		if s, ok := n.(string); ok {
			names[s] = struct{}{}
		}
	}
	for i := range frames {
		kept := frames[i].Fields[:0]
		for _, f := range frames[i].Fields {
			if _, ok := names[f.Name]; ok {
				kept = append(kept, f)
			}
		}
		frames[i].Fields = kept
	}
	return frames
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
