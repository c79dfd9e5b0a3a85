package entity

// CloneMap deep-copies a JSON-like map (nested maps and slices included).
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return CloneMap(x)
	case Query:
		return x.Clone()
	case []any:
		return cloneSlice(x)
	case []string:
		return append([]string(nil), x...)
	case []DataFrame:
		return CloneFrames(x)
	default:
		return v
	}
}

// ClonePanel deep-copies a panel record, nested row panels included.
func ClonePanel(p *Panel) *Panel {
	if p == nil {
		return nil
	}
	out := *p
	if p.Datasource != nil {
		ds := *p.Datasource
		out.Datasource = &ds
	}
	if p.Targets != nil {
		out.Targets = make([]Query, len(p.Targets))
		for i, q := range p.Targets {
			out.Targets[i] = q.Clone()
		}
	}
	if p.MaxDataPoints != nil {
		n := *p.MaxDataPoints
		out.MaxDataPoints = &n
	}
	out.Options = CloneMap(p.Options)
	out.FieldConfig = p.FieldConfig.Clone()
	if p.Transformations != nil {
		out.Transformations = make([]Transformation, len(p.Transformations))
		for i, t := range p.Transformations {
			t.Options = CloneMap(t.Options)
			out.Transformations[i] = t
		}
	}
	out.Links = append([]PanelLink(nil), p.Links...)
	if p.LibraryPanel != nil {
		ref := *p.LibraryPanel
		ref.Model = ClonePanel(p.LibraryPanel.Model)
		out.LibraryPanel = &ref
	}
	if p.Panels != nil {
		out.Panels = make([]*Panel, len(p.Panels))
		for i, nested := range p.Panels {
			out.Panels[i] = ClonePanel(nested)
		}
	}
	if p.ScopedVars != nil {
		out.ScopedVars = make(map[string]ScopedVar, len(p.ScopedVars))
		for k, v := range p.ScopedVars {
			out.ScopedVars[k] = v
		}
	}
	out.SnapshotData = CloneFrames(p.SnapshotData)
	return &out
}
