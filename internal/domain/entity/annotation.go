package entity

// Annotation is an annotation query record.
type Annotation struct {
	Name       string            `json:"name"`
	Datasource *DataSourceRef    `json:"datasource,omitempty"`
	Enable     bool              `json:"enable"`
	Hide       bool              `json:"hide,omitempty"`
	IconColor  string            `json:"iconColor,omitempty"`
	BuiltIn    int               `json:"builtIn,omitempty"`
	Type       string            `json:"type,omitempty"`
	Target     map[string]any    `json:"target,omitempty"`
	Filter     *AnnotationFilter `json:"filter,omitempty"`
}

// AnnotationFilter restricts an annotation layer to some panels.
type AnnotationFilter struct {
	Exclude bool  `json:"exclude,omitempty"`
	IDs     []int `json:"ids"`
}

// Clone deep-copies the annotation record.
func (a *Annotation) Clone() *Annotation {
	if a == nil {
		return nil
	}
	out := *a
	if a.Datasource != nil {
		ds := *a.Datasource
		out.Datasource = &ds
	}
	out.Target = CloneMap(a.Target)
	if a.Filter != nil {
		f := *a.Filter
		f.IDs = append([]int(nil), a.Filter.IDs...)
		out.Filter = &f
	}
	return &out
}
