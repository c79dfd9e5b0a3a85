package entity

// LoadingState tags a result batch delivered by the query collaborator.
type LoadingState string

const (
	LoadingStateNotStarted LoadingState = "NotStarted"
	LoadingStateLoading    LoadingState = "Loading"
	LoadingStateStreaming  LoadingState = "Streaming"
	LoadingStateDone       LoadingState = "Done"
	LoadingStateError      LoadingState = "Error"
)

// DataFrame is a column-oriented result table.
type DataFrame struct {
	Name   string         `json:"name,omitempty"`
	RefID  string         `json:"refId,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
	Fields []Field        `json:"fields"`
}

// Field is one column of a data frame.
type Field struct {
	Name   string         `json:"name"`
	Type   string         `json:"type,omitempty"`
	Config map[string]any `json:"config,omitempty"`
	Values []any          `json:"values"`
}

// Len returns the number of rows of the frame.
func (f DataFrame) Len() int {
	if len(f.Fields) == 0 {
		return 0
	}
	return len(f.Fields[0].Values)
}

// QueryError describes a failed query.
type QueryError struct {
	Message string `json:"message"`
	RefID   string `json:"refId,omitempty"`
}

// PanelData is the latest result batch of a data provider.
type PanelData struct {
	State       LoadingState `json:"state"`
	Series      []DataFrame  `json:"series"`
	Annotations []DataFrame  `json:"annotations,omitempty"`
	Error       *QueryError  `json:"error,omitempty"`
	TimeRange   TimeRange    `json:"timeRange"`
}

// CloneFrames deep-copies frames so captured data is not shared with a live graph.
func CloneFrames(frames []DataFrame) []DataFrame {
	if frames == nil {
		return nil
	}
	out := make([]DataFrame, len(frames))
	for i, f := range frames {
		out[i] = DataFrame{Name: f.Name, RefID: f.RefID, Meta: CloneMap(f.Meta)}
		if f.Fields != nil {
			out[i].Fields = make([]Field, len(f.Fields))
			for j, fld := range f.Fields {
				out[i].Fields[j] = Field{
					Name:   fld.Name,
					Type:   fld.Type,
					Config: CloneMap(fld.Config),
					Values: cloneSlice(fld.Values),
				}
			}
		}
	}
	return out
}
