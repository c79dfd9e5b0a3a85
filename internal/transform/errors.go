package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDocument is returned when there is no document to load.
	ErrNilDocument = errors.New("nil dashboard document")
	// ErrUnknownVariableType is returned for a templating record whose type
	// is not one of the supported kinds.
	ErrUnknownVariableType = errors.New("unknown variable type")
	// ErrRowShape is returned for row records that cannot be laid out: an
	// expanded row carrying nested panels or a row nested in a row.
	ErrRowShape = errors.New("invalid row layout")
	// ErrDuplicatePanelID is returned when two panel records share an id.
	ErrDuplicatePanelID = errors.New("duplicate panel id")
	// ErrUnsupportedNode is returned when the scene holds a node the
	// serializer has no record shape for.
	ErrUnsupportedNode = errors.New("unsupported scene node")
)

// StructuralError aborts a load. Path points at the offending record.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structural(path string, err error) error {
	return &StructuralError{Path: path, Err: err}
}
