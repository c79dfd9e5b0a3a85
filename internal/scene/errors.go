package scene

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is returned by key lookups that match nothing.
var ErrObjectNotFound = errors.New("scene object not found")

// WrongTypeError is returned when a key lookup matches an object of an
// unexpected concrete type.
type WrongTypeError struct {
	Key  string
	Want string
	Got  string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("scene object %q is %s, expected %s", e.Key, e.Got, e.Want)
}
