package port

import "net/url"

// Location reads and writes the current query string. Callers only touch
// the keys they own; a nil value in Update removes the key.
type Location interface {
	Query() url.Values
	Update(changes map[string]*string)
}
