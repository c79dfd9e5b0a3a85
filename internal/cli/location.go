package cli

import (
	"net/url"
	"sync"

	"github.com/grafana/grafana-sub060/internal/application/port"
)

// QueryLocation implements port.Location over an in-memory query string.
type QueryLocation struct {
	mu     sync.Mutex
	values url.Values
}

var _ port.Location = (*QueryLocation)(nil)

// ParseLocation creates a location from a raw query string. A leading "?"
// is accepted.
func ParseLocation(raw string) (*QueryLocation, error) {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	return &QueryLocation{values: values}, nil
}

// Query implements port.Location.
func (l *QueryLocation) Query() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(url.Values, len(l.values))
	for k, v := range l.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Update implements port.Location.
func (l *QueryLocation) Update(changes map[string]*string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range changes {
		if v == nil {
			l.values.Del(k)
			continue
		}
		l.values.Set(k, *v)
	}
}

// String returns the encoded query string.
func (l *QueryLocation) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.values.Encode()
}
