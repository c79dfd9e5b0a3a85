package cli

import (
	"context"
	"strings"
	"sync"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/logging"
)

// Alert is one notification raised by a scene.
type Alert struct {
	Type    port.NotificationType `json:"-"`
	Level   string                `json:"level"`
	Title   string                `json:"title"`
	Details []string              `json:"details,omitempty"`
}

// String renders the alert on one line.
func (a Alert) String() string {
	if len(a.Details) == 0 {
		return a.Title
	}
	return a.Title + ": " + strings.Join(a.Details, "; ")
}

// Notifier implements port.Notifier by logging alerts and keeping them
// for the command to report.
type Notifier struct {
	mu     sync.Mutex
	alerts []Alert
}

var _ port.Notifier = (*Notifier)(nil)

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify implements port.Notifier.
func (n *Notifier) Notify(ctx context.Context, notifType port.NotificationType, title string, details ...string) {
	alert := Alert{Type: notifType, Level: notifType.String(), Title: title, Details: details}
	n.mu.Lock()
	n.alerts = append(n.alerts, alert)
	n.mu.Unlock()

	log := logging.FromContext(ctx)
	switch notifType {
	case port.NotificationError:
		log.Error().Strs("details", details).Msg(title)
	case port.NotificationWarning:
		log.Warn().Strs("details", details).Msg(title)
	default:
		log.Info().Strs("details", details).Msg(title)
	}
}

// Alerts returns the alerts raised so far.
func (n *Notifier) Alerts() []Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Alert(nil), n.alerts...)
}
