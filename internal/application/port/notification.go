package port

import "context"

// NotificationType is the severity of an alert.
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationError
)

var notificationNames = [...]string{"info", "warning", "error"}

func (t NotificationType) String() string {
	if t < 0 || int(t) >= len(notificationNames) {
		return notificationNames[NotificationInfo]
	}
	return notificationNames[t]
}

// Notifier raises non-fatal alerts such as a panel key that matches
// nothing, a skipped repeat or a library panel that failed to load. The
// host decides how they are shown.
type Notifier interface {
	Notify(ctx context.Context, notifType NotificationType, title string, details ...string)
}

// NopNotifier drops every alert.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, NotificationType, string, ...string) {}
