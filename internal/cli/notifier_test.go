package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/application/port"
	"github.com/grafana/grafana-sub060/internal/cli"
)

func TestNotifier(t *testing.T) {
	n := cli.NewNotifier()
	ctx := testContext()

	n.Notify(ctx, port.NotificationWarning, "Repeat skipped")
	n.Notify(ctx, port.NotificationError, "Panel not found", "viewPanel=9", "no such panel")

	alerts := n.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "Repeat skipped", alerts[0].String())
	assert.Equal(t, "Panel not found: viewPanel=9; no such panel", alerts[1].String())
	assert.Equal(t, port.NotificationError, alerts[1].Type)

	alerts[0].Title = "changed"
	assert.Equal(t, "Repeat skipped", n.Alerts()[0].Title)
}
