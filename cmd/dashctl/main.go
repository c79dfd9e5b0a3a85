// Command dashctl loads, renders and stores declarative dashboards.
package main

import (
	"github.com/grafana/grafana-sub060/internal/cli/cmd"
	"github.com/grafana/grafana-sub060/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	})
	cmd.Execute()
}
