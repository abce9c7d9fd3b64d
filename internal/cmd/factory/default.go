// Package factory wires the production dependencies of the styled CLI.
package factory

import (
	"sync"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/config"
	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/logger"
	"github.com/mdickopp/styled-output/internal/streaminfo"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/styled/cmd.go).
// Tests should NOT import this package; they construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	// &logger.Log stays valid when the root command re-initializes the
	// logger, so resolution events land in the configured output.
	streams := streaminfo.System(streaminfo.WithLogger(&logger.Log))

	return &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: iostreams.System(streams, &logger.Log),
		Config:    sync.OnceValues(config.Load),
	}
}
