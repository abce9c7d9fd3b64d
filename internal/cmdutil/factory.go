package cmdutil

import (
	"github.com/mdickopp/styled-output/internal/config"
	"github.com/mdickopp/styled-output/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Commands extract only the fields they need into per-command Options
// structs.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Config loads settings lazily; repeated calls return the same result.
	Config func() (*config.Config, error)
}
