// Package styled is the entry point of the styled CLI.
package styled

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdickopp/styled-output/internal/cmd/factory"
	"github.com/mdickopp/styled-output/internal/cmd/root"
	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/logger"
	"github.com/mdickopp/styled-output/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

// Main is the entry point for the styled CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	f := factory.New(Version, Commit)
	return Run(ctx, f, nil)
}

// Run executes the command tree against f and returns the exit code. A nil
// args uses the process arguments.
func Run(ctx context.Context, f *cmdutil.Factory, args []string) int {
	rootCmd := root.NewCmdRoot(f)
	if args != nil {
		rootCmd.SetArgs(args)
	}

	cmd, err := rootCmd.ExecuteContextC(ctx)

	var sigErr *signals.SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		logger.Debug().Str("signal", sigErr.Signal.String()).Msg("interrupted")
		return sigErr.ExitCode()
	}

	if err != nil {
		printError(f.IOStreams, cmd, err)
		logger.Debug().Err(err).Msg("command failed")
	}
	return cmdutil.ExitCode(err)
}

func printError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) {
	if errors.Is(err, cmdutil.SilentError) {
		return
	}

	cs := ios.StderrColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Red("Error:"), err)

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) && cmd != nil {
		fmt.Fprintln(ios.ErrOut)
		fmt.Fprint(ios.ErrOut, cmd.UsageString())
	}
}
