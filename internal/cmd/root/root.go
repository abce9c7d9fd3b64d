// Package root assembles the styled command tree.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	configcmd "github.com/mdickopp/styled-output/internal/cmd/config"
	"github.com/mdickopp/styled-output/internal/cmd/info"
	"github.com/mdickopp/styled-output/internal/cmd/palette"
	printcmd "github.com/mdickopp/styled-output/internal/cmd/print"
	versioncmd "github.com/mdickopp/styled-output/internal/cmd/version"
	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/config"
	"github.com/mdickopp/styled-output/internal/logger"
	"github.com/mdickopp/styled-output/internal/streaminfo"
)

// NewCmdRoot creates the root command for the styled CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	var (
		debug     bool
		colorMode streaminfo.ColorMode
	)

	cmd := &cobra.Command{
		Use:   "styled",
		Short: "Write ANSI-styled text that adapts to the terminal",
		Long: `Styled writes colored and emphasized text using ANSI escape sequences,
but only where the output stream can show them.

Color decisions, per stream:
  --color=always|never   Forces the decision for stdout and stderr
  config.yaml            color.stdout / color.stderr (auto, never, always)
  auto                   Color only on a terminal and only if NO_COLOR is unset`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       f.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyColorSettings(f, cmd.Flags().Changed("color"), colorMode); err != nil {
				return err
			}
			initializeLogger(f, debug)
			logger.SetContext(cmd.CommandPath())

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("styled starting")

			return nil
		},
	}

	cmd.PersistentFlags().Var(&colorMode, "color", "When to use color: auto, never or always")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})
	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(info.NewCmdInfo(f, nil))
	cmd.AddCommand(printcmd.NewCmdPrint(f, nil))
	cmd.AddCommand(palette.NewCmdPalette(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// applyColorSettings applies the configured per-stream color modes, then the
// --color flag on top. Auto in the config leaves automatic detection alone.
func applyColorSettings(f *cmdutil.Factory, flagSet bool, flagMode streaminfo.ColorMode) error {
	streams := f.IOStreams.Streams()

	cfg, err := f.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	colors := cfg.Settings().Color
	if colors.Stdout != streaminfo.Auto {
		streams.Stdout.SetColorMode(colors.Stdout)
	}
	if colors.Stderr != streaminfo.Auto {
		streams.Stderr.SetColorMode(colors.Stderr)
	}

	if flagSet {
		streams.SetColorMode(flagMode)
	}
	return nil
}

// initializeLogger sets up file logging from settings, plus console output on
// stderr when debug is set. Falls back to a nop logger on any errors.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	var console *logger.Console
	if debug {
		console = &logger.Console{
			Out:   f.IOStreams.ErrOut,
			Color: f.IOStreams.StderrColorEnabled(),
		}
	}

	logCfg := &logger.LoggingConfig{}
	if cfg, err := f.Config(); err == nil {
		l := cfg.Settings().Logging
		logCfg = &logger.LoggingConfig{
			FileEnabled: l.FileEnabled,
			MaxSizeMB:   l.MaxSizeMB,
			MaxAgeDays:  l.MaxAgeDays,
			MaxBackups:  l.MaxBackups,
		}
	}

	if err := logger.InitWithFile(debug, config.LogsDir(), logCfg, console); err != nil {
		// Console-only on error
		_ = logger.InitWithFile(debug, "", nil, console)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
