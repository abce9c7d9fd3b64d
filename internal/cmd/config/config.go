// Package config implements the "styled config" command.
package config

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	internalconfig "github.com/mdickopp/styled-output/internal/config"
	"github.com/mdickopp/styled-output/internal/iostreams"
)

// ConfigOptions holds options for the config command.
type ConfigOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*internalconfig.Config, error)

	Path bool
}

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory, runF func(context.Context, *ConfigOptions) error) *cobra.Command {
	opts := &ConfigOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the settings in effect after merging built-in defaults, the config
file and STYLED_* environment variables, in config file format.

The --color flag is not reflected here; it is applied on top of these
settings for each run.`,
		Example: `  # Show effective settings
  styled config

  # Show where the config file is read from
  styled config --path`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return configRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Path, "path", false, "Print the config file path only")

	return cmd
}

func configRun(_ context.Context, opts *ConfigOptions) error {
	ios := opts.IOStreams

	if opts.Path {
		path, err := internalconfig.FilePath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ios.Out, path)
		return err
	}

	cfg, err := opts.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, err := cfg.Settings().YAML()
	if err != nil {
		return err
	}

	if cfg.FileUsed() {
		cs := ios.StderrColorScheme()
		fmt.Fprintf(ios.ErrOut, "%s\n", cs.Muted("# "+cfg.File()))
	}
	_, err = ios.Out.Write(out)
	return err
}
