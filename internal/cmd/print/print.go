// Package print implements the "styled print" command.
package print

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/logger"
	"github.com/mdickopp/styled-output/internal/style"
)

// PrintOptions holds options for the print command.
type PrintOptions struct {
	IOStreams *iostreams.IOStreams

	Style  style.Style
	Stderr bool
	Wrap   bool
	Text   string
}

// NewCmdPrint creates the print command.
func NewCmdPrint(f *cmdutil.Factory, runF func(context.Context, *PrintOptions) error) *cobra.Command {
	opts := &PrintOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "print [OPTIONS] TEXT...",
		Short: "Print styled text",
		Long: `Prints its arguments, joined by spaces, in the requested style.

Escape codes are only written when the target stream uses color, so the
output degrades to plain text when redirected or when NO_COLOR is set.`,
		Example: `  # Bold white on blue
  styled print --fg white --bg blue --bold "Deploy finished"

  # Warning on stderr, wrapped to the terminal width
  styled print --stderr --fg yellow --wrap "$(cat notes.txt)"`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Text = strings.Join(args, " ")
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return printRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().Var(&opts.Style.Foreground, "fg", "Foreground color")
	cmd.Flags().Var(&opts.Style.Background, "bg", "Background color")
	cmd.Flags().BoolVar(&opts.Style.Bold, "bold", false, "Bold text")
	cmd.Flags().BoolVar(&opts.Style.Underlined, "underline", false, "Underlined text")
	cmd.Flags().BoolVar(&opts.Style.Blinking, "blink", false, "Blinking text")
	cmd.Flags().BoolVar(&opts.Stderr, "stderr", false, "Write to stderr instead of stdout")
	cmd.Flags().BoolVarP(&opts.Wrap, "wrap", "w", false, "Wrap text at the stream's line width")

	return cmd
}

func printRun(_ context.Context, opts *PrintOptions) error {
	out := opts.IOStreams.Stdout()
	if opts.Stderr {
		out = opts.IOStreams.Stderr()
	}

	logger.Debug().
		Str("stream", out.Info().Name()).
		Bool("wrap", opts.Wrap).
		Msg("printing styled text")

	t := style.StyledString{Style: opts.Style, Text: opts.Text}
	if opts.Wrap {
		return out.WriteWrapped(t)
	}
	return out.Println(t.Style, t.Text)
}
