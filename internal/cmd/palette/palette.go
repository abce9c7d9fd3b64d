// Package palette implements the "styled palette" command.
package palette

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/style"
	"github.com/mdickopp/styled-output/internal/text"
)

// PaletteOptions holds options for the palette command.
type PaletteOptions struct {
	IOStreams *iostreams.IOStreams
}

// NewCmdPalette creates the palette command.
func NewCmdPalette(f *cmdutil.Factory, runF func(context.Context, *PaletteOptions) error) *cobra.Command {
	opts := &PaletteOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show every color as foreground and background",
		Args:  cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return paletteRun(cmd.Context(), opts)
		},
	}

	return cmd
}

const nameWidth = 14

func paletteRun(_ context.Context, opts *PaletteOptions) error {
	out := opts.IOStreams.Stdout()
	for _, c := range style.Colors() {
		name := text.PadRight(c.String(), nameWidth)
		fg := style.Style{Foreground: c}
		bg := style.Style{Background: c}
		seqs := fmt.Sprintf("%3d/%-3d", c.ForegroundCode(), c.BackgroundCode())

		for _, t := range []style.Text{
			style.StyledString{Style: fg, Text: name},
			style.Plain(" "),
			style.StyledString{Style: bg, Text: "  " + seqs + "  "},
			style.Plain("\n"),
		} {
			if err := out.WriteText(t); err != nil {
				return err
			}
		}
	}
	return nil
}
