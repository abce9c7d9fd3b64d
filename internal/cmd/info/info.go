// Package info implements the "styled info" command, which reports what the
// capability cache decided for each output stream.
package info

import (
	"context"
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/streaminfo"
	"github.com/mdickopp/styled-output/internal/style"
	"github.com/mdickopp/styled-output/internal/text"
)

var headerStyle = style.Style{Foreground: style.Cyan, Underlined: true}

// InfoOptions holds options for the info command.
type InfoOptions struct {
	IOStreams *iostreams.IOStreams
	Format    *cmdutil.FormatFlags
}

// StreamReport is the resolved state of one output stream.
type StreamReport struct {
	Stream    string `json:"stream" yaml:"stream"`
	UseColor  bool   `json:"use_color" yaml:"use_color"`
	ColorMode string `json:"color_mode" yaml:"color_mode"`
	LineWidth int    `json:"line_width" yaml:"line_width"`
}

// Report is the output of the info command.
type Report struct {
	NoColor bool           `json:"no_color" yaml:"no_color"`
	Streams []StreamReport `json:"streams" yaml:"streams"`
}

// NewCmdInfo creates the info command.
func NewCmdInfo(f *cmdutil.Factory, runF func(context.Context, *InfoOptions) error) *cobra.Command {
	opts := &InfoOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show color and width decisions for stdout and stderr",
		Long: `Shows whether each output stream uses color, which color mode is in
effect, and the line width output is wrapped at.

A stream that is not a terminal reports a line width of 80.`,
		Example: `  # Inspect the current terminal
  styled info

  # Machine-readable output
  styled info --format json
  styled info | cat`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return infoRun(cmd.Context(), opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

// Collect resolves and reports every stream of ios.
func Collect(ios *iostreams.IOStreams) Report {
	streams := ios.Streams()
	report := Report{NoColor: streams.NoColor.IsSet()}
	for _, s := range []*streaminfo.StreamInfo{streams.Stdout, streams.Stderr} {
		useColor := s.UseColor()
		report.Streams = append(report.Streams, StreamReport{
			Stream:    s.Name(),
			UseColor:  useColor,
			ColorMode: s.ColorMode().String(),
			LineWidth: s.LineWidth(),
		})
	}
	return report
}

func infoRun(_ context.Context, opts *InfoOptions) error {
	ios := opts.IOStreams
	report := Collect(ios)

	format := opts.Format.Format
	switch {
	case format.IsJSON():
		return cmdutil.WriteJSON(ios.Out, report)
	case format.IsYAML():
		return cmdutil.WriteYAML(ios.Out, report)
	case format.IsTemplate():
		return cmdutil.ExecuteTemplate(ios.Out, format, cmdutil.ToAny(report.Streams))
	}

	cs := ios.ColorScheme()
	headerFmt := func(format string, vals ...any) string {
		line := fmt.Sprintf(format, vals...)
		body := strings.TrimSuffix(line, "\n")
		return cs.Style(headerStyle, body) + line[len(body):]
	}

	tbl := table.New("Stream", "Color", "Mode", "Width")
	tbl.WithWriter(ios.Out)
	tbl.WithHeaderFormatter(headerFmt)
	tbl.WithWidthFunc(text.Width)
	for _, s := range report.Streams {
		tbl.AddRow(s.Stream, yesNo(cs, s.UseColor), s.ColorMode, s.LineWidth)
	}
	tbl.Print()

	if report.NoColor {
		fmt.Fprintf(ios.Out, "\n%s %s is set\n", cs.WarningIcon(), streaminfo.NoColorEnv)
	}
	return nil
}

func yesNo(cs *iostreams.ColorScheme, b bool) string {
	if b {
		return cs.Green("yes")
	}
	return cs.Muted("no")
}
