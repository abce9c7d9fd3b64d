// Package iostreams bundles the process's standard streams with their
// styling decisions. Commands write through IOStreams rather than os.Stdout
// so tests can substitute buffers and fixed terminal answers.
package iostreams

import (
	"io"
	"os"

	"github.com/mdickopp/styled-output/internal/streaminfo"
)

// IOStreams provides access to standard input/output/error streams.
// It follows the GitHub CLI pattern for testable I/O.
//
// Out and ErrOut serialize writes; use Stdout and Stderr for styled output.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostics from the command layer.
	Logger Logger

	streams *streaminfo.Streams
	stdout  *StyledStream
	stderr  *StyledStream
}

// System returns IOStreams connected to os.Stdin, os.Stdout and os.Stderr.
// Color and width decisions come from streams, which must have been built
// for the same two files (see streaminfo.System).
func System(streams *streaminfo.Streams, logger Logger) *IOStreams {
	return New(os.Stdin, os.Stdout, os.Stderr, streams, logger)
}

// New returns IOStreams over arbitrary reader and writers.
func New(in io.Reader, out, errOut io.Writer, streams *streaminfo.Streams, logger Logger) *IOStreams {
	outLock := NewLockedWriter(out)
	errLock := NewLockedWriter(errOut)
	return &IOStreams{
		In:      in,
		Out:     outLock,
		ErrOut:  errLock,
		Logger:  logger,
		streams: streams,
		stdout:  NewStyledStream(outLock, streams.Stdout),
		stderr:  NewStyledStream(errLock, streams.Stderr),
	}
}

// Streams returns the stream capability registry.
func (s *IOStreams) Streams() *streaminfo.Streams {
	return s.streams
}

// Stdout returns the styled stream for standard output.
func (s *IOStreams) Stdout() *StyledStream {
	return s.stdout
}

// Stderr returns the styled stream for standard error.
func (s *IOStreams) Stderr() *StyledStream {
	return s.stderr
}

// ColorEnabled reports whether styling should be used on standard output.
func (s *IOStreams) ColorEnabled() bool {
	return s.streams.Stdout.UseColor()
}

// StderrColorEnabled reports whether styling should be used on standard error.
func (s *IOStreams) StderrColorEnabled() bool {
	return s.streams.Stderr.UseColor()
}

// SetColorMode overrides the color decision of both output streams.
func (s *IOStreams) SetColorMode(mode streaminfo.ColorMode) {
	s.streams.SetColorMode(mode)
}

// TerminalWidth returns the line width of standard output in columns.
// Returns 80 when standard output is not a terminal.
func (s *IOStreams) TerminalWidth() int {
	return s.streams.Stdout.LineWidth()
}

// ColorScheme returns a ColorScheme for standard output.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled())
}

// StderrColorScheme returns a ColorScheme for standard error.
func (s *IOStreams) StderrColorScheme() *ColorScheme {
	return NewColorScheme(s.StderrColorEnabled())
}
