// Package term answers whether an output handle is a terminal and, if so,
// how many columns wide it is.
package term

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Probe reports the column width of the terminal behind a stream.
// ok is false when the stream is not a terminal or its size cannot be
// determined, e.g. when output is redirected to a file or pipe.
//
// Implementations must be idempotent: callers may race and probe twice.
type Probe interface {
	Probe() (width int, ok bool)
}

// Fd is implemented by handles backed by a file descriptor, such as *os.File.
type Fd interface {
	Fd() uintptr
}

// FdProbe probes the file descriptor of a handle.
type FdProbe struct {
	f Fd
}

// NewFdProbe returns a Probe for f.
func NewFdProbe(f Fd) *FdProbe {
	return &FdProbe{f: f}
}

// Probe implements Probe.
func (p *FdProbe) Probe() (int, bool) {
	fd := p.f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// Static is a Probe with a fixed answer. The zero value reports "not a
// terminal".
type Static struct {
	Width int
	OK    bool
}

// Probe implements Probe.
func (s Static) Probe() (int, bool) {
	if !s.OK || s.Width <= 0 {
		return 0, false
	}
	return s.Width, true
}

// ForWriter returns a Probe for w: an FdProbe when w exposes a file
// descriptor, otherwise a Static probe that reports "not a terminal".
func ForWriter(w io.Writer) Probe {
	if f, ok := w.(Fd); ok {
		return NewFdProbe(f)
	}
	return Static{}
}

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(Fd)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
