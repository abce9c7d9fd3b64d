// Package streaminfo decides, per output stream, whether to emit ANSI
// styling and how wide lines may be.
//
// A StreamInfo resolves each answer at most once and caches it in an atomic
// field, so UseColor and LineWidth are cheap enough to call on every write
// and safe to call from any goroutine. Terminal status and NO_COLOR are
// assumed stable for the life of the process; the width is never re-probed.
package streaminfo

import (
	"math"
	"os"
	"sync/atomic"

	"github.com/mdickopp/styled-output/internal/term"
	"github.com/rs/zerolog"
)

// DefaultLineWidth is returned by LineWidth when the stream is not a
// terminal or its width cannot be determined.
const DefaultLineWidth = 80

// Raw line width sentinels. Concrete widths are always positive.
const (
	rawLineWidthUnknown int32 = -2
	rawLineWidthNone    int32 = -1
)

// Logger receives a debug event whenever a cached value is first resolved.
// *zerolog.Logger satisfies it.
type Logger interface {
	Debug() *zerolog.Event
}

// Option configures a StreamInfo.
type Option func(*StreamInfo)

// WithLogger sets the logger for resolution events.
func WithLogger(l Logger) Option {
	return func(s *StreamInfo) {
		if l != nil {
			s.logger = l
		}
	}
}

// StreamInfo holds the cached color mode and line width of one stream.
// Create instances with New; the zero value is not usable.
type StreamInfo struct {
	name    string
	probe   term.Probe
	noColor *EnvFlag
	logger  Logger

	// rawColorMode holds a ColorMode. Auto means "not yet resolved"; the
	// first UseColor call replaces it with Never or Always.
	rawColorMode atomic.Uint32

	// rawLineWidth holds a positive width, rawLineWidthUnknown or
	// rawLineWidthNone.
	rawLineWidth atomic.Int32
}

// New returns a StreamInfo for the stream called name. probe answers
// whether the stream is a terminal; noColor is the shared NO_COLOR flag.
func New(name string, probe term.Probe, noColor *EnvFlag, opts ...Option) *StreamInfo {
	nop := zerolog.Nop()
	s := &StreamInfo{
		name:    name,
		probe:   probe,
		noColor: noColor,
		logger:  &nop,
	}
	s.rawLineWidth.Store(rawLineWidthUnknown)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stream name given to New.
func (s *StreamInfo) Name() string {
	return s.name
}

// UseColor reports whether colors and other styling should be used when
// writing to the stream:
//   - false if the color mode was set to Never,
//   - true if it was set to Always,
//   - false if NO_COLOR is set to a non-empty value,
//   - true if the stream is a terminal,
//   - false otherwise.
//
// The automatic decision is made once and cached until SetColorMode is
// called again.
func (s *StreamInfo) UseColor() bool {
	mode := ColorMode(s.rawColorMode.Load())
	if mode == Auto {
		mode = Never
		if !s.noColor.IsSet() && s.rawWidth() != rawLineWidthNone {
			mode = Always
		}
		// An explicit SetColorMode that raced with us wins.
		if !s.rawColorMode.CompareAndSwap(uint32(Auto), uint32(mode)) {
			if current := ColorMode(s.rawColorMode.Load()); current != Auto {
				mode = current
			}
		}
		s.logger.Debug().
			Str("stream", s.name).
			Stringer("color_mode", mode).
			Bool("no_color", s.noColor.IsSet()).
			Msg("resolved color mode")
	}
	return mode == Always
}

// SetColorMode overrides the color decision. Setting Auto makes the next
// UseColor call decide again from the environment and terminal status.
func (s *StreamInfo) SetColorMode(mode ColorMode) {
	s.rawColorMode.Store(uint32(mode))
}

// ColorMode returns the current mode. After UseColor has resolved Auto this
// is Never or Always.
func (s *StreamInfo) ColorMode() ColorMode {
	return ColorMode(s.rawColorMode.Load())
}

// LineWidth returns the terminal width in columns, or DefaultLineWidth if
// the stream is not a terminal. The width is probed once.
func (s *StreamInfo) LineWidth() int {
	if w := s.rawWidth(); w > 0 {
		return int(w)
	}
	return DefaultLineWidth
}

func (s *StreamInfo) rawWidth() int32 {
	w := s.rawLineWidth.Load()
	if w != rawLineWidthUnknown {
		return w
	}

	w = rawLineWidthNone
	if width, ok := s.probe.Probe(); ok && width > 0 {
		w = int32(min(width, math.MaxInt32))
	}
	s.rawLineWidth.CompareAndSwap(rawLineWidthUnknown, w)

	s.logger.Debug().
		Str("stream", s.name).
		Int32("raw_line_width", w).
		Msg("probed line width")
	return w
}

// Streams holds the StreamInfo of standard output and standard error. Build
// it once at startup and pass it to whatever writes to those streams.
type Streams struct {
	Stdout  *StreamInfo
	Stderr  *StreamInfo
	NoColor *EnvFlag
}

// NewStreams builds Streams from probes for standard output and standard
// error. Both share one NO_COLOR flag.
func NewStreams(stdout, stderr term.Probe, opts ...Option) *Streams {
	noColor := NoColor()
	return &Streams{
		Stdout:  New("stdout", stdout, noColor, opts...),
		Stderr:  New("stderr", stderr, noColor, opts...),
		NoColor: noColor,
	}
}

// System returns Streams for the process's os.Stdout and os.Stderr.
func System(opts ...Option) *Streams {
	return NewStreams(term.NewFdProbe(os.Stdout), term.NewFdProbe(os.Stderr), opts...)
}

// SetColorMode sets mode on both streams.
func (s *Streams) SetColorMode(mode ColorMode) {
	s.Stdout.SetColorMode(mode)
	s.Stderr.SetColorMode(mode)
}
