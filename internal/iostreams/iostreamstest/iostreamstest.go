// Package iostreamstest provides test doubles for the iostreams package.
// All test files should use iostreamstest.New() to get properly wired
// IOStreams with a loggertest nop logger.
package iostreamstest

import (
	"io"
	"sync"

	"github.com/mdickopp/styled-output/internal/iostreams"
	"github.com/mdickopp/styled-output/internal/logger/loggertest"
	"github.com/mdickopp/styled-output/internal/streaminfo"
	"github.com/mdickopp/styled-output/internal/term"
)

type options struct {
	stdout  term.Static
	stderr  term.Static
	noColor string
}

// Option configures the streams returned by New.
type Option func(*options)

// WithTerminal makes both output streams report a terminal of the given
// width.
func WithTerminal(width int) Option {
	return func(o *options) {
		o.stdout = term.Static{Width: width, OK: true}
		o.stderr = term.Static{Width: width, OK: true}
	}
}

// WithStdoutTerminal makes only standard output report a terminal.
func WithStdoutTerminal(width int) Option {
	return func(o *options) {
		o.stdout = term.Static{Width: width, OK: true}
	}
}

// WithNoColor sets the value NO_COLOR is read as. The process environment
// is never consulted.
func WithNoColor(value string) Option {
	return func(o *options) {
		o.noColor = value
	}
}

// New creates IOStreams for testing.
// Outputs are not terminals, NO_COLOR is unset and the logger is a nop by
// default.
func New(opts ...Option) *TestIOStreams {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	noColor := streaminfo.NewEnvFlagFunc(streaminfo.NoColorEnv, func(string) (string, bool) {
		return o.noColor, o.noColor != ""
	})
	streams := &streaminfo.Streams{
		Stdout:  streaminfo.New("stdout", o.stdout, noColor),
		Stderr:  streaminfo.New("stderr", o.stderr, noColor),
		NoColor: noColor,
	}

	in := &testBuffer{}
	out := &testBuffer{}
	errOut := &testBuffer{}

	return &TestIOStreams{
		IOStreams: iostreams.New(in, out, errOut, streams, loggertest.NewNop()),
		InBuf:     in,
		OutBuf:    out,
		ErrBuf:    errOut,
	}
}

// TestIOStreams wraps IOStreams for testing with accessible buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *testBuffer
	OutBuf *testBuffer
	ErrBuf *testBuffer
}

// SetColorEnabled forces color on or off for both output streams.
func (t *TestIOStreams) SetColorEnabled(enabled bool) {
	if enabled {
		t.SetColorMode(streaminfo.Always)
		return
	}
	t.SetColorMode(streaminfo.Never)
}

// testBuffer wraps a byte slice for use in tests.
type testBuffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *testBuffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *testBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

func (b *testBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
}

// SetInput sets the input data for the test buffer.
func (b *testBuffer) SetInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = []byte(s)
}
