// Package style encodes text styles into ANSI SGR control sequences.
//
// Encoding never allocates: sequences are written into a caller-owned
// SetStyleBuffer and returned as a slice of it. The default style encodes
// to an empty slice, so callers can skip writing escape codes entirely.
package style

import (
	"fmt"
)

const (
	// SetStyleBufferSize is the capacity needed for the longest possible
	// sequence, "\x1b[97;107;1;4;5m".
	SetStyleBufferSize = 15

	// Reset is the control sequence that restores the terminal's default style.
	Reset = "\x1b[0m"
)

// SGR attribute parameters.
const (
	boldCode      = 1
	underlineCode = 4
	blinkCode     = 5
)

// SetStyleBuffer is scratch space for Style.Encode.
type SetStyleBuffer [SetStyleBufferSize]byte

// Style describes colors and attributes for a run of text.
// The zero value is the terminal's default style.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Underlined bool
	Blinking   bool
}

// IsDefault reports whether s applies no styling at all.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// Encode writes the control sequence that switches the terminal to s into
// buf and returns the written part of buf. The result is empty for the
// default style.
func (s Style) Encode(buf *SetStyleBuffer) []byte {
	return s.EncodeTo(buf[:])
}

// EncodeTo is like Encode but writes into dst, which must hold at least
// SetStyleBufferSize bytes. A shorter dst is a programming error and panics
// rather than producing a truncated sequence.
func (s Style) EncodeTo(dst []byte) []byte {
	if len(dst) < SetStyleBufferSize {
		panic(fmt.Sprintf("style: encode buffer holds %d bytes, need at least %d", len(dst), SetStyleBufferSize))
	}

	e := sgrWriter{buf: dst}
	if s.Foreground != Default {
		e.param(s.Foreground.ForegroundCode())
	}
	if s.Background != Default {
		e.param(s.Background.BackgroundCode())
	}
	if s.Bold {
		e.param(boldCode)
	}
	if s.Underlined {
		e.param(underlineCode)
	}
	if s.Blinking {
		e.param(blinkCode)
	}
	return e.finish()
}

// EncodeString returns the control sequence for s as a string. Unlike
// Encode it allocates, so keep it off hot paths.
func (s Style) EncodeString() string {
	var buf SetStyleBuffer
	return string(s.Encode(&buf))
}

// sgrWriter appends ";"-separated SGR parameters to buf, emitting the
// "ESC [" introducer before the first one.
type sgrWriter struct {
	buf []byte
	n   int
}

func (w *sgrWriter) param(code uint8) {
	if w.n == 0 {
		w.buf[0] = '\x1b'
		w.buf[1] = '['
		w.n = 2
	} else {
		w.buf[w.n] = ';'
		w.n++
	}
	switch {
	case code >= 100:
		w.buf[w.n] = '0' + code/100
		w.buf[w.n+1] = '0' + code/10%10
		w.buf[w.n+2] = '0' + code%10
		w.n += 3
	case code >= 10:
		w.buf[w.n] = '0' + code/10
		w.buf[w.n+1] = '0' + code%10
		w.n += 2
	default:
		w.buf[w.n] = '0' + code
		w.n++
	}
}

func (w *sgrWriter) finish() []byte {
	if w.n == 0 {
		return w.buf[:0]
	}
	w.buf[w.n] = 'm'
	return w.buf[:w.n+1]
}
