package style

import (
	"fmt"
	"io"
)

// Text is output that can be written with or without its styling.
type Text interface {
	WriteStyled(w io.Writer) error
	WriteUnstyled(w io.Writer) error
}

// Plain is unstyled text. Both write methods emit it verbatim.
type Plain string

// WriteUnstyled writes the text.
func (p Plain) WriteUnstyled(w io.Writer) error {
	_, err := io.WriteString(w, string(p))
	return err
}

// WriteStyled writes the text; plain text has no styling.
func (p Plain) WriteStyled(w io.Writer) error {
	return p.WriteUnstyled(w)
}

// StyledString is text with an associated style.
type StyledString struct {
	Style Style
	Text  string
}

// WriteUnstyled writes only the text.
func (s StyledString) WriteUnstyled(w io.Writer) error {
	_, err := io.WriteString(w, s.Text)
	return err
}

// WriteStyled writes the text wrapped in the style's set and reset
// sequences. A default style writes the bare text.
func (s StyledString) WriteStyled(w io.Writer) error {
	if s.Style.IsDefault() {
		return s.WriteUnstyled(w)
	}
	if err := s.Style.WriteSet(w); err != nil {
		return err
	}
	if err := s.WriteUnstyled(w); err != nil {
		return err
	}
	return WriteReset(w)
}

// WriteSet writes the control sequence for s to w. Nothing is written for
// the default style.
func (s Style) WriteSet(w io.Writer) error {
	var buf SetStyleBuffer
	seq := s.Encode(&buf)
	if len(seq) == 0 {
		return nil
	}
	_, err := w.Write(seq)
	return err
}

// WriteReset writes the Reset sequence to w.
func WriteReset(w io.Writer) error {
	_, err := io.WriteString(w, Reset)
	return err
}

// Styled pairs a value with a style for use with the fmt package. Verbs,
// flags, width and precision apply to Value; the escape codes wrap the
// formatted result.
//
//	fmt.Printf("%6.2f\n", style.Styled[float64]{Style: warn, Value: 17.5})
type Styled[T any] struct {
	Style Style
	Value T
}

// Format implements fmt.Formatter.
func (s Styled[T]) Format(f fmt.State, verb rune) {
	var buf SetStyleBuffer
	seq := s.Style.Encode(&buf)
	if len(seq) == 0 {
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.Value)
		return
	}
	if _, err := f.Write(seq); err != nil {
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.Value)
	_, _ = io.WriteString(f, Reset)
}

// Sprint returns v formatted with %v and wrapped in s.
func Sprint[T any](s Style, v T) string {
	return fmt.Sprint(Styled[T]{Style: s, Value: v})
}
