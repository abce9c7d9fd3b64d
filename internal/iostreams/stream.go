package iostreams

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdickopp/styled-output/internal/streaminfo"
	"github.com/mdickopp/styled-output/internal/style"
	"github.com/mdickopp/styled-output/internal/text"
)

// StyledStream writes to an output stream, applying styles only when the
// stream's capability cache says color is in use. The set sequence, payload
// and reset of one call are written while holding the stream lock.
type StyledStream struct {
	lock Lockable
	info *streaminfo.StreamInfo
}

// NewStyledStream returns a StyledStream writing through lock and deciding
// styling with info.
func NewStyledStream(lock Lockable, info *streaminfo.StreamInfo) *StyledStream {
	return &StyledStream{lock: lock, info: info}
}

// Info returns the capability cache for the stream.
func (s *StyledStream) Info() *streaminfo.StreamInfo {
	return s.info
}

// Write writes p unstyled.
func (s *StyledStream) Write(p []byte) (int, error) {
	g := s.lock.Lock()
	defer g.Unlock()
	return g.Write(p)
}

// WriteText writes t styled if the stream uses color, plain otherwise.
func (s *StyledStream) WriteText(t style.Text) error {
	g := s.lock.Lock()
	defer g.Unlock()
	if s.info.UseColor() {
		return t.WriteStyled(g)
	}
	return t.WriteUnstyled(g)
}

// Print writes the operands formatted as by fmt.Sprint in style st.
func (s *StyledStream) Print(st style.Style, a ...any) error {
	return s.WriteText(style.StyledString{Style: st, Text: fmt.Sprint(a...)})
}

// Printf writes the formatted string in style st.
func (s *StyledStream) Printf(st style.Style, format string, a ...any) error {
	return s.WriteText(style.StyledString{Style: st, Text: fmt.Sprintf(format, a...)})
}

// Println writes the operands in style st followed by an unstyled newline.
// The newline stays outside the escape codes so a background color does not
// bleed into the next line.
func (s *StyledStream) Println(st style.Style, a ...any) error {
	line := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	return s.writeLines(st, []string{line})
}

// WriteWrapped word-wraps t.Text at the stream's line width and writes each
// line in t.Style, each terminated by a newline.
func (s *StyledStream) WriteWrapped(t style.StyledString) error {
	return s.writeLines(t.Style, text.WrapLines(t.Text, s.info.LineWidth()))
}

func (s *StyledStream) writeLines(st style.Style, lines []string) error {
	g := s.lock.Lock()
	defer g.Unlock()
	useColor := s.info.UseColor()
	for _, line := range lines {
		t := style.StyledString{Style: st, Text: line}
		var err error
		if useColor {
			err = t.WriteStyled(g)
		} else {
			err = t.WriteUnstyled(g)
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(g, "\n"); err != nil {
			return err
		}
	}
	return nil
}
