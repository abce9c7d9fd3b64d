package streaminfo

import (
	"fmt"
	"strings"
)

// ColorMode selects whether colors and other styling are used on a stream.
type ColorMode uint8

const (
	// Auto uses styling if the stream is a terminal, unless NO_COLOR is set
	// to a non-empty value.
	Auto ColorMode = iota
	// Never disables styling regardless of terminal or environment.
	Never
	// Always enables styling regardless of terminal or environment.
	Always
)

var colorModeNames = []string{
	Auto:   "auto",
	Never:  "never",
	Always: "always",
}

// String returns "auto", "never" or "always".
func (m ColorMode) String() string {
	if int(m) >= len(colorModeNames) {
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
	return colorModeNames[m]
}

// Set parses s case-insensitively. It makes *ColorMode a pflag.Value.
func (m *ColorMode) Set(s string) error {
	parsed, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string {
	return "mode"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	if int(m) >= len(colorModeNames) {
		return nil, fmt.Errorf("invalid color mode %d", uint8(m))
	}
	return []byte(colorModeNames[m]), nil
}

// ParseColorMode parses "auto", "never" or "always", ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorModeNames {
		if name == n {
			return ColorMode(i), nil
		}
	}
	return Auto, fmt.Errorf("unknown color mode %q (want auto, never or always)", s)
}
