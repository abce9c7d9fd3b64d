package style

import (
	"fmt"
	"strings"
)

// Color is one of the 16 ANSI palette colors or the terminal's default color.
type Color uint8

const (
	// Default is the color the terminal displays when no color is set.
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White

	numColors = iota
)

// SGR parameters for each color. Light variants use the 90/100 ranges, and
// the default background is 49 rather than an offset of the foreground code.
var (
	foregroundCodes = [numColors]uint8{39, 30, 31, 32, 33, 34, 35, 36, 37, 90, 91, 92, 93, 94, 95, 96, 97}
	backgroundCodes = [numColors]uint8{49, 40, 41, 42, 43, 44, 45, 46, 47, 100, 101, 102, 103, 104, 105, 106, 107}
)

var colorNames = [numColors]string{
	"default",
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"gray",
	"dark-gray",
	"light-red",
	"light-green",
	"light-yellow",
	"light-blue",
	"light-magenta",
	"light-cyan",
	"white",
}

// Colors returns every color in palette order, starting with Default.
func Colors() []Color {
	all := make([]Color, numColors)
	for i := range all {
		all[i] = Color(i)
	}
	return all
}

// ForegroundCode returns the SGR parameter that selects c as foreground color.
func (c Color) ForegroundCode() uint8 {
	if !c.valid() {
		return foregroundCodes[Default]
	}
	return foregroundCodes[c]
}

// BackgroundCode returns the SGR parameter that selects c as background color.
func (c Color) BackgroundCode() uint8 {
	if !c.valid() {
		return backgroundCodes[Default]
	}
	return backgroundCodes[c]
}

func (c Color) valid() bool {
	return int(c) < numColors
}

// String returns the kebab-case name of the color, e.g. "light-blue".
func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Set parses s into c. It makes *Color usable as a pflag.Value.
func (c *Color) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "color"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// ParseColor returns the color named s. Matching is case-insensitive and
// accepts underscores or spaces in place of dashes ("dark_gray", "Dark Gray").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Default, fmt.Errorf("unknown color %q", s)
}
