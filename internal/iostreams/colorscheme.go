package iostreams

import (
	"fmt"

	"github.com/mdickopp/styled-output/internal/style"
)

// ColorScheme formats short strings for human-readable command output.
// When colors are disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled bool
}

var (
	errorStyle   = style.Style{Foreground: style.LightRed}
	warningStyle = style.Style{Foreground: style.Yellow}
	successStyle = style.Style{Foreground: style.Green}
	primaryStyle = style.Style{Foreground: style.Blue}
	infoStyle    = style.Style{Foreground: style.Cyan}
	accentStyle  = style.Style{Foreground: style.Magenta}
	mutedStyle   = style.Style{Foreground: style.DarkGray}
	boldStyle    = style.Style{Bold: true}
)

// NewColorScheme creates a new ColorScheme.
// If enabled is false, all color methods return unmodified strings.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

// Style applies st if colors are enabled.
func (cs *ColorScheme) Style(st style.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Sprint(st, s)
}

// Red returns the string in red (error color).
func (cs *ColorScheme) Red(s string) string {
	return cs.Style(errorStyle, s)
}

// Redf returns a formatted string in red.
func (cs *ColorScheme) Redf(format string, a ...any) string {
	return cs.Red(fmt.Sprintf(format, a...))
}

// Yellow returns the string in yellow (warning color).
func (cs *ColorScheme) Yellow(s string) string {
	return cs.Style(warningStyle, s)
}

// Yellowf returns a formatted string in yellow.
func (cs *ColorScheme) Yellowf(format string, a ...any) string {
	return cs.Yellow(fmt.Sprintf(format, a...))
}

// Green returns the string in green (success color).
func (cs *ColorScheme) Green(s string) string {
	return cs.Style(successStyle, s)
}

// Greenf returns a formatted string in green.
func (cs *ColorScheme) Greenf(format string, a ...any) string {
	return cs.Green(fmt.Sprintf(format, a...))
}

// Blue returns the string in blue (primary color).
func (cs *ColorScheme) Blue(s string) string {
	return cs.Style(primaryStyle, s)
}

// Cyan returns the string in cyan.
func (cs *ColorScheme) Cyan(s string) string {
	return cs.Style(infoStyle, s)
}

// Magenta returns the string in magenta.
func (cs *ColorScheme) Magenta(s string) string {
	return cs.Style(accentStyle, s)
}

// Muted returns the string dimmed.
func (cs *ColorScheme) Muted(s string) string {
	return cs.Style(mutedStyle, s)
}

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string {
	return cs.Style(boldStyle, s)
}

// Boldf returns a formatted string in bold.
func (cs *ColorScheme) Boldf(format string, a ...any) string {
	return cs.Bold(fmt.Sprintf(format, a...))
}

// SuccessIcon returns a success icon, colored if enabled.
func (cs *ColorScheme) SuccessIcon() string {
	if cs.enabled {
		return cs.Green("✓")
	}
	return "[ok]"
}

// WarningIcon returns a warning icon, colored if enabled.
func (cs *ColorScheme) WarningIcon() string {
	if cs.enabled {
		return cs.Yellow("!")
	}
	return "[warn]"
}

// FailureIcon returns a failure icon, colored if enabled.
func (cs *ColorScheme) FailureIcon() string {
	if cs.enabled {
		return cs.Red("✗")
	}
	return "[error]"
}
