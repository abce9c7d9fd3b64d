// Package text provides width-aware string helpers for terminal output.
// Widths are display columns as measured by go-runewidth, so East Asian
// wide characters count as two. ANSI escape sequences have no width.
package text

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches ANSI escape sequences for stripping.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Truncate shortens s to at most width columns, ending in "..." when
// something was cut. ANSI codes are stripped from a truncated result.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	plain := StripANSI(s)
	if width <= 3 {
		return runewidth.Truncate(plain, width, "")
	}
	return runewidth.Truncate(plain, width, "...")
}

// PadRight pads s with spaces on the right to width columns.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft pads s with spaces on the left to width columns.
func PadLeft(s string, width int) string {
	if w := Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// WordWrap wraps s to width columns, breaking on whitespace.
func WordWrap(s string, width int) string {
	return strings.Join(WrapLines(s, width), "\n")
}

// WrapLines wraps s to width columns and returns the lines. Existing line
// breaks are kept, runs of whitespace collapse to one space, and a word
// wider than width gets a line of its own rather than being split.
// A width of zero or less disables wrapping.
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			w := Width(word)
			switch {
			case lineWidth == 0:
				line.WriteString(word)
				lineWidth = w
			case lineWidth+1+w <= width:
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += 1 + w
			default:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
				lineWidth = w
			}
		}
		lines = append(lines, line.String())
	}
	return lines
}
