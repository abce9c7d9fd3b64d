package iostreams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorScheme_Enabled(t *testing.T) {
	assert.True(t, NewColorScheme(true).Enabled())
	assert.False(t, NewColorScheme(false).Enabled())
}

func TestColorScheme_ColorMethods(t *testing.T) {
	tests := []struct {
		name   string
		method func(*ColorScheme, string) string
		want   string
	}{
		{"Red", (*ColorScheme).Red, "\x1b[91mx\x1b[0m"},
		{"Yellow", (*ColorScheme).Yellow, "\x1b[33mx\x1b[0m"},
		{"Green", (*ColorScheme).Green, "\x1b[32mx\x1b[0m"},
		{"Blue", (*ColorScheme).Blue, "\x1b[34mx\x1b[0m"},
		{"Cyan", (*ColorScheme).Cyan, "\x1b[36mx\x1b[0m"},
		{"Magenta", (*ColorScheme).Magenta, "\x1b[35mx\x1b[0m"},
		{"Muted", (*ColorScheme).Muted, "\x1b[90mx\x1b[0m"},
		{"Bold", (*ColorScheme).Bold, "\x1b[1mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/enabled", func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method(NewColorScheme(true), "x"))
		})
		t.Run(tt.name+"/disabled", func(t *testing.T) {
			assert.Equal(t, "x", tt.method(NewColorScheme(false), "x"))
		})
	}
}

func TestColorScheme_FormatMethods(t *testing.T) {
	cs := NewColorScheme(false)
	assert.Equal(t, "a 1", cs.Redf("%s %d", "a", 1))
	assert.Equal(t, "a 1", cs.Yellowf("%s %d", "a", 1))
	assert.Equal(t, "a 1", cs.Greenf("%s %d", "a", 1))
	assert.Equal(t, "a 1", cs.Boldf("%s %d", "a", 1))

	cs = NewColorScheme(true)
	assert.Equal(t, "\x1b[32m3 ok\x1b[0m", cs.Greenf("%d ok", 3))
}

func TestColorScheme_Icons(t *testing.T) {
	off := NewColorScheme(false)
	assert.Equal(t, "[ok]", off.SuccessIcon())
	assert.Equal(t, "[warn]", off.WarningIcon())
	assert.Equal(t, "[error]", off.FailureIcon())

	on := NewColorScheme(true)
	assert.Equal(t, "\x1b[32m✓\x1b[0m", on.SuccessIcon())
	assert.Equal(t, "\x1b[33m!\x1b[0m", on.WarningIcon())
	assert.Equal(t, "\x1b[91m✗\x1b[0m", on.FailureIcon())
}
