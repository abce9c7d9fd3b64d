package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors_DistinctCodes(t *testing.T) {
	fg := map[uint8]Color{}
	bg := map[uint8]Color{}
	for _, c := range Colors() {
		if prev, ok := fg[c.ForegroundCode()]; ok {
			t.Errorf("%s and %s share foreground code %d", prev, c, c.ForegroundCode())
		}
		if prev, ok := bg[c.BackgroundCode()]; ok {
			t.Errorf("%s and %s share background code %d", prev, c, c.BackgroundCode())
		}
		fg[c.ForegroundCode()] = c
		bg[c.BackgroundCode()] = c
	}
	assert.Len(t, Colors(), 17)
}

func TestColor_Codes(t *testing.T) {
	assert.Equal(t, uint8(39), Default.ForegroundCode())
	assert.Equal(t, uint8(49), Default.BackgroundCode())

	for c := Black; c <= Gray; c++ {
		assert.Equal(t, c.ForegroundCode()+10, c.BackgroundCode(), c.String())
		assert.GreaterOrEqual(t, c.ForegroundCode(), uint8(30))
		assert.LessOrEqual(t, c.ForegroundCode(), uint8(37))
	}
	for c := DarkGray; c <= White; c++ {
		assert.GreaterOrEqual(t, c.ForegroundCode(), uint8(90))
		assert.LessOrEqual(t, c.ForegroundCode(), uint8(97))
		assert.Equal(t, c.ForegroundCode()+10, c.BackgroundCode(), c.String())
	}
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "dark-gray", DarkGray.String())
	assert.Equal(t, "light-magenta", LightMagenta.String())
	assert.Equal(t, "Color(42)", Color(42).String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "red", want: Red},
		{in: "RED", want: Red},
		{in: " light-blue ", want: LightBlue},
		{in: "dark_gray", want: DarkGray},
		{in: "Light Cyan", want: LightCyan},
		{in: "default", want: Default},
		{in: "purple", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor_MarshalTextInvalid(t *testing.T) {
	text, err := LightGreen.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "light-green", string(text))

	_, err = Color(200).MarshalText()
	assert.Error(t, err)
}

func TestColor_PflagValue(t *testing.T) {
	var c Color
	require.NoError(t, c.Set("yellow"))
	assert.Equal(t, Yellow, c)
	assert.Equal(t, "color", c.Type())
	assert.Error(t, c.Set("chartreuse"))
	assert.Equal(t, Yellow, c, "failed Set must not modify the value")
}

func TestColor_OutOfRangeCodesFallBackToDefault(t *testing.T) {
	assert.Equal(t, uint8(39), Color(99).ForegroundCode())
	assert.Equal(t, uint8(49), Color(99).BackgroundCode())
}
