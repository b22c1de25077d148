package raycard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCSSColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		// hex
		{"hex3", "#fff", true},
		{"hex3 upper", "#FFF", true},
		{"hex4", "#fffa", true},
		{"hex6", "#FFFFFB", true},
		{"hex8", "#12345678", true},
		{"hex empty", "#", false},
		{"hex1", "#f", false},
		{"hex2", "#ff", false},
		{"hex5", "#fffff", false},
		{"hex5 bad digit", "#ffffg", false},
		{"hex7", "#fffffff", false},
		{"hex9", "#fffffffff", false},
		{"hex bad digit", "#ggg", false},
		{"hex no hash", "ffffff", false},

		// rgb / rgba
		{"rgb", "rgb(255, 255, 255)", true},
		{"rgb tight", "rgb(255,255,255)", true},
		{"rgb upper", "RGB(255, 255, 255)", true},
		{"rgba one", "rgba(255, 255, 255, 1)", true},
		{"rgba zero", "rgba(255, 255, 255, 0)", true},
		{"rgba fraction", "rgba(255, 100, 100, 0.3)", true},
		{"rgba bare fraction", "rgba(0, 0, 0, .5)", true},
		{"rgb no range check", "rgb(999, 999, 999)", true},
		{"rgb two channels", "rgb(255, 255)", false},
		{"rgb five args", "rgb(255, 255, 255, 1, 1)", false},
		{"rgb empty", "rgb()", false},
		{"rgb letters", "rgb(abc, def, ghi)", false},
		{"rgba alpha too big", "rgba(0, 0, 0, 2)", false},

		// hsl / hsla
		{"hsl", "hsl(0, 100%, 50%)", true},
		{"hsl upper", "HSL(0, 100%, 50%)", true},
		{"hsla", "hsla(0, 100%, 50%, 0.5)", true},
		{"hsl missing percent", "hsl(0, 100, 50)", false},
		{"hsl empty", "hsl()", false},

		// named
		{"named", "red", true},
		{"named transparent", "transparent", true},
		{"named rebeccapurple", "rebeccapurple", true},
		{"named mixed case", "Red", true},
		{"named upper", "TRANSPARENT", true},
		{"unknown name", "notacolor", false},
		{"near name", "reddish", false},
		{"empty", "", false},

		// injection
		{"url injection", "red;background:url(javascript:alert(1))", false},
		{"paren break", "red);background:url(evil.com", false},
		{"custom property", "#fff;--evil:value", false},
		{"expression", "expression(alert(1))", false},
		{"url", "url(javascript:alert(1))", false},
		{"var", "var(--evil)", false},
		{"calc", "calc(1px + 1px)", false},

		// whitespace
		{"padded name", "  red  ", true},
		{"padded hex", "  #fff  ", true},
		{"padded rgb", "  rgb(255, 255, 255)  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCSSColor(tt.input), "input %q", tt.input)
		})
	}
}

func TestIsValidBorderRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"16px", true},
		{"0px", true},
		{"1.5px", true},
		{"0.5em", true},
		{"2rem", true},
		{"50%", true},
		{"16", true},
		{"1.5", true},
		{"16px 8px", true},
		{"16px 8px 4px", true},
		{"16px 8px 4px 2px", true},
		{"50% 25%", true},
		{"  16px 8px  ", true},

		{"16vw", false},
		{"16pt", false},
		{"16px;border:none", false},
		{"16px;--evil:value", false},
		{"calc(16px + 8px)", false},
		{"var(--radius)", false},
		{"", false},
		{"abc", false},
		{"px", false},
		{"-4px", false},
		{"16px 8px 4px 2px 1px", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBorderRadius(tt.input))
		})
	}
}

func TestClampNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, ClampNumber(0.5, 0, 1, 0.5))
	assert.Equal(t, 0.0, ClampNumber(0, 0, 1, 0.5))
	assert.Equal(t, 1.0, ClampNumber(1, 0, 1, 0.5))
	assert.Equal(t, 1.0, ClampNumber(2, 0, 1, 0.5))
	assert.Equal(t, 0.0, ClampNumber(-1, 0, 1, 0.5))
	assert.Equal(t, 200.0, ClampNumber(500, 0, 200, 100))

	assert.Equal(t, 0.5, ClampNumber(math.NaN(), 0, 1, 0.5))
	assert.Equal(t, 0.5, ClampNumber(math.Inf(1), 0, 1, 0.5))
	assert.Equal(t, 0.5, ClampNumber(math.Inf(-1), 0, 1, 0.5))

	// degenerate range ignores the fallback for finite input
	assert.Equal(t, 5.0, ClampNumber(0, 5, 5, 7))
	assert.Equal(t, 5.0, ClampNumber(10, 5, 5, 7))

	assert.Equal(t, -10.0, ClampNumber(-20, -10, -1, -5))
	assert.Equal(t, -1.0, ClampNumber(0, -10, -1, -5))
}

func TestDefaultsAndRanges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FFFFFB", Defaults.GlowColor)
	assert.Equal(t, 1.0, Defaults.GlowIntensity)
	assert.Equal(t, 300.0, Defaults.GlowSpread)
	assert.Equal(t, "16px", Defaults.BorderRadius)
	assert.Equal(t, 32.0, Defaults.Proximity)

	assert.Equal(t, Range{Min: 0, Max: 1}, Ranges.GlowIntensity)
	assert.Equal(t, Range{Min: 1, Max: 2000}, Ranges.GlowSpread)
	assert.Equal(t, Range{Min: 0, Max: 500}, Ranges.Proximity)
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	assert.True(t, Ranges.Proximity.Contains(0))
	assert.True(t, Ranges.Proximity.Contains(500))
	assert.False(t, Ranges.Proximity.Contains(-1))
	assert.False(t, Ranges.Proximity.Contains(math.NaN()))
}

func TestIsNamedColor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"red", " Tomato ", "REBECCAPURPLE", "transparent"} {
		assert.True(t, IsNamedColor(name), name)
	}
	for _, name := range []string{"", "#fff", "rgb(0, 0, 0)", "notacolor", "red;"} {
		assert.False(t, IsNamedColor(name), name)
	}
}
