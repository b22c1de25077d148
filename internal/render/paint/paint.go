// Package paint turns the CSS color strings accepted by the effect
// configuration into colors the renderers can blend.
package paint

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

var (
	rgbArgs = regexp.MustCompile(`^rgba?\((.*)\)$`)
	hslArgs = regexp.MustCompile(`^hsla?\((.*)\)$`)
)

// colornames follows SVG 1.1, which predates these two CSS names.
var extraNames = map[string]Color{
	"rebeccapurple": {Color: colorful.Color{R: 102.0 / 255, G: 51.0 / 255, B: 153.0 / 255}, Alpha: 1},
	"transparent":   {Alpha: 0},
}

// Color is a straight (non-premultiplied) sRGB color with alpha.
type Color struct {
	colorful.Color
	Alpha float64
}

// Opaque wraps c with full alpha.
func Opaque(c colorful.Color) Color {
	return Color{Color: c, Alpha: 1}
}

// Parse reads a color in any syntax raycard accepts. Strings that do not
// pass raycard.IsValidCSSColor are rejected before any parsing happens.
func Parse(s string) (Color, error) {
	if !raycard.IsValidCSSColor(s) {
		return Color{}, fmt.Errorf("unsupported color %q", s)
	}
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case raycard.IsNamedColor(v):
		return parseName(v)
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgb"):
		return parseRGB(v)
	default:
		return parseHSL(v)
	}
}

func parseName(v string) (Color, error) {
	if c, ok := extraNames[v]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[v]; ok {
		c, _ := colorful.MakeColor(rgba)
		return Opaque(c), nil
	}
	return Color{}, fmt.Errorf("unknown color name %q", v)
}

// ParseOr parses s, falling back to fallback and then to opaque white.
func ParseOr(s, fallback string) Color {
	if c, err := Parse(s); err == nil {
		return c
	}
	if c, err := Parse(fallback); err == nil {
		return c
	}
	return Opaque(colorful.Color{R: 1, G: 1, B: 1})
}

func parseHex(v string) (Color, error) {
	digits := v[1:]
	alpha := 1.0
	switch len(digits) {
	case 4:
		a, _ := strconv.ParseUint(digits[3:], 16, 8)
		alpha = float64(a*17) / 255
		digits = digits[:3]
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 255
		digits = digits[:6]
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color: %w", err)
	}
	return Color{Color: c, Alpha: alpha}, nil
}

func parseRGB(v string) (Color, error) {
	args, err := splitArgs(rgbArgs, v)
	if err != nil {
		return Color{}, err
	}
	ch := make([]float64, 3)
	for i := range ch {
		n, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse rgb channel: %w", err)
		}
		ch[i] = math.Min(n, 255) / 255
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return Color{}, err
	}
	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, Alpha: alpha}, nil
}

func parseHSL(v string) (Color, error) {
	args, err := splitArgs(hslArgs, v)
	if err != nil {
		return Color{}, err
	}
	h, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse hue: %w", err)
	}
	s, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse saturation: %w", err)
	}
	l, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse lightness: %w", err)
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return Color{}, err
	}
	c := colorful.Hsl(math.Mod(h, 360), math.Min(s, 100)/100, math.Min(l, 100)/100)
	return Color{Color: c.Clamped(), Alpha: alpha}, nil
}

func splitArgs(re *regexp.Regexp, v string) ([]string, error) {
	m := re.FindStringSubmatch(v)
	if len(m) != 2 {
		return nil, fmt.Errorf("malformed color function %q", v)
	}
	parts := strings.Split(m[1], ",")
	if len(parts) < 3 || len(parts) > 4 {
		return nil, fmt.Errorf("color function %q needs 3 or 4 arguments", v)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func alphaArg(args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	a, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return 0, fmt.Errorf("parse alpha: %w", err)
	}
	return raycard.ClampNumber(a, 0, 1, 1), nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = raycard.ClampNumber(a, 0, 1, c.Alpha)
	return c
}

// Fade multiplies the alpha by f.
func (c Color) Fade(f float64) Color {
	return c.WithAlpha(c.Alpha * f)
}

// Over composites c onto an opaque backdrop and returns an opaque color.
func (c Color) Over(backdrop colorful.Color) colorful.Color {
	return backdrop.BlendRgb(c.Color, c.Alpha).Clamped()
}

// Components returns straight RGBA channels in [0, 1].
func (c Color) Components() (r, g, b, a float64) {
	cl := c.Clamped()
	return cl.R, cl.G, cl.B, c.Alpha
}
