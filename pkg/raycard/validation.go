package raycard

import (
	"math"
	"regexp"
	"strings"
)

var (
	hexColorPattern     = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbColorPattern     = regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*(0|1|0?\.\d+))?\s*\)$`)
	hslColorPattern     = regexp.MustCompile(`^hsla?\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*(,\s*(0|1|0?\.\d+))?\s*\)$`)
	borderRadiusPattern = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|%)?(\s+\d+(\.\d+)?(px|em|rem|%)?){0,3}$`)
)

// namedColors is the canonical CSS named-color set.
var namedColors = map[string]struct{}{
	"aliceblue": {}, "antiquewhite": {}, "aqua": {}, "aquamarine": {}, "azure": {}, "beige": {},
	"bisque": {}, "black": {}, "blanchedalmond": {}, "blue": {}, "blueviolet": {}, "brown": {},
	"burlywood": {}, "cadetblue": {}, "chartreuse": {}, "chocolate": {}, "coral": {},
	"cornflowerblue": {}, "cornsilk": {}, "crimson": {}, "cyan": {}, "darkblue": {}, "darkcyan": {},
	"darkgoldenrod": {}, "darkgray": {}, "darkgreen": {}, "darkgrey": {}, "darkkhaki": {},
	"darkmagenta": {}, "darkolivegreen": {}, "darkorange": {}, "darkorchid": {}, "darkred": {},
	"darksalmon": {}, "darkseagreen": {}, "darkslateblue": {}, "darkslategray": {},
	"darkslategrey": {}, "darkturquoise": {}, "darkviolet": {}, "deeppink": {}, "deepskyblue": {},
	"dimgray": {}, "dimgrey": {}, "dodgerblue": {}, "firebrick": {}, "floralwhite": {},
	"forestgreen": {}, "fuchsia": {}, "gainsboro": {}, "ghostwhite": {}, "gold": {}, "goldenrod": {},
	"gray": {}, "green": {}, "greenyellow": {}, "grey": {}, "honeydew": {}, "hotpink": {},
	"indianred": {}, "indigo": {}, "ivory": {}, "khaki": {}, "lavender": {}, "lavenderblush": {},
	"lawngreen": {}, "lemonchiffon": {}, "lightblue": {}, "lightcoral": {}, "lightcyan": {},
	"lightgoldenrodyellow": {}, "lightgray": {}, "lightgreen": {}, "lightgrey": {}, "lightpink": {},
	"lightsalmon": {}, "lightseagreen": {}, "lightskyblue": {}, "lightslategray": {},
	"lightslategrey": {}, "lightsteelblue": {}, "lightyellow": {}, "lime": {}, "limegreen": {},
	"linen": {}, "magenta": {}, "maroon": {}, "mediumaquamarine": {}, "mediumblue": {},
	"mediumorchid": {}, "mediumpurple": {}, "mediumseagreen": {}, "mediumslateblue": {},
	"mediumspringgreen": {}, "mediumturquoise": {}, "mediumvioletred": {}, "midnightblue": {},
	"mintcream": {}, "mistyrose": {}, "moccasin": {}, "navajowhite": {}, "navy": {}, "oldlace": {},
	"olive": {}, "olivedrab": {}, "orange": {}, "orangered": {}, "orchid": {}, "palegoldenrod": {},
	"palegreen": {}, "paleturquoise": {}, "palevioletred": {}, "papayawhip": {}, "peachpuff": {},
	"peru": {}, "pink": {}, "plum": {}, "powderblue": {}, "purple": {}, "rebeccapurple": {},
	"red": {}, "rosybrown": {}, "royalblue": {}, "saddlebrown": {}, "salmon": {}, "sandybrown": {},
	"seagreen": {}, "seashell": {}, "sienna": {}, "silver": {}, "skyblue": {}, "slateblue": {},
	"slategray": {}, "slategrey": {}, "snow": {}, "springgreen": {}, "steelblue": {}, "tan": {},
	"teal": {}, "thistle": {}, "tomato": {}, "transparent": {}, "turquoise": {}, "violet": {},
	"wheat": {}, "white": {}, "whitesmoke": {}, "yellow": {}, "yellowgreen": {},
}

// IsValidCSSColor reports whether s is a color value safe to interpolate into
// generated style text. Only hex, rgb(a), hsl(a) and named colors are
// accepted; every other function syntax (calc, var, url, expression) fails
// because it is not on the list.
func IsValidCSSColor(s string) bool {
	lowered := strings.ToLower(strings.TrimSpace(s))
	if _, ok := namedColors[lowered]; ok {
		return true
	}
	return hexColorPattern.MatchString(lowered) ||
		rgbColorPattern.MatchString(lowered) ||
		hslColorPattern.MatchString(lowered)
}

// IsNamedColor reports whether s is one of the canonical CSS color names.
func IsNamedColor(s string) bool {
	_, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsValidBorderRadius reports whether s is a 1 to 4 value border-radius
// shorthand made of plain numbers with an optional px, em, rem or % unit.
func IsValidBorderRadius(s string) bool {
	return borderRadiusPattern.MatchString(strings.TrimSpace(s))
}

// ClampNumber limits v to [min, max]. Non-finite values yield fallback.
func ClampNumber(v, min, max, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return math.Max(min, math.Min(max, v))
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Clamp applies ClampNumber with the range bounds.
func (r Range) Clamp(v, fallback float64) float64 {
	return ClampNumber(v, r.Min, r.Max, fallback)
}

// Contains reports whether v is finite and within the range.
func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= r.Min && v <= r.Max
}

// Defaults holds the values substituted for missing or invalid input.
var Defaults = struct {
	GlowColor     string
	GlowIntensity float64
	GlowSpread    float64
	BorderRadius  string
	Proximity     float64
}{
	GlowColor:     "#FFFFFB",
	GlowIntensity: 1,
	GlowSpread:    300,
	BorderRadius:  "16px",
	Proximity:     32,
}

// Ranges holds the accepted interval of every numeric setting.
var Ranges = struct {
	GlowIntensity Range
	GlowSpread    Range
	Proximity     Range
}{
	GlowIntensity: Range{Min: 0, Max: 1},
	GlowSpread:    Range{Min: 1, Max: 2000},
	Proximity:     Range{Min: 0, Max: 500},
}
