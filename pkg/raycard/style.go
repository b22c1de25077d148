package raycard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StyleSheet is the set of CSS values a web renderer applies for one card.
// Every string is built from validated configuration, so it is safe to
// interpolate into a style attribute.
type StyleSheet struct {
	// Properties holds the custom properties set on the card element.
	Properties map[string]string
	// BoxShadow is the card's box-shadow value.
	BoxShadow string
	// ContentGlow is the background of the content glow layer, empty when
	// the glow mode excludes it.
	ContentGlow string
	// BorderGlow is the background of the border ring layer, empty when the
	// glow mode excludes it.
	BorderGlow string
	// Opacity is the effective intensity applied to both glow layers.
	Opacity float64
}

// Style maps a state and configuration onto CSS values.
func Style(cfg Config, s EffectState) StyleSheet {
	intensity := EffectiveIntensity(s, cfg)
	sheet := StyleSheet{
		Properties: map[string]string{
			"--light-opacity":  number(intensity),
			"--glow-color":     cfg.GlowColor(),
			"--border-radius":  cfg.BorderRadius(),
			"--mouse-x":        px(s.LocalX),
			"--mouse-y":        px(s.LocalY),
			"--shadow-x":       px(s.Shadow.OffsetX),
			"--shadow-y":       px(s.Shadow.OffsetY),
			"--shadow-blur":    px(s.Shadow.Blur),
			"--shadow-spread":  px(s.Shadow.Spread),
			"--shadow-opacity": number(s.Shadow.Opacity),
		},
		Opacity: intensity,
	}

	if cfg.Disabled() {
		sheet.BoxShadow = "none"
	} else {
		sheet.BoxShadow = fmt.Sprintf("%s %s %s %s rgba(0, 0, 0, %s)",
			px(s.Shadow.OffsetX), px(s.Shadow.OffsetY),
			px(s.Shadow.Blur), px(s.Shadow.Spread), number(s.Shadow.Opacity))
	}

	spread := px(cfg.GlowSpread())
	if cfg.GlowMode().Card() {
		sheet.ContentGlow = fmt.Sprintf("radial-gradient(%s circle at %s %s, %s, transparent 40%%)",
			spread, px(s.LocalX), px(s.LocalY), cfg.GlowColor())
	}
	if cfg.GlowMode().Border() {
		sheet.BorderGlow = fmt.Sprintf("radial-gradient(%s circle at %s %s, %s, transparent 100%%)",
			spread, px(s.LocalX), px(s.LocalY), cfg.GlowColor())
	}
	return sheet
}

// Declarations renders the custom properties and box-shadow as a single
// inline style string with properties in sorted order.
func (s StyleSheet) Declarations() string {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s; ", k, s.Properties[k])
	}
	fmt.Fprintf(&b, "border-radius: %s; box-shadow: %s;", s.Properties["--border-radius"], s.BoxShadow)
	return b.String()
}

func px(v float64) string {
	return number(v) + "px"
}

func number(v float64) string {
	// drop negative zero
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
