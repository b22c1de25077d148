package raycard

import (
	"fmt"
	"strings"
)

// GlowMode selects which layers the light effect drives.
type GlowMode int

const (
	// GlowBoth lights the card content and its border ring.
	GlowBoth GlowMode = iota
	// GlowCard lights the card content only.
	GlowCard
	// GlowBorder lights the border ring only.
	GlowBorder
)

var glowModeNames = map[GlowMode]string{
	GlowBoth:   "both",
	GlowCard:   "card",
	GlowBorder: "border",
}

// String returns the configuration spelling of the mode.
func (m GlowMode) String() string {
	if name, ok := glowModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GlowMode(%d)", int(m))
}

// Card reports whether the content layer is lit.
func (m GlowMode) Card() bool { return m == GlowBoth || m == GlowCard }

// Border reports whether the border ring is lit.
func (m GlowMode) Border() bool { return m == GlowBoth || m == GlowBorder }

// ParseGlowMode converts a configuration string into a GlowMode.
func ParseGlowMode(s string) (GlowMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both":
		return GlowBoth, true
	case "card":
		return GlowCard, true
	case "border":
		return GlowBorder, true
	default:
		return GlowBoth, false
	}
}

// Config is the validated, immutable configuration of one card instance.
// Build it with NewConfig; the zero value is not meaningful.
type Config struct {
	glowColor     string
	glowIntensity float64
	glowSpread    float64
	borderRadius  string
	proximity     float64
	disabled      bool
	glowMode      GlowMode
}

// Option adjusts a Config under construction. Invalid input is replaced by
// the documented default rather than rejected.
type Option func(*Config)

// NewConfig returns the default configuration with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		glowColor:     Defaults.GlowColor,
		glowIntensity: Defaults.GlowIntensity,
		glowSpread:    Defaults.GlowSpread,
		borderRadius:  Defaults.BorderRadius,
		proximity:     Defaults.Proximity,
		glowMode:      GlowBoth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// With returns a copy of c revalidated with opts applied.
func (c Config) With(opts ...Option) Config {
	next := c
	for _, opt := range opts {
		if opt != nil {
			opt(&next)
		}
	}
	return next
}

// WithGlowColor sets the glow color; values that fail IsValidCSSColor fall
// back to Defaults.GlowColor.
func WithGlowColor(color string) Option {
	return func(c *Config) {
		if IsValidCSSColor(color) {
			c.glowColor = strings.TrimSpace(color)
			return
		}
		c.glowColor = Defaults.GlowColor
	}
}

// WithGlowIntensity sets the glow brightness, clamped to Ranges.GlowIntensity.
func WithGlowIntensity(v float64) Option {
	return func(c *Config) {
		c.glowIntensity = Ranges.GlowIntensity.Clamp(v, Defaults.GlowIntensity)
	}
}

// WithGlowSpread sets the glow radius in pixels, clamped to Ranges.GlowSpread.
func WithGlowSpread(v float64) Option {
	return func(c *Config) {
		c.glowSpread = Ranges.GlowSpread.Clamp(v, Defaults.GlowSpread)
	}
}

// WithBorderRadius sets the corner radius shorthand.
func WithBorderRadius(radius string) Option {
	return func(c *Config) {
		if IsValidBorderRadius(radius) {
			c.borderRadius = strings.TrimSpace(radius)
			return
		}
		c.borderRadius = Defaults.BorderRadius
	}
}

// WithProximity sets the near-zone width in pixels, clamped to Ranges.Proximity.
func WithProximity(v float64) Option {
	return func(c *Config) {
		c.proximity = Ranges.Proximity.Clamp(v, Defaults.Proximity)
	}
}

// WithDisabled turns the effect off entirely.
func WithDisabled(disabled bool) Option {
	return func(c *Config) {
		c.disabled = disabled
	}
}

// WithGlowMode selects the lit layers. Unknown modes fall back to GlowBoth.
func WithGlowMode(mode GlowMode) Option {
	return func(c *Config) {
		if _, ok := glowModeNames[mode]; !ok {
			mode = GlowBoth
		}
		c.glowMode = mode
	}
}

// GlowColor returns the validated glow color.
func (c Config) GlowColor() string { return c.glowColor }

// GlowIntensity returns the configured glow brightness in [0, 1].
func (c Config) GlowIntensity() float64 { return c.glowIntensity }

// GlowSpread returns the radial gradient radius in pixels.
func (c Config) GlowSpread() float64 { return c.glowSpread }

// BorderRadius returns the validated border-radius shorthand.
func (c Config) BorderRadius() string { return c.borderRadius }

// Proximity returns the near-zone width in pixels.
func (c Config) Proximity() float64 { return c.proximity }

// Disabled reports whether the effect is switched off.
func (c Config) Disabled() bool { return c.disabled }

// GlowMode returns the lit layers.
func (c Config) GlowMode() GlowMode { return c.glowMode }
