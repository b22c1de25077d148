package config

import (
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// Canvas defaults applied when a deck leaves them unset.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultGap        = 2
	DefaultBackground = "#1e1e2e"
	DefaultCardWidth  = 32
	DefaultCardHeight = 9
)

// Deck is a YAML document describing a set of cards laid out on a canvas.
type Deck struct {
	Version string     `yaml:"version" validate:"required,semver"`
	Name    string     `yaml:"name,omitempty" validate:"max=100"`
	Canvas  Canvas     `yaml:"canvas,omitempty"`
	Cards   []CardSpec `yaml:"cards" validate:"required,min=1,dive"`
}

// Canvas maps terminal cells to the pixel space the engine works in.
type Canvas struct {
	CellWidth  int    `yaml:"cell_width,omitempty" validate:"omitempty,min=1,max=64"`
	CellHeight int    `yaml:"cell_height,omitempty" validate:"omitempty,min=1,max=64"`
	Gap        int    `yaml:"gap,omitempty" validate:"omitempty,min=1,max=40"`
	Background string `yaml:"background,omitempty" validate:"omitempty,css_color"`
}

// CardSpec describes one card. Width and Height are in terminal cells.
type CardSpec struct {
	ID     string `yaml:"id" validate:"required,card_id"`
	Title  string `yaml:"title,omitempty" validate:"max=80"`
	Body   string `yaml:"body,omitempty"`
	Preset string `yaml:"preset,omitempty" validate:"omitempty,preset"`
	Width  int    `yaml:"width,omitempty" validate:"omitempty,min=4,max=200"`
	Height int    `yaml:"height,omitempty" validate:"omitempty,min=3,max=100"`
	Style  Style  `yaml:",inline"`
}

// Style holds the optional effect settings of a card or preset. Unset
// fields keep the value inherited from the preset or the defaults.
type Style struct {
	GlowColor     *string  `yaml:"glow_color,omitempty" validate:"omitempty,css_color"`
	GlowIntensity *float64 `yaml:"glow_intensity,omitempty" validate:"omitempty,gte=0,lte=1"`
	GlowSpread    *float64 `yaml:"glow_spread,omitempty" validate:"omitempty,gte=1,lte=2000"`
	BorderRadius  *string  `yaml:"border_radius,omitempty" validate:"omitempty,border_radius"`
	Proximity     *float64 `yaml:"proximity,omitempty" validate:"omitempty,gte=0,lte=500"`
	Disabled      *bool    `yaml:"disabled,omitempty"`
	GlowMode      *string  `yaml:"glow_mode,omitempty" validate:"omitempty,glow_mode"`
}

// Options converts the set fields into engine options. Values are passed
// through as written; the engine applies its own fallbacks.
func (s Style) Options() []raycard.Option {
	var opts []raycard.Option
	if s.GlowColor != nil {
		opts = append(opts, raycard.WithGlowColor(*s.GlowColor))
	}
	if s.GlowIntensity != nil {
		opts = append(opts, raycard.WithGlowIntensity(*s.GlowIntensity))
	}
	if s.GlowSpread != nil {
		opts = append(opts, raycard.WithGlowSpread(*s.GlowSpread))
	}
	if s.BorderRadius != nil {
		opts = append(opts, raycard.WithBorderRadius(*s.BorderRadius))
	}
	if s.Proximity != nil {
		opts = append(opts, raycard.WithProximity(*s.Proximity))
	}
	if s.Disabled != nil {
		opts = append(opts, raycard.WithDisabled(*s.Disabled))
	}
	if s.GlowMode != nil {
		mode, _ := raycard.ParseGlowMode(*s.GlowMode)
		opts = append(opts, raycard.WithGlowMode(mode))
	}
	return opts
}

// EffectConfig resolves the card's preset and overrides into a validated
// engine configuration.
func (c CardSpec) EffectConfig() raycard.Config {
	var opts []raycard.Option
	if p, ok := LookupPreset(c.Preset); ok {
		opts = append(opts, p.Style.Options()...)
	}
	opts = append(opts, c.Style.Options()...)
	return raycard.NewConfig(opts...)
}

// Size returns the card size in cells with defaults applied.
func (c CardSpec) Size() (width, height int) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = DefaultCardWidth
	}
	if height == 0 {
		height = DefaultCardHeight
	}
	return width, height
}

// WithDefaults returns the canvas with unset fields filled in. An invalid
// background is replaced as well, matching the engine's fail-soft policy.
func (c Canvas) WithDefaults() Canvas {
	if c.CellWidth == 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight == 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.Gap == 0 {
		c.Gap = DefaultGap
	}
	if !raycard.IsValidCSSColor(c.Background) {
		c.Background = DefaultBackground
	}
	return c
}
