package raycard

import "math"

const (
	// maxShadowOffset is the shadow travel, in pixels, when the light sits at
	// the rect's own corner distance from the center.
	maxShadowOffset = 20
	baseSpread      = 1
	spreadRange     = 15
	baseBlur        = 10
	blurRange       = 30
	activeOpacity   = 0.2
)

// ShadowVector describes a drop shadow.
type ShadowVector struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
	Opacity float64
}

// EffectState is the light and shadow state derived from one pointer sample.
// LocalX and LocalY are relative to the rect's top-left corner and are not
// clamped to the rect.
type EffectState struct {
	LocalX   float64
	LocalY   float64
	IsNear   bool
	IsInside bool
	Shadow   ShadowVector
}

// Active reports whether the pointer is near or inside the rect.
func (s EffectState) Active() bool { return s.IsNear || s.IsInside }

// Inactive returns s with the shadow hidden. Shadow geometry and the local
// coordinates are retained so renderers can fade out in place.
func (s EffectState) Inactive() EffectState {
	s.IsNear = false
	s.IsInside = false
	s.Shadow.Opacity = 0
	return s
}

// ComputeEffect derives the effect state for pointer p over rect r.
func ComputeEffect(p PointerEvent, r Rect, cfg Config) EffectState {
	return EffectState{}.Next(p, r, cfg)
}

// Next derives the state for a new sample, using s as the previous sample.
// When the pointer is neither near nor inside, or cfg is disabled, only the
// containment flags and the shadow opacity change.
func (s EffectState) Next(p PointerEvent, r Rect, cfg Config) EffectState {
	x, y := p.ClientX, p.ClientY
	prox := cfg.Proximity()

	next := s
	next.IsInside = r.Contains(x, y)
	// Any interior point also satisfies this test, so IsNear is a superset
	// of IsInside rather than a ring around the border.
	next.IsNear = x > r.Left-prox && x < r.Right+prox &&
		y > r.Top-prox && y < r.Bottom+prox

	if !next.Active() || cfg.Disabled() {
		next.Shadow.Opacity = 0
		return next
	}

	next.LocalX = x - r.Left
	next.LocalY = y - r.Top

	centerX := r.Width / 2
	centerY := r.Height / 2
	dx := next.LocalX - centerX
	dy := next.LocalY - centerY
	if next.IsInside {
		dx /= 2
		dy /= 2
	}

	next.Shadow.OffsetX = -normalized(dx, centerX) * maxShadowOffset
	next.Shadow.OffsetY = -normalized(dy, centerY) * maxShadowOffset

	dist := math.Sqrt(dx*dx + dy*dy)
	maxDist := math.Sqrt(centerX*centerX+centerY*centerY) + prox
	ratio := normalized(dist, maxDist)

	next.Shadow.Spread = baseSpread + ratio*spreadRange
	next.Shadow.Blur = baseBlur + ratio*blurRange
	next.Shadow.Opacity = activeOpacity
	return next
}

// normalized returns v/extent, or 0 when extent is 0.
func normalized(v, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return v / extent
}

// EffectiveIntensity gates the configured glow brightness by the state:
// zero when disabled or when the pointer is neither near nor inside.
func EffectiveIntensity(s EffectState, cfg Config) float64 {
	if cfg.Disabled() || !s.Active() {
		return 0
	}
	return cfg.GlowIntensity()
}
