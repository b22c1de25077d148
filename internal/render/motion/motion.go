// Package motion eases the displayed glow and shadow toward the latest
// published effect state, so renderers fade in and out instead of jumping.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

const (
	// DefaultFPS is the frame rate hosts tick at.
	DefaultFPS = 60

	// A critically damped spring at this frequency covers about 95% of the
	// distance in 0.3s.
	frequency = 15.0
	damping   = 1.0

	settleEpsilon = 1e-3
)

// Frame is what a renderer draws. The glow position follows the pointer
// directly; intensity and shadow are eased.
type Frame struct {
	LocalX    float64
	LocalY    float64
	Intensity float64
	Shadow    raycard.ShadowVector
}

// Target is the frame an animation converges on for a state.
func Target(s raycard.EffectState, cfg raycard.Config) Frame {
	return Frame{
		LocalX:    s.LocalX,
		LocalY:    s.LocalY,
		Intensity: raycard.EffectiveIntensity(s, cfg),
		Shadow:    s.Shadow,
	}
}

const (
	chIntensity = iota
	chOffsetX
	chOffsetY
	chBlur
	chSpread
	chOpacity
	channels
)

// Animator holds spring state for one card. It is not safe for concurrent
// use; hosts step it from their render loop.
type Animator struct {
	spring  harmonica.Spring
	pos     [channels]float64
	vel     [channels]float64
	current Frame
}

// NewAnimator returns an animator stepping at fps frames per second.
func NewAnimator(fps int) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step advances one frame toward target and returns the new frame.
func (a *Animator) Step(target Frame) Frame {
	goal := unpack(target)
	for i := range a.pos {
		a.pos[i], a.vel[i] = a.spring.Update(a.pos[i], a.vel[i], goal[i])
	}
	a.current = pack(target.LocalX, target.LocalY, a.pos)
	return a.current
}

// Snap jumps straight to target.
func (a *Animator) Snap(target Frame) Frame {
	a.pos = unpack(target)
	a.vel = [channels]float64{}
	a.current = pack(target.LocalX, target.LocalY, a.pos)
	return a.current
}

// Current returns the last frame produced.
func (a *Animator) Current() Frame {
	return a.current
}

// Settled reports whether the animation has come to rest on target.
func (a *Animator) Settled(target Frame) bool {
	goal := unpack(target)
	for i := range a.pos {
		if math.Abs(a.pos[i]-goal[i]) > settleEpsilon || math.Abs(a.vel[i]) > settleEpsilon {
			return false
		}
	}
	return true
}

func unpack(f Frame) [channels]float64 {
	var v [channels]float64
	v[chIntensity] = f.Intensity
	v[chOffsetX] = f.Shadow.OffsetX
	v[chOffsetY] = f.Shadow.OffsetY
	v[chBlur] = f.Shadow.Blur
	v[chSpread] = f.Shadow.Spread
	v[chOpacity] = f.Shadow.Opacity
	return v
}

func pack(x, y float64, v [channels]float64) Frame {
	return Frame{
		LocalX: x,
		LocalY: y,
		// Springs overshoot slightly; keep alpha values in range.
		Intensity: raycard.ClampNumber(v[chIntensity], 0, 1, 0),
		Shadow: raycard.ShadowVector{
			OffsetX: v[chOffsetX],
			OffsetY: v[chOffsetY],
			Blur:    math.Max(0, v[chBlur]),
			Spread:  v[chSpread],
			Opacity: raycard.ClampNumber(v[chOpacity], 0, 1, 0),
		},
	}
}
