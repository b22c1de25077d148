package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

func activeTarget(t *testing.T) Frame {
	t.Helper()
	cfg := raycard.NewConfig()
	s := raycard.ComputeEffect(raycard.PointerEvent{ClientX: 150, ClientY: 100}, raycard.NewRect(100, 50, 200, 100), cfg)
	require.True(t, s.IsInside)
	return Target(s, cfg)
}

func TestTargetGatesIntensity(t *testing.T) {
	t.Parallel()

	cfg := raycard.NewConfig(raycard.WithGlowIntensity(0.7))
	rect := raycard.NewRect(0, 0, 100, 100)

	inside := Target(raycard.ComputeEffect(raycard.PointerEvent{ClientX: 50, ClientY: 50}, rect, cfg), cfg)
	assert.InDelta(t, 0.7, inside.Intensity, 1e-9)

	away := Target(raycard.ComputeEffect(raycard.PointerEvent{ClientX: 500, ClientY: 500}, rect, cfg), cfg)
	assert.Zero(t, away.Intensity)
	assert.Zero(t, away.Shadow.Opacity)
}

func TestStepConvergesWithinTransition(t *testing.T) {
	t.Parallel()

	target := activeTarget(t)
	a := NewAnimator(DefaultFPS)

	first := a.Step(target)
	assert.Greater(t, first.Intensity, 0.0)
	assert.Less(t, first.Intensity, target.Intensity)
	assert.Equal(t, target.LocalX, first.LocalX, "glow position follows the pointer directly")
	assert.Equal(t, target.LocalY, first.LocalY)

	// 0.3s at 60fps
	var f Frame
	for i := 0; i < 18; i++ {
		f = a.Step(target)
	}
	assert.InDelta(t, target.Intensity, f.Intensity, 0.1*target.Intensity)
	assert.InDelta(t, target.Shadow.Opacity, f.Shadow.Opacity, 0.1*target.Shadow.Opacity)

	for i := 0; i < 240 && !a.Settled(target); i++ {
		a.Step(target)
	}
	assert.True(t, a.Settled(target))
	assert.InDelta(t, target.Shadow.Blur, a.Current().Shadow.Blur, 1e-2)
}

func TestStepFadesOut(t *testing.T) {
	t.Parallel()

	target := activeTarget(t)
	a := NewAnimator(0)
	a.Snap(target)
	require.True(t, a.Settled(target))

	off := target
	off.Intensity = 0
	off.Shadow.Opacity = 0

	prev := a.Current().Intensity
	for i := 0; i < 5; i++ {
		f := a.Step(off)
		assert.LessOrEqual(t, f.Intensity, prev)
		assert.GreaterOrEqual(t, f.Intensity, 0.0)
		prev = f.Intensity
	}
	assert.False(t, a.Settled(off))
}

func TestSnap(t *testing.T) {
	t.Parallel()

	target := activeTarget(t)
	a := NewAnimator(30)
	f := a.Snap(target)
	assert.Equal(t, target, f)
	assert.Equal(t, target, a.Current())
	assert.True(t, a.Settled(target))
}
