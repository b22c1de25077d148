package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

func testDeck() *config.Deck {
	return &config.Deck{
		Version: "1.0",
		Canvas:  config.Canvas{CellWidth: 8, CellHeight: 16, Gap: 2},
		Cards: []config.CardSpec{
			{ID: "one", Title: "One", Width: 10, Height: 5},
			{ID: "two", Title: "Two", Width: 10, Height: 5, Preset: "border-only"},
		},
	}
}

func newBoard(t *testing.T, width int) *Board {
	t.Helper()
	b, err := New(testDeck(), Options{Width: width})
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func TestNewRejectsEmptyDeck(t *testing.T) {
	t.Parallel()

	_, err := New(nil, Options{})
	require.Error(t, err)

	_, err = New(&config.Deck{Version: "1.0"}, Options{})
	require.Error(t, err)
}

func TestNewMountsEveryCard(t *testing.T) {
	t.Parallel()

	b := newBoard(t, 0)
	require.Len(t, b.Entries(), 2)
	for _, e := range b.Entries() {
		assert.True(t, e.Tracker.Mounted())
		assert.True(t, e.Tracker.Subscribed())
		assert.Zero(t, e.Frame().Intensity)
	}

	assert.Equal(t, raycard.GlowBorder, b.Entries()[1].Tracker.Config().GlowMode())

	cols, rows := b.Extent()
	assert.Equal(t, 26, cols)
	assert.Equal(t, 7, rows)
	w, h := b.PixelSize()
	assert.Equal(t, 26*8, w)
	assert.Equal(t, 7*16, h)
}

func TestPointerDrivesTrackers(t *testing.T) {
	t.Parallel()

	b := newBoard(t, 0)
	one, two := b.Entries()[0], b.Entries()[1]

	b.MoveCell(4, 3)
	assert.True(t, one.Tracker.State().IsInside)
	assert.False(t, two.Tracker.State().IsNear)

	assert.True(t, b.Step())
	assert.Positive(t, one.Frame().Intensity)
	assert.Zero(t, two.Frame().Intensity)

	b.Snap()
	assert.InDelta(t, 1, one.Frame().Intensity, 1e-9)
	assert.False(t, b.Step())

	b.Leave()
	assert.False(t, one.Tracker.State().Active())
	assert.True(t, b.Step(), "fading out")
}

func TestControlsActOnSelection(t *testing.T) {
	t.Parallel()

	b := newBoard(t, 0)
	assert.Equal(t, "one", b.Selected().Spec.ID)

	b.SelectPrev()
	assert.Equal(t, "two", b.Selected().Spec.ID)
	b.SelectNext()
	assert.Equal(t, "one", b.Selected().Spec.ID)

	b.MoveCell(4, 3)
	b.ToggleDisabled()
	tracker := b.Selected().Tracker
	assert.True(t, tracker.Config().Disabled())
	assert.False(t, tracker.Subscribed())
	assert.False(t, tracker.State().Active())

	b.ToggleDisabled()
	assert.True(t, tracker.Subscribed())

	b.CycleMode()
	assert.Equal(t, raycard.GlowCard, tracker.Config().GlowMode())
	b.CycleMode()
	assert.Equal(t, raycard.GlowBorder, tracker.Config().GlowMode())
	b.CycleMode()
	assert.Equal(t, raycard.GlowBoth, tracker.Config().GlowMode())

	for i := 0; i < 100; i++ {
		b.AdjustProximity(ProximityStep)
	}
	assert.Equal(t, raycard.Ranges.Proximity.Max, tracker.Config().Proximity())

	b.AdjustIntensity(-5)
	assert.Zero(t, tracker.Config().GlowIntensity())
}

func TestRelayoutMovesRects(t *testing.T) {
	t.Parallel()

	b := newBoard(t, 0)
	before := b.Entries()[1].Tracker.Element().BoundingRect()

	b.Relayout(20)
	after := b.Entries()[1].Tracker.Element().BoundingRect()
	assert.NotEqual(t, before, after)
	assert.Equal(t, b.Entries()[1].Placement.Rect(b.Canvas()), after)
}

func TestRendererCards(t *testing.T) {
	t.Parallel()

	b := newBoard(t, 0)
	termCards := b.TermCards()
	require.Len(t, termCards, 2)
	assert.Equal(t, "One", termCards[0].Title)

	rasterCards := b.RasterCards()
	require.Len(t, rasterCards, 2)
	assert.Equal(t, raycard.NewRect(16, 16, 80, 80), rasterCards[0].Rect)
}
