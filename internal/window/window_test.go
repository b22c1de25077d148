package window

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/render/raster"
)

func newTestGame(t *testing.T) (*Game, *board.Board) {
	t.Helper()
	deck := &config.Deck{
		Version: "1.0",
		Cards:   []config.CardSpec{{ID: "hero", Width: 10, Height: 5}},
	}
	b, err := board.New(deck, board.Options{})
	require.NoError(t, err)
	t.Cleanup(b.Close)

	r := raster.NewRenderer(colorful.Color{}, colorful.Color{R: 0.2, G: 0.2, B: 0.2}, colorful.Color{R: 0.4, G: 0.4, B: 0.4})
	return New(b, r, nil), b
}

func TestLayoutMatchesBoard(t *testing.T) {
	g, b := newTestGame(t)
	w, h := b.PixelSize()

	lw, lh := g.Layout(1920, 1080)
	assert.Equal(t, w, lw)
	assert.Equal(t, h, lh)

	sw, sh := g.Size()
	assert.Equal(t, w, sw)
	assert.Equal(t, h, sh)
}

func TestPointerMovesAndLeaves(t *testing.T) {
	g, b := newTestGame(t)
	tracker := b.Entries()[0].Tracker
	rect := tracker.Element().BoundingRect()

	g.Pointer(int(rect.Left)+5, int(rect.Top)+5)
	assert.True(t, tracker.State().IsInside)
	assert.True(t, g.hovered)

	g.Pointer(-10, -10)
	assert.False(t, tracker.State().Active())
	assert.False(t, g.hovered)

	g.dirty = false
	g.Pointer(-20, -20)
	assert.False(t, g.dirty, "outside samples after leaving are ignored")
}

func TestTickAnimatesUntilSettled(t *testing.T) {
	g, b := newTestGame(t)
	rect := b.Entries()[0].Tracker.Element().BoundingRect()

	g.Pointer(int(rect.Left)+5, int(rect.Top)+5)
	g.Tick()
	assert.True(t, g.moving)
	assert.Positive(t, b.Entries()[0].Frame().Intensity)

	for i := 0; i < 600 && g.moving; i++ {
		g.Tick()
	}
	assert.False(t, g.moving)
}
