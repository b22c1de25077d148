// Package window hosts a board in a desktop window. The cursor drives the
// same trackers the terminal playground uses; frames are rasterized with gg
// and uploaded to the screen.
package window

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
	"github.com/alexisbeaulieu97/raycard/internal/logger"
	"github.com/alexisbeaulieu97/raycard/internal/render/raster"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// Game implements ebiten.Game for a board.
type Game struct {
	board    *board.Board
	renderer *raster.Renderer
	log      *logger.Logger

	width  int
	height int

	cursor  image.Point
	hovered bool
	dirty   bool
	moving  bool

	frame *ebiten.Image
}

// New creates a window game sized to the board's extent.
func New(b *board.Board, r *raster.Renderer, log *logger.Logger) *Game {
	if log == nil {
		log = logger.Nop()
	}
	w, h := b.PixelSize()
	return &Game{
		board:    b,
		renderer: r,
		log:      log,
		width:    w,
		height:   h,
		cursor:   image.Pt(-1, -1),
		dirty:    true,
	}
}

// Size returns the logical screen size.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// Pointer feeds a cursor position. Samples outside the surface count as
// leaving it. Repeated samples at the same position are dropped.
func (g *Game) Pointer(x, y int) {
	p := image.Pt(x, y)
	if p == g.cursor {
		return
	}
	g.cursor = p

	inside := p.In(image.Rect(0, 0, g.width, g.height))
	switch {
	case inside:
		g.board.Move(raycard.PointerEvent{ClientX: float64(x), ClientY: float64(y)})
	case g.hovered:
		g.board.Leave()
	default:
		return
	}
	g.hovered = inside
	g.dirty = true
}

// Update runs one tick: input, pointer, animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.board.SelectNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.board.ToggleDisabled()
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.board.CycleMode()
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.board.AdjustProximity(board.ProximityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.board.AdjustProximity(-board.ProximityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.board.AdjustIntensity(board.IntensityStep)
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.board.AdjustIntensity(-board.IntensityStep)
		g.dirty = true
	}

	g.Pointer(ebiten.CursorPosition())
	g.Tick()
	return nil
}

// Tick advances the animations and marks the frame for redraw while
// anything is moving.
func (g *Game) Tick() {
	if g.dirty || g.moving {
		g.moving = g.board.Step()
		g.dirty = true
	}
}

// Draw uploads a freshly rasterized frame when something changed.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
		g.dirty = true
	}
	if g.dirty {
		img, err := g.renderer.Image(g.width, g.height, g.board.RasterCards())
		if err != nil {
			g.log.Error(err, "render frame")
			return
		}
		g.frame.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

// Layout returns the board's pixel size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.log.With("size", []int{g.width, g.height}).Info("window opened")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
