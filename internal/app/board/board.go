// Package board runs a deck of cards against a single pointer stream. It is
// the state shared by the terminal playground and the window host: one
// tracker per card mounted on a common dispatcher, plus the animators that
// ease each card toward its published state.
package board

import (
	"fmt"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/logger"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/raster"
	"github.com/alexisbeaulieu97/raycard/internal/render/term"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// Proximity and intensity steps used by the interactive hosts.
const (
	ProximityStep = 8.0
	IntensityStep = 0.1
)

// Options configures a Board.
type Options struct {
	// Width is the layout width in cells. Zero keeps every card on one line.
	Width  int
	FPS    int
	Logger *logger.Logger
}

// Entry is one card on the board.
type Entry struct {
	Spec      config.CardSpec
	Placement term.Placement
	Tracker   *raycard.Tracker

	anim  *motion.Animator
	frame motion.Frame
}

// Frame returns the eased frame last produced by Step.
func (e *Entry) Frame() motion.Frame {
	return e.frame
}

// Board is not safe for concurrent use. Hosts drive it from their update
// loop; only the trackers underneath are synchronized.
type Board struct {
	deck     *config.Deck
	canvas   config.Canvas
	source   *raycard.Dispatcher
	entries  []*Entry
	selected int
	log      *logger.Logger
}

// New lays out the deck and mounts a tracker for every card.
func New(deck *config.Deck, opts Options) (*Board, error) {
	if deck == nil || len(deck.Cards) == 0 {
		return nil, fmt.Errorf("deck has no cards")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	b := &Board{
		deck:   deck,
		canvas: deck.Canvas.WithDefaults(),
		source: raycard.NewDispatcher(),
		log:    log,
	}

	placements := term.Layout(deck, opts.Width)
	for i, spec := range deck.Cards {
		tracker := raycard.NewTracker(spec.EffectConfig())
		tracker.Box().SetRect(placements[i].Rect(b.canvas))
		tracker.Mount(b.source)

		e := &Entry{
			Spec:      spec,
			Placement: placements[i],
			Tracker:   tracker,
			anim:      motion.NewAnimator(opts.FPS),
		}
		e.frame = e.anim.Snap(motion.Target(tracker.State(), tracker.Config()))
		b.entries = append(b.entries, e)
	}

	log.With("cards", len(b.entries)).Debug("board mounted")
	return b, nil
}

// Canvas returns the canvas with defaults applied.
func (b *Board) Canvas() config.Canvas {
	return b.canvas
}

// Deck returns the deck the board was built from.
func (b *Board) Deck() *config.Deck {
	return b.deck
}

// Entries returns the cards in deck order.
func (b *Board) Entries() []*Entry {
	return b.entries
}

// Relayout flows the cards for a new width and updates every tracked rect.
func (b *Board) Relayout(width int) {
	placements := term.Layout(b.deck, width)
	for i, e := range b.entries {
		e.Placement = placements[i]
		e.Tracker.Box().SetRect(e.Placement.Rect(b.canvas))
	}
}

// Extent returns the grid size in cells needed to show every card.
func (b *Board) Extent() (cols, rows int) {
	placements := make([]term.Placement, len(b.entries))
	for i, e := range b.entries {
		placements[i] = e.Placement
	}
	return term.Extent(b.canvas, placements)
}

// PixelSize returns the extent in canvas pixels.
func (b *Board) PixelSize() (width, height int) {
	cols, rows := b.Extent()
	return cols * b.canvas.CellWidth, rows * b.canvas.CellHeight
}

// Move feeds a pointer sample in canvas pixels.
func (b *Board) Move(p raycard.PointerEvent) {
	b.source.Move(p)
}

// MoveCell feeds a pointer sample at the center of a terminal cell.
func (b *Board) MoveCell(col, row int) {
	b.source.Move(term.PointerAt(b.canvas, col, row))
}

// Leave reports that the pointer left the surface.
func (b *Board) Leave() {
	b.source.LeaveAll()
}

// Step advances every animation by one frame and reports whether any card
// is still moving.
func (b *Board) Step() bool {
	moving := false
	for _, e := range b.entries {
		target := motion.Target(e.Tracker.State(), e.Tracker.Config())
		e.frame = e.anim.Step(target)
		if !e.anim.Settled(target) {
			moving = true
		}
	}
	return moving
}

// Snap moves every animation straight to its target.
func (b *Board) Snap() {
	for _, e := range b.entries {
		e.frame = e.anim.Snap(motion.Target(e.Tracker.State(), e.Tracker.Config()))
	}
}

// Selected returns the card the interactive controls act on.
func (b *Board) Selected() *Entry {
	return b.entries[b.selected]
}

// SelectNext moves the selection forward, wrapping around.
func (b *Board) SelectNext() {
	b.selected = (b.selected + 1) % len(b.entries)
}

// SelectPrev moves the selection backward, wrapping around.
func (b *Board) SelectPrev() {
	b.selected = (b.selected - 1 + len(b.entries)) % len(b.entries)
}

// ToggleDisabled flips the disabled flag of the selected card.
func (b *Board) ToggleDisabled() {
	b.reconfigure(func(cfg raycard.Config) raycard.Config {
		return cfg.With(raycard.WithDisabled(!cfg.Disabled()))
	})
}

// CycleMode advances the selected card through both, card and border.
func (b *Board) CycleMode() {
	b.reconfigure(func(cfg raycard.Config) raycard.Config {
		next := raycard.GlowBoth
		switch cfg.GlowMode() {
		case raycard.GlowBoth:
			next = raycard.GlowCard
		case raycard.GlowCard:
			next = raycard.GlowBorder
		}
		return cfg.With(raycard.WithGlowMode(next))
	})
}

// AdjustProximity changes the selected card's proximity, clamped to range.
func (b *Board) AdjustProximity(delta float64) {
	b.reconfigure(func(cfg raycard.Config) raycard.Config {
		return cfg.With(raycard.WithProximity(cfg.Proximity() + delta))
	})
}

// AdjustIntensity changes the selected card's glow intensity, clamped to range.
func (b *Board) AdjustIntensity(delta float64) {
	b.reconfigure(func(cfg raycard.Config) raycard.Config {
		return cfg.With(raycard.WithGlowIntensity(cfg.GlowIntensity() + delta))
	})
}

func (b *Board) reconfigure(fn func(raycard.Config) raycard.Config) {
	e := b.Selected()
	cfg := fn(e.Tracker.Config())
	e.Tracker.Configure(cfg)
	b.log.WithFields(map[string]any{
		"card":      e.Spec.ID,
		"disabled":  cfg.Disabled(),
		"glow_mode": cfg.GlowMode().String(),
		"proximity": cfg.Proximity(),
		"intensity": cfg.GlowIntensity(),
	}).Debug("card reconfigured")
}

// TermCards returns the cards for the terminal renderer.
func (b *Board) TermCards() []term.Card {
	cards := make([]term.Card, len(b.entries))
	for i, e := range b.entries {
		cards[i] = term.Card{
			Placement: e.Placement,
			Title:     e.Spec.Title,
			Body:      e.Spec.Body,
			Config:    e.Tracker.Config(),
			Frame:     e.frame,
		}
	}
	return cards
}

// RasterCards returns the cards for the raster renderer, in canvas pixels.
func (b *Board) RasterCards() []raster.Card {
	cards := make([]raster.Card, len(b.entries))
	for i, e := range b.entries {
		cards[i] = raster.Card{
			Rect:   e.Tracker.Element().BoundingRect(),
			Config: e.Tracker.Config(),
			Frame:  e.frame,
		}
	}
	return cards
}

// Close unmounts every tracker.
func (b *Board) Close() {
	for _, e := range b.entries {
		e.Tracker.Unmount()
	}
	b.log.Debug("board unmounted")
}
