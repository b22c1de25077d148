// Package term draws cards on a terminal cell grid with lipgloss. Cells are
// mapped to the pixel space the effect engine works in through the deck's
// canvas metrics, so the same configuration behaves the same in every host.
package term

import (
	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// Placement positions a card on the cell grid.
type Placement struct {
	ID   string
	Col  int
	Row  int
	Cols int
	Rows int
}

// Contains reports whether the cell lies within the placement.
func (p Placement) Contains(col, row int) bool {
	return col >= p.Col && col < p.Col+p.Cols && row >= p.Row && row < p.Row+p.Rows
}

// Rect returns the placement in canvas pixels.
func (p Placement) Rect(c config.Canvas) raycard.Rect {
	c = c.WithDefaults()
	return raycard.NewRect(
		float64(p.Col*c.CellWidth),
		float64(p.Row*c.CellHeight),
		float64(p.Cols*c.CellWidth),
		float64(p.Rows*c.CellHeight),
	)
}

// PointerAt maps a terminal cell to the pixel at its center.
func PointerAt(c config.Canvas, col, row int) raycard.PointerEvent {
	c = c.WithDefaults()
	return raycard.PointerEvent{
		ClientX: (float64(col) + 0.5) * float64(c.CellWidth),
		ClientY: (float64(row) + 0.5) * float64(c.CellHeight),
	}
}

// Layout flows the deck's cards left to right, wrapping before a card would
// cross width. A non-positive width keeps every card on one line. Cards are
// separated by the canvas gap horizontally and half of it vertically.
func Layout(deck *config.Deck, width int) []Placement {
	if deck == nil {
		return nil
	}
	c := deck.Canvas.WithDefaults()
	gap := c.Gap
	rowGap := max(1, gap/2)

	placements := make([]Placement, 0, len(deck.Cards))
	x, y, lineHeight := gap, rowGap, 0
	for _, card := range deck.Cards {
		w, h := card.Size()
		if width > 0 && x > gap && x+w+gap > width {
			x = gap
			y += lineHeight + rowGap
			lineHeight = 0
		}
		placements = append(placements, Placement{ID: card.ID, Col: x, Row: y, Cols: w, Rows: h})
		x += w + gap
		lineHeight = max(lineHeight, h)
	}
	return placements
}

// Extent returns the grid size needed to show every placement with a
// trailing margin matching the leading one.
func Extent(c config.Canvas, placements []Placement) (cols, rows int) {
	c = c.WithDefaults()
	for _, p := range placements {
		cols = max(cols, p.Col+p.Cols+c.Gap)
		rows = max(rows, p.Row+p.Rows+max(1, c.Gap/2))
	}
	return cols, rows
}
