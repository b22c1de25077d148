package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/paint"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// Content glow fades out at this fraction of the spread; the border ring
// uses the full spread.
const contentGlowStop = 0.4

// Palette holds the fixed colors around the glow.
type Palette struct {
	Surface colorful.Color
	Edge    colorful.Color
	Text    colorful.Color
	Muted   colorful.Color
}

// DefaultPalette suits the default canvas background.
var DefaultPalette = Palette{
	Surface: mustHex("#313244"),
	Edge:    mustHex("#6c7086"),
	Text:    mustHex("#cdd6f4"),
	Muted:   mustHex("#a6adc8"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Card is one card as the renderer sees it.
type Card struct {
	Placement
	Title  string
	Body   string
	Config raycard.Config
	Frame  motion.Frame
}

// Cell is a composed terminal cell.
type Cell struct {
	Glyph rune
	FG    colorful.Color
	BG    colorful.Color
	Bold  bool
}

// Renderer composes cards into styled terminal output.
type Renderer struct {
	canvas     config.Canvas
	background colorful.Color
	palette    Palette
}

// NewRenderer returns a renderer for the canvas.
func NewRenderer(c config.Canvas) *Renderer {
	c = c.WithDefaults()
	bg := paint.ParseOr(c.Background, config.DefaultBackground)
	return &Renderer{canvas: c, background: bg.Color, palette: DefaultPalette}
}

// WithPalette replaces the fixed colors.
func (r *Renderer) WithPalette(p Palette) *Renderer {
	r.palette = p
	return r
}

// Canvas returns the canvas the renderer maps cells with.
func (r *Renderer) Canvas() config.Canvas {
	return r.canvas
}

// Render composes and paints a cols by rows grid.
func (r *Renderer) Render(cols, rows int, cards []Card) string {
	return r.Paint(r.Compose(cols, rows, cards))
}

// Compose resolves every cell of the grid. Later cards draw over earlier
// ones.
func (r *Renderer) Compose(cols, rows int, cards []Card) [][]Cell {
	views := make([]cardView, len(cards))
	for i, c := range cards {
		views[i] = r.newCardView(c)
	}

	grid := make([][]Cell, rows)
	for row := range grid {
		grid[row] = make([]Cell, cols)
		for col := range grid[row] {
			grid[row][col] = r.cell(col, row, views)
		}
	}
	return grid
}

// Paint turns a composed grid into a string, styling runs of equal cells
// together.
func (r *Renderer) Paint(grid [][]Cell) string {
	styles := make(map[[2]colorful.Color]lipgloss.Style)
	lines := make([]string, len(grid))
	var run strings.Builder
	for i, row := range grid {
		var line strings.Builder
		for j := 0; j < len(row); {
			start := row[j]
			run.Reset()
			for j < len(row) && row[j].FG == start.FG && row[j].BG == start.BG && row[j].Bold == start.Bold {
				run.WriteRune(row[j].Glyph)
				j++
			}
			key := [2]colorful.Color{start.FG, start.BG}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(start.FG.Hex())).
					Background(lipgloss.Color(start.BG.Hex()))
				styles[key] = style
			}
			line.WriteString(style.Bold(start.Bold).Render(run.String()))
		}
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}

type cardView struct {
	Card
	rect   raycard.Rect
	radius float64
	glow   paint.Color
	border lipgloss.Border
	text   map[[2]int]textGlyph
}

type textGlyph struct {
	r    rune
	bold bool
}

func (r *Renderer) newCardView(c Card) cardView {
	rect := c.Rect(r.canvas)
	v := cardView{
		Card:   c,
		rect:   rect,
		radius: raycard.ResolveRadius(c.Config.BorderRadius(), rect.Width, rect.Height),
		glow:   paint.ParseOr(c.Config.GlowColor(), raycard.Defaults.GlowColor),
		border: lipgloss.NormalBorder(),
		text:   make(map[[2]int]textGlyph),
	}
	if v.radius > 0 {
		v.border = lipgloss.RoundedBorder()
	}

	inner := c.Cols - 4
	if inner <= 0 {
		return v
	}
	place := func(row int, line string, bold bool) {
		if row >= c.Row+c.Rows-1 {
			return
		}
		for i, ch := range []rune(line) {
			if i >= inner {
				break
			}
			v.text[[2]int{c.Col + 2 + i, row}] = textGlyph{r: ch, bold: bold}
		}
	}
	place(c.Row+1, c.Title, true)
	if c.Body != "" {
		wrapped := lipgloss.NewStyle().Width(inner).Render(c.Body)
		for i, line := range strings.Split(wrapped, "\n") {
			place(c.Row+3+i, strings.TrimRight(line, " "), false)
		}
	}
	return v
}

func (r *Renderer) cell(col, row int, views []cardView) Cell {
	p := PointerAt(r.canvas, col, row)
	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		if !v.Contains(col, row) || !v.covers(p) {
			continue
		}
		return r.cardCell(col, row, p, v)
	}

	alpha := 0.0
	for _, v := range views {
		a := shadowAlpha(p, v.rect, v.Frame.Shadow)
		alpha = 1 - (1-alpha)*(1-a)
	}
	shade := paint.Color{Alpha: alpha}.Over(r.background)
	return Cell{Glyph: ' ', FG: r.palette.Muted, BG: shade}
}

func (r *Renderer) cardCell(col, row int, p raycard.PointerEvent, v cardView) Cell {
	mode := v.Config.GlowMode()
	lx, ly := p.ClientX-v.rect.Left, p.ClientY-v.rect.Top
	dist := math.Hypot(lx-v.Frame.LocalX, ly-v.Frame.LocalY)
	spread := v.Config.GlowSpread()

	bg := r.palette.Surface
	if mode.Card() {
		a := v.glow.Alpha * v.Frame.Intensity * falloff(dist, spread*contentGlowStop)
		bg = v.glow.WithAlpha(a).Over(bg)
	}

	if glyph, ok := v.edgeGlyph(col, row); ok {
		fg := r.palette.Edge
		if mode.Border() {
			a := v.glow.Alpha * v.Frame.Intensity * falloff(dist, spread)
			// Thin glyphs read dimmer than a filled layer.
			fg = v.glow.WithAlpha(math.Min(1, a*4)).Over(fg)
		}
		return Cell{Glyph: glyph, FG: fg, BG: bg}
	}

	if t, ok := v.text[[2]int{col, row}]; ok {
		fg := r.palette.Muted
		if t.bold {
			fg = r.palette.Text
		}
		return Cell{Glyph: t.r, FG: fg, BG: bg, Bold: t.bold}
	}
	return Cell{Glyph: ' ', FG: r.palette.Text, BG: bg}
}

// covers reports whether the pixel lies inside the rounded card outline.
func (v cardView) covers(p raycard.PointerEvent) bool {
	return insideRounded(p.ClientX-v.rect.Left, p.ClientY-v.rect.Top, v.rect.Width, v.rect.Height, v.radius)
}

func (v cardView) edgeGlyph(col, row int) (rune, bool) {
	left, right := col == v.Col, col == v.Col+v.Cols-1
	top, bottom := row == v.Row, row == v.Row+v.Rows-1
	first := func(s string) rune { return []rune(s)[0] }
	switch {
	case top && left:
		return first(v.border.TopLeft), true
	case top && right:
		return first(v.border.TopRight), true
	case bottom && left:
		return first(v.border.BottomLeft), true
	case bottom && right:
		return first(v.border.BottomRight), true
	case top:
		return first(v.border.Top), true
	case bottom:
		return first(v.border.Bottom), true
	case left:
		return first(v.border.Left), true
	case right:
		return first(v.border.Right), true
	}
	return 0, false
}

func insideRounded(x, y, w, h, radius float64) bool {
	if x < 0 || y < 0 || x > w || y > h {
		return false
	}
	if radius <= 0 {
		return true
	}
	cx := math.Max(radius, math.Min(w-radius, x))
	cy := math.Max(radius, math.Min(h-radius, y))
	return math.Hypot(x-cx, y-cy) <= radius
}

// falloff is a linear ramp from 1 at the center to 0 at radius.
func falloff(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Max(0, 1-dist/radius)
}

// shadowAlpha approximates a CSS box-shadow at a pixel: full opacity inside
// the offset rect grown by spread, fading linearly over the blur distance.
func shadowAlpha(p raycard.PointerEvent, r raycard.Rect, s raycard.ShadowVector) float64 {
	if s.Opacity <= 0 {
		return 0
	}
	left := r.Left + s.OffsetX - s.Spread
	top := r.Top + s.OffsetY - s.Spread
	right := r.Right + s.OffsetX + s.Spread
	bottom := r.Bottom + s.OffsetY + s.Spread

	dx := math.Max(0, math.Max(left-p.ClientX, p.ClientX-right))
	dy := math.Max(0, math.Max(top-p.ClientY, p.ClientY-bottom))
	d := math.Hypot(dx, dy)
	if d == 0 {
		return s.Opacity
	}
	return s.Opacity * falloff(d, s.Blur)
}
