// Package raster draws card frames into images with gg. It backs the
// render command and the window host.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/paint"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

const (
	contentGlowStop = 0.4
	// Blur is approximated with stacked translucent outlines.
	shadowLayers = 12
	borderWidth  = 1.0
)

// Card is one card in a frame, in image pixels.
type Card struct {
	Rect   raycard.Rect
	Config raycard.Config
	Frame  motion.Frame
}

// Renderer draws cards over a solid background.
type Renderer struct {
	background colorful.Color
	surface    colorful.Color
	edge       colorful.Color
}

// NewRenderer returns a renderer using the given background, surface and
// edge colors.
func NewRenderer(background, surface, edge colorful.Color) *Renderer {
	return &Renderer{background: background, surface: surface, edge: edge}
}

// Frame draws a width by height image of the cards.
func (r *Renderer) Frame(width, height int, cards []Card) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	if err := r.Draw(dc, cards); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Image draws the cards and returns the pixels.
func (r *Renderer) Image(width, height int, cards []Card) (*image.RGBA, error) {
	dc, err := r.Frame(width, height, cards)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type %T", dc.Image())
	}
	return img, nil
}

// EncodePNG draws the cards and writes them as PNG.
func (r *Renderer) EncodePNG(w io.Writer, width, height int, cards []Card) error {
	dc, err := r.Frame(width, height, cards)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Draw paints the background and every card onto dc.
func (r *Renderer) Draw(dc *gg.Context, cards []Card) error {
	dc.ClearWithColor(rgba(paint.Opaque(r.background)))
	for i, c := range cards {
		if err := r.drawCard(dc, c); err != nil {
			return fmt.Errorf("draw card %d: %w", i, err)
		}
	}
	return nil
}

func (r *Renderer) drawCard(dc *gg.Context, c Card) error {
	rect := c.Rect
	radius := raycard.ResolveRadius(c.Config.BorderRadius(), rect.Width, rect.Height)
	glow := paint.ParseOr(c.Config.GlowColor(), raycard.Defaults.GlowColor)
	mode := c.Config.GlowMode()
	cx, cy := rect.Left+c.Frame.LocalX, rect.Top+c.Frame.LocalY

	if err := r.drawShadow(dc, rect, radius, c.Frame.Shadow); err != nil {
		return err
	}

	dc.SetFillBrush(gg.Solid(rgba(paint.Opaque(r.surface))))
	dc.DrawRoundedRectangle(rect.Left, rect.Top, rect.Width, rect.Height, radius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill surface: %w", err)
	}

	if mode.Card() && c.Frame.Intensity > 0 {
		dc.Push()
		dc.DrawRoundedRectangle(rect.Left, rect.Top, rect.Width, rect.Height, radius)
		dc.Clip()
		dc.SetFillBrush(radial(cx, cy, c.Config.GlowSpread()*contentGlowStop, glow, c.Frame.Intensity))
		dc.DrawRectangle(rect.Left, rect.Top, rect.Width, rect.Height)
		err := dc.Fill()
		dc.Pop()
		if err != nil {
			return fmt.Errorf("fill glow: %w", err)
		}
	}

	inset := borderWidth / 2
	dc.SetLineWidth(borderWidth)
	dc.SetStrokeBrush(gg.Solid(rgba(paint.Opaque(r.edge))))
	dc.DrawRoundedRectangle(rect.Left+inset, rect.Top+inset, rect.Width-borderWidth, rect.Height-borderWidth, radius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke border: %w", err)
	}

	if mode.Border() && c.Frame.Intensity > 0 {
		dc.SetStrokeBrush(radial(cx, cy, c.Config.GlowSpread(), glow, c.Frame.Intensity))
		dc.DrawRoundedRectangle(rect.Left+inset, rect.Top+inset, rect.Width-borderWidth, rect.Height-borderWidth, radius)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke border glow: %w", err)
		}
	}
	return nil
}

func (r *Renderer) drawShadow(dc *gg.Context, rect raycard.Rect, radius float64, s raycard.ShadowVector) error {
	if s.Opacity <= 0 {
		return nil
	}
	layerAlpha := s.Opacity / shadowLayers
	for i := shadowLayers; i >= 1; i-- {
		grow := s.Spread + s.Blur*float64(i)/shadowLayers
		dc.SetFillBrush(gg.Solid(gg.RGBA{A: layerAlpha}))
		dc.DrawRoundedRectangle(
			rect.Left+s.OffsetX-grow,
			rect.Top+s.OffsetY-grow,
			rect.Width+2*grow,
			rect.Height+2*grow,
			radius+grow,
		)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill shadow: %w", err)
		}
	}
	return nil
}

// radial builds the glow brush: the glow color scaled by intensity at the
// pointer, fading to transparent at radius.
func radial(cx, cy, radius float64, glow paint.Color, intensity float64) *gg.RadialGradientBrush {
	center := rgba(glow.Fade(intensity))
	edge := center
	edge.A = 0
	return gg.NewRadialGradientBrush(cx, cy, 0, radius).
		AddColorStop(0, center).
		AddColorStop(1, edge)
}

func rgba(c paint.Color) gg.RGBA {
	r, g, b, a := c.Components()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}
