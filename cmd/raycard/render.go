package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/paint"
	"github.com/alexisbeaulieu97/raycard/internal/render/raster"
	"github.com/alexisbeaulieu97/raycard/internal/render/term"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
	raycarderrors "github.com/alexisbeaulieu97/raycard/pkg/errors"
)

// renderMargin leaves room around the card for the shadow.
const renderMargin = 64

type renderOptions struct {
	Card    string
	Pointer string
	Out     string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rasterize one card with the pointer at a position into a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), root.verbose, "render")
			if err != nil {
				return err
			}
			deck, _, err := loadDeck(root, log)
			if err != nil {
				return err
			}

			if opts.Out == "-" {
				return renderCard(cmd.OutOrStdout(), deck, opts)
			}
			f, err := os.Create(opts.Out)
			if err != nil {
				return raycarderrors.NewRenderError(opts.Out, err)
			}
			if err := renderCard(f, deck, opts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return raycarderrors.NewRenderError(opts.Out, err)
			}
			log.With("out", opts.Out).Info("frame written")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Card, "card", "", "Card id (defaults to the first card)")
	cmd.Flags().StringVarP(&opts.Pointer, "pointer", "p", "0,0", "Pointer position x,y in pixels from the card's top-left corner")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output PNG path, or - for stdout")
	cmd.MarkFlagRequired("out") //nolint:errcheck

	return cmd
}

func renderCard(w io.Writer, deck *config.Deck, opts renderOptions) error {
	card, err := findCard(deck, opts.Card)
	if err != nil {
		return err
	}
	pointer, err := parsePointer(opts.Pointer)
	if err != nil {
		return err
	}

	local := cardRect(deck, card)
	rect := raycard.NewRect(renderMargin, renderMargin, local.Width, local.Height)
	pointer.ClientX += renderMargin
	pointer.ClientY += renderMargin

	cfg := card.EffectConfig()
	state := raycard.ComputeEffect(pointer, rect, cfg)
	if cfg.Disabled() {
		state = state.Inactive()
	}

	background := paint.ParseOr(deck.Canvas.Background, config.DefaultBackground)
	r := raster.NewRenderer(background.Color, term.DefaultPalette.Surface, term.DefaultPalette.Edge)
	width := int(rect.Width) + 2*renderMargin
	height := int(rect.Height) + 2*renderMargin

	target := opts.Out
	if target == "" || target == "-" {
		target = "stdout"
	}
	if err := r.EncodePNG(w, width, height, []raster.Card{{Rect: rect, Config: cfg, Frame: motion.Target(state, cfg)}}); err != nil {
		return raycarderrors.NewRenderError(target, err)
	}
	return nil
}
