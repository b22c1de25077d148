package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/paint"
	"github.com/alexisbeaulieu97/raycard/internal/render/raster"
	"github.com/alexisbeaulieu97/raycard/internal/render/term"
	"github.com/alexisbeaulieu97/raycard/internal/window"
)

type windowOptions struct {
	Columns int
}

func newWindowCmd(root *rootFlags) *cobra.Command {
	opts := windowOptions{}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Hover the deck's cards with the mouse in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), root.verbose, "window")
			if err != nil {
				return err
			}
			deck, _, err := loadDeck(root, log)
			if err != nil {
				return err
			}

			b, err := board.New(deck, board.Options{Width: opts.Columns, FPS: motion.DefaultFPS, Logger: log})
			if err != nil {
				return err
			}
			defer b.Close()

			background := paint.ParseOr(deck.Canvas.Background, config.DefaultBackground)
			r := raster.NewRenderer(background.Color, term.DefaultPalette.Surface, term.DefaultPalette.Edge)

			title := "raycard"
			if deck.Name != "" {
				title += " • " + deck.Name
			}
			return window.Run(window.New(b, r, log), title)
		},
	}

	cmd.Flags().IntVar(&opts.Columns, "columns", 120, "Layout width in cells before cards wrap")

	return cmd
}
