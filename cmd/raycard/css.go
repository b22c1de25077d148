package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

type cssOptions struct {
	Card    string
	Pointer string
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS a web renderer applies for a pointer position",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), root.verbose, "css")
			if err != nil {
				return err
			}
			deck, _, err := loadDeck(root, log)
			if err != nil {
				return err
			}
			return writeCSS(cmd.OutOrStdout(), deck, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Card, "card", "", "Card id (defaults to the first card)")
	cmd.Flags().StringVarP(&opts.Pointer, "pointer", "p", "0,0", "Pointer position x,y in pixels from the card's top-left corner")

	return cmd
}

func writeCSS(w io.Writer, deck *config.Deck, opts cssOptions) error {
	card, err := findCard(deck, opts.Card)
	if err != nil {
		return err
	}
	pointer, err := parsePointer(opts.Pointer)
	if err != nil {
		return err
	}

	cfg := card.EffectConfig()
	state := raycard.ComputeEffect(pointer, cardRect(deck, card), cfg)
	if cfg.Disabled() {
		state = state.Inactive()
	}
	sheet := raycard.Style(cfg, state)

	fmt.Fprintf(w, "/* %s */\n", card.ID)
	fmt.Fprintf(w, "style: %s\n", sheet.Declarations())
	if sheet.ContentGlow != "" {
		fmt.Fprintf(w, "content-glow: background: %s; opacity: %s;\n", sheet.ContentGlow, sheet.Properties["--light-opacity"])
	}
	if sheet.BorderGlow != "" {
		fmt.Fprintf(w, "border-glow: background: %s; opacity: %s;\n", sheet.BorderGlow, sheet.Properties["--light-opacity"])
	}
	return nil
}
