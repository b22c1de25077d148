package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/raycard/internal/config"
	"github.com/alexisbeaulieu97/raycard/internal/logger"
	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

func newLogger(w io.Writer, verbose bool, component string) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w, Component: component})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

func validateDeckPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("deck file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("deck path %s is a directory", abs)
	}
	return nil
}

// loadDeck reads the deck named by the root flags, or the preset deck when
// none is given. Rejected style values are logged as warnings along with
// the value applied instead.
func loadDeck(flags *rootFlags, log *logger.Logger) (*config.Deck, []config.Issue, error) {
	if strings.TrimSpace(flags.deck) == "" {
		deck, err := config.DefaultDeck()
		return deck, nil, err
	}
	if err := validateDeckPath(flags.deck); err != nil {
		return nil, nil, err
	}

	deck, issues, err := config.LoadDeck(flags.deck)
	if err != nil {
		return nil, nil, err
	}
	for _, issue := range issues {
		log.WithFields(map[string]any{"field": issue.Field, "value": issue.Value, "applied": issue.Applied}).Warn(issue.Message)
	}
	log.WithFields(map[string]any{"deck": flags.deck, "cards": len(deck.Cards)}).Debug("deck loaded")
	return deck, issues, nil
}

// findCard returns the card with id, or the first card when id is empty.
func findCard(deck *config.Deck, id string) (config.CardSpec, error) {
	if id == "" {
		return deck.Cards[0], nil
	}
	for _, card := range deck.Cards {
		if card.ID == id {
			return card, nil
		}
	}
	return config.CardSpec{}, fmt.Errorf("card %q not found in deck", id)
}

// cardRect is the card's size in pixels at the origin.
func cardRect(deck *config.Deck, card config.CardSpec) raycard.Rect {
	canvas := deck.Canvas.WithDefaults()
	w, h := card.Size()
	return raycard.NewRect(0, 0, float64(w*canvas.CellWidth), float64(h*canvas.CellHeight))
}

// parsePointer reads "x,y" in pixels relative to the card's top-left corner.
func parsePointer(s string) (raycard.PointerEvent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return raycard.PointerEvent{}, fmt.Errorf("pointer %q must be x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return raycard.PointerEvent{}, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return raycard.PointerEvent{}, fmt.Errorf("pointer y: %w", err)
	}
	return raycard.PointerEvent{ClientX: x, ClientY: y}, nil
}
