package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	raycarderrors "github.com/alexisbeaulieu97/raycard/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDeck reads a deck file from disk, validates it, and returns the deck
// together with any style settings that fell back to defaults.
func LoadDeck(path string) (*Deck, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, raycarderrors.NewParseError(path, 0, err)
	}
	return ParseDeck(path, data)
}

// ParseDeck decodes and validates deck YAML. Unknown keys are rejected so
// that misspelled settings do not silently keep their defaults.
func ParseDeck(name string, data []byte) (*Deck, []Issue, error) {
	var deck Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&deck); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("deck is empty")
		}
		return nil, nil, raycarderrors.NewParseError(name, extractLine(err), err)
	}

	issues, err := ValidateDeck(&deck)
	if err != nil {
		return nil, nil, err
	}

	deck.Canvas = deck.Canvas.WithDefaults()
	return &deck, issues, nil
}

// DefaultDeck lays out one card per built-in preset.
func DefaultDeck() (*Deck, error) {
	presets, err := Presets()
	if err != nil {
		return nil, err
	}

	deck := &Deck{
		Version: "1.0",
		Name:    "presets",
		Canvas:  Canvas{}.WithDefaults(),
	}
	for _, p := range presets {
		deck.Cards = append(deck.Cards, CardSpec{
			ID:     p.Name,
			Title:  p.Name,
			Body:   p.Description,
			Preset: p.Name,
		})
	}
	return deck, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
