package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	raycarderrors "github.com/alexisbeaulieu97/raycard/pkg/errors"
)

func TestParseDeck(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Landing"
canvas:
  cell_width: 10
cards:
  - id: hero
    title: "Hero"
    preset: cyan-glow
    glow_intensity: 0.5
  - id: cta
    glow_mode: border
    width: 20
    height: 5
`

	softYAML := `version: "1.0"
cards:
  - id: hero
    glow_color: "red;background:url(javascript:alert(1))"
    glow_spread: 5000
    border_radius: "calc(16px + 8px)"
`

	outOfRange := `version: "1.0"
cards:
  - id: hero
    glow_spread: 5000
    proximity: -10
    glow_intensity: 1.5
`

	invalidYAML := `version: [1, 0]
cards:
  - id: hero
`

	unknownKey := `version: "1.0"
cards:
  - id: hero
    glow_colour: red
`

	missingCards := `version: "1.0"
name: "Empty"
`

	badID := `version: "1.0"
cards:
  - id: "Hero Card"
`

	duplicateID := `version: "1.0"
cards:
  - id: hero
  - id: hero
`

	unknownPreset := `version: "1.0"
cards:
  - id: hero
    preset: neon
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, deck *Deck, issues []Issue, err error)
	}{
		{
			name:     "valid deck is parsed",
			contents: validYAML,
			assert: func(t *testing.T, deck *Deck, issues []Issue, err error) {
				require.NoError(t, err)
				require.Empty(t, issues)
				require.Len(t, deck.Cards, 2)
				assert.Equal(t, 10, deck.Canvas.CellWidth)
				assert.Equal(t, DefaultCellHeight, deck.Canvas.CellHeight)
				assert.Equal(t, DefaultBackground, deck.Canvas.Background)

				hero := deck.Cards[0].EffectConfig()
				assert.Equal(t, "rgba(0, 255, 255, 0.25)", hero.GlowColor())
				assert.Equal(t, 0.5, hero.GlowIntensity())

				w, h := deck.Cards[1].Size()
				assert.Equal(t, 20, w)
				assert.Equal(t, 5, h)
			},
		},
		{
			name:     "invalid style falls back with issues",
			contents: softYAML,
			assert: func(t *testing.T, deck *Deck, issues []Issue, err error) {
				require.NoError(t, err)
				require.Len(t, issues, 3)
				assert.Equal(t, "cards[0].border_radius", issues[0].Field)
				assert.Equal(t, "cards[0].glow_color", issues[1].Field)
				assert.Equal(t, "cards[0].glow_spread", issues[2].Field)
				assert.Equal(t, "default used", issues[0].Applied)
				assert.Equal(t, "default used", issues[1].Applied)
				assert.Equal(t, "clamped to 2000", issues[2].Applied)

				cfg := deck.Cards[0].EffectConfig()
				assert.Equal(t, "#FFFFFB", cfg.GlowColor())
				assert.Equal(t, 2000.0, cfg.GlowSpread())
				assert.Equal(t, "16px", cfg.BorderRadius())
			},
		},
		{
			name:     "out of range numbers are clamped",
			contents: outOfRange,
			assert: func(t *testing.T, deck *Deck, issues []Issue, err error) {
				require.NoError(t, err)
				require.Len(t, issues, 3)

				assert.Equal(t, `cards[0].glow_intensity: "1.5" out of range (lte 1), clamped to 1`, issues[0].String())
				assert.Equal(t, `cards[0].glow_spread: "5000" out of range (lte 2000), clamped to 2000`, issues[1].String())
				assert.Equal(t, `cards[0].proximity: "-10" out of range (gte 0), clamped to 0`, issues[2].String())

				cfg := deck.Cards[0].EffectConfig()
				assert.Equal(t, 1.0, cfg.GlowIntensity())
				assert.Equal(t, 2000.0, cfg.GlowSpread())
				assert.Equal(t, 0.0, cfg.Proximity())
			},
		},
		{
			name:     "yaml syntax error",
			contents: invalidYAML,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var parseErr *raycarderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var parseErr *raycarderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 4, parseErr.Line)
			},
		},
		{
			name:     "missing cards",
			contents: missingCards,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var validationErr *raycarderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "cards", validationErr.Field)
			},
		},
		{
			name:     "bad card id",
			contents: badID,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var validationErr *raycarderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "cards[0].id", validationErr.Field)
			},
		},
		{
			name:     "duplicate card id",
			contents: duplicateID,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var validationErr *raycarderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "cards[1].id", validationErr.Field)
				assert.Contains(t, err.Error(), "duplicate card id")
			},
		},
		{
			name:     "unknown preset",
			contents: unknownPreset,
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var validationErr *raycarderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "cards[0].preset", validationErr.Field)
			},
		},
		{
			name:     "empty document",
			contents: "",
			assert: func(t *testing.T, _ *Deck, _ []Issue, err error) {
				var parseErr *raycarderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			deck, issues, err := ParseDeck("deck.yaml", []byte(tc.contents))
			tc.assert(t, deck, issues, err)
		})
	}
}

func TestLoadDeckFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\ncards:\n  - id: solo\n"), 0o600))

	deck, issues, err := LoadDeck(path)
	require.NoError(t, err)
	require.Empty(t, issues)
	assert.Equal(t, "solo", deck.Cards[0].ID)

	_, _, err = LoadDeck(filepath.Join(dir, "missing.yaml"))
	var parseErr *raycarderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestIssueErrAndString(t *testing.T) {
	t.Parallel()

	issue := Issue{Field: "cards[0].glow_color", Value: "nope", Message: "not an allowed CSS color", Applied: "default used"}

	var validationErr *raycarderrors.ValidationError
	require.ErrorAs(t, issue.Err(), &validationErr)
	assert.Equal(t, "cards[0].glow_color", validationErr.Field)
	assert.Equal(t, `cards[0].glow_color: "nope" not an allowed CSS color, default used`, issue.String())

	clamped := Issue{Field: "cards[0].proximity", Value: "900", Message: "out of range (lte 500)", Applied: "clamped to 500"}
	assert.Equal(t, `cards[0].proximity: "900" out of range (lte 500), clamped to 500`, clamped.String())
}

func TestDefaultDeck(t *testing.T) {
	t.Parallel()

	deck, err := DefaultDeck()
	require.NoError(t, err)

	presets, err := Presets()
	require.NoError(t, err)
	require.Len(t, deck.Cards, len(presets))

	issues, err := ValidateDeck(deck)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
