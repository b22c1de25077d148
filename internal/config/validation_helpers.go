package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
	raycarderrors "github.com/alexisbeaulieu97/raycard/pkg/errors"
)

const defaultUsed = "default used"

// softFields are the style settings that fall back to a default instead of
// failing the deck.
var softFields = map[string]struct{}{
	"GlowColor":     {},
	"GlowIntensity": {},
	"GlowSpread":    {},
	"BorderRadius":  {},
	"Proximity":     {},
	"GlowMode":      {},
	"Background":    {},
}

// clampedFields are the numeric settings the engine clamps into range
// rather than replacing.
var clampedFields = map[string]raycard.Range{
	"GlowIntensity": raycard.Ranges.GlowIntensity,
	"GlowSpread":    raycard.Ranges.GlowSpread,
	"Proximity":     raycard.Ranges.Proximity,
}

func isSoft(fe validator.FieldError) bool {
	_, ok := softFields[fe.StructField()]
	return ok
}

// convertValidationError normalizes a validator failure into a raycard validation error.
func convertValidationError(fe validator.FieldError) error {
	field := yamlishFieldName(fe)
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	return raycarderrors.NewValidationError(field, msg, fe)
}

// yamlishFieldName turns "Deck.Cards[1].Style.GlowColor" into
// "cards[1].glow_color". Inline structs do not appear in the YAML path.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "Style" {
			continue
		}
		out = append(out, snakeCase(part))
	}
	return strings.Join(out, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range s {
		if unicode.IsUpper(r) {
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('_')
			}
			prev = r
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		prev = r
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForCard(index int, field string) string {
	return fmt.Sprintf("cards[%d].%s", index, field)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "css_color":
		return "not an allowed CSS color"
	case "border_radius":
		return "not a 1-4 value border-radius in px, em, rem or %"
	case "glow_mode":
		return "must be one of both, card, border"
	case "gte", "lte":
		return fmt.Sprintf("out of range (%s %s)", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// appliedValue describes what the engine uses in place of a rejected value.
// Finite numbers are clamped to the range; everything else gets the default.
func appliedValue(fe validator.FieldError) string {
	r, ok := clampedFields[fe.StructField()]
	if !ok {
		return defaultUsed
	}
	v, ok := fe.Value().(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return defaultUsed
	}
	return "clamped to " + strconv.FormatFloat(r.Clamp(v, 0), 'f', -1, 64)
}
