package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	raycarderrors "github.com/alexisbeaulieu97/raycard/pkg/errors"
)

// Issue is a style setting the engine will not use as written. Applied
// says what it uses instead: the default, or the nearest bound of a range.
type Issue struct {
	Field   string
	Value   string
	Message string
	Applied string
}

// Err returns the issue as a validation error, for strict checking.
func (i Issue) Err() error {
	return raycarderrors.NewValidationError(i.Field, i.Message, nil)
}

func (i Issue) String() string {
	applied := i.Applied
	if applied == "" {
		applied = defaultUsed
	}
	return fmt.Sprintf("%s: %q %s, %s", i.Field, i.Value, i.Message, applied)
}

// ValidateDeck checks a deck. Structural problems are returned as an error.
// Invalid style settings do not fail the deck; they are reported as issues
// and the engine substitutes a default or clamps the number into range.
func ValidateDeck(deck *Deck) ([]Issue, error) {
	if deck == nil {
		return nil, raycarderrors.NewValidationError("deck", "deck is nil", nil)
	}

	var issues []Issue
	if err := validatorInstance().Struct(deck); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return nil, raycarderrors.NewValidationError("deck", err.Error(), err)
		}
		for _, fe := range ves {
			if !isSoft(fe) {
				return nil, convertValidationError(fe)
			}
			issues = append(issues, Issue{
				Field:   yamlishFieldName(fe),
				Value:   fmt.Sprint(fe.Value()),
				Message: describeTag(fe),
				Applied: appliedValue(fe),
			})
		}
	}

	seen := make(map[string]int, len(deck.Cards))
	for i, card := range deck.Cards {
		if first, exists := seen[card.ID]; exists {
			return nil, raycarderrors.NewValidationError(fieldForCard(i, "id"),
				fmt.Sprintf("duplicate card id %q (first used by cards[%d])", card.ID, first), nil)
		}
		seen[card.ID] = i
	}

	sort.SliceStable(issues, func(a, b int) bool { return issues[a].Field < issues[b].Field })
	return issues, nil
}
