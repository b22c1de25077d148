package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("deck.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "deck.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: deck.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("deck.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: deck.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("cards[1].glow_color", "not an allowed CSS color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "cards[1].glow_color", validationErr.Field)
	require.Contains(t, err.Error(), "not an allowed CSS color")
}

func TestRenderErrorIncludesTarget(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewRenderError("frame.png", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "frame.png", renderErr.Target)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "render error [frame.png]: disk full", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var r *RenderError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, r.Error())
	require.NoError(t, r.Unwrap())
}
