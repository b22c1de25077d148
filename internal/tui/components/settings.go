package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

// SettingsData is the card shown in the settings panel.
type SettingsData struct {
	ID     string
	Config raycard.Config
	State  raycard.EffectState
}

// Settings renders the effective configuration and pointer state of a card.
type Settings struct {
	data SettingsData
}

// NewSettings creates a new Settings component.
func NewSettings(data SettingsData) Settings {
	return Settings{data: data}
}

// Status names the pointer state the way the panel shows it.
func (s Settings) Status() string {
	switch {
	case s.data.Config.Disabled():
		return "disabled"
	case s.data.State.IsInside:
		return "inside"
	case s.data.State.IsNear:
		return "near"
	default:
		return "idle"
	}
}

// View renders the panel.
func (s Settings) View() string {
	cfg := s.data.Config
	st := s.data.State
	lines := []string{
		fmt.Sprintf("card       %s (%s)", s.data.ID, s.Status()),
		fmt.Sprintf("glow       %s  mode %s", cfg.GlowColor(), cfg.GlowMode()),
		fmt.Sprintf("spread     %.0fpx  radius %s", cfg.GlowSpread(), cfg.BorderRadius()),
		fmt.Sprintf("proximity  %.0fpx", cfg.Proximity()),
		fmt.Sprintf("pointer    %.0f, %.0f", st.LocalX, st.LocalY),
		fmt.Sprintf("shadow     %.1f, %.1f  blur %.1f  spread %.1f  opacity %.2f",
			st.Shadow.OffsetX, st.Shadow.OffsetY, st.Shadow.Blur, st.Shadow.Spread, st.Shadow.Opacity),
	}
	return strings.Join(lines, "\n")
}
