package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/raycard/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.board.Extent()
	cols = max(cols, m.width)

	selected := m.board.Selected()
	title := titleStyle.Render(fmt.Sprintf("raycard • %s", m.title))
	canvas := m.renderer.Render(cols, rows, m.board.TermCards())

	settings := components.NewSettings(components.SettingsData{
		ID:     selected.Spec.ID,
		Config: selected.Tracker.Config(),
		State:  selected.Tracker.State(),
	})
	status := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Selected"),
		settingsStyle.Render(settings.View()),
		m.meter.View(selected.Frame().Intensity),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		canvas,
		status,
		helpStyle.Render(m.help.View(m.keys)),
	)
}
