package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.board.Relayout(msg.Width)
		return m, nil

	case tea.MouseMsg:
		row := msg.Y - headerRows
		_, rows := m.board.Extent()
		if row < 0 || row >= rows {
			m.board.Leave()
		} else {
			m.board.MoveCell(msg.X, row)
		}
		cmd := m.animate()
		return m, cmd

	case frameMsg:
		if m.board.Step() {
			return m, frameTick()
		}
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.board.Leave()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.board.SelectNext()
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.board.SelectPrev()
		return m, nil
	case key.Matches(msg, m.keys.Disable):
		m.board.ToggleDisabled()
	case key.Matches(msg, m.keys.Mode):
		m.board.CycleMode()
	case key.Matches(msg, m.keys.ProximityUp):
		m.board.AdjustProximity(board.ProximityStep)
	case key.Matches(msg, m.keys.ProximityDown):
		m.board.AdjustProximity(-board.ProximityStep)
	case key.Matches(msg, m.keys.IntensityUp):
		m.board.AdjustIntensity(board.IntensityStep)
	case key.Matches(msg, m.keys.IntensityDown):
		m.board.AdjustIntensity(-board.IntensityStep)
	default:
		return m, nil
	}
	cmd := m.animate()
	return m, cmd
}
