package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/raycard/internal/app/board"
	"github.com/alexisbeaulieu97/raycard/internal/render/motion"
	"github.com/alexisbeaulieu97/raycard/internal/render/term"
	"github.com/alexisbeaulieu97/raycard/internal/tui/components"
)

// headerRows is the number of lines above the canvas.
const headerRows = 2

// frameMsg advances the card animations by one frame.
type frameMsg struct{}

// Model contains the Bubbletea state for the playground.
type Model struct {
	board     *board.Board
	renderer  *term.Renderer
	keys      keyMap
	help      help.Model
	meter     components.Meter
	title     string
	width     int
	height    int
	animating bool
	quitting  bool
}

// NewModel constructs a playground over b.
func NewModel(b *board.Board, title string) Model {
	if title == "" {
		title = "playground"
	}
	return Model{
		board:    b,
		renderer: term.NewRenderer(b.Canvas()),
		keys:     defaultKeyMap(),
		help:     help.New(),
		meter:    components.NewMeter("intensity", 30),
		title:    title,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Animating reports whether a frame tick is pending.
func (m Model) Animating() bool {
	return m.animating
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/motion.DefaultFPS, func(time.Time) tea.Msg { return frameMsg{} })
}

// animate schedules a frame unless one is already pending.
func (m *Model) animate() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameTick()
}
