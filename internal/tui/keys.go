package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	Disable       key.Binding
	Mode          key.Binding
	ProximityUp   key.Binding
	ProximityDown key.Binding
	IntensityUp   key.Binding
	IntensityDown key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:          key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next card")),
		Prev:          key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous card")),
		Disable:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle disabled")),
		Mode:          key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cycle glow mode")),
		ProximityUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "proximity +")),
		ProximityDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "proximity -")),
		IntensityUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "intensity +")),
		IntensityDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "intensity -")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Disable, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Disable, k.Mode},
		{k.ProximityUp, k.ProximityDown, k.IntensityUp, k.IntensityDown},
		{k.Help, k.Quit},
	}
}
