package ui

import (
	"github.com/atomicstack/tree-navigator/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap turns raw key presses into navigator commands.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left", "h", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Classify maps a key press to a command. Unbound keys yield CommandNone.
func (k keyMap) Classify(msg tea.KeyMsg) state.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return state.CommandQuit
	case key.Matches(msg, k.Up):
		return state.CommandMoveUp
	case key.Matches(msg, k.Down):
		return state.CommandMoveDown
	case key.Matches(msg, k.Enter):
		return state.CommandEnter
	case key.Matches(msg, k.Back):
		return state.CommandBack
	default:
		return state.CommandNone
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
