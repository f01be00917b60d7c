package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-demo/internal/input"
)

// KeyMap defines the terminal key bindings.
// Terminals report presses only, so Stop stands in for releasing the last
// pressed arrow key.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Stop  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Stop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Stop, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the arrow-key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a key message into a raw input event. last is the most
// recently pressed arrow key, used as the released key for Stop.
func (k KeyMap) Event(msg tea.KeyMsg, last input.Key) (input.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return input.Quit(), true
	case key.Matches(msg, k.Back):
		return input.Press(input.KeyEscape), true
	case key.Matches(msg, k.Up):
		return input.Press(input.KeyUp), true
	case key.Matches(msg, k.Down):
		return input.Press(input.KeyDown), true
	case key.Matches(msg, k.Left):
		return input.Press(input.KeyLeft), true
	case key.Matches(msg, k.Right):
		return input.Press(input.KeyRight), true
	case key.Matches(msg, k.Stop):
		return input.Release(last), true
	}
	return input.Event{}, false
}
