package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stigoleg/arc-timer/internal/countdown"
)

// KeyMap defines key bindings for the timer screen.
type KeyMap struct {
	// Common
	Quit      key.Binding
	ForceQuit key.Binding
	Press     key.Binding
	Focus     key.Binding

	// Dial focus only
	QuitShort  key.Binding
	Toggle     key.Binding
	ToggleHelp key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		QuitShort: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// screenKeyMap adapts bindings to the current focus and timer action for
// contextual help.
type screenKeyMap struct {
	keys   KeyMap
	focus  focus
	action countdown.Action
}

// ForScreen returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForScreen(f focus, a countdown.Action) help.KeyMap {
	verb := strings.ToLower(a.Label())
	k.Press.SetHelp("enter", verb)
	k.Toggle.SetHelp("space", verb)
	return screenKeyMap{keys: k, focus: f, action: a}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s screenKeyMap) ShortHelp() []key.Binding {
	switch s.focus {
	case focusInput:
		return []key.Binding{s.keys.Press, s.keys.Focus, s.keys.Quit}
	default:
		return []key.Binding{s.keys.Toggle, s.keys.Focus, s.keys.ToggleHelp, s.keys.QuitShort}
	}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s screenKeyMap) FullHelp() [][]key.Binding {
	switch s.focus {
	case focusInput:
		return [][]key.Binding{{s.keys.Press, s.keys.Focus}, {s.keys.Quit, s.keys.ForceQuit}}
	default:
		return [][]key.Binding{
			{s.keys.Toggle, s.keys.Press, s.keys.Focus},
			{s.keys.ToggleHelp, s.keys.QuitShort, s.keys.Quit, s.keys.ForceQuit},
		}
	}
}
