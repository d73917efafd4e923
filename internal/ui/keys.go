package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for browsing the boards and driving the
// search filter.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Board navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Jump    key.Binding
	Refresh key.Binding

	// Search
	Search      key.Binding
	Accept      key.Binding
	ClearSearch key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next board"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous board"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to board"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	return h
}

// searchKeyMap adapts bindings to the focus state for contextual help.
type searchKeyMap struct {
	keys      KeyMap
	searching bool
}

// ForSearch returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForSearch(searching bool) help.KeyMap {
	return searchKeyMap{keys: k, searching: searching}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s searchKeyMap) ShortHelp() []key.Binding {
	if s.searching {
		return []key.Binding{s.keys.Accept, s.keys.ClearSearch, s.keys.Quit}
	}
	return []key.Binding{s.keys.NextTab, s.keys.Search, s.keys.Refresh, s.keys.ToggleHelp, s.keys.Quit}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s searchKeyMap) FullHelp() [][]key.Binding {
	if s.searching {
		return [][]key.Binding{{s.keys.Accept, s.keys.ClearSearch}, {s.keys.Quit}}
	}
	return [][]key.Binding{
		{s.keys.NextTab, s.keys.PrevTab, s.keys.Jump},
		{s.keys.Up, s.keys.Down, s.keys.Search, s.keys.Refresh},
		{s.keys.ToggleHelp, s.keys.Quit},
	}
}
