package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Backspace    key.Binding
	Bottom       key.Binding
	Cancel       key.Binding
	Commit       key.Binding
	Down         key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	Interrupt    key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	Quit         key.Binding
	Search       key.Binding
	Top          key.Binding
	Up           key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete last character"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard edits to query"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply query"),
		),
		Down: key.NewBinding(
			key.WithKeys("enter", "down", "j"),
			key.WithHelp("j/↓/enter", "scroll down"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys(" ", "f", "d"),
			key.WithHelp("space/f/d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("b", "u"),
			key.WithHelp("b/u", "half page up"),
		),
		// the only way out while a query is being typed, since q is text there
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev match"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit search query"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "scroll up"),
		),
	}
}

// NormalKeyBindings are active while browsing
func NormalKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Down,
		km.Up,
		km.HalfPageDown,
		km.HalfPageUp,
		km.Top,
		km.Bottom,
		km.Search,
		km.NextMatch,
		km.PrevMatch,
		km.Quit,
	}
}

// QueryKeyBindings are active while editing a search query. Any other printable key is typed into the query
func QueryKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Commit,
		km.Cancel,
		km.Backspace,
		km.Interrupt,
	}
}
