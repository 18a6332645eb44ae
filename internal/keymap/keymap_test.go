package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "enter scrolls down", msg: tea.KeyMsg{Type: tea.KeyEnter}, binding: km.Down},
		{name: "down arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, binding: km.Down},
		{name: "j", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, binding: km.Down},
		{name: "up arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, binding: km.Up},
		{name: "k", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, binding: km.Up},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, binding: km.HalfPageDown},
		{name: "f", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, binding: km.HalfPageDown},
		{name: "d", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, binding: km.HalfPageDown},
		{name: "b", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, binding: km.HalfPageUp},
		{name: "u", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}}, binding: km.HalfPageUp},
		{name: "g", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, binding: km.Top},
		{name: "G", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, binding: km.Bottom},
		{name: "q", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, binding: km.Quit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, binding: km.Quit},
		{name: "slash", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, binding: km.Search},
		{name: "n", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, binding: km.NextMatch},
		{name: "N", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}}, binding: km.PrevMatch},
		{name: "commit", msg: tea.KeyMsg{Type: tea.KeyEnter}, binding: km.Commit},
		{name: "cancel", msg: tea.KeyMsg{Type: tea.KeyEsc}, binding: km.Cancel},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, binding: km.Backspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestDefaultKeyMap_NoCrossMatches(t *testing.T) {
	km := DefaultKeyMap()
	n := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	require.False(t, key.Matches(n, km.PrevMatch))
	g := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}
	require.False(t, key.Matches(g, km.Bottom))
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	require.False(t, key.Matches(enter, km.Up))
}

func TestKeyBindingsHaveHelp(t *testing.T) {
	km := DefaultKeyMap()
	for _, b := range append(NormalKeyBindings(km), QueryKeyBindings(km)...) {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}

func TestInterrupt_SubsetOfQuit(t *testing.T) {
	km := DefaultKeyMap()
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

	require.True(t, key.Matches(ctrlC, km.Interrupt))
	require.True(t, key.Matches(ctrlC, km.Quit))
	require.False(t, key.Matches(q, km.Interrupt))
	require.Contains(t, QueryKeyBindings(km), km.Interrupt)
	require.NotContains(t, QueryKeyBindings(km), km.Quit)
}
