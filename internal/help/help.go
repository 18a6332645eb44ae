package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/pgrterm/pgr/internal/keymap"
)

const (
	rowIndent = "  "
	columnGap = "  "
)

// MakeHelp lays out one key table per input mode, browsing first and query editing after
func MakeHelp(keyMap keymap.KeyMap, keyStyle lipgloss.Style) string {
	return strings.Join([]string{
		modeTable("Browsing:", keymap.NormalKeyBindings(keyMap), keyStyle),
		"",
		modeTable("Editing a search query (after /):", keymap.QueryKeyBindings(keyMap), keyStyle),
	}, "\n")
}

// modeTable renders a title followed by one row per binding, keys right-aligned against their descriptions.
// Bindings without help text are left out
func modeTable(title string, bindings []key.Binding, keyStyle lipgloss.Style) string {
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
	}

	rows := []string{title}
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		keyCell := keyStyle.Render(lipgloss.PlaceHorizontal(keyWidth, lipgloss.Right, h.Key))
		rows = append(rows, rowIndent+keyCell+columnGap+h.Desc)
	}
	return strings.Join(rows, "\n")
}
