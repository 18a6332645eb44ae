package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestNewStyles_Highlight(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	require.Equal(t, "\x1b[31mfoo\x1b[0m", NewStyles("1").Highlight.Render("foo"))
	require.Equal(t, "\x1b[34mfoo\x1b[0m", NewStyles("4").Highlight.Render("foo"))
}

func TestNewStyles_NoColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	styles := NewStyles("1")
	require.Equal(t, "foo", styles.Highlight.Render("foo"))
	require.Equal(t, ":foo", styles.Status.Render(":foo"))
}
