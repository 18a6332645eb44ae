package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pgrterm/pgr/internal/dev"
)

// Styles are the lipgloss styles the pager draws with
type Styles struct {
	// Highlight is applied to every search match in the content rows
	Highlight lipgloss.Style

	// Status is applied to the status row, sigil included
	Status lipgloss.Style

	// KeyHelp is applied to key names in the help table
	KeyHelp lipgloss.Style
}

// NewStyles returns the pager styles with search matches drawn in highlightColor, which may be an ANSI color index
// like "1" or a hex color like "#ff0000"
func NewStyles(highlightColor string) Styles {
	return Styles{
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColor)),
		Status:    lipgloss.NewStyle(),
		KeyHelp:   lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// DebugColors logs what termenv detected about the terminal. It queries the terminal, so only call it before the
// program takes over the input
func DebugColors() {
	output := termenv.DefaultOutput()
	dev.Debug(fmt.Sprintf("color profile: %d", output.Profile))
	dev.Debug(fmt.Sprintf("has dark background: %t", output.HasDarkBackground()))
	dev.Debug(fmt.Sprintf("foreground: %s", termenv.ConvertToRGB(output.ForegroundColor()).Hex()))
	dev.Debug(fmt.Sprintf("background: %s", termenv.ConvertToRGB(output.BackgroundColor()).Hex()))
}
