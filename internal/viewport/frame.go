package viewport

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/truncate"
	"github.com/pgrterm/pgr/internal/constants"
	"github.com/pgrterm/pgr/internal/linebuffer"
	"github.com/pgrterm/pgr/internal/style"
)

// Frame is everything needed to draw one screen of the pager
type Frame struct {
	// Lines are the visible lines, top to bottom. There may be fewer than ContentRows
	Lines []string

	// Query is highlighted wherever it occurs within a line
	Query string

	// Status is shown after the mode sigil in the status row
	Status string

	// QueryMode selects the status row sigil
	QueryMode bool

	Width       int
	ContentRows int
}

// View draws the content rows followed by the status row. Rows past the end of contents are left empty so the status
// row always sits at the bottom of the viewport
func (f Frame) View(styles style.Styles) string {
	var b strings.Builder
	for i := range f.ContentRows {
		if i < len(f.Lines) {
			for _, seg := range linebuffer.SplitMatches(f.Lines[i], f.Query) {
				text := printable(seg.Text)
				if seg.Match {
					text = styles.Highlight.Render(text)
				}
				b.WriteString(text)
			}
		}
		b.WriteString("\n")
	}

	sigil := constants.NormalModeSigil
	if f.QueryMode {
		sigil = constants.QueryModeSigil
	}
	status := truncate.String(sigil+printable(f.Status), uint(max(0, f.Width)))
	b.WriteString(styles.Status.Render(status))
	return b.String()
}

// printable replaces control characters, each of which was wrapped as a single cell, with a space
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
