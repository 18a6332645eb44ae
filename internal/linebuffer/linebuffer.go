package linebuffer

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// LineBreaker splits raw contents into display lines, each at most width terminal cells wide.
// Lines are produced lazily, one per call to Next.
//
// width 10, contents "hello world\nfoo\n":
//
//	hello worl
//	d
//	foo
type LineBreaker struct {
	contents string // raw contents. utf-8 bytes
	width    int    // max terminal cells per display line, at least 1
	byteIdx  int    // byte offset into contents of the next unconsumed rune
}

// New returns a LineBreaker positioned at the start of contents. Widths below 1 are treated as 1
func New(width int, contents string) *LineBreaker {
	return &LineBreaker{
		contents: contents,
		width:    max(1, width),
	}
}

// Next returns the next display line, or false once contents are exhausted.
//
// Carriage returns are dropped. A newline ends the current line, so consecutive newlines produce empty lines.
// A rune that would push the line past width is left for the following line, unless the line is still empty, in
// which case the rune is placed alone even though it is wider than width.
func (b *LineBreaker) Next() (string, bool) {
	var line strings.Builder
	lineWidth := 0
	for b.byteIdx < len(b.contents) {
		r, size := utf8.DecodeRuneInString(b.contents[b.byteIdx:])
		switch r {
		case '\r':
			b.byteIdx += size
			continue
		case '\n':
			b.byteIdx += size
			return line.String(), true
		}

		w := RuneWidth(r)
		if lineWidth+w > b.width && line.Len() > 0 {
			return line.String(), true
		}
		b.byteIdx += size
		line.WriteRune(r)
		lineWidth += w
	}

	// no trailing empty line for contents that don't end in a newline
	if line.Len() == 0 {
		return "", false
	}
	return line.String(), true
}

// All returns the display lines of contents at width. Each iteration starts over from the beginning of contents
func All(width int, contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		b := New(width, contents)
		for {
			line, ok := b.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// Lines collects All(width, contents)
func Lines(width int, contents string) []string {
	return slices.Collect(All(width, contents))
}

// RuneWidth returns the number of terminal cells r occupies. Control characters have no defined width and count as 1
func RuneWidth(r rune) int {
	if unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// DisplayWidth returns the total terminal cell width of s, skipping carriage returns like Next does
func DisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\r' {
			continue
		}
		width += RuneWidth(r)
	}
	return width
}
