package viewport

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pgrterm/pgr/internal/constants"
	"github.com/pgrterm/pgr/internal/dev"
	"github.com/pgrterm/pgr/internal/linebuffer"
)

// Terminology:
// - contents: the raw input, never modified
// - line: a display line, i.e. a run of contents wrapped to fit the viewport width
// - content rows: viewport rows available for lines, i.e. height minus the status row
// - scroll offset: index of the line shown in the top content row
//
// width 10, height 4, contents "hello world\nfoo\n":
//                  line index
// hello worl       0
// d                1
// foo              2
// :                status row
//

// MoveUnit is the magnitude of a scroll
type MoveUnit int

const (
	// Line scrolls by a single line
	Line MoveUnit = iota
	// HalfPage scrolls by half the viewport height
	HalfPage
	// Entire scrolls to the very top or bottom
	Entire
)

// queryEdit tracks query-edit mode. saved is the query as it was on entering the mode, restored on cancel
type queryEdit struct {
	active bool
	saved  string
}

// Model holds the scroll, search and status state of the pager for contents wrapped to the viewport size
type Model struct {
	// width is the width of the viewport in terminal cells
	width int

	// height is the height of the viewport in rows, including the status row
	height int

	// contents is the raw input, rewrapped into lines whenever width changes
	contents string

	// lines is contents wrapped at width
	lines []string

	// scrollOffset is the index in lines of the topmost visible line
	scrollOffset int

	// query is the search string. Empty means no active search
	query string

	// edit is non-zero while the user is typing a query
	edit queryEdit

	// message overrides the query in the status row for the next rendered frame only
	message string

	// needsRedraw is set by every change to what would be rendered and cleared by Render
	needsRedraw bool
}

// New wraps contents at width and starts at the top
func New(width, height int, contents string) Model {
	return Model{
		width:       width,
		height:      height,
		contents:    contents,
		lines:       linebuffer.Lines(width, contents),
		needsRedraw: true,
	}
}

// Resize rewraps contents if the width changed and keeps the scroll offset in range. Unchanged dimensions are a no-op
func (m *Model) Resize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	if width != m.width {
		m.lines = linebuffer.Lines(width, m.contents)
	}
	m.width, m.height = width, height
	m.scrollOffset = m.clampScrollOffset(m.scrollOffset)
	m.needsRedraw = true
	dev.Debug(fmt.Sprintf("viewport resized to %dx%d, %d lines, scroll offset %d", width, height, len(m.lines), m.scrollOffset))
}

// Scroll moves the scroll offset by delta lines, stopping at the top and bottom
func (m *Model) Scroll(delta int) {
	m.scrollOffset = m.clampScrollOffset(saturatingAdd(m.scrollOffset, delta))
	m.needsRedraw = true
}

// ScrollDown moves towards the end of contents by unit
func (m *Model) ScrollDown(unit MoveUnit) {
	m.Scroll(m.magnitude(unit))
}

// ScrollUp moves towards the start of contents by unit
func (m *Model) ScrollUp(unit MoveUnit) {
	m.Scroll(-m.magnitude(unit))
}

func (m Model) magnitude(unit MoveUnit) int {
	switch unit {
	case HalfPage:
		return m.height / 2
	case Entire:
		return math.MaxInt
	default:
		return 1
	}
}

// EnterQueryMode starts editing a new query. The current query is saved so CancelQuery can restore it, and the
// query being edited starts out empty. Calling it while already editing does nothing
func (m *Model) EnterQueryMode() {
	if m.edit.active {
		return
	}
	m.edit = queryEdit{active: true, saved: m.query}
	m.query = ""
	m.needsRedraw = true
}

// CommitQuery leaves query-edit mode keeping the edited query, which may be empty
func (m *Model) CommitQuery() {
	if !m.edit.active {
		return
	}
	m.edit = queryEdit{}
	m.needsRedraw = true
}

// CancelQuery leaves query-edit mode, restoring and returning the query saved when the mode was entered
func (m *Model) CancelQuery() string {
	if !m.edit.active {
		return m.query
	}
	m.query = m.edit.saved
	m.edit = queryEdit{}
	m.needsRedraw = true
	return m.query
}

// EditQuery replaces the query being edited. Outside query-edit mode it does nothing
func (m *Model) EditQuery(q string) {
	if !m.edit.active {
		return
	}
	m.query = q
	m.needsRedraw = true
}

// AppendQuery adds s to the end of the query being edited
func (m *Model) AppendQuery(s string) {
	m.EditQuery(m.query + s)
}

// BackspaceQuery removes the last character of the query being edited
func (m *Model) BackspaceQuery() {
	_, size := utf8.DecodeLastRuneInString(m.query)
	m.EditQuery(m.query[:len(m.query)-size])
}

// FindNext scrolls to the first line after the scroll offset that contains the query
func (m *Model) FindNext() {
	m.find(m.scrollOffset+1, len(m.lines), 1)
}

// FindPrevious scrolls to the nearest line before the scroll offset that contains the query
func (m *Model) FindPrevious() {
	m.find(m.scrollOffset-1, -1, -1)
}

// find scans lines from start towards stop (exclusive) in steps of step
func (m *Model) find(start, stop, step int) {
	m.needsRedraw = true
	if m.query == "" {
		m.message = constants.MissingQueryMessage
		return
	}
	for i := start; i != stop && i >= 0 && i < len(m.lines); i += step {
		if strings.Contains(m.lines[i], m.query) {
			m.scrollOffset = m.clampScrollOffset(i)
			dev.Debug(fmt.Sprintf("found %q on line %d, scroll offset %d", m.query, i, m.scrollOffset))
			return
		}
	}
	m.message = constants.FailedToFindMessage(m.query)
	dev.Debug(m.message)
}

// Render returns the frame to draw and true if anything changed since the last call, otherwise false. Rendering
// consumes the status message
func (m *Model) Render() (Frame, bool) {
	if !m.needsRedraw {
		return Frame{}, false
	}

	status := m.query
	if m.message != "" {
		status = m.message
	}
	frame := Frame{
		Lines:       visibleWindow(m.lines, m.scrollOffset, m.ContentRows()),
		Query:       m.query,
		Status:      status,
		QueryMode:   m.edit.active,
		Width:       m.width,
		ContentRows: m.ContentRows(),
	}

	m.message = ""
	m.needsRedraw = false
	return frame, true
}

// Lines returns contents as wrapped at the current width
func (m Model) Lines() []string {
	return m.lines
}

func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

func (m Model) Query() string {
	return m.query
}

func (m Model) InQueryMode() bool {
	return m.edit.active
}

// Message returns the status message that the next frame will show, if any
func (m Model) Message() string {
	return m.message
}

// ContentRows is the number of rows available for lines
func (m Model) ContentRows() int {
	return max(0, m.height-1)
}

func (m Model) Width() int {
	return m.width
}

func (m Model) Height() int {
	return m.height
}

func (m Model) NeedsRedraw() bool {
	return m.needsRedraw
}

func (m Model) maxScrollOffset() int {
	return max(0, len(m.lines)-m.ContentRows())
}

func (m Model) clampScrollOffset(offset int) int {
	return clampValMinMax(offset, 0, m.maxScrollOffset())
}
