package internal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pgrterm/pgr/internal/dev"
	"github.com/pgrterm/pgr/internal/keymap"
	"github.com/pgrterm/pgr/internal/style"
	"github.com/pgrterm/pgr/internal/viewport"
)

type Model struct {
	config   Config
	keyMap   keymap.KeyMap
	styles   style.Styles
	viewport viewport.Model
	view     string // last rendered frame
}

func InitialModel(c Config) Model {
	return initializedModel(Model{
		config: c,
		keyMap: c.KeyMap,
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies exactly one transition for msg, then redraws if the transition changed anything
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugUpdateMsg("App", msg)
	var cmd tea.Cmd

	switch msg := msg.(type) {
	// WindowSizeMsg arrives once on startup, then again every time the window is resized
	case tea.WindowSizeMsg:
		m.viewport.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)
	}

	return m.render(), cmd
}

func (m Model) View() string {
	return m.view
}

func (m Model) render() Model {
	if frame, changed := m.viewport.Render(); changed {
		m.view = frame.View(m.styles)
	}
	return m
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.viewport.InQueryMode() {
		return m.handleQueryKeyMsg(msg)
	}
	if keys := splitRunes(msg); len(keys) > 1 {
		return m.handleKeyBurst(keys)
	}
	return m.handleNormalKeyMsg(msg)
}

// handleKeyBurst replays buffered key presses in order. The mode is checked again before each one, so in "/foo" the
// slash starts a query and the rest is typed into it
func (m Model) handleKeyBurst(keys []tea.KeyMsg) (Model, tea.Cmd) {
	dev.Debug(fmt.Sprintf("App keyMsg burst of %d keys", len(keys)))
	var cmd tea.Cmd
	for _, k := range keys {
		if m, cmd = m.handleKeyMsg(k); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleNormalKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.ScrollDown(viewport.Line)

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.ScrollUp(viewport.Line)

	case key.Matches(msg, m.keyMap.HalfPageDown):
		m.viewport.ScrollDown(viewport.HalfPage)

	case key.Matches(msg, m.keyMap.HalfPageUp):
		m.viewport.ScrollUp(viewport.HalfPage)

	case key.Matches(msg, m.keyMap.Top):
		m.viewport.ScrollUp(viewport.Entire)

	case key.Matches(msg, m.keyMap.Bottom):
		m.viewport.ScrollDown(viewport.Entire)

	case key.Matches(msg, m.keyMap.Search):
		m.viewport.EnterQueryMode()

	case key.Matches(msg, m.keyMap.NextMatch):
		m.viewport.FindNext()

	case key.Matches(msg, m.keyMap.PrevMatch):
		m.viewport.FindPrevious()
	}
	return m, nil
}

// handleQueryKeyMsg edits the query. Only ctrl+c quits from here, since q is a character like any other
func (m Model) handleQueryKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Interrupt):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Commit):
		m.viewport.CommitQuery()

	case key.Matches(msg, m.keyMap.Cancel):
		restored := m.viewport.CancelQuery()
		dev.Debug(fmt.Sprintf("App query edit cancelled, restored %q", restored))

	case key.Matches(msg, m.keyMap.Backspace):
		m.viewport.BackspaceQuery()

	// pasted text arrives as runes too
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.viewport.AppendQuery(string(msg.Runes))

	case msg.Type == tea.KeySpace:
		m.viewport.AppendQuery(" ")
	}
	return m, nil
}

// splitRunes adjusts for buffered key presses
// when input arrives faster than it is read, bubble tea delivers consecutive printable keys as a single KeyMsg like
// "jjj" or "Gg". This returns one KeyMsg per rune. Pasted text stays whole
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) < 2 {
		return []tea.KeyMsg{msg}
	}
	keys := make([]tea.KeyMsg, len(msg.Runes))
	for i, r := range msg.Runes {
		keys[i] = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
	}
	return keys
}
