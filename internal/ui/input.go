package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.view.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

// handleTextInput routes editing keys to the filter query. Returns true
// when the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if m.view.Query == "" {
			return false
		}
		m.clearQuery()
		return true
	case "ctrl+w":
		before := m.view.QueryCursorPos()
		if !m.view.DeleteQueryWordBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		m.afterQueryEdit()
		return true
	case "ctrl+a":
		before := m.view.QueryCursorPos()
		if !m.view.MoveQueryCursorStart() {
			return false
		}
		m.noteQueryCursorChange(before)
		return true
	case "ctrl+e":
		before := m.view.QueryCursorPos()
		if !m.view.MoveQueryCursorEnd() {
			return false
		}
		m.noteQueryCursorChange(before)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.view.QueryCursorPos()
		if !m.view.DeleteQueryRuneBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		m.afterQueryEdit()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		before := m.view.QueryCursorPos()
		if !m.view.MoveQueryCursorRuneBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		return true
	case tea.KeyRight:
		before := m.view.QueryCursorPos()
		if !m.view.MoveQueryCursorRuneForward() {
			return false
		}
		m.noteQueryCursorChange(before)
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	before := m.view.QueryCursorPos()
	if !m.view.InsertQueryText(text) {
		return false
	}
	m.noteQueryCursorChange(before)
	m.afterQueryEdit()
	return true
}

func (m *Model) clearQuery() {
	before := m.view.QueryCursorPos()
	m.view.ClearQuery()
	m.noteQueryCursorChange(before)
	m.clearStatus()
	events.Filter.Cleared()
	m.syncViewport()
}

func (m *Model) afterQueryEdit() {
	m.clearStatus()
	events.Filter.Query(m.view.Query, len(m.view.Filtered()))
	m.syncViewport()
}

func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.FilterText != nil {
		m.queryCursor.TextStyle = styles.FilterText.Copy()
	}
	prompt := render(styles.FilterPrompt, "» ")
	text := m.view.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.queryCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderQueryCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.view.QueryCursorPos()
	beforeText := render(styles.FilterText, string(runes[:pos]))
	caretRune := " "
	afterText := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		afterText = render(styles.FilterText, string(runes[pos+1:]))
	}
	return prompt + beforeText + m.renderQueryCursor(caretRune) + afterText
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)
	base := m.queryCursor.TextStyle.Copy().Inline(true)
	if m.queryCursor.Blink {
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
