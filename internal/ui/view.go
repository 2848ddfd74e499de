package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-session-picker/internal/format/table"
	"github.com/atomicstack/tmux-session-picker/internal/session"
)

const defaultVisibleRows = 20

var columnAlignments = []table.Alignment{
	table.AlignLeft,
	table.AlignLeft,
	table.AlignLeft,
	table.AlignRight,
	table.AlignLeft,
}

// View renders the picker.
func (m *Model) View() string {
	if m.mode == ModeCreateForm && m.form != nil {
		return m.viewCreateForm()
	}
	lines := []string{
		m.headerLine(),
		m.queryPrompt(),
	}
	lines = append(lines, m.tableLines()...)
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, m.footerLine())
	}
	return m.fitWidth(strings.Join(lines, "\n"))
}

func (m *Model) headerLine() string {
	items := m.view.Filtered()
	title := fmt.Sprintf("tmux sessions (%d)", len(items))
	if m.view.FavoritesOnly {
		title += " [favorites]"
	}
	if styles.Header != nil {
		return styles.Header.Render(title)
	}
	return title
}

func (m *Model) tableLines() []string {
	items := m.view.Filtered()
	if len(items) == 0 {
		text := "No sessions."
		if m.view.Query != "" || m.view.FavoritesOnly {
			text = "No matching sessions."
		}
		if styles.Empty != nil {
			text = styles.Empty.Render(text)
		}
		return []string{text}
	}
	start := m.view.ViewportOffset
	if start > len(items) {
		start = 0
	}
	end := start + m.maxVisibleItems()
	if end > len(items) {
		end = len(items)
	}
	visible := items[start:end]

	rows := make([][]string, 0, len(visible))
	for i, rec := range visible {
		rows = append(rows, m.rowCells(rec, start+i == m.view.Cursor))
	}
	padded := table.Format(rows, columnAlignments)

	lines := make([]string, len(padded))
	for i, line := range padded {
		lines[i] = m.decorateRow(line, start+i == m.view.Cursor)
	}
	return lines
}

// rowCells renders one record's columns. The selected row stays unstyled
// at cell level so the selection background can cover the whole line.
func (m *Model) rowCells(rec session.Record, selected bool) []string {
	style := func(s *lipgloss.Style, text string) string {
		if selected || s == nil || text == "" {
			return text
		}
		return s.Render(text)
	}
	dot, star := " ", " "
	if rec.Attached {
		dot = style(styles.Current, "●")
	}
	if rec.Favorite {
		star = style(styles.Favorite, "★")
	}
	name := rec.Name
	if rec.Name == m.current && m.current != "" {
		name = style(styles.Current, name+" (current)")
	} else {
		name = style(styles.Item, name)
	}
	windows := style(styles.Item, fmt.Sprintf("%dw", rec.Windows))
	created := style(styles.Created, rec.Created)
	preview := style(styles.Item, rec.WindowPreview)
	return []string{dot + star, name, created, windows, preview}
}

func (m *Model) decorateRow(line string, selected bool) string {
	if selected {
		marker := "▶ "
		if styles.SelectedMarker != nil {
			marker = styles.SelectedMarker.Render(marker)
		}
		if styles.SelectedItem != nil {
			return marker + styles.SelectedItem.Render(line)
		}
		return marker + line
	}
	return "  " + line
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		if styles.Error != nil {
			return styles.Error.Render(m.errMsg)
		}
		return m.errMsg
	}
	if m.infoMsg != "" {
		if styles.Info != nil {
			return styles.Info.Render(m.infoMsg)
		}
		return m.infoMsg
	}
	return ""
}

func (m *Model) footerLine() string {
	help := "enter attach  ctrl+n new  ctrl+k kill  ctrl+f favorite  tab favorites  f5 refresh  esc quit"
	if styles.Footer != nil {
		return styles.Footer.Render(help)
	}
	return help
}

func (m *Model) viewCreateForm() string {
	title := "Create Session"
	if styles.FormLabel != nil {
		title = styles.FormLabel.Render(title)
	}
	lines := []string{
		title,
		"",
		m.form.NameView(),
		m.form.DirView(),
	}
	if err := m.form.Error(); err != "" {
		errLine := err
		if styles.FormError != nil {
			errLine = styles.FormError.Render(err)
		}
		lines = append(lines, "", errLine)
	}
	help := "Press Enter to create. Tab switches fields. Esc to cancel."
	if styles.Footer != nil {
		help = styles.Footer.Render(help)
	}
	lines = append(lines, "", help)
	return m.fitWidth(strings.Join(lines, "\n"))
}

// maxVisibleItems is the table row budget left after the fixed chrome.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return defaultVisibleRows
	}
	chrome := 3
	if m.showFooter {
		chrome++
	}
	visible := m.height - chrome
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *Model) fitWidth(view string) string {
	if m.width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return strings.Join(lines, "\n")
}
