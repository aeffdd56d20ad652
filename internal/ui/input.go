package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kls/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.selector.Focused().FilterCursor() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	pane := m.selector.Focused()
	switch msg.String() {
	case "ctrl+u":
		if pane.Filter() == "" {
			return false, nil
		}
		before := pane.FilterCursor()
		m.selector.ClearFilter()
		pane.StartSearch()
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(m.focusedPaneName())
		return true, m.syncKey()
	case "ctrl+w":
		before := pane.FilterCursor()
		if !m.selector.DeleteFilterWord() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(m.focusedPaneName(), pane.Filter())
		return true, m.syncKey()
	case "ctrl+a":
		before := pane.FilterCursor()
		if !pane.MoveFilterCursor(-len([]rune(pane.Filter()))) {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.focusedPaneName(), pane.FilterCursor())
		return true, nil
	case "ctrl+e":
		before := pane.FilterCursor()
		if !pane.MoveFilterCursor(len([]rune(pane.Filter()))) {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.focusedPaneName(), pane.FilterCursor())
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := pane.FilterCursor()
		if !m.selector.BackspaceFilter() {
			// Nothing deleted: an empty filter demotes the pane back to
			// browsing, a cursor at the start is a no-op. No re-query.
			return true, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(m.focusedPaneName(), pane.Filter())
		return true, m.syncKey()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		before := pane.FilterCursor()
		if !pane.MoveFilterCursor(-1) {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.focusedPaneName(), pane.FilterCursor())
		return true, nil
	case tea.KeyRight:
		before := pane.FilterCursor()
		if !pane.MoveFilterCursor(1) {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.focusedPaneName(), pane.FilterCursor())
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) (bool, tea.Cmd) {
	pane := m.selector.Focused()
	before := pane.FilterCursor()
	if !m.selector.AppendFilter(text) {
		return false, nil
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.focusedPaneName(), pane.Filter())
	return true, m.syncKey()
}

// filterLine renders one pane's bottom search row. Only the focused pane in
// filter mode shows the caret.
func (m *Model) filterLine(paneIndex int) string {
	pane := m.selector.Pane(paneIndex)
	focused := m.selector.Focus() == paneIndex
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if !pane.Searching() && pane.Filter() == "" {
		return render(styles.FilterPlaceholder, "Press / to search")
	}
	prompt := render(styles.FilterPrompt, "/")
	text := pane.Filter()
	if !focused || !pane.Searching() {
		return prompt + render(styles.Filter, text)
	}
	runes := []rune(text)
	pos := pane.FilterCursor()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderFilterCursor(caretRune)
	after := ""
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
