package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/logging/events"
	"kls/internal/ui/state"
)

var paneNames = [...]string{"namespaces", "api-resources", "resources"}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.popup != nil {
		return m.handlePopupKey(key)
	}
	m.actionStatus = ""

	switch key.String() {
	case "ctrl+c":
		events.App.Exit("ctrl+c")
		return tea.Quit
	case "tab":
		return m.moveFocus(+1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "up":
		return m.moveSelection(-1)
	case "down":
		return m.moveSelection(+1)
	case "pgup":
		return m.moveSelection(-m.pageSize())
	case "pgdown":
		return m.moveSelection(+m.pageSize())
	case "home":
		m.selector.SelectFirst()
		m.noteCursor()
		return m.syncKey()
	case "end":
		m.selector.SelectLast()
		m.noteCursor()
		return m.syncKey()
	case "esc":
		if m.selector.Cancel() {
			events.Filter.Cleared(m.focusedPaneName())
			return m.syncKey()
		}
		events.App.Exit("escape")
		return tea.Quit
	case "ctrl+s":
		return m.openContextPopup()
	case "ctrl+r":
		m.selector.Invalidate()
		return m.fetchMetadataCmd()
	}

	if !m.selector.Focused().Searching() {
		switch key.String() {
		case "left":
			return m.moveFocus(-1)
		case "right":
			return m.moveFocus(+1)
		case "q":
			if m.selector.Focused().Filter() != "" {
				return nil
			}
			events.App.Exit("q")
			return tea.Quit
		case "/":
			m.selector.StartFilter()
			m.filterCursorDirty = true
			return nil
		case "1", "2", "3", "4", "5", "enter", "delete":
			return m.dispatchAction(key.String())
		}
		return nil
	}

	if handled, cmd := m.handleTextInput(key); handled {
		return cmd
	}
	switch key.String() {
	case "enter":
		// Confirm the filter: leave entry mode, keep the text.
		m.selector.Focused().StopSearch()
		if m.selector.Focused().Filter() == "" {
			return nil
		}
		return m.syncKey()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if delta > 0 {
		m.selector.FocusNext()
	} else {
		m.selector.FocusPrev()
	}
	m.filterCursorDirty = true
	events.UI.PaneFocus(m.focusedPaneName())
	return nil
}

func (m *Model) moveSelection(delta int) tea.Cmd {
	m.selector.MoveSelection(delta)
	m.noteCursor()
	return m.syncKey()
}

func (m *Model) noteCursor() {
	events.UI.PaneCursor(m.focusedPaneName(), m.selector.Focused().Cursor())
}

func (m *Model) focusedPaneName() string {
	return paneNames[m.selector.Focus()]
}

func (m *Model) pageSize() int {
	h := m.listHeight()
	if h < 1 {
		return 1
	}
	return h
}

// selection returns the (namespace, kind, resource) triple actions run on.
func (m *Model) selection() (string, string, string) {
	return m.selector.Pane(state.PaneNamespaces).SelectedRow(),
		m.selector.Pane(state.PaneKinds).SelectedRow(),
		m.selector.Pane(state.PaneResources).SelectedRow()
}
