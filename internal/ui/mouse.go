package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/logging/events"
	"kls/internal/ui/state"
)

// paneAt maps a column to the pane rendered there, using the same width
// split as the view. Returns -1 outside every pane.
func (m *Model) paneAt(x int) int {
	w1, w2, w3 := m.columnWidths()
	switch {
	case x < 0 || m.width <= 0:
		return -1
	case x < w1:
		return state.PaneNamespaces
	case x < w1+w2:
		return state.PaneKinds
	case x < w1+w2+w3:
		return state.PaneResources
	default:
		return -1
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.popup != nil {
		return nil
	}
	pane := m.paneAt(ev.X)
	if pane < 0 {
		return nil
	}

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		return m.wheelSelection(pane, -1)
	case tea.MouseButtonWheelDown:
		return m.wheelSelection(pane, +1)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		return m.clickSelect(pane, ev.Y)
	}
	return nil
}

// wheelSelection scrolls the hovered pane without stealing focus.
func (m *Model) wheelSelection(pane, delta int) tea.Cmd {
	m.selector.Pane(pane).MoveSelection(delta)
	if pane != state.PaneResources {
		m.selector.Invalidate()
	}
	return m.syncKey()
}

// clickSelect refocuses the clicked pane and puts the cursor on the row under
// the pointer. Row zero is the title; clicks there only move focus. Clicks
// past the last filtered row are ignored, as are clicks below the pane
// rectangle (the footer rows).
func (m *Model) clickSelect(pane, y int) tea.Cmd {
	height := m.listHeight()
	if y > height+1 {
		return nil
	}
	m.selector.SetFocus(pane)
	m.filterCursorDirty = true
	events.UI.PaneFocus(paneNames[pane])
	if y < 1 {
		return m.syncKey()
	}
	row := y - 1
	if row >= height {
		return m.syncKey()
	}
	target := m.selector.Pane(pane)
	index := target.ScrollOffset(height) + row
	if index >= target.FilteredLen() {
		return m.syncKey()
	}
	m.selector.SelectRow(index)
	events.UI.MouseSelect(paneNames[pane], index)
	return m.syncKey()
}
