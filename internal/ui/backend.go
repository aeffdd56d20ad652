package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err

	switch evt.Kind {
	case backend.KindNamespaces:
		m.applyNamespaces(evt.Rows, evt.Err)
	case backend.KindAPIResources:
		m.applyKinds(evt.Rows, evt.Err)
	case backend.KindResources:
		// Events carry the key they were fetched for; anything the
		// selection has moved past is dropped inside applyResources.
		m.applyResources(evt.Key, evt.Rows, evt.Err)
	}
	return m.syncKey()
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			return true, err.Error()
		}
	}
	return false, ""
}
