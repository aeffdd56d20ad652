package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/logging/events"
	"kls/internal/ui/state"
)

const (
	loadingPlaceholder     = "Loading…"
	unavailablePlaceholder = "kubectl unavailable"
	emptyPlaceholder       = "No resources matched criteria."
)

type resourcesFetchedMsg struct {
	key  state.ResourceKey
	rows []string
	err  error
}

type metadataFetchedMsg struct {
	namespaces    []string
	namespacesErr error
	kinds         []string
	kindsErr      error
}

// syncKey publishes the current derivation key to the backend poller and,
// when the selection points at a key without applied rows, fires an immediate
// one-shot fetch so the pane does not wait for the next tick.
func (m *Model) syncKey() tea.Cmd {
	key := m.selector.SelectionKey()
	if m.backend != nil {
		m.backend.SetKey(key)
	}
	if key.Zero() {
		// Either upstream selection is the empty sentinel: the resources
		// pane derives from nothing and shows nothing. The placeholder only
		// changes when rows are actually dropped, so a provider-failure hint
		// stays visible.
		pane := m.selector.Pane(state.PaneResources)
		if len(pane.Rows()) != 0 {
			pane.SetRows(nil)
			pane.Placeholder = emptyPlaceholder
		}
		return nil
	}
	if !m.selector.NeedsFetch() {
		return nil
	}
	return m.fetchResourcesCmd(key)
}

func (m *Model) fetchResourcesCmd(key state.ResourceKey) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		rows, err := client.Resources(key.Namespace, key.Kind)
		return resourcesFetchedMsg{key: key, rows: rows, err: err}
	}
}

// fetchMetadataCmd reloads the namespace and kind inventory (ctrl+r, context
// switch).
func (m *Model) fetchMetadataCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		msg := metadataFetchedMsg{}
		msg.namespaces, msg.namespacesErr = client.Namespaces()
		msg.kinds, msg.kindsErr = client.APIResources()
		return msg
	}
}

func (m *Model) handleResourcesFetchedMsg(msg tea.Msg) tea.Cmd {
	fetched, ok := msg.(resourcesFetchedMsg)
	if !ok {
		return nil
	}
	m.applyResources(fetched.key, fetched.rows, fetched.err)
	return m.syncKey()
}

func (m *Model) handleMetadataFetchedMsg(msg tea.Msg) tea.Cmd {
	fetched, ok := msg.(metadataFetchedMsg)
	if !ok {
		return nil
	}
	m.applyNamespaces(fetched.namespaces, fetched.namespacesErr)
	m.applyKinds(fetched.kinds, fetched.kindsErr)
	return m.syncKey()
}

func (m *Model) applyNamespaces(rows []string, err error) {
	if err != nil {
		events.Provider.Error("namespaces", err)
		m.selector.SetNamespaces(nil, unavailablePlaceholder)
		return
	}
	events.Provider.Fetched("namespaces", len(rows))
	m.selector.SetNamespaces(rows, emptyPlaceholder)
}

func (m *Model) applyKinds(rows []string, err error) {
	if err != nil {
		events.Provider.Error("api-resources", err)
		m.selector.SetKinds(nil, unavailablePlaceholder)
		return
	}
	events.Provider.Fetched("api-resources", len(rows))
	m.selector.SetKinds(rows, emptyPlaceholder)
}

func (m *Model) applyResources(key state.ResourceKey, rows []string, err error) {
	if err != nil {
		events.Provider.Error("resources", err)
		m.selector.ApplyResources(key, nil, unavailablePlaceholder)
		return
	}
	events.Provider.Fetched("resources", len(rows))
	m.selector.ApplyResources(key, rows, emptyPlaceholder)
}
