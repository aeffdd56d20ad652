package ui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"kls/internal/logging/events"
)

// contextPopup is the ctrl+s overlay for switching kubeconfig contexts.
type contextPopup struct {
	contexts []string
	filter   string
	cursor   int
	err      string
	loading  bool
}

type contextsLoadedMsg struct {
	contexts []string
	err      error
}

type contextSwitchedMsg struct {
	name string
	err  error
}

func (p *contextPopup) visible() []string {
	if p.filter == "" {
		return p.contexts
	}
	matches := fuzzy.RankFindFold(p.filter, p.contexts)
	sort.Sort(matches)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Target)
	}
	return out
}

func (p *contextPopup) selected() string {
	visible := p.visible()
	if len(visible) == 0 {
		return ""
	}
	if p.cursor >= len(visible) {
		return visible[len(visible)-1]
	}
	return visible[p.cursor]
}

func (p *contextPopup) move(delta int) {
	visible := p.visible()
	if len(visible) <= 1 {
		p.cursor = 0
		return
	}
	n := len(visible)
	p.cursor = ((p.cursor+delta)%n + n) % n
}

func (m *Model) openContextPopup() tea.Cmd {
	m.popup = &contextPopup{loading: true}
	events.UI.ContextPopup(true)
	client := m.client
	return func() tea.Msg {
		contexts, err := client.Contexts()
		return contextsLoadedMsg{contexts: contexts, err: err}
	}
}

func (m *Model) closeContextPopup() {
	m.popup = nil
	events.UI.ContextPopup(false)
}

func (m *Model) handleContextsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(contextsLoadedMsg)
	if !ok || m.popup == nil {
		return nil
	}
	m.popup.loading = false
	if loaded.err != nil {
		events.Provider.Error("contexts", loaded.err)
		m.popup.err = unavailablePlaceholder
		return nil
	}
	m.popup.contexts = loaded.contexts
	return nil
}

func (m *Model) handlePopupKey(key tea.KeyMsg) tea.Cmd {
	popup := m.popup
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "ctrl+s":
		m.closeContextPopup()
		return nil
	case "up":
		popup.move(-1)
		return nil
	case "down":
		popup.move(+1)
		return nil
	case "enter":
		name := popup.selected()
		if name == "" {
			return nil
		}
		client := m.client
		return func() tea.Msg {
			err := client.UseContext(name)
			return contextSwitchedMsg{name: name, err: err}
		}
	case "backspace":
		if popup.filter == "" {
			return nil
		}
		runes := []rune(popup.filter)
		popup.filter = string(runes[:len(runes)-1])
		popup.cursor = 0
		return nil
	}
	if key.Type == tea.KeyRunes && !key.Alt {
		popup.filter += string(key.Runes)
		popup.cursor = 0
	}
	if key.Type == tea.KeySpace {
		popup.filter += " "
		popup.cursor = 0
	}
	return nil
}

func (m *Model) handleContextSwitchedMsg(msg tea.Msg) tea.Cmd {
	switched, ok := msg.(contextSwitchedMsg)
	if !ok {
		return nil
	}
	if switched.err != nil {
		events.Provider.Error("use-context", switched.err)
		if m.popup != nil {
			m.popup.err = unavailablePlaceholder
		}
		return nil
	}
	events.UI.ContextSwitch(switched.name)
	m.closeContextPopup()
	// The new context has its own inventory; everything reloads.
	m.selector.Invalidate()
	return m.fetchMetadataCmd()
}
