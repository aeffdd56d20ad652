package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/kubectl"
	"kls/internal/ui/state"
)

func TestHarnessExecutesBatchedCommands(t *testing.T) {
	m := NewModel(kubectl.New("kubectl"), nil, 0, 0, true, false)
	h := NewHarness(m)
	resize := func() tea.Msg { return tea.WindowSizeMsg{Width: 80, Height: 24} }
	focus := func() tea.Msg { return keyMsg("tab") }
	h.processCmd(tea.Batch(resize, focus))
	if h.Model().width != 80 {
		t.Fatalf("batched resize not applied, width %d", h.Model().width)
	}
	if h.Model().selector.Focus() != state.PaneKinds {
		t.Fatalf("batched key not applied, focus %d", h.Model().selector.Focus())
	}
}
