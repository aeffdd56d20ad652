package ui

import (
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/action"
	"kls/internal/logging"
	"kls/internal/logging/events"
)

type actionFinishedMsg struct {
	name string
	err  error
}

// dispatchAction hands the terminal to an external command built from the
// current selection. The event loop suspends for the duration; everything
// else in the UI stays untouched.
func (m *Model) dispatchAction(key string) tea.Cmd {
	spec, ok := action.Lookup(key)
	if !ok {
		return nil
	}
	namespace, kind, resource := m.selection()
	if !spec.Allowed(kind, resource) {
		events.Action.Blocked(spec.Name, kind, resource)
		return nil
	}
	rendered := spec.Render(namespace, kind, resource)
	events.Action.Launch(spec.Name, rendered)
	m.actionStatus = ""
	name := spec.Name
	cmd := exec.Command("sh", "-c", rendered)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return actionFinishedMsg{name: name, err: err}
	})
}

func (m *Model) handleActionFinishedMsg(msg tea.Msg) tea.Cmd {
	finished, ok := msg.(actionFinishedMsg)
	if !ok {
		return nil
	}
	// The process exit status is recorded, never interpreted: a pager
	// quitting with a signal and a failed delete look the same here.
	events.Action.Finished(finished.name, finished.err)
	if finished.err != nil {
		logging.Error(finished.err)
	}
	if m.verbose {
		if finished.err != nil {
			m.actionStatus = fmt.Sprintf("%s failed: %v", finished.name, finished.err)
		} else {
			m.actionStatus = fmt.Sprintf("%s done", finished.name)
		}
	}
	// The action may have changed the inventory (delete, edit), so the
	// resources pane is re-queried immediately. Mouse tracking is re-armed
	// because ExecProcess releases the terminal modes.
	m.selector.Invalidate()
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if cmd := m.syncKey(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
