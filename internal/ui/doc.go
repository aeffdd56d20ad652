// Package ui contains the Bubble Tea program that powers the inventory
// browser. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (navigation for key presses,
//     mouse hit-testing, backend updates, action completion).
//   - Navigation helpers (internal/ui/navigation.go) manage pane focus and
//     cursor movement. Filter/input helpers (internal/ui/input.go) keep all
//     text entry concerns isolated from the Bubble Tea event loop.
//
// State ownership:
//   - Pane state lives in internal/ui/state.Pane, which tracks rows,
//     filtering, selection, and viewport calculations. The three panes and
//     their dependency key are owned by internal/ui/state.Selector.
//   - Pollers in internal/backend never touch pane state: row sets arrive as
//     events and the event loop performs the swap, so stale in-flight results
//     can be discarded against the live selection key.
//
// External actions are dispatched through tea.ExecProcess: the managed
// display is released, the command owns the terminal until it exits, and the
// alternate screen is restored afterwards with mouse tracking re-armed.
package ui
