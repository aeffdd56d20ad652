package events

import "kls/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type ProviderTracer struct{}

var (
	UI       = UITracer{}
	Filter   = FilterTracer{}
	Action   = ActionTracer{}
	Provider = ProviderTracer{}
)

func (UITracer) PaneFocus(pane string) {
	logging.Trace("pane.focus", map[string]interface{}{"pane": pane})
}

func (UITracer) PaneCursor(pane string, cursor int) {
	logging.Trace("pane.cursor", map[string]interface{}{"pane": pane, "cursor": cursor})
}

func (UITracer) MouseSelect(pane string, row int) {
	logging.Trace("mouse.select", map[string]interface{}{"pane": pane, "row": row})
}

func (UITracer) ContextPopup(open bool) {
	logging.Trace("context.popup", map[string]interface{}{"open": open})
}

func (UITracer) ContextSwitch(name string) {
	logging.Trace("context.switch", map[string]interface{}{"context": name})
}

func (FilterTracer) Append(pane, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"pane": pane, "filter": filter})
}

func (FilterTracer) Backspace(pane, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"pane": pane, "filter": filter})
}

func (FilterTracer) WordBackspace(pane, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"pane": pane, "filter": filter})
}

func (FilterTracer) Cleared(pane string) {
	logging.Trace("filter.clear", map[string]interface{}{"pane": pane})
}

func (FilterTracer) Cursor(pane string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"pane": pane, "cursor": pos})
}

func (ActionTracer) Launch(name, command string) {
	logging.Trace("action.launch", map[string]interface{}{"action": name, "command": command})
}

func (ActionTracer) Finished(name string, err error) {
	payload := map[string]interface{}{"action": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("action.finished", payload)
}

func (ActionTracer) Blocked(name, kind, resource string) {
	logging.Trace("action.blocked", map[string]interface{}{
		"action":   name,
		"kind":     kind,
		"resource": resource,
	})
}

func (ProviderTracer) Error(query string, err error) {
	if err == nil {
		return
	}
	logging.Trace("provider.error", map[string]interface{}{"query": query, "error": err.Error()})
}

func (ProviderTracer) Fetched(query string, rows int) {
	logging.Trace("provider.fetched", map[string]interface{}{"query": query, "rows": rows})
}
