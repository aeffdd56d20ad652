package action

import "strings"

// Placeholder tokens substituted into command templates.
const (
	tokenNamespace = "{namespace}"
	tokenKind      = "{api_resource}"
	tokenResource  = "{resource}"
)

// Kind values with special meaning for gating and rendering.
const (
	wildcardKind = "all"
	podKind      = "pods"
	podPrefix    = "pod/"
)

// Spec is one user-triggerable command over the current selection.
type Spec struct {
	// Key is the label shown in the footer for the triggering keystroke.
	Key  string
	Name string

	// Template is the shell pipeline with placeholder tokens.
	Template string

	// NeedsPod restricts the action to pod instances: the selected kind
	// must be pods, or the wildcard kind with a pod-prefixed instance.
	NeedsPod bool
}

var table = map[string]Spec{
	"1": {Key: "1", Name: "yaml", Template: "kubectl -n {namespace} get {api_resource} {resource} -o yaml | batcat -l yaml --paging always --style numbers"},
	"2": {Key: "2", Name: "describe", Template: "kubectl -n {namespace} describe {api_resource} {resource} | batcat -l yaml --paging always --style numbers"},
	"3": {Key: "3", Name: "edit", Template: "kubectl -n {namespace} edit {api_resource} {resource}"},
	"4": {Key: "4", Name: "logs", Template: "kubectl -n {namespace} logs {resource} | batcat -l log --paging always --style numbers", NeedsPod: true},
	"5": {Key: "5", Name: "exec", Template: "kubectl -n {namespace} exec -it {resource} -- sh", NeedsPod: true},
	"delete": {Key: "del", Name: "delete", Template: "kubectl -n {namespace} delete {api_resource} {resource}"},
}

// footerOrder fixes the hint line layout.
var footerOrder = []string{"1", "2", "3", "4", "5", "delete"}

// Lookup resolves a keystroke to its action. Enter is the default gesture
// and aliases the yaml action.
func Lookup(key string) (Spec, bool) {
	if key == "enter" {
		key = "1"
	}
	spec, ok := table[key]
	return spec, ok
}

// All returns the actions in footer order.
func All() []Spec {
	specs := make([]Spec, 0, len(table))
	for _, key := range footerOrder {
		specs = append(specs, table[key])
	}
	return specs
}

// Allowed reports whether the action may run against the selection. Dispatch
// against the empty sentinel is never allowed; gated actions additionally
// require a pod instance.
func (s Spec) Allowed(kind, resource string) bool {
	if resource == "" {
		return false
	}
	if !s.NeedsPod {
		return true
	}
	if kind == podKind {
		return true
	}
	return kind == wildcardKind && strings.HasPrefix(resource, podPrefix)
}

// Render substitutes the selection into the template. With the wildcard kind
// the instance already carries its kind prefix, so the kind token is dropped
// and the surrounding whitespace collapsed.
func (s Spec) Render(namespace, kind, resource string) string {
	cmd := s.Template
	cmd = strings.ReplaceAll(cmd, tokenNamespace, namespace)
	if kind == wildcardKind {
		cmd = strings.ReplaceAll(cmd, tokenKind, "")
	} else {
		cmd = strings.ReplaceAll(cmd, tokenKind, kind)
	}
	cmd = strings.ReplaceAll(cmd, tokenResource, resource)
	return strings.Join(strings.Fields(cmd), " ")
}
