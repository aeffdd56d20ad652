package state

// Pane positions within the selector. The order is fixed: the resources pane
// derives its query from the two panes before it.
const (
	PaneNamespaces = iota
	PaneKinds
	PaneResources
	paneCount
)

// WildcardKind queries every fetchable kind at once. Rows come back prefixed
// with their kind ("pod/name", "service/name").
const WildcardKind = "all"

// ResourceKey identifies the query the resources pane is derived from.
type ResourceKey struct {
	Namespace string
	Kind      string
}

// Zero reports whether the key is missing either coordinate.
func (k ResourceKey) Zero() bool {
	return k.Namespace == "" || k.Kind == ""
}

// Selector is the pane graph: three panes, a focus index, and the derivation
// key the resources pane was last populated for. All mutation happens on the
// event-loop goroutine; pollers only ever read the key through the watcher.
type Selector struct {
	panes [paneCount]*Pane
	focus int

	// appliedKey is the key the resources rows currently on screen were
	// fetched for. Cleared when an upstream selection or filter changes so
	// in-flight results for the old key are discarded on arrival.
	appliedKey ResourceKey
}

// NewSelector builds the three-pane graph with focus on the namespaces pane.
func NewSelector() *Selector {
	s := &Selector{}
	s.panes[PaneNamespaces] = NewPane("Namespaces", nil)
	s.panes[PaneKinds] = NewPane("API resources", nil)
	s.panes[PaneResources] = NewPane("Resources", nil)
	return s
}

// Pane returns the pane at the given position.
func (s *Selector) Pane(i int) *Pane {
	return s.panes[i]
}

// Focused returns the pane holding focus.
func (s *Selector) Focused() *Pane {
	return s.panes[s.focus]
}

// Focus returns the index of the focused pane.
func (s *Selector) Focus() int {
	return s.focus
}

// SetFocus moves focus to the given pane. Filtering mode on the target is
// recomputed from its filter text: a pane with residual filter text resumes
// filtering, an unfiltered one lands in browsing.
func (s *Selector) SetFocus(i int) {
	if i < 0 || i >= paneCount || i == s.focus {
		return
	}
	s.Focused().StopSearch()
	s.focus = i
	if s.Focused().Filter() != "" {
		s.Focused().StartSearch()
	}
}

// FocusNext hands focus to the pane on the right, wrapping.
func (s *Selector) FocusNext() {
	s.SetFocus((s.focus + 1) % paneCount)
}

// FocusPrev hands focus to the pane on the left, wrapping.
func (s *Selector) FocusPrev() {
	s.SetFocus((s.focus + paneCount - 1) % paneCount)
}

// MoveSelection shifts the focused pane's cursor. Moving within the
// namespaces or kinds pane changes what the resources pane derives from, so
// the applied key is invalidated.
func (s *Selector) MoveSelection(delta int) {
	s.Focused().MoveSelection(delta)
	s.invalidateIfUpstream()
}

// SelectRow positions the focused pane's cursor directly (mouse click).
func (s *Selector) SelectRow(index int) {
	s.Focused().SelectRow(index)
	s.invalidateIfUpstream()
}

// SelectFirst jumps the focused pane's cursor to the first filtered row.
func (s *Selector) SelectFirst() {
	s.Focused().SelectRow(0)
	s.invalidateIfUpstream()
}

// SelectLast jumps the focused pane's cursor to the final filtered row.
func (s *Selector) SelectLast() {
	s.Focused().SelectLast()
	s.invalidateIfUpstream()
}

func (s *Selector) invalidateIfUpstream() {
	if s.focus != PaneResources {
		s.Invalidate()
	}
}

// StartFilter puts the focused pane into filter-entry mode.
func (s *Selector) StartFilter() {
	s.Focused().StartSearch()
}

// AppendFilter inserts text into the focused pane's filter. Narrowing the
// namespaces or kinds filter can move the effective selection, so the key is
// invalidated on change.
func (s *Selector) AppendFilter(text string) bool {
	if !s.Focused().AppendFilter(text) {
		return false
	}
	s.invalidateIfUpstream()
	return true
}

// BackspaceFilter deletes the rune before the filter cursor. Reports false
// when nothing was deleted; on an already empty filter the pane additionally
// demotes back to browsing.
func (s *Selector) BackspaceFilter() bool {
	if !s.Focused().BackspaceFilter() {
		return false
	}
	s.invalidateIfUpstream()
	return true
}

// ClearFilter wipes the focused pane's filter (ctrl+u).
func (s *Selector) ClearFilter() {
	s.Focused().ClearFilter()
	s.invalidateIfUpstream()
}

// DeleteFilterWord removes the word before the filter cursor (ctrl+w).
func (s *Selector) DeleteFilterWord() bool {
	if !s.Focused().DeleteFilterWord() {
		return false
	}
	s.invalidateIfUpstream()
	return true
}

// Cancel handles escape: a pane that is filtering, or browsing with a filter
// applied, drops the filter and returns to plain browsing. A pane with
// nothing to cancel reports false, which the caller treats as the exit
// request.
func (s *Selector) Cancel() bool {
	pane := s.Focused()
	if !pane.Searching() && pane.Filter() == "" {
		return false
	}
	pane.ClearFilter()
	s.invalidateIfUpstream()
	return true
}

// SelectionKey returns the (namespace, kind) pair the resources pane should
// currently be derived from. Either coordinate may be the empty sentinel.
func (s *Selector) SelectionKey() ResourceKey {
	return ResourceKey{
		Namespace: s.panes[PaneNamespaces].SelectedRow(),
		Kind:      s.panes[PaneKinds].SelectedRow(),
	}
}

// AppliedKey returns the key the on-screen resources rows belong to.
func (s *Selector) AppliedKey() ResourceKey {
	return s.appliedKey
}

// Invalidate clears the applied key: the next completed query for the current
// selection will be applied even if the same key was shown before, and any
// in-flight result for the previous key will be discarded.
func (s *Selector) Invalidate() {
	s.appliedKey = ResourceKey{}
}

// ShouldApply reports whether rows fetched for key are still wanted. Stale
// results, fetched before the selection moved on, are dropped unapplied.
func (s *Selector) ShouldApply(key ResourceKey) bool {
	return key == s.SelectionKey()
}

// NeedsFetch reports whether the current selection has no applied rows yet.
func (s *Selector) NeedsFetch() bool {
	key := s.SelectionKey()
	return !key.Zero() && key != s.appliedKey
}

// ApplyResources swaps the resources pane's rows wholesale for a completed
// query. The placeholder is shown when rows is empty (provider failure or a
// genuinely empty collection).
func (s *Selector) ApplyResources(key ResourceKey, rows []string, placeholder string) bool {
	if !s.ShouldApply(key) {
		return false
	}
	s.appliedKey = key
	pane := s.panes[PaneResources]
	pane.SetRows(rows)
	pane.Placeholder = placeholder
	return true
}

// SetNamespaces replaces the namespaces pane rows, keeping the cursor on the
// previously selected namespace when it survives the reload.
func (s *Selector) SetNamespaces(rows []string, placeholder string) {
	s.retainSelection(PaneNamespaces, rows, placeholder)
}

// SetKinds replaces the kinds pane rows, keeping the cursor on the previously
// selected kind when it survives the reload.
func (s *Selector) SetKinds(rows []string, placeholder string) {
	s.retainSelection(PaneKinds, rows, placeholder)
}

func (s *Selector) retainSelection(i int, rows []string, placeholder string) {
	pane := s.panes[i]
	previous := pane.SelectedRow()
	pane.SetRows(rows)
	pane.Placeholder = placeholder
	if previous != "" {
		for idx, row := range pane.FilteredRows() {
			if row == previous {
				pane.SelectRow(idx)
				break
			}
		}
	}
	if pane.SelectedRow() != previous {
		s.Invalidate()
	}
}
