package state

import (
	"reflect"
	"testing"
)

func newPopulatedSelector() *Selector {
	s := NewSelector()
	s.SetNamespaces([]string{"default", "kube-system", "dev"}, "")
	s.SetKinds([]string{"all", "pods", "services"}, "")
	s.ApplyResources(s.SelectionKey(), []string{"web-1", "web-2"}, "")
	return s
}

func TestSelectorFocusWrapsCircularly(t *testing.T) {
	s := NewSelector()
	if s.Focus() != PaneNamespaces {
		t.Fatalf("initial focus: got %d", s.Focus())
	}
	s.FocusNext()
	s.FocusNext()
	if s.Focus() != PaneResources {
		t.Fatalf("after two next: got %d", s.Focus())
	}
	s.FocusNext()
	if s.Focus() != PaneNamespaces {
		t.Fatalf("focus should wrap to the first pane, got %d", s.Focus())
	}
	s.FocusPrev()
	if s.Focus() != PaneResources {
		t.Fatalf("prev from first should wrap to the last pane, got %d", s.Focus())
	}
}

func TestSelectorFocusHandoffRecomputesFilterState(t *testing.T) {
	s := newPopulatedSelector()
	s.StartFilter()
	s.AppendFilter("kube")
	s.FocusNext()
	if s.Pane(PaneNamespaces).filter != "kube" {
		t.Fatalf("leaving a pane must not drop its filter")
	}
	if s.Focused().Searching() {
		t.Fatalf("unfiltered pane should land in browsing on focus")
	}
	s.FocusPrev()
	if !s.Focused().Searching() {
		t.Fatalf("pane with residual filter should resume filtering on focus")
	}
}

func TestSelectorUpstreamMoveInvalidatesKey(t *testing.T) {
	s := newPopulatedSelector()
	if s.NeedsFetch() {
		t.Fatalf("freshly applied key should not need a fetch")
	}
	s.MoveSelection(1)
	if !s.NeedsFetch() {
		t.Fatalf("moving the namespace selection should invalidate the key")
	}
	want := ResourceKey{Namespace: "kube-system", Kind: "all"}
	if got := s.SelectionKey(); got != want {
		t.Fatalf("selection key: got %+v, want %+v", got, want)
	}
}

func TestSelectorResourceMoveKeepsKey(t *testing.T) {
	s := newPopulatedSelector()
	s.SetFocus(PaneResources)
	s.MoveSelection(1)
	if s.NeedsFetch() {
		t.Fatalf("moving within the resources pane must not invalidate the key")
	}
}

func TestSelectorStaleResultDiscarded(t *testing.T) {
	s := newPopulatedSelector()
	s.FocusNext()
	s.MoveSelection(1) // kinds: all -> pods, in-flight "all" query now stale

	stale := ResourceKey{Namespace: "default", Kind: "all"}
	if s.ApplyResources(stale, []string{"old/row"}, "") {
		t.Fatalf("result for a superseded key must be discarded")
	}
	fresh := ResourceKey{Namespace: "default", Kind: "pods"}
	if !s.ApplyResources(fresh, []string{"web-1"}, "") {
		t.Fatalf("result for the live key must be applied")
	}
	if got := s.Pane(PaneResources).Rows(); !reflect.DeepEqual(got, []string{"web-1"}) {
		t.Fatalf("resources rows: got %v", got)
	}
	if s.NeedsFetch() {
		t.Fatalf("applying the live key should satisfy the fetch")
	}
}

func TestSelectorFilterNarrowingInvalidatesKey(t *testing.T) {
	s := newPopulatedSelector()
	s.StartFilter()
	s.AppendFilter("dev")
	if !s.NeedsFetch() {
		t.Fatalf("narrowing the namespace filter moves the selection, key must drop")
	}
	if got := s.SelectionKey().Namespace; got != "dev" {
		t.Fatalf("selection after filter: got %q, want dev", got)
	}
}

func TestSelectorCancelClearsFilterThenSignalsExit(t *testing.T) {
	s := newPopulatedSelector()
	s.StartFilter()
	s.AppendFilter("x")
	if !s.Cancel() {
		t.Fatalf("first cancel should consume the filter")
	}
	if s.Focused().Filter() != "" {
		t.Fatalf("cancel should clear the filter")
	}
	if s.Cancel() {
		t.Fatalf("cancel while browsing should report false (exit request)")
	}
}

func TestSelectorSentinelKeyNeverFetches(t *testing.T) {
	s := NewSelector()
	s.SetNamespaces(nil, "no namespaces")
	s.SetKinds([]string{"pods"}, "")
	if s.NeedsFetch() {
		t.Fatalf("a key with an empty coordinate must not trigger a fetch")
	}
	if !s.SelectionKey().Zero() {
		t.Fatalf("key with empty namespace should be zero")
	}
}

func TestSelectorReloadRetainsSelection(t *testing.T) {
	s := newPopulatedSelector()
	s.MoveSelection(2) // dev
	s.ApplyResources(s.SelectionKey(), []string{"x"}, "")
	s.SetNamespaces([]string{"default", "dev", "staging"}, "")
	if got := s.Pane(PaneNamespaces).SelectedRow(); got != "dev" {
		t.Fatalf("reload should keep the selected namespace, got %q", got)
	}
	if s.NeedsFetch() {
		t.Fatalf("unchanged selection across reload should keep the applied key")
	}
	s.SetNamespaces([]string{"staging"}, "")
	if !s.NeedsFetch() {
		t.Fatalf("selection lost in reload must invalidate the key")
	}
}
