package state

import (
	"reflect"
	"testing"
)

func TestPaneFilterKeepsQueryOrder(t *testing.T) {
	pane := NewPane("test", []string{"kube-system", "default", "kube-public", "dev"})
	pane.SetFilter("kube")
	want := []string{"kube-system", "kube-public"}
	if got := pane.FilteredRows(); !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered rows: got %v, want %v", got, want)
	}
	if pane.Cursor() != 0 {
		t.Fatalf("filter change should reset cursor, got %d", pane.Cursor())
	}
}

func TestPaneFilterIsCaseSensitiveSubstring(t *testing.T) {
	pane := NewPane("test", []string{"Deployment", "deployments", "pods"})
	pane.SetFilter("deploy")
	if got := pane.FilteredRows(); !reflect.DeepEqual(got, []string{"deployments"}) {
		t.Fatalf("got %v, want only the lowercase match", got)
	}
}

func TestPaneSelectedRowSentinelWhenNothingMatches(t *testing.T) {
	pane := NewPane("test", []string{"a", "b"})
	pane.SetFilter("zzz")
	if got := pane.SelectedRow(); got != "" {
		t.Fatalf("no matches should yield the empty sentinel, got %q", got)
	}
	pane.MoveSelection(1)
	if got := pane.SelectedRow(); got != "" {
		t.Fatalf("moving over an empty view should stay on the sentinel, got %q", got)
	}
}

func TestPaneMoveSelectionNoopWithOneMatch(t *testing.T) {
	pane := NewPane("test", []string{"alpha", "beta"})
	pane.SetFilter("alp")
	pane.MoveSelection(1)
	if pane.Cursor() != 0 {
		t.Fatalf("single filtered row should pin cursor at 0, got %d", pane.Cursor())
	}
}

func TestPaneScrollOffsetFollowsCursor(t *testing.T) {
	rows := []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6"}
	pane := NewPane("test", rows)

	if got := pane.ScrollOffset(3); got != 0 {
		t.Fatalf("offset at top: got %d, want 0", got)
	}
	pane.SelectRow(2)
	if got := pane.ScrollOffset(3); got != 0 {
		t.Fatalf("cursor at bottom edge: got %d, want 0", got)
	}
	pane.SelectRow(5)
	if got := pane.ScrollOffset(3); got != 3 {
		t.Fatalf("cursor past viewport: got %d, want 3", got)
	}
	if got := pane.VisibleRows(3); !reflect.DeepEqual(got, []string{"r3", "r4", "r5"}) {
		t.Fatalf("visible window: got %v", got)
	}
}

func TestPaneFilterScenario(t *testing.T) {
	pane := NewPane("test", []string{"a", "b", "c"})
	pane.SetFilter("b")
	if got := pane.SelectedRow(); got != "b" {
		t.Fatalf("selected row: got %q, want b", got)
	}
	if got := pane.VisibleRows(2); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("visible rows: got %v, want [b]", got)
	}
}

func TestPaneScrollScenario(t *testing.T) {
	pane := NewPane("test", []string{"n1", "n2", "n3", "n4"})
	for i := 0; i < 3; i++ {
		pane.MoveSelection(1)
	}
	if pane.Cursor() != 3 {
		t.Fatalf("cursor: got %d, want 3", pane.Cursor())
	}
	if got := pane.ScrollOffset(2); got != 2 {
		t.Fatalf("scroll offset: got %d, want 2", got)
	}
	if got := pane.VisibleRows(2); !reflect.DeepEqual(got, []string{"n3", "n4"}) {
		t.Fatalf("visible rows: got %v, want [n3 n4]", got)
	}
}

func TestPaneVisibleRowsNeverExceedsHeight(t *testing.T) {
	pane := NewPane("test", []string{"a", "b", "c", "d", "e"})
	if got := len(pane.VisibleRows(3)); got != 3 {
		t.Fatalf("window of 3 over 5 rows: got %d rows", got)
	}
	if got := len(pane.VisibleRows(10)); got != 5 {
		t.Fatalf("window of 10 over 5 rows: got %d rows", got)
	}
	if got := pane.VisibleRows(0); got != nil {
		t.Fatalf("zero height window: got %v", got)
	}
}

func TestPaneSetRowsResetsCursor(t *testing.T) {
	pane := NewPane("test", []string{"a", "b", "c"})
	pane.MoveSelection(2)
	pane.SetRows([]string{"x", "y"})
	if pane.Cursor() != 0 {
		t.Fatalf("row replacement should reset cursor, got %d", pane.Cursor())
	}
	if got := pane.SelectedRow(); got != "x" {
		t.Fatalf("got %q, want x", got)
	}
}

func TestPaneFilterEditing(t *testing.T) {
	pane := NewPane("test", nil)
	pane.StartSearch()
	pane.AppendFilter("ku")
	pane.AppendFilter("be")
	if pane.Filter() != "kube" {
		t.Fatalf("append: got %q", pane.Filter())
	}
	if !pane.BackspaceFilter() {
		t.Fatalf("backspace on non-empty filter should report true")
	}
	if pane.Filter() != "kub" {
		t.Fatalf("after backspace: got %q", pane.Filter())
	}
	pane.MoveFilterCursor(-2)
	pane.AppendFilter("X")
	if pane.Filter() != "kXub" {
		t.Fatalf("insert at cursor: got %q", pane.Filter())
	}
	pane.ClearFilter()
	if pane.Filter() != "" || pane.Searching() {
		t.Fatalf("clear should empty the filter and leave search mode")
	}
}

func TestPaneBackspaceOnEmptyFilterDemotes(t *testing.T) {
	pane := NewPane("test", []string{"a"})
	pane.StartSearch()
	if pane.BackspaceFilter() {
		t.Fatalf("backspace on empty filter should report false")
	}
	if pane.Searching() {
		t.Fatalf("empty backspace should demote the pane to browsing")
	}
}

func TestPaneBackspaceAtFilterStartKeepsEntryMode(t *testing.T) {
	pane := NewPane("test", []string{"kube-system"})
	pane.StartSearch()
	pane.AppendFilter("kube")
	pane.MoveFilterCursor(-4)
	if pane.BackspaceFilter() {
		t.Fatalf("backspace at the filter start should delete nothing")
	}
	if !pane.Searching() {
		t.Fatalf("a non-empty filter must keep the pane in entry mode")
	}
	if pane.Filter() != "kube" {
		t.Fatalf("filter text must be untouched, got %q", pane.Filter())
	}
}

func TestPaneDeleteFilterWord(t *testing.T) {
	pane := NewPane("test", nil)
	pane.StartSearch()
	pane.AppendFilter("kube system")
	if !pane.DeleteFilterWord() {
		t.Fatalf("word delete should report true")
	}
	if pane.Filter() != "kube " {
		t.Fatalf("after word delete: got %q", pane.Filter())
	}
}

func TestPaneStopSearchKeepsFilterApplied(t *testing.T) {
	pane := NewPane("test", []string{"alpha", "beta"})
	pane.StartSearch()
	pane.AppendFilter("alp")
	pane.StopSearch()
	if pane.Searching() {
		t.Fatalf("confirming the filter should leave entry mode")
	}
	if pane.Filter() != "alp" || pane.FilteredLen() != 1 {
		t.Fatalf("the filter text must stay applied after confirmation")
	}
}
