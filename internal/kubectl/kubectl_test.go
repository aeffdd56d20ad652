package kubectl

import (
	"reflect"
	"testing"
)

func TestSplitLinesDropsBlanksAndTrailingSpace(t *testing.T) {
	got := splitLines("default  \nkube-system\r\n\n  \ndev\n")
	want := []string{"default", "kube-system", "dev"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitLines: got %v, want %v", got, want)
	}
}

func TestFirstColumns(t *testing.T) {
	lines := []string{
		"web-1   1/1   Running   0   2d",
		"web-2   0/1   Pending   0   5m",
	}
	got := firstColumns(lines)
	if !reflect.DeepEqual(got, []string{"web-1", "web-2"}) {
		t.Fatalf("firstColumns: got %v", got)
	}
}

func TestPromoteMovesCurrentToFront(t *testing.T) {
	got := promote([]string{"default", "kube-system", "dev"}, "dev")
	want := []string{"dev", "default", "kube-system"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("promote: got %v, want %v", got, want)
	}
}

func TestPromoteUnknownOrEmptyNameIsNoop(t *testing.T) {
	list := []string{"a", "b"}
	if got := promote(list, "missing"); !reflect.DeepEqual(got, list) {
		t.Fatalf("promote missing: got %v", got)
	}
	if got := promote(list, ""); !reflect.DeepEqual(got, list) {
		t.Fatalf("promote empty: got %v", got)
	}
}

func TestMergePreferredPinsThenSorts(t *testing.T) {
	preferred := []string{"all", "pods", "services"}
	discovered := []string{"services", "endpoints", "pods", "configmaps"}
	got := MergePreferred(preferred, discovered)
	want := []string{"all", "pods", "services", "configmaps", "endpoints"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge: got %v, want %v", got, want)
	}
}

func TestMergePreferredKeepsWildcardWithoutDiscovery(t *testing.T) {
	got := MergePreferred([]string{"all", "pods"}, []string{"pods"})
	if got[0] != "all" {
		t.Fatalf("wildcard must survive even when discovery omits it: %v", got)
	}
}

func TestNewDefaultsBinary(t *testing.T) {
	if c := New("  "); c.bin != DefaultBin {
		t.Fatalf("blank binary should default, got %q", c.bin)
	}
	if c := New("/usr/local/bin/kubectl"); c.bin != "/usr/local/bin/kubectl" {
		t.Fatalf("explicit binary overridden: %q", c.bin)
	}
}
