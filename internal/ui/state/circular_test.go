package state

import (
	"errors"
	"testing"
)

func TestCircularShiftWrapsBothWays(t *testing.T) {
	list := NewCircularList([]string{"a", "b", "c", "d", "e"})

	list.Shift(1)
	if got, _ := list.Current(); got != "b" {
		t.Fatalf("after +1: got %q, want b", got)
	}
	list.Shift(-2)
	if got, _ := list.Current(); got != "e" {
		t.Fatalf("after -2 from b: got %q, want e", got)
	}
	list.Shift(7)
	if got, _ := list.Current(); got != "b" {
		t.Fatalf("after +7 from e: got %q, want b", got)
	}
	list.Shift(-11)
	if got, _ := list.Current(); got != "a" {
		t.Fatalf("after -11 from b: got %q, want a", got)
	}
}

func TestCircularFullCycleReturnsToStart(t *testing.T) {
	list := NewCircularList([]string{"a", "b", "c", "d"})
	for i := 0; i < list.Len(); i++ {
		list.Shift(1)
	}
	if list.Index() != 0 {
		t.Fatalf("n forward shifts should return to index 0, got %d", list.Index())
	}
	for i := 0; i < list.Len(); i++ {
		list.Shift(-1)
	}
	if list.Index() != 0 {
		t.Fatalf("n backward shifts should return to index 0, got %d", list.Index())
	}
}

func TestCircularCycleLengthMatchesGCD(t *testing.T) {
	// Shifting by 4 over 6 elements cycles with period 6/gcd(6,4) = 3.
	list := NewCircularList([]string{"a", "b", "c", "d", "e", "f"})
	list.Shift(4)
	list.Shift(4)
	if list.Index() == 0 {
		t.Fatalf("cursor should not be home before the cycle completes")
	}
	list.Shift(4)
	if list.Index() != 0 {
		t.Fatalf("three shifts of 4 over 6 rows should return home, got %d", list.Index())
	}
}

func TestCircularShiftNoopOnShortLists(t *testing.T) {
	for _, rows := range [][]string{nil, {"only"}} {
		list := NewCircularList(rows)
		list.Shift(1)
		list.Shift(-3)
		if list.Index() != 0 {
			t.Fatalf("shift on %d rows moved index to %d", len(rows), list.Index())
		}
	}
}

func TestCircularCurrentEmpty(t *testing.T) {
	list := NewCircularList(nil)
	if _, err := list.Current(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Current on empty list: got %v, want ErrEmpty", err)
	}
}

func TestCircularSetIndexClamps(t *testing.T) {
	list := NewCircularList([]string{"a", "b", "c"})
	list.SetIndex(99)
	if list.Index() != 2 {
		t.Fatalf("SetIndex(99): got %d, want 2", list.Index())
	}
	list.SetIndex(-5)
	if list.Index() != 0 {
		t.Fatalf("SetIndex(-5): got %d, want 0", list.Index())
	}
}
