package state

import "errors"

// ErrEmpty is returned when a selection is requested from a list with no rows.
var ErrEmpty = errors.New("no rows to select")

// CircularList is a wrap-around cursor over an ordered row set. It is rebuilt
// whenever the underlying filtered set changes, never mutated in place.
type CircularList struct {
	elements []string
	index    int
}

// NewCircularList builds a list positioned on the first element.
func NewCircularList(elements []string) *CircularList {
	return &CircularList{elements: elements}
}

// Shift moves the cursor by delta positions, wrapping in both directions.
// Moving is pointless with zero or one rows, so those cases are no-ops.
func (c *CircularList) Shift(delta int) {
	n := len(c.elements)
	if n <= 1 {
		return
	}
	c.index = ((c.index+delta)%n + n) % n
}

// Current returns the element under the cursor, or ErrEmpty.
func (c *CircularList) Current() (string, error) {
	if len(c.elements) == 0 {
		return "", ErrEmpty
	}
	return c.elements[c.index], nil
}

// SetIndex positions the cursor, clamping into the valid range.
func (c *CircularList) SetIndex(i int) {
	if len(c.elements) == 0 {
		c.index = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.elements) {
		i = len(c.elements) - 1
	}
	c.index = i
}

// Index returns the cursor position. Undefined (0) when the list is empty.
func (c *CircularList) Index() int {
	return c.index
}

// Len returns the number of elements.
func (c *CircularList) Len() int {
	return len(c.elements)
}

// Elements returns the backing slice in order. Callers must not mutate it.
func (c *CircularList) Elements() []string {
	return c.elements
}
