package state

import (
	"strings"
	"unicode"
)

// Pane owns one column of the selector: the full row set as last delivered by
// the inventory provider, a substring filter, and the circular view derived
// from the two. The scroll offset is always derived from the cursor and the
// viewport height, never stored.
type Pane struct {
	Title string

	rows []string
	view *CircularList

	filter       string
	filterCursor int
	searching    bool

	// Placeholder is rendered instead of rows when the filtered view is
	// empty. It is never selectable.
	Placeholder string
}

// NewPane builds a pane over an initial row set.
func NewPane(title string, rows []string) *Pane {
	p := &Pane{Title: title}
	p.SetRows(rows)
	return p
}

// SetRows replaces the full row set wholesale and rebuilds the filtered view
// with the cursor reset to the first match.
func (p *Pane) SetRows(rows []string) {
	p.rows = append([]string(nil), rows...)
	p.rebuild()
}

// Rows returns the unfiltered row set.
func (p *Pane) Rows() []string {
	return p.rows
}

func (p *Pane) rebuild() {
	if p.filter == "" {
		p.view = NewCircularList(p.rows)
		return
	}
	filtered := make([]string, 0, len(p.rows))
	for _, row := range p.rows {
		if strings.Contains(row, p.filter) {
			filtered = append(filtered, row)
		}
	}
	p.view = NewCircularList(filtered)
}

// SetFilter replaces the filter text, rebuilds the view and resets the cursor.
func (p *Pane) SetFilter(text string) {
	p.filter = text
	runes := []rune(text)
	if p.filterCursor > len(runes) {
		p.filterCursor = len(runes)
	}
	p.rebuild()
}

// Filter returns the current filter text.
func (p *Pane) Filter() string {
	return p.filter
}

// Searching reports whether the pane is in filter-entry mode. Confirming a
// filter leaves entry mode while the filter text stays applied, so action
// keys become live again.
func (p *Pane) Searching() bool {
	return p.searching
}

// StartSearch puts the pane into filter-entry mode.
func (p *Pane) StartSearch() {
	p.searching = true
	p.filterCursor = len([]rune(p.filter))
}

// StopSearch leaves filter-entry mode without touching the filter text.
func (p *Pane) StopSearch() {
	p.searching = false
}

// ClearFilter drops the filter text and leaves filter-entry mode.
func (p *Pane) ClearFilter() {
	p.searching = false
	p.filterCursor = 0
	if p.filter == "" {
		return
	}
	p.filter = ""
	p.rebuild()
}

// AppendFilter inserts text at the filter cursor.
func (p *Pane) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(p.filter)
	pos := p.FilterCursor()
	updated := make([]rune, 0, len(runes)+len(text))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, []rune(text)...)
	updated = append(updated, runes[pos:]...)
	p.filterCursor = pos + len([]rune(text))
	p.SetFilter(string(updated))
	return true
}

// BackspaceFilter removes the rune before the filter cursor. On an already
// empty filter it demotes the pane back to browsing; at the start of a
// non-empty filter it is a no-op. Either way it reports false when nothing
// was deleted.
func (p *Pane) BackspaceFilter() bool {
	runes := []rune(p.filter)
	if len(runes) == 0 {
		p.searching = false
		return false
	}
	pos := p.FilterCursor()
	if pos == 0 {
		return false
	}
	p.filterCursor = pos - 1
	p.SetFilter(string(append(runes[:pos-1], runes[pos:]...)))
	return true
}

// DeleteFilterWord removes the word preceding the filter cursor.
func (p *Pane) DeleteFilterWord() bool {
	runes := []rune(p.filter)
	pos := p.FilterCursor()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	p.filterCursor = i
	p.SetFilter(string(append(runes[:i], runes[pos:]...)))
	return true
}

// FilterCursor returns the rune offset of the filter cursor.
func (p *Pane) FilterCursor() int {
	runes := []rune(p.filter)
	if p.filterCursor < 0 {
		return 0
	}
	if p.filterCursor > len(runes) {
		return len(runes)
	}
	return p.filterCursor
}

// MoveFilterCursor shifts the filter cursor by delta runes, clamped.
func (p *Pane) MoveFilterCursor(delta int) bool {
	pos := p.FilterCursor()
	next := pos + delta
	if next < 0 {
		next = 0
	}
	if max := len([]rune(p.filter)); next > max {
		next = max
	}
	if next == pos {
		return false
	}
	p.filterCursor = next
	return true
}

// MoveSelection shifts the cursor with wraparound. No-op with ≤ 1 rows.
func (p *Pane) MoveSelection(delta int) {
	p.view.Shift(delta)
}

// SelectRow positions the cursor on the given filtered-view index.
func (p *Pane) SelectRow(index int) {
	p.view.SetIndex(index)
}

// SelectLast positions the cursor on the final filtered row.
func (p *Pane) SelectLast() {
	p.view.SetIndex(p.view.Len() - 1)
}

// SelectedRow returns the row under the cursor, or the empty sentinel when
// the filtered view has no rows. The sentinel is inert: it never feeds
// dependent queries or action dispatch.
func (p *Pane) SelectedRow() string {
	row, err := p.view.Current()
	if err != nil {
		return ""
	}
	return row
}

// FilteredRows returns the rows matching the current filter, in query order.
func (p *Pane) FilteredRows() []string {
	return p.view.Elements()
}

// FilteredLen returns the size of the filtered view.
func (p *Pane) FilteredLen() int {
	return p.view.Len()
}

// Cursor returns the cursor index within the filtered view.
func (p *Pane) Cursor() int {
	return p.view.Index()
}

// ScrollOffset derives the first visible row index for the given viewport
// height: the window slides only once the cursor walks past the bottom.
func (p *Pane) ScrollOffset(height int) int {
	if height <= 0 {
		return 0
	}
	offset := p.view.Index() - height + 1
	if offset < 0 {
		return 0
	}
	return offset
}

// VisibleRows returns the window of filtered rows starting at the scroll
// offset, at most height long. Recomputed fresh on every call.
func (p *Pane) VisibleRows(height int) []string {
	if height <= 0 {
		return nil
	}
	rows := p.view.Elements()
	start := p.ScrollOffset(height)
	if start >= len(rows) {
		return nil
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
