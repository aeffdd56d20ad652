package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"kls/internal/action"
	"kls/internal/ui/state"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI escapes
}

// columnWidths splits the terminal into the three pane columns: a fifth each
// for namespaces and kinds, the remainder for resources.
func (m *Model) columnWidths() (int, int, int) {
	if m.width <= 0 {
		return 0, 0, 0
	}
	w1 := m.width / 5
	w2 := m.width / 5
	return w1, w2, m.width - w1 - w2
}

// listHeight returns the rows available for pane items: everything except the
// title row, the per-pane search row and the optional footer.
func (m *Model) listHeight() int {
	reserved := 2
	if m.showFooter {
		reserved += 2
	}
	h := m.height - reserved
	if h < 1 {
		return 1
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.popup != nil {
		return m.viewPopup()
	}
	w1, w2, w3 := m.columnWidths()
	height := m.listHeight()
	columns := []string{
		m.renderPane(state.PaneNamespaces, w1, height),
		m.renderPane(state.PaneKinds, w2, height),
		m.renderPane(state.PaneResources, w3, height),
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if m.showFooter {
		out += "\n" + m.footer()
	}
	return out
}

func (m *Model) renderPane(index, width, height int) string {
	pane := m.selector.Pane(index)
	focused := m.selector.Focus() == index

	lines := make([]styledLine, 0, height+2)
	lines = append(lines, m.titleLine(pane, focused))

	if pane.FilteredLen() == 0 {
		placeholder := pane.Placeholder
		if placeholder == "" && pane.Filter() != "" {
			placeholder = fmt.Sprintf("No matches for %q", pane.Filter())
		}
		lines = append(lines, styledLine{text: placeholder, style: styles.Placeholder})
	} else {
		start := pane.ScrollOffset(height)
		for i, row := range pane.VisibleRows(height) {
			lines = append(lines, m.itemLine(row, start+i == pane.Cursor(), focused, width))
		}
	}
	for len(lines) < height+1 {
		lines = append(lines, styledLine{})
	}
	lines = lines[:height+1]

	lines = append(lines, styledLine{text: m.filterLine(index), raw: true})
	lines = applyWidth(lines, width)
	return renderLines(lines, width)
}

func (m *Model) titleLine(pane *state.Pane, focused bool) styledLine {
	style := styles.Title
	if focused {
		style = styles.FocusedTitle
	}
	title := pane.Title
	if pane.Filter() != "" {
		title = fmt.Sprintf("%s (%d/%d)", pane.Title, pane.FilteredLen(), len(pane.Rows()))
	}
	return styledLine{text: title, style: style}
}

func (m *Model) itemLine(label string, selected, focused bool, width int) styledLine {
	indicator := " "
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicator = "▌"
		indicatorStyle = styles.SelectedItemIndicator
		if focused {
			lineStyle = styles.SelectedItem
		}
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) footer() string {
	parts := make([]string, 0, 8)
	for _, spec := range action.All() {
		parts = append(parts, fmt.Sprintf("%s %s", spec.Key, spec.Name))
	}
	parts = append(parts, "ctrl+s context", "ctrl+r reload", "q quit")
	text := strings.Join(parts, "  ")
	if m.actionStatus != "" {
		text = m.actionStatus
	}
	if warn, errText := m.hasBackendIssue(); warn {
		text = errText
		if styles.Error != nil {
			return padLine(styles.Error.Render(truncateText(text, m.width)), m.width)
		}
	}
	text = truncateText(text, m.width)
	if styles.Footer != nil {
		text = styles.Footer.Render(text)
	}
	return padLine(text, m.width)
}

func (m *Model) viewPopup() string {
	popup := m.popup
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: "Switch context", style: styles.PopupTitle})
	lines = append(lines, styledLine{text: "> " + popup.filter, style: styles.Filter})
	switch {
	case popup.loading:
		lines = append(lines, styledLine{text: loadingPlaceholder, style: styles.Placeholder})
	case popup.err != "":
		lines = append(lines, styledLine{text: popup.err, style: styles.Error})
	default:
		visible := popup.visible()
		if len(visible) == 0 {
			lines = append(lines, styledLine{text: "No contexts matched.", style: styles.Placeholder})
		}
		for i, name := range visible {
			style := styles.PopupItem
			prefix := "  "
			if i == popup.cursor {
				style = styles.PopupSelectedItem
				prefix = "▌ "
			}
			lines = append(lines, styledLine{text: prefix + name, style: style})
		}
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines, m.width)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

// renderLines styles each line and pads every row to exactly width visible
// columns so JoinHorizontal keeps the columns flush.
func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = padLine(text, width)
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = padLine(text, width)
	}
	return strings.Join(out, "\n")
}

func padLine(text string, width int) string {
	if width <= 0 {
		return text
	}
	if w := lipgloss.Width(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
