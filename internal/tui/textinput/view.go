package textinput

import (
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/xonecas/textfield/internal/highlight"
	"github.com/xonecas/textfield/internal/selection"
)

// trailingSelection is the width painted past the end of a line whose
// selection continues onto the next one.
const trailingSelection = 1

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// cellStyle is the comparable look of one cell; runs of equal cellStyles are
// rendered with one lipgloss call.
type cellStyle struct {
	fg        string
	bold      bool
	italic    bool
	underline bool
	selected  bool
	cursor    bool
}

// cell is one terminal cell. Wide clusters put their text in the first cell
// and mark the cells they cover with cont.
type cell struct {
	text  string
	style cellStyle
	cont  bool
}

func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	s := m.state
	if s.Value() == "" && m.Placeholder != "" {
		return m.placeholderView()
	}

	var spans []highlight.Span
	if m.Language != "" {
		spans = highlight.Spans(s.Value(), m.Language, m.Theme)
	}
	cursorItem := m.cursorItem()

	lines := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		cells := m.paintRow(r, r.item == cursorItem, spans)
		lines = append(lines, m.renderCells(cells))
	}
	return strings.Join(lines, "\n")
}

// paintRow lays out one row into width cells: text with syntax colours,
// then the selection, then the cursor.
func (m Model) paintRow(r row, hasCursor bool, spans []highlight.Span) []cell {
	s := m.state
	cells := make([]cell, m.width)
	for i := range cells {
		cells[i].text = " "
	}
	hscroll := 0
	if !s.Wrapped() {
		hscroll = int(s.HorizontalOffset)
	}

	selStart, selEnd, hasSel := selection.XBounds(r.line, s.SelectedRange(), r.start, r.end, trailingSelection)
	inSel := func(x float64) bool { return hasSel && x >= selStart && x < selEnd }

	text := r.line.Text()
	hint := 0
	r.line.Clusters(func(start, end int, x, width float64) {
		cw := int(width)
		if cw <= 0 {
			return
		}
		var cs cellStyle
		if sp, next, ok := highlight.At(spans, r.start+start, hint); ok {
			hint = next
			cs = cellStyle{fg: sp.Fg, bold: sp.Bold, italic: sp.Italic, underline: sp.Underline}
		}
		cs.selected = inSel(x)

		g := text[start:end]
		if g == "\t" {
			for i := 0; i < cw; i++ {
				put(cells, int(x)-hscroll+i, " ", 1, cs)
			}
			return
		}
		if tf := s.TransformText(); tf != nil {
			if r, _ := utf8.DecodeRuneInString(g); tf(r) != r {
				// Drawn one cell wide; the rest of the cluster's cells stay blank.
				put(cells, int(x)-hscroll, string(tf(r)), 1, cs)
				for i := 1; i < cw; i++ {
					put(cells, int(x)-hscroll+i, " ", 1, cs)
				}
				return
			}
		}
		put(cells, int(x)-hscroll, g, cw, cs)
	})

	if hasSel && selEnd > r.line.Width() {
		for x := int(max(selStart, r.line.Width())); x < int(selEnd); x++ {
			if c := x - hscroll; c >= 0 && c < len(cells) {
				cells[c].style.selected = true
			}
		}
	}

	if hasCursor && s.Focused() && s.CursorVisible() {
		c := int(r.line.XForIndex(s.CursorOffset()-r.start)) - hscroll
		if s.Wrapped() && c == len(cells) {
			// A row filled to the edge draws its end-of-row cursor on the last cell.
			c--
		}
		if c >= 0 && c < len(cells) {
			cells[c].style.cursor = true
		}
	}
	return cells
}

// put writes a cluster of width w at column c. Clusters cut by either edge
// are blanked so the row keeps its width.
func put(cells []cell, c int, text string, w int, cs cellStyle) {
	if c >= 0 && c+w <= len(cells) {
		cells[c] = cell{text: text, style: cs}
		for i := 1; i < w; i++ {
			cells[c+i] = cell{style: cs, cont: true}
		}
		return
	}
	for i := 0; i < w; i++ {
		if j := c + i; j >= 0 && j < len(cells) {
			cells[j] = cell{text: " ", style: cs}
		}
	}
}

// renderCells joins runs of equally styled cells and renders each run once.
func (m Model) renderCells(cells []cell) string {
	var b strings.Builder
	var run strings.Builder
	var cur cellStyle
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(m.style(cur).Render(run.String()))
			run.Reset()
		}
	}
	for i, c := range cells {
		if c.cont {
			continue
		}
		if i == 0 || c.style != cur {
			flush()
			cur = c.style
		}
		run.WriteString(c.text)
	}
	flush()
	return b.String()
}

func (m Model) style(cs cellStyle) lipgloss.Style {
	st := m.Styles.Text
	if cs.fg != "" {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bold {
		st = st.Bold(true)
	}
	if cs.italic {
		st = st.Italic(true)
	}
	if cs.underline {
		st = st.Underline(true)
	}
	if cs.selected {
		st = st.Background(m.Styles.Selection.GetBackground())
	}
	if cs.cursor {
		st = m.Styles.Cursor.Inherit(st)
	}
	return st
}

// ---------------------------------------------------------------------------
// Placeholder view (shown while the buffer is empty)
// ---------------------------------------------------------------------------

func (m Model) placeholderView() string {
	s := m.state
	ph := ansi.Truncate(m.Placeholder, m.width, "")
	var b strings.Builder
	rest := ph
	if s.Focused() && s.CursorVisible() && ph != "" {
		first, tail, _, _ := uniseg.FirstGraphemeClusterInString(ph, -1)
		b.WriteString(m.Styles.Cursor.Inherit(m.Styles.Placeholder).Render(first))
		rest = tail
	}
	b.WriteString(m.Styles.Placeholder.Render(rest))
	if pad := m.width - ansi.StringWidth(ph); pad > 0 {
		b.WriteString(m.Styles.Text.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}
