// Package textinput is a bubbletea component that hosts an input.State in a
// terminal. It owns layout: after every update it wraps the buffer, sizes the
// scroll viewport and lays out the rows in view, then View paints them.
// Mouse messages are expected in component-local cells; the parent
// translates them.
package textinput

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/xonecas/textfield/internal/constants"
	"github.com/xonecas/textfield/internal/highlight"
	"github.com/xonecas/textfield/internal/input"
	"github.com/xonecas/textfield/internal/layout"
	"github.com/xonecas/textfield/internal/textnav"
)

// Styles are the lipgloss styles used to paint a field.
type Styles struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	// Selection supplies the background of selected cells.
	Selection lipgloss.Style
	// Cursor is layered over the cell under the cursor.
	Cursor lipgloss.Style
}

// DefaultStyles derives field styles from a Chroma theme.
func DefaultStyles(theme string) Styles {
	p := highlight.ThemePalette(theme)
	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Fg)).
		Background(lipgloss.Color(p.Bg))
	return Styles{
		Text:        text,
		Placeholder: text.Foreground(lipgloss.Color(p.Dim)),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color(p.SelBg)),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

// Model is a text field component.
type Model struct {
	// Placeholder is shown while the buffer is empty.
	Placeholder string
	// Language is the Chroma lexer used to colour the text; empty disables
	// highlighting.
	Language string
	// Theme is the Chroma style for highlighted text.
	Theme string

	KeyMap KeyMap
	Styles Styles

	state *input.State
	width int
	rows  []row

	now func() time.Time
}

// row is one painted line: the buffer range it shows and its shaped text.
type row struct {
	item       int
	start, end int
	line       *layout.CellLine
}

// New returns an unfocused field of width 0. Call SetSize before rendering.
func New(opts input.Options) Model {
	m := Model{
		Theme:  constants.SyntaxTheme,
		KeyMap: DefaultKeyMap,
		Styles: DefaultStyles(constants.SyntaxTheme),
		state:  input.New(opts),
		now:    time.Now,
	}
	m.layout()
	return m
}

// State exposes the editing state for callers that drive it directly.
func (m Model) State() *input.State { return m.state }

// SetSize sets the field width in cells. Height follows the content.
func (m *Model) SetSize(width int) {
	m.width = max(width, 0)
	m.layout()
}

// Width returns the field width in cells.
func (m Model) Width() int { return m.width }

// Height returns the number of rows the field occupies.
func (m Model) Height() int { return max(len(m.rows), 1) }

// Focus gives the field keyboard focus and starts the cursor blink.
func (m *Model) Focus() tea.Cmd { return m.state.Focus() }

// Blur removes focus and collapses the selection.
func (m *Model) Blur() {
	m.state.Blur()
	m.layout()
}

// Close tears down the field's blink; ticks still in flight are dropped.
func (m *Model) Close() { m.state.Close() }

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool { return m.state.Focused() }

// SetValue replaces the buffer and resets selection and scroll.
func (m *Model) SetValue(v string) {
	m.state.SetValue(v)
	m.layout()
}

// Value returns the buffer.
func (m Model) Value() string { return m.state.Value() }

// layout rebuilds the state's layout cache and the rows to paint.
func (m *Model) layout() {
	s := m.state
	text := s.Value()
	w := float64(m.width)

	s.Cache.Visual = nil
	if s.Wrapped() {
		s.Cache.Visual = layout.BuildVisualLines(text, w)
	}
	items := s.RowCount()
	n := 1
	if s.Multiline() {
		n = max(min(items, s.MaxLines()), 1)
	}
	s.Scroll.SetViewport(n, items)
	s.SettleScroll(w)

	b := layout.RectXYWH(0, 0, w, float64(n))
	s.Cache.Bounds = &b
	s.Cache.Visible = nil
	m.rows = nil

	if !s.Multiline() {
		line := layout.ShapeLine(text)
		s.Cache.Line = line
		m.rows = append(m.rows, row{start: 0, end: len(text), line: line})
		return
	}
	s.Cache.Line = nil
	var spans []textnav.Span
	if !s.Wrapped() {
		spans = textnav.LineOffsets(text)
	}
	for r := 0; r < n; r++ {
		i := s.Scroll.Offset() + r
		if i >= items {
			break
		}
		var start, end int
		if s.Wrapped() {
			v := s.Cache.Visual[i]
			start, end = v.StartOffset, v.EndOffset
		} else {
			start, end = spans[i].Start, spans[i].End
		}
		line := layout.ShapeLine(text[start:end])
		s.Cache.Visible = append(s.Cache.Visible, layout.VisibleLineInfo{
			LineIndex: i,
			Bounds:    layout.RectXYWH(0, float64(r), w, s.LineHeight),
			Line:      line,
		})
		m.rows = append(m.rows, row{item: i, start: start, end: end, line: line})
	}
}

// cursorItem is the scroll item holding the cursor.
func (m Model) cursorItem() int {
	s := m.state
	switch {
	case !s.Multiline():
		return 0
	case s.Wrapped():
		return layout.VisualLineAt(s.Cache.Visual, s.CursorOffset())
	default:
		line, _ := textnav.OffsetToLineCol(s.Value(), s.CursorOffset())
		return line
	}
}
