package input

import (
	"github.com/xonecas/textfield/internal/layout"
	"github.com/xonecas/textfield/internal/textnav"
)

// ScrollStrategy says where ScrollToItem places an item that is out of view.
type ScrollStrategy int

const (
	StrategyTop ScrollStrategy = iota
	StrategyBottom
	StrategyCenter
)

// ScrollHandle scrolls a list of equal-height rows by item index. Rows are
// logical lines in unwrapped fields and visual lines in wrapped ones.
type ScrollHandle struct {
	offset   int
	viewport int
	items    int
}

// Offset returns the index of the first row in view.
func (h *ScrollHandle) Offset() int { return h.offset }

// Viewport returns how many rows fit in view.
func (h *ScrollHandle) Viewport() int { return h.viewport }

// SetViewport records the view height and the number of rows, clamping the
// offset so the view never scrolls past the last row.
func (h *ScrollHandle) SetViewport(rows, items int) {
	h.viewport = max(rows, 0)
	h.items = max(items, 0)
	h.clamp()
}

// ScrollToItem brings row i into view. A row already fully in view does not
// move the list.
func (h *ScrollHandle) ScrollToItem(i int, strategy ScrollStrategy) {
	if h.viewport <= 0 {
		return
	}
	if i >= h.offset && i < h.offset+h.viewport {
		return
	}
	switch strategy {
	case StrategyTop:
		h.offset = i
	case StrategyBottom:
		h.offset = i - h.viewport + 1
	case StrategyCenter:
		h.offset = i - h.viewport/2
	}
	h.clamp()
}

// ScrollBy moves the view by delta rows.
func (h *ScrollHandle) ScrollBy(delta int) {
	h.offset += delta
	h.clamp()
}

func (h *ScrollHandle) clamp() {
	h.offset = max(0, min(h.offset, h.items-h.viewport))
}

// ---------------------------------------------------------------------------
// Cursor following
// ---------------------------------------------------------------------------

// followCursor scrolls to the cursor after a cursor move. Wrapped fields
// defer until the next layout pass, since their visual lines are stale
// after an edit.
func (s *State) followCursor() {
	s.followHorizontal = true
	if s.wrapped {
		s.scrollOnLayout = true
		return
	}
	s.EnsureCursorVisible()
}

// EnsureCursorVisible centres the row holding the cursor when it is out of
// view. Fields whose content fits in MaxLines never scroll.
func (s *State) EnsureCursorVisible() {
	if !s.multiline {
		return
	}
	cursor := s.CursorOffset()
	var target, total int
	if s.wrapped {
		target = layout.VisualLineAt(s.Cache.Visual, cursor)
		total = max(len(s.Cache.Visual), 1)
	} else {
		target, _ = textnav.OffsetToLineCol(s.value, cursor)
		total = textnav.LineCount(s.value)
	}
	if total <= s.maxLines {
		return
	}
	s.Scroll.SetViewport(s.Scroll.Viewport(), total)
	s.Scroll.ScrollToItem(target, StrategyCenter)
}

// SettleScroll applies scrolling deferred to the layout pass. The host calls
// it once the new visual lines are in the cache and the viewport is set.
// width is the text area width used to keep the cursor inside the
// horizontal view of unwrapped fields.
func (s *State) SettleScroll(width float64) {
	if s.scrollOnLayout {
		s.scrollOnLayout = false
		s.EnsureCursorVisible()
	}
	if !s.followHorizontal {
		return
	}
	s.followHorizontal = false
	if s.wrapped || width <= 0 {
		s.HorizontalOffset = 0
		return
	}
	x := s.cursorX()
	switch {
	case x < s.HorizontalOffset:
		s.HorizontalOffset = x
	case x > s.HorizontalOffset+width-1:
		s.HorizontalOffset = x - width + 1
	}
	s.HorizontalOffset = max(s.HorizontalOffset, 0)
}

// scrollUpOneLine scrolls so the row above the first visible one comes into
// view.
func (s *State) scrollUpOneLine() {
	if len(s.Cache.Visible) == 0 {
		return
	}
	first := s.Cache.Visible[0].LineIndex
	if first > 0 {
		s.Scroll.ScrollToItem(first-1, StrategyTop)
	}
}

// scrollDownOneLine scrolls so the row below the last visible one comes into
// view.
func (s *State) scrollDownOneLine() {
	if len(s.Cache.Visible) == 0 {
		return
	}
	last := s.Cache.Visible[len(s.Cache.Visible)-1].LineIndex
	if last+1 < s.RowCount() {
		s.Scroll.ScrollToItem(last+1, StrategyBottom)
	}
}

// RowCount is the number of scrollable rows: visual rows when wrapped,
// logical lines otherwise.
func (s *State) RowCount() int {
	if s.wrapped {
		return max(len(s.Cache.Visual), 1)
	}
	return textnav.LineCount(s.value)
}
