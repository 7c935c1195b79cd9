// Package selection holds the selection range of a text field and the rules
// for moving its active end.
package selection

import "github.com/xonecas/textfield/internal/layout"

// Range is a byte range with Start <= End.
type Range struct {
	Start, End int
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool { return r.Start == r.End }

// Len returns the number of selected bytes.
func (r Range) Len() int { return r.End - r.Start }

// Model is a selection plus the direction it was made in. When Reversed is
// set, Start is the moving end (the head) and End is fixed (the anchor).
type Model struct {
	Range     Range
	Reversed  bool
	Selecting bool // pointer held down
}

// Anchor returns the fixed end of the selection.
func (m *Model) Anchor() int {
	if m.Reversed {
		return m.Range.End
	}
	return m.Range.Start
}

// Head returns the moving end of the selection, where the cursor is drawn.
func (m *Model) Head() int {
	if m.Reversed {
		return m.Range.Start
	}
	return m.Range.End
}

// MoveTo collapses the selection to offset.
func (m *Model) MoveTo(offset int) {
	m.Range = Range{Start: offset, End: offset}
	m.Reversed = false
}

// SelectTo moves the head to offset, keeping the anchor. If the head crosses
// the anchor the direction flips and the bounds swap so Start <= End holds.
func (m *Model) SelectTo(offset int) {
	if m.Reversed {
		m.Range.Start = offset
	} else {
		m.Range.End = offset
	}
	if m.Range.End < m.Range.Start {
		m.Reversed = !m.Reversed
		m.Range.Start, m.Range.End = m.Range.End, m.Range.Start
	}
}

// Set replaces the range outright, forward direction.
func (m *Model) Set(start, end int) {
	if end < start {
		start, end = end, start
	}
	m.Range = Range{Start: start, End: end}
	m.Reversed = false
}

// Reset clears the selection to the start of the buffer.
func (m *Model) Reset() {
	m.Range = Range{}
	m.Reversed = false
}

// Clamp pulls both ends into [0, n], keeping the direction.
func (m *Model) Clamp(n int) {
	m.Range.Start = max(0, min(m.Range.Start, n))
	m.Range.End = max(0, min(m.Range.End, n))
}

// ShouldShowTrailingWhitespace reports whether the highlight on a line
// ending at lineEnd extends one cell past the text to show the selected
// newline.
func ShouldShowTrailingWhitespace(r Range, lineEnd int) bool {
	return r.End > lineEnd
}

// XBounds returns the highlighted x span of r on one row whose text covers
// [lineStart, lineEnd). trailing is the width added when the selection
// continues past the row. ok is false when the row has no visible highlight.
func XBounds(line layout.ShapedLine, r Range, lineStart, lineEnd int, trailing float64) (startX, endX float64, ok bool) {
	if r.Empty() || r.Start > lineEnd || r.End <= lineStart {
		return 0, 0, false
	}
	n := lineEnd - lineStart
	localStart := min(max(r.Start-lineStart, 0), n)
	localEnd := min(max(r.End-lineStart, 0), n)

	startX = line.XForIndex(localStart)
	endX = line.XForIndex(localEnd)
	if ShouldShowTrailingWhitespace(r, lineEnd) {
		endX += trailing
	}
	if startX == endX {
		return 0, 0, false
	}
	return startX, endX, true
}
