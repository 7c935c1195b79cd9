// Package hittest maps pointer positions to byte offsets in a text buffer
// using the layout snapshot from the last layout pass. Every lookup is total:
// whatever the position or the state of the cache, the result lies in
// [0, len(text)].
package hittest

import (
	"github.com/xonecas/textfield/internal/layout"
	"github.com/xonecas/textfield/internal/textnav"
)

// IndexForMousePosition resolves p against the single shaped line of a
// one-line field. hscroll is the horizontal scroll offset of the field.
func IndexForMousePosition(text string, cache *layout.Cache, hscroll float64, p layout.Point) int {
	if text == "" || cache == nil || cache.Bounds == nil || cache.Line == nil {
		return 0
	}
	b := *cache.Bounds
	switch {
	case p.Y < b.Top():
		return 0
	case p.Y > b.Bottom():
		return len(text)
	case p.X < b.Left():
		return 0
	case p.X > b.Right():
		return len(text)
	}
	return clamp(cache.Line.ClosestIndexForX(p.X-b.Left()+hscroll), len(text))
}

// Params is the multi-line view of the field needed to resolve a position.
type Params struct {
	Text    string
	Wrapped bool
	// HScroll applies to unwrapped layouts only; wrapped rows never scroll
	// horizontally.
	HScroll float64
	Cache   *layout.Cache
}

// IndexForMultilinePosition resolves p in a multi-line field. It tries, in
// order: a visible row containing p; the first or last visible row when p is
// above or below them; the row whose vertical span holds p when p fell in a
// horizontal gap; and finally an estimate of floor(y/lineHeight) against the
// field bounds, for when no rows have been laid out yet.
func IndexForMultilinePosition(p layout.Point, lineHeight float64, params Params) int {
	return clamp(indexForMultiline(p, lineHeight, params), len(params.Text))
}

func indexForMultiline(p layout.Point, lineHeight float64, params Params) int {
	var (
		visible []layout.VisibleLineInfo
		visual  []layout.VisualLineInfo
		bounds  *layout.Rect
	)
	if c := params.Cache; c != nil {
		visible, visual, bounds = c.Visible, c.Visual, c.Bounds
	}
	r := rows{text: params.Text, wrapped: params.Wrapped, visual: visual}

	if len(visible) > 0 {
		localX := func(info layout.VisibleLineInfo) float64 {
			if params.Wrapped {
				return p.X - info.Bounds.Left()
			}
			return p.X - info.Bounds.Left() + params.HScroll
		}

		for _, info := range visible {
			if info.Bounds.Contains(p) {
				return r.start(info.LineIndex) + info.Line.ClosestIndexForX(localX(info))
			}
		}

		first := visible[0]
		if p.Y < first.Bounds.Top() {
			if p.X < first.Bounds.Left() {
				return r.start(first.LineIndex)
			}
			return r.start(first.LineIndex) + first.Line.ClosestIndexForX(localX(first))
		}

		last := visible[len(visible)-1]
		if p.Y >= last.Bounds.Bottom() {
			if p.X > last.Bounds.Right() {
				return r.end(last.LineIndex)
			}
			return r.start(last.LineIndex) + last.Line.ClosestIndexForX(localX(last))
		}

		for _, info := range visible {
			if p.Y < info.Bounds.Top() || p.Y >= info.Bounds.Bottom() {
				continue
			}
			if p.X < info.Bounds.Left() {
				return r.start(info.LineIndex)
			}
			if p.X > info.Bounds.Right() {
				return r.end(info.LineIndex)
			}
		}
	}

	if bounds == nil {
		return 0
	}
	row := 0
	if lineHeight > 0 {
		row = layout.Floor((p.Y - bounds.Top()) / lineHeight)
	}
	if params.Wrapped && len(visual) > 0 {
		return visual[min(row, len(visual)-1)].StartOffset
	}
	lc := textnav.LineCount(params.Text)
	return textnav.LineStartOffset(params.Text, min(row, lc-1))
}

// rows translates a row index of the layout into buffer offsets. Wrapped
// layouts index visual rows, unwrapped layouts index logical lines.
type rows struct {
	text    string
	wrapped bool
	visual  []layout.VisualLineInfo
}

func (r rows) start(i int) int {
	if r.wrapped && i >= 0 && i < len(r.visual) {
		return r.visual[i].StartOffset
	}
	return textnav.LineStartOffset(r.text, i)
}

func (r rows) end(i int) int {
	if r.wrapped && i >= 0 && i < len(r.visual) {
		return r.visual[i].EndOffset
	}
	return textnav.LineEndOffset(r.text, i)
}

func clamp(offset, n int) int {
	return max(0, min(offset, n))
}
