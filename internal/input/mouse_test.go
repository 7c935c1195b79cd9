package input

import (
	"testing"
	"time"

	"github.com/xonecas/textfield/internal/layout"
	"github.com/xonecas/textfield/internal/selection"
)

func TestClickCounter(t *testing.T) {
	c := ClickCounter{Interval: 400 * time.Millisecond}
	t0 := time.Unix(100, 0)

	steps := []struct {
		name string
		x, y int
		at   time.Duration
		want int
	}{
		{"first", 3, 1, 0, 1},
		{"double", 3, 1, 100 * time.Millisecond, 2},
		{"triple", 3, 1, 300 * time.Millisecond, 3},
		{"fourth", 3, 1, 500 * time.Millisecond, 4},
		{"too slow", 3, 1, 1500 * time.Millisecond, 1},
		{"other cell", 4, 1, 1600 * time.Millisecond, 1},
		{"same cell again", 4, 1, 1700 * time.Millisecond, 2},
	}
	for _, st := range steps {
		if got := c.Press(st.x, st.y, t0.Add(st.at)); got != st.want {
			t.Fatalf("%s: Press = %d, want %d", st.name, got, st.want)
		}
	}
}

func TestClickCountsDispatch(t *testing.T) {
	const text = "hello world\nfoo"
	s := New(Options{Multiline: true})
	s.SetValue(text)
	relayout(s, 20)

	t0 := time.Unix(100, 0)
	p := layout.Pt(2.2, 0.5)

	s.OnMouseDown(MouseEvent{Position: p, Time: t0})
	s.OnMouseUp(MouseEvent{Position: p})
	if got := s.SelectedRange(); got != (selection.Range{Start: 2, End: 2}) {
		t.Fatalf("single click = %+v, want {2 2}", got)
	}

	s.OnMouseDown(MouseEvent{Position: p, Time: t0.Add(100 * time.Millisecond)})
	s.OnMouseUp(MouseEvent{Position: p})
	if got := s.SelectedRange(); got != (selection.Range{Start: 0, End: 5}) {
		t.Fatalf("double click = %+v, want {0 5}", got)
	}

	s.OnMouseDown(MouseEvent{Position: p, Time: t0.Add(200 * time.Millisecond)})
	s.OnMouseUp(MouseEvent{Position: p})
	if got := s.SelectedRange(); got != (selection.Range{Start: 0, End: len(text)}) {
		t.Fatalf("triple click = %+v, want {0 %d}", got, len(text))
	}
}

func TestTripleClickSelectsWholeBufferWithoutScrolling(t *testing.T) {
	text := numberedLines(20)
	s := New(Options{Multiline: true, MaxLines: 5})
	s.SetValue(text)
	relayout(s, 10)
	s.Scroll.ScrollBy(6)
	relayout(s, 10)

	// Click on the last visible row, far from either end of the buffer.
	s.OnMouseDown(MouseEvent{Position: layout.Pt(3, 4.5), ClickCount: 3})
	if got := s.SelectedRange(); got != (selection.Range{Start: 0, End: len(text)}) {
		t.Fatalf("triple click = %+v, want {0 %d}", got, len(text))
	}
	relayout(s, 10)
	if s.Scroll.Offset() != 6 {
		t.Errorf("triple click scrolled to %d, want 6", s.Scroll.Offset())
	}
}

func TestDoubleClickWordIdempotent(t *testing.T) {
	s := New(Options{})
	s.SetValue("foo bar_baz qux")
	for _, o := range []int{0, 2, 4, 9, 11, 15} {
		s.SelectWordAt(o)
		once := s.SelectedRange()
		s.SelectWordAt(o)
		if got := s.SelectedRange(); got != once {
			t.Errorf("SelectWordAt(%d) twice = %+v, once = %+v", o, got, once)
		}
		if s.SelectionReversed() {
			t.Errorf("SelectWordAt(%d) left selection reversed", o)
		}
	}
	s.SelectWordAt(6)
	if s.SelectedText() != "bar_baz" {
		t.Errorf("word at 6 = %q", s.SelectedText())
	}
}

func TestDoubleClickStopsAtNewline(t *testing.T) {
	s := New(Options{Multiline: true})
	s.SetValue("ab\ncd")
	s.SelectWordAt(1)
	if got := s.SelectedRange(); got != (selection.Range{Start: 0, End: 2}) {
		t.Errorf("word at 1 = %+v, want {0 2}", got)
	}
}

func TestShiftClickExtends(t *testing.T) {
	s := New(Options{})
	s.SetValue("hello world")
	relayout(s, 20)
	s.MoveTo(2)

	s.OnMouseDown(MouseEvent{Position: layout.Pt(8.2, 0.5), Shift: true, ClickCount: 1})
	if got := s.SelectedRange(); got != (selection.Range{Start: 2, End: 8}) {
		t.Errorf("shift click = %+v, want {2 8}", got)
	}
}

func TestDragAcrossAnchor(t *testing.T) {
	s := New(Options{})
	s.SetValue("hello world")
	relayout(s, 20)

	s.OnMouseDown(MouseEvent{Position: layout.Pt(5, 0.5), ClickCount: 1})
	if !s.Selecting() {
		t.Fatal("mouse down should start selecting")
	}
	s.OnMouseMove(MouseEvent{Position: layout.Pt(2, 0.5)})
	if got := s.SelectedRange(); got != (selection.Range{Start: 2, End: 5}) || !s.SelectionReversed() {
		t.Fatalf("drag left = %+v reversed=%v", got, s.SelectionReversed())
	}
	s.OnMouseMove(MouseEvent{Position: layout.Pt(8, 0.5)})
	if got := s.SelectedRange(); got != (selection.Range{Start: 5, End: 8}) || s.SelectionReversed() {
		t.Fatalf("drag back right = %+v reversed=%v", got, s.SelectionReversed())
	}

	s.OnMouseUp(MouseEvent{})
	if s.Selecting() {
		t.Fatal("mouse up should stop selecting")
	}
	s.OnMouseMove(MouseEvent{Position: layout.Pt(0, 0.5)})
	if got := s.SelectedRange(); got != (selection.Range{Start: 5, End: 8}) {
		t.Errorf("move after release changed selection to %+v", got)
	}
}

func TestDragPastEdgeScrollsOneLinePerEvent(t *testing.T) {
	s := New(Options{Multiline: true, MaxLines: 5})
	s.SetValue(numberedLines(20))
	relayout(s, 10)
	s.Scroll.ScrollBy(3)
	relayout(s, 10)

	s.OnMouseDown(MouseEvent{Position: layout.Pt(1, 0.5), ClickCount: 1})
	relayout(s, 10)
	if s.Scroll.Offset() != 3 {
		t.Fatalf("click scrolled to %d", s.Scroll.Offset())
	}

	for _, want := range []int{2, 1, 0, 0} {
		s.OnMouseMove(MouseEvent{Position: layout.Pt(1, -1)})
		relayout(s, 10)
		if s.Scroll.Offset() != want {
			t.Fatalf("drag above: offset %d, want %d", s.Scroll.Offset(), want)
		}
	}
	if s.SelectionReversed() != true {
		t.Error("dragging up should reverse the selection")
	}

	for _, want := range []int{1, 2, 3} {
		s.OnMouseMove(MouseEvent{Position: layout.Pt(1, 7)})
		relayout(s, 10)
		if s.Scroll.Offset() != want {
			t.Fatalf("drag below: offset %d, want %d", s.Scroll.Offset(), want)
		}
	}

	// Inside the field nothing scrolls.
	s.OnMouseMove(MouseEvent{Position: layout.Pt(1, 2.5)})
	relayout(s, 10)
	if s.Scroll.Offset() != 3 {
		t.Errorf("drag inside scrolled to %d", s.Scroll.Offset())
	}

	s.OnMouseUp(MouseEvent{})
	s.SelectToMultiline(layout.Pt(1, -1), 1)
	if s.Scroll.Offset() != 3 {
		t.Errorf("released pointer above field scrolled to %d", s.Scroll.Offset())
	}
}

func TestMultilineSelectionInvariant(t *testing.T) {
	s := New(Options{Multiline: true, Wrapped: true, MaxLines: 3})
	s.SetValue("the quick brown fox jumps over the lazy dog\nand more")
	relayout(s, 8)

	s.OnMouseDown(MouseEvent{Position: layout.Pt(4, 1.5), ClickCount: 1})
	for i := 0; i < 60; i++ {
		x := float64((i*7)%13) - 2
		y := float64((i*5)%11) - 4
		s.OnMouseMove(MouseEvent{Position: layout.Pt(x, y)})
		relayout(s, 8)
		r := s.SelectedRange()
		if r.Start > r.End || r.End > len(s.Value()) || r.Start < 0 {
			t.Fatalf("move %d: bad range %+v", i, r)
		}
	}
}

func TestWrappedHitResolvesThroughVisualLines(t *testing.T) {
	s := New(Options{Multiline: true, Wrapped: true})
	s.SetValue("hello world")
	relayout(s, 8)

	s.OnMouseDown(MouseEvent{Position: layout.Pt(2.2, 1.5), ClickCount: 1})
	if s.CursorOffset() != 8 {
		t.Errorf("click on second visual row = %d, want 8", s.CursorOffset())
	}
}

func TestEmptyFieldClicks(t *testing.T) {
	s := New(Options{Multiline: true})
	s.OnMouseDown(MouseEvent{Position: layout.Pt(5, 5), ClickCount: 1})
	if got := s.SelectedRange(); got != (selection.Range{}) {
		t.Errorf("click in empty field = %+v", got)
	}
	s.OnMouseDown(MouseEvent{Position: layout.Pt(5, 5), ClickCount: 3})
	if got := s.SelectedRange(); got != (selection.Range{}) {
		t.Errorf("triple click in empty field = %+v", got)
	}
}
