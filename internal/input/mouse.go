package input

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/hittest"
	"github.com/xonecas/textfield/internal/layout"
)

// MouseEvent is a pointer event in the field's coordinate space.
type MouseEvent struct {
	Position layout.Point
	Shift    bool
	// ClickCount is 1 for a single press, 2 for a double press and so on.
	// OnMouseDown fills it from the field's ClickCounter when zero.
	ClickCount int
	// Time is when the press happened; used for click counting.
	Time time.Time
}

// ClickCounter turns successive presses into click counts. Presses on the
// same cell within Interval of each other count up; anything else starts
// over at 1.
type ClickCounter struct {
	Interval time.Duration

	last  time.Time
	x, y  int
	count int
}

// Press records a press at cell (x, y) and returns its click count.
func (c *ClickCounter) Press(x, y int, at time.Time) int {
	if c.count > 0 && x == c.x && y == c.y && at.Sub(c.last) <= c.Interval {
		c.count++
	} else {
		c.count = 1
	}
	c.last, c.x, c.y = at, x, y
	return c.count
}

// IndexForMousePosition maps p to an offset in a single-line field.
func (s *State) IndexForMousePosition(p layout.Point) int {
	return hittest.IndexForMousePosition(s.value, &s.Cache, s.HorizontalOffset, p)
}

// IndexForMultilinePosition maps p to an offset in a multi-line field.
func (s *State) IndexForMultilinePosition(p layout.Point, lineHeight float64) int {
	if s.value == "" {
		return 0
	}
	return hittest.IndexForMultilinePosition(p, lineHeight, hittest.Params{
		Text:    s.value,
		Wrapped: s.wrapped,
		HScroll: s.HorizontalOffset,
		Cache:   &s.Cache,
	})
}

func (s *State) positionToIndex(p layout.Point) int {
	if s.multiline && s.LineHeight > 0 {
		return s.IndexForMultilinePosition(p, s.LineHeight)
	}
	return s.IndexForMousePosition(p)
}

// OnMouseDown starts a selection gesture. One click places the cursor, or
// extends the selection when shift is held; two select a word; three or
// more select the whole buffer and leave the scroll position alone.
func (s *State) OnMouseDown(ev MouseEvent) tea.Cmd {
	s.sel.Selecting = true
	clicks := ev.ClickCount
	if clicks <= 0 {
		clicks = s.clicks.Press(layout.Floor(ev.Position.X), layout.Floor(ev.Position.Y), ev.Time)
	}
	index := s.positionToIndex(ev.Position)
	log.Debug().Int("clicks", clicks).Int("index", index).Bool("shift", ev.Shift).Msg("input: mouse down")

	switch {
	case clicks >= 3:
		return s.SelectAll()
	case clicks == 2:
		return s.SelectWordAt(index)
	case ev.Shift:
		return s.SelectTo(index)
	default:
		return s.MoveTo(index)
	}
}

// OnMouseMove extends the selection while a drag is in progress.
func (s *State) OnMouseMove(ev MouseEvent) tea.Cmd {
	if !s.sel.Selecting {
		return nil
	}
	if s.multiline && s.LineHeight > 0 {
		return s.SelectToMultiline(ev.Position, s.LineHeight)
	}
	return s.SelectTo(s.IndexForMousePosition(ev.Position))
}

// OnMouseUp ends the drag.
func (s *State) OnMouseUp(MouseEvent) {
	s.sel.Selecting = false
}

// SelectToMultiline extends the selection to p. While dragging, a pointer
// above or below the field scrolls one line per event so the selection can
// keep growing past the edge.
func (s *State) SelectToMultiline(p layout.Point, lineHeight float64) tea.Cmd {
	offset := s.IndexForMultilinePosition(p, lineHeight)
	cmd := s.SelectToWithoutScroll(offset)
	s.followHorizontal = true

	if s.sel.Selecting && s.Cache.Bounds != nil {
		switch b := *s.Cache.Bounds; {
		case p.Y < b.Top():
			s.scrollUpOneLine()
		case p.Y > b.Bottom():
			s.scrollDownOneLine()
		}
	}
	return cmd
}
