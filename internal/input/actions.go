package input

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/textfield/internal/textnav"
)

// ---------------------------------------------------------------------------
// Cursor movement
// ---------------------------------------------------------------------------

// Left moves one character left, or to the start of the selection.
func (s *State) Left() tea.Cmd {
	if s.sel.Range.Empty() {
		return s.MoveTo(textnav.PreviousBoundary(s.value, s.CursorOffset()))
	}
	return s.MoveTo(s.sel.Range.Start)
}

// Right moves one character right, or to the end of the selection.
func (s *State) Right() tea.Cmd {
	if s.sel.Range.Empty() {
		return s.MoveTo(textnav.NextBoundary(s.value, s.sel.Range.End))
	}
	return s.MoveTo(s.sel.Range.End)
}

// SelectLeft extends the selection one character left.
func (s *State) SelectLeft() tea.Cmd {
	return s.SelectTo(textnav.PreviousBoundary(s.value, s.CursorOffset()))
}

// SelectRight extends the selection one character right.
func (s *State) SelectRight() tea.Cmd {
	return s.SelectTo(textnav.NextBoundary(s.value, s.CursorOffset()))
}

// Up moves to the same column on the previous line, or to the start of the
// selection.
func (s *State) Up() tea.Cmd {
	if !s.sel.Range.Empty() {
		return s.MoveTo(s.sel.Range.Start)
	}
	if o, ok := s.verticalTarget(-1); ok {
		return s.MoveTo(o)
	}
	return nil
}

// Down moves to the same column on the next line, or to the end of the
// selection.
func (s *State) Down() tea.Cmd {
	if !s.sel.Range.Empty() {
		return s.MoveTo(s.sel.Range.End)
	}
	if o, ok := s.verticalTarget(1); ok {
		return s.MoveTo(o)
	}
	return nil
}

// SelectUp extends the selection to the previous line.
func (s *State) SelectUp() tea.Cmd {
	if o, ok := s.verticalTarget(-1); ok {
		return s.SelectTo(o)
	}
	return nil
}

// SelectDown extends the selection to the next line.
func (s *State) SelectDown() tea.Cmd {
	if o, ok := s.verticalTarget(1); ok {
		return s.SelectTo(o)
	}
	return nil
}

// verticalTarget is the offset at the cursor's column on the line dir lines
// away. Columns past the end of the target line snap to its end; columns
// inside a grapheme cluster snap to the cluster's start.
func (s *State) verticalTarget(dir int) (int, bool) {
	t := s.Text()
	line, col := t.OffsetToLineCol(s.CursorOffset())
	target := line + dir
	if target < 0 || target >= t.LineCount() {
		return 0, false
	}
	return textnav.ClusterStart(s.value, t.LineColToOffset(target, col)), true
}

// WordLeft moves to the start of the previous word, or to the start of the
// selection.
func (s *State) WordLeft() tea.Cmd {
	if !s.sel.Range.Empty() {
		return s.MoveTo(s.sel.Range.Start)
	}
	return s.MoveTo(s.wordLeftOffset())
}

// WordRight moves to the end of the next word, or to the end of the
// selection.
func (s *State) WordRight() tea.Cmd {
	if !s.sel.Range.Empty() {
		return s.MoveTo(s.sel.Range.End)
	}
	return s.MoveTo(s.wordRightOffset())
}

// SelectWordLeft extends the selection to the start of the previous word.
func (s *State) SelectWordLeft() tea.Cmd { return s.SelectTo(s.wordLeftOffset()) }

// SelectWordRight extends the selection to the end of the next word.
func (s *State) SelectWordRight() tea.Cmd { return s.SelectTo(s.wordRightOffset()) }

// wordLeftOffset skips non-word characters left of the cursor, then the word
// before them. A newline ends the scan.
func (s *State) wordLeftOffset() int {
	t := s.Text()
	o := s.CursorOffset()
	for o > 0 {
		p := t.PreviousBoundary(o)
		if isLineBreak(s.value[p]) {
			return o
		}
		r, _ := utf8.DecodeRuneInString(s.value[p:])
		if textnav.IsWordChar(r) {
			break
		}
		o = p
	}
	return t.WordStart(o)
}

// wordRightOffset mirrors wordLeftOffset.
func (s *State) wordRightOffset() int {
	t := s.Text()
	o := s.CursorOffset()
	for o < t.Len() {
		if isLineBreak(s.value[o]) {
			return o
		}
		r, _ := utf8.DecodeRuneInString(s.value[o:])
		if textnav.IsWordChar(r) {
			break
		}
		o = t.NextBoundary(o)
	}
	if o >= t.Len() {
		return t.Len()
	}
	return t.WordEnd(o)
}

func isLineBreak(b byte) bool { return b == '\n' || b == '\r' }

// Home moves to the start of the buffer.
func (s *State) Home() tea.Cmd { return s.MoveTo(0) }

// End moves to the end of the buffer.
func (s *State) End() tea.Cmd { return s.MoveTo(len(s.value)) }

// LineHome moves to the start of the cursor's line.
func (s *State) LineHome() tea.Cmd {
	return s.MoveTo(textnav.LineRangeAt(s.value, s.CursorOffset()).Start)
}

// LineEnd moves to the end of the cursor's line.
func (s *State) LineEnd() tea.Cmd {
	return s.MoveTo(textnav.LineRangeAt(s.value, s.CursorOffset()).End)
}

// SelectToLineStart extends the selection to the start of the cursor's line.
func (s *State) SelectToLineStart() tea.Cmd {
	return s.SelectTo(textnav.LineRangeAt(s.value, s.CursorOffset()).Start)
}

// SelectToLineEnd extends the selection to the end of the cursor's line.
func (s *State) SelectToLineEnd() tea.Cmd {
	return s.SelectTo(textnav.LineRangeAt(s.value, s.CursorOffset()).End)
}

// SelectToStart extends the selection to the start of the buffer.
func (s *State) SelectToStart() tea.Cmd { return s.SelectTo(0) }

// SelectToEnd extends the selection to the end of the buffer.
func (s *State) SelectToEnd() tea.Cmd { return s.SelectTo(len(s.value)) }

// ---------------------------------------------------------------------------
// Editing
// ---------------------------------------------------------------------------

// Backspace deletes the selection, or the character before the cursor.
func (s *State) Backspace() tea.Cmd {
	if s.sel.Range.Empty() {
		s.sel.SelectTo(textnav.PreviousBoundary(s.value, s.CursorOffset()))
	}
	return s.InsertText("")
}

// Delete deletes the selection, or the character after the cursor.
func (s *State) Delete() tea.Cmd {
	if s.sel.Range.Empty() {
		s.sel.SelectTo(textnav.NextBoundary(s.value, s.CursorOffset()))
	}
	return s.InsertText("")
}

// DeleteWordLeft deletes the selection, or back to the start of the
// previous word.
func (s *State) DeleteWordLeft() tea.Cmd {
	return s.deleteTo(s.wordLeftOffset())
}

// DeleteWordRight deletes the selection, or up to the end of the next word.
func (s *State) DeleteWordRight() tea.Cmd {
	return s.deleteTo(s.wordRightOffset())
}

// DeleteToLineStart deletes the selection, or back to the start of the
// cursor's line.
func (s *State) DeleteToLineStart() tea.Cmd {
	return s.deleteTo(textnav.LineRangeAt(s.value, s.CursorOffset()).Start)
}

// DeleteToLineEnd deletes the selection, or up to the end of the cursor's
// line.
func (s *State) DeleteToLineEnd() tea.Cmd {
	return s.deleteTo(textnav.LineRangeAt(s.value, s.CursorOffset()).End)
}

func (s *State) deleteTo(offset int) tea.Cmd {
	if s.sel.Range.Empty() {
		if offset == s.CursorOffset() {
			return nil
		}
		s.sel.SelectTo(offset)
	}
	return s.InsertText("")
}

// InsertNewline breaks the line at the cursor. Single-line fields ignore
// it.
func (s *State) InsertNewline() tea.Cmd {
	if !s.multiline {
		return nil
	}
	return s.InsertText("\n")
}

// SubmitMsg is sent when enter submits a field. ID is the field's BlinkID.
type SubmitMsg struct {
	ID    string
	Value string
}

// Enter handles the primary enter key: it submits fields configured with
// Submit, leaves enter to the host under SecondaryNewline, and breaks the
// line otherwise.
func (s *State) Enter() tea.Cmd {
	switch {
	case s.submit:
		return s.Submit()
	case s.secondaryNewline:
		return nil
	default:
		return s.InsertNewline()
	}
}

// Submit emits a SubmitMsg carrying the buffer. It does nothing unless the
// field was created with Submit, or while submission is disabled.
func (s *State) Submit() tea.Cmd {
	if !s.submit || s.submitDisabled || s.disabled {
		return nil
	}
	msg := SubmitMsg{ID: s.BlinkID(), Value: s.value}
	return func() tea.Msg { return msg }
}

// Copy puts the selection on the terminal clipboard.
func (s *State) Copy() tea.Cmd {
	if !s.HasSelection() {
		return nil
	}
	return tea.SetClipboard(s.SelectedText())
}

// Cut copies the selection and deletes it.
func (s *State) Cut() tea.Cmd {
	if !s.HasSelection() {
		return nil
	}
	text := s.SelectedText()
	return tea.Batch(tea.SetClipboard(text), s.InsertText(""))
}

// Paste replaces the selection with text. Single-line fields turn newlines
// into spaces.
func (s *State) Paste(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return s.InsertText(text)
}
