package textinput

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/textfield/internal/blink"
	"github.com/xonecas/textfield/internal/input"
	"github.com/xonecas/textfield/internal/layout"
)

// wheelStep is the number of rows one wheel notch scrolls.
const wheelStep = 1

// Update handles key, paste, clipboard, mouse and blink messages, then runs
// the layout pass so the cache matches the new state before View.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	s := m.state

	if s.Disabled() {
		switch msg.(type) {
		case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case blink.Msg:
		if msg.ID != s.BlinkID() {
			return m, nil
		}
		return m, s.UpdateBlink(msg)

	case tea.KeyPressMsg:
		if !s.Focused() {
			return m, nil
		}
		cmd = m.handleKey(msg)

	case tea.PasteMsg:
		if s.Focused() {
			cmd = s.Paste(msg.Content)
		}

	case tea.ClipboardMsg:
		if s.Focused() {
			cmd = s.Paste(msg.Content)
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		cmd = s.OnMouseDown(input.MouseEvent{
			Position: cellPoint(mouse),
			Shift:    mouse.Mod.Contains(tea.ModShift),
			Time:     m.now(),
		})

	case tea.MouseMotionMsg:
		cmd = s.OnMouseMove(input.MouseEvent{Position: cellPoint(msg.Mouse())})

	case tea.MouseReleaseMsg:
		s.OnMouseUp(input.MouseEvent{Position: cellPoint(msg.Mouse())})

	case tea.MouseWheelMsg:
		if !s.Multiline() {
			return m, nil
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			s.Scroll.ScrollBy(-wheelStep)
		case tea.MouseWheelDown:
			s.Scroll.ScrollBy(wheelStep)
		}

	default:
		return m, nil
	}

	m.layout()
	return m, cmd
}

// cellPoint maps a mouse cell to a point in the field. Rows are one unit
// tall, so the pointer sits on the row's vertical centre.
func cellPoint(mouse tea.Mouse) layout.Point {
	return layout.Pt(float64(mouse.X), float64(mouse.Y)+0.5)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	s := m.state
	km := m.KeyMap

	switch {
	case key.Matches(msg, km.SelectWordBackward):
		return s.SelectWordLeft()
	case key.Matches(msg, km.SelectWordForward):
		return s.SelectWordRight()
	case key.Matches(msg, km.WordBackward):
		return s.WordLeft()
	case key.Matches(msg, km.WordForward):
		return s.WordRight()
	case key.Matches(msg, km.SelectBackward):
		return s.SelectLeft()
	case key.Matches(msg, km.SelectForward):
		return s.SelectRight()
	case key.Matches(msg, km.CharacterBackward):
		return s.Left()
	case key.Matches(msg, km.CharacterForward):
		return s.Right()
	case key.Matches(msg, km.SelectLinePrevious):
		return s.SelectUp()
	case key.Matches(msg, km.SelectLineNext):
		return s.SelectDown()
	case key.Matches(msg, km.LinePrevious):
		return s.Up()
	case key.Matches(msg, km.LineNext):
		return s.Down()
	case key.Matches(msg, km.SelectInputBegin):
		return s.SelectToStart()
	case key.Matches(msg, km.SelectInputEnd):
		return s.SelectToEnd()
	case key.Matches(msg, km.SelectLineStart):
		return s.SelectToLineStart()
	case key.Matches(msg, km.SelectLineEnd):
		return s.SelectToLineEnd()
	case key.Matches(msg, km.InputBegin):
		return s.Home()
	case key.Matches(msg, km.InputEnd):
		return s.End()
	case key.Matches(msg, km.LineStart):
		return s.LineHome()
	case key.Matches(msg, km.LineEnd):
		return s.LineEnd()
	case key.Matches(msg, km.SelectAll):
		return s.SelectAll()
	case key.Matches(msg, km.DeleteCharacterBackward):
		return s.Backspace()
	case key.Matches(msg, km.DeleteCharacterForward):
		return s.Delete()
	case key.Matches(msg, km.DeleteWordBackward):
		return s.DeleteWordLeft()
	case key.Matches(msg, km.DeleteWordForward):
		return s.DeleteWordRight()
	case key.Matches(msg, km.DeleteBeforeCursor):
		return s.DeleteToLineStart()
	case key.Matches(msg, km.DeleteAfterCursor):
		return s.DeleteToLineEnd()
	case key.Matches(msg, km.Submit):
		return s.Enter()
	case key.Matches(msg, km.InsertNewline):
		return s.InsertNewline()
	case key.Matches(msg, km.Copy):
		return s.Copy()
	case key.Matches(msg, km.Cut):
		return s.Cut()
	case key.Matches(msg, km.Paste):
		return tea.ReadClipboard
	}

	if msg.Text != "" {
		return s.InsertText(msg.Text)
	}
	return nil
}
