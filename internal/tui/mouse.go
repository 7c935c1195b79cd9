package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling: a press focuses the field under it and captures the
// pointer until release, so drags that leave the field keep selecting.
// ---------------------------------------------------------------------------

// mouseXY extracts X, Y from any mouse message via the MouseMsg interface.
func mouseXY(msg tea.MouseMsg) (int, int) {
	m := msg.Mouse()
	return m.X, m.Y
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := mouseXY(msg)

	target := m.drag
	var focusCmd tea.Cmd
	switch ev := msg.(type) {
	case tea.MouseClickMsg:
		target = m.fieldAt(x, y)
		if target == noField || m.fields[target].input.State().Disabled() {
			return m, nil
		}
		if ev.Button == tea.MouseLeft {
			m.drag = target
			focusCmd = m.setFocus(target)
			log.Debug().Str("field", m.fields[target].name).Int("x", x).Int("y", y).Msg("tui: press")
		}
	case tea.MouseReleaseMsg:
		m.drag = noField
	case tea.MouseWheelMsg:
		target = m.fieldAt(x, y)
	}
	if target == noField {
		return m, nil
	}

	r := m.layout.content[target]
	var cmd tea.Cmd
	f := &m.fields[target]
	f.input, cmd = f.input.Update(translateMouse(msg, r.Min.X, r.Min.Y))
	m.relayout()
	return m, tea.Batch(focusCmd, cmd)
}

// fieldAt returns the field whose box contains (x, y), or noField.
func (m Model) fieldAt(x, y int) int {
	for i, r := range m.layout.boxes {
		if inRect(x, y, r) {
			return i
		}
	}
	return noField
}

// translateMouse shifts a mouse message into a component's local cells.
func translateMouse(msg tea.MouseMsg, offX, offY int) tea.Msg {
	switch ev := msg.(type) {
	case tea.MouseClickMsg:
		ev.X -= offX
		ev.Y -= offY
		return ev
	case tea.MouseMotionMsg:
		ev.X -= offX
		ev.Y -= offY
		return ev
	case tea.MouseReleaseMsg:
		ev.X -= offX
		ev.Y -= offY
		return ev
	case tea.MouseWheelMsg:
		ev.X -= offX
		ev.Y -= offY
		return ev
	}
	return msg
}
