package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleKeyPress processes application keys. Returns (model, cmd, true) if
// handled; everything else goes to the focused field.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	handler := m.keyPressHandlers()[msg.Keystroke()]
	if handler == nil {
		return Model{}, nil, false
	}
	return handler(m)
}

func (m *Model) keyPressHandlers() map[string]func(*Model) (Model, tea.Cmd, bool) {
	return map[string]func(*Model) (Model, tea.Cmd, bool){
		"ctrl+c":    (*Model).handleCtrlC,
		"tab":       (*Model).handleTab,
		"shift+tab": (*Model).handleShiftTab,
		"esc":       (*Model).handleEsc,
	}
}

func (m *Model) handleCtrlC() (Model, tea.Cmd, bool) {
	return *m, m.flushAndQuit(), true
}

func (m *Model) handleTab() (Model, tea.Cmd, bool) {
	cmd := m.setFocus(m.nextEnabled(1))
	m.relayout()
	return *m, cmd, true
}

func (m *Model) handleShiftTab() (Model, tea.Cmd, bool) {
	cmd := m.setFocus(m.nextEnabled(-1))
	m.relayout()
	return *m, cmd, true
}

func (m *Model) handleEsc() (Model, tea.Cmd, bool) {
	f := &m.fields[m.focus]
	if !f.input.Focused() {
		return *m, f.input.Focus(), true
	}
	f.input.Blur()
	m.relayout()
	return *m, m.saveDraftCmd(m.focus), true
}
