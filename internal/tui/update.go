package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/blink"
	"github.com/xonecas/textfield/internal/config"
	"github.com/xonecas/textfield/internal/input"
	"github.com/xonecas/textfield/internal/tui/textinput"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Blink ticks carry their owner; every field checks its own -----------
	case blink.Msg:
		var cmds []tea.Cmd
		for i := range m.fields {
			m.fields[i].input, cmd = m.fields[i].input.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}

	// -- Enter in a submitting field moves on to the next one ---------------
	case input.SubmitMsg:
		for i := range m.fields {
			if m.fields[i].input.State().BlinkID() == msg.ID {
				log.Debug().Str("field", m.fields[i].name).Msg("tui: submit")
				cmd = m.setFocus(m.nextEnabled(1))
				m.relayout()
				return m, cmd
			}
		}
		return m, nil

	// -- Config live reload --------------------------------------------------
	case config.ReloadedMsg:
		m.applyConfig(msg)
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Str("field", msg.field).Msg("tui: draft save failed")
			m.setStatus("save failed: "+msg.err.Error(), true)
		}
		return m, nil
	}

	// Keys, pastes and clipboard reads go to the focused field.
	f := &m.fields[m.focus]
	f.input, cmd = f.input.Update(msg)
	m.relayout()
	return m, cmd
}

// handleResize applies a window size change and re-derives layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	for i := range m.fields {
		m.fields[i].input.SetSize(contentWidth(m.width))
	}
	m.relayout()
}

// relayout re-derives screen rects; field heights change as text wraps.
func (m *Model) relayout() {
	m.layout = generateLayout(m.width, m.fields)
}

// applyConfig pushes a reloaded configuration into the fields.
func (m *Model) applyConfig(msg config.ReloadedMsg) {
	if msg.Err != nil {
		m.setStatus("config: "+msg.Err.Error(), true)
		return
	}
	cfg := msg.Config
	m.cfg = cfg
	theme := cfg.UI.SyntaxThemeOrDefault()
	m.styles = NewStyles(theme)
	for i := range m.fields {
		in := &m.fields[i].input
		s := in.State()
		s.SetMaxLength(cfg.Input.MaxLength)
		s.SetBlinkInterval(cfg.Input.BlinkInterval())
		s.SetClickInterval(cfg.Input.ClickInterval())
		if s.Multiline() {
			s.SetWrapped(cfg.Input.WordWrap)
			s.SetMaxLines(cfg.Input.MaxLines)
			s.SetTransformText(whitespaceTransform(cfg.UI.ShowWhitespace))
			in.Placeholder = cfg.Input.Placeholder
			if cfg.UI.Language != "" {
				in.Language = cfg.UI.Language
			}
		}
		in.Theme = theme
		in.Styles = textinput.DefaultStyles(theme)
		in.SetSize(contentWidth(m.width))
	}
	m.relayout()
	m.setStatus("config reloaded", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusMsg = text
	m.statusErr = isErr
}
