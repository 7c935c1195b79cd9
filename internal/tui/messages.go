package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/store"
)

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// draftSavedMsg reports the result of persisting one field.
type draftSavedMsg struct {
	field string
	err   error
}

// saveDraftCmd persists field i off the event loop. The store serialises
// concurrent writers.
func (m Model) saveDraftCmd(i int) tea.Cmd {
	if m.store == nil {
		return nil
	}
	d := m.draft(i)
	st := m.store
	return func() tea.Msg {
		return draftSavedMsg{field: d.Name, err: st.Save(d)}
	}
}

// flushAndQuit closes every field, saves it, then quits.
func (m Model) flushAndQuit() tea.Cmd {
	st := m.store
	drafts := make([]store.Draft, len(m.fields))
	for i := range m.fields {
		drafts[i] = m.draft(i)
		m.fields[i].input.Close()
	}
	return tea.Sequence(func() tea.Msg {
		for _, d := range drafts {
			if err := st.Save(d); err != nil {
				log.Warn().Err(err).Str("field", d.Name).Msg("tui: draft save failed")
			}
		}
		return nil
	}, tea.Quit)
}

func (m Model) draft(i int) store.Draft {
	f := m.fields[i]
	s := f.input.State()
	return store.Draft{
		Name:      f.name,
		Text:      f.input.Value(),
		Selection: s.SelectedRange(),
		Reversed:  s.SelectionReversed(),
	}
}
