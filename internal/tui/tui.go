// Package tui is the demo application: a single-line title field and a
// multi-line body field, with focus and mouse routing, draft persistence and
// a status bar.
package tui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/config"
	"github.com/xonecas/textfield/internal/input"
	"github.com/xonecas/textfield/internal/store"
	"github.com/xonecas/textfield/internal/tui/textinput"
)

const (
	statusRows = 2 // separator + status line
	noField    = -1
)

// field is one labelled text input.
type field struct {
	name  string
	label string
	input textinput.Model
}

// layout holds the screen rects derived from the window size and the
// current field heights.
type layout struct {
	boxes   []image.Rectangle // border boxes, for hit testing
	content []image.Rectangle // text areas, for translating mouse coords
}

// Model is the application model.
type Model struct {
	width  int
	height int

	fields []field
	focus  int
	// drag is the field that owns the pointer between press and release.
	drag int

	layout layout
	styles Styles
	cfg    *config.Config
	store  *store.Store

	statusMsg string
	statusErr bool
}

// New creates the application model. drafts may be nil; language is the
// lexer for the body field and overrides the configured one when set.
func New(cfg *config.Config, drafts *store.Store, language string) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme := cfg.UI.SyntaxThemeOrDefault()
	if language == "" {
		language = cfg.UI.Language
	}

	title := textinput.New(input.Options{
		Submit:        true,
		MaxLength:     cfg.Input.MaxLength,
		BlinkInterval: cfg.Input.BlinkInterval(),
		ClickInterval: cfg.Input.ClickInterval(),
	})
	title.Placeholder = "Title"

	body := textinput.New(input.Options{
		Multiline:     true,
		Wrapped:       cfg.Input.WordWrap,
		MaxLines:      cfg.Input.MaxLines,
		MaxLength:     cfg.Input.MaxLength,
		BlinkInterval: cfg.Input.BlinkInterval(),
		ClickInterval: cfg.Input.ClickInterval(),
	})
	body.Placeholder = cfg.Input.Placeholder
	body.Language = language
	body.State().SetTransformText(whitespaceTransform(cfg.UI.ShowWhitespace))

	m := Model{
		fields: []field{
			{name: "title", label: "Title", input: title},
			{name: "body", label: "Body", input: body},
		},
		drag:   noField,
		styles: NewStyles(theme),
		cfg:    cfg,
		store:  drafts,
	}
	for i := range m.fields {
		m.fields[i].input.Theme = theme
		m.fields[i].input.Styles = textinput.DefaultStyles(theme)
		m.restoreDraft(i)
	}
	return m
}

// Init focuses the first field, starting its cursor blink.
func (m Model) Init() tea.Cmd {
	return m.fields[m.focus].input.Focus()
}

// Fields returns the current field values by name.
func (m Model) Fields() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.name] = f.input.Value()
	}
	return out
}

// SetField replaces the text of the named field. It reports false when no
// field has that name.
func (m *Model) SetField(name, value string) bool {
	for i := range m.fields {
		if m.fields[i].name == name {
			m.fields[i].input.SetValue(value)
			return true
		}
	}
	return false
}

// SetDisabled turns the named field read-only or back. Call it before the
// program starts; focus moves off a disabled field.
func (m *Model) SetDisabled(name string, on bool) bool {
	for i := range m.fields {
		if m.fields[i].name != name {
			continue
		}
		m.fields[i].input.State().SetDisabled(on)
		if on && i == m.focus {
			m.focus = m.nextEnabled(1)
		}
		return true
	}
	return false
}

// nextEnabled walks from the focused field in direction dir to the next
// field that accepts focus. It returns the focused field when none does.
func (m Model) nextEnabled(dir int) int {
	n := len(m.fields)
	for k := 1; k <= n; k++ {
		j := ((m.focus+dir*k)%n + n) % n
		if !m.fields[j].input.State().Disabled() {
			return j
		}
	}
	return m.focus
}

// whitespaceTransform draws spaces as middle dots when on.
func whitespaceTransform(on bool) func(rune) rune {
	if !on {
		return nil
	}
	return func(r rune) rune {
		if r == ' ' {
			return '·'
		}
		return r
	}
}

// restoreDraft loads the saved text and selection of field i.
func (m *Model) restoreDraft(i int) {
	f := &m.fields[i]
	d, ok, err := m.store.Load(f.name)
	if err != nil {
		log.Warn().Err(err).Str("field", f.name).Msg("tui: draft load failed")
		return
	}
	if !ok {
		return
	}
	f.input.SetValue(d.Text)
	s := f.input.State()
	anchor, head := d.Selection.Start, d.Selection.End
	if d.Reversed {
		anchor, head = head, anchor
	}
	s.MoveTo(anchor)
	s.SelectTo(head)
	// Lay out again so the rows and scroll follow the restored cursor.
	f.input.SetSize(f.input.Width())
	log.Debug().Str("field", f.name).Int("len", len(d.Text)).Msg("tui: draft restored")
}

// setFocus moves keyboard focus to field i, blurring the previous one and
// saving its draft.
func (m *Model) setFocus(i int) tea.Cmd {
	if i == m.focus && m.fields[i].input.Focused() {
		return nil
	}
	prev := m.focus
	m.fields[prev].input.Blur()
	m.focus = i
	log.Debug().Str("field", m.fields[i].name).Msg("tui: focus")
	return tea.Batch(m.fields[i].input.Focus(), m.saveDraftCmd(prev))
}

// generateLayout places each field's label, border box and text area top to
// bottom.
func generateLayout(width int, fields []field) layout {
	var ly layout
	y := 0
	for _, f := range fields {
		y++ // label
		h := f.input.Height()
		ly.boxes = append(ly.boxes, image.Rect(0, y, width, y+h+2))
		ly.content = append(ly.content, image.Rect(2, y+1, width-2, y+1+h))
		y += h + 2
	}
	return ly
}

// contentWidth is the text width of a field: the window less border and
// one cell of padding on each side.
func contentWidth(width int) int {
	return max(width-4, 1)
}

func inRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
