package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"

	"github.com/xonecas/textfield/internal/config"
	"github.com/xonecas/textfield/internal/selection"
	"github.com/xonecas/textfield/internal/store"
)

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) Model
	}{
		{"empty", func(t *testing.T) Model {
			return resize(t, New(nil, nil, ""), 40, 12)
		}},
		{"with_text", func(t *testing.T) Model {
			m := New(nil, nil, "")
			m.fields[0].input.SetValue("Notes")
			m.fields[1].input.SetValue("first line\nsecond")
			m = resize(t, m, 40, 12)
			m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
			return send(t, m, tea.KeyPressMsg{Code: tea.KeyEnd, Mod: tea.ModCtrl})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup(t)
			golden.RequireEqual(t, []byte(ansi.Strip(m.renderContent())))
		})
	}
}

func TestTooSmallRendersNothing(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 4, 2)
	if got := m.renderContent(); got != "" {
		t.Fatalf("renderContent() = %q, want empty", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != 1 || !m.fields[1].input.Focused() || m.fields[0].input.Focused() {
		t.Fatalf("after tab: focus=%d", m.focus)
	}
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("tab should wrap to the first field, focus=%d", m.focus)
	}
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.focus != 1 {
		t.Fatalf("shift+tab should wrap to the last field, focus=%d", m.focus)
	}
}

func TestEscTogglesFocus(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.fields[0].input.Focused() {
		t.Fatal("esc should blur the focused field")
	}
	m = send(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := m.fields[0].input.Value(); got != "" {
		t.Fatalf("blurred field took input: %q", got)
	}
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if !m.fields[0].input.Focused() {
		t.Fatal("second esc should refocus")
	}
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "hi" {
		m = send(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = send(t, m, tea.PasteMsg{Content: "there"})

	got := m.Fields()
	if got["title"] != "" || got["body"] != "hi\nthere" {
		t.Fatalf("Fields() = %v", got)
	}
}

func TestBodyGrowsWithContent(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 20)
	m.Init()
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	before := m.layout.content[1].Dy()
	m = send(t, m, tea.PasteMsg{Content: "a\nb\nc"})
	if got := m.layout.content[1].Dy(); got != before+2 {
		t.Fatalf("body height = %d, want %d", got, before+2)
	}
}

func TestMouseClickFocusesField(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	m.fields[1].input.SetValue("hello world")
	m.relayout()

	// Body text starts at column 2 of row 6.
	m = send(t, m, tea.MouseClickMsg{X: 4, Y: 6, Button: tea.MouseLeft})
	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	if m.drag != 1 {
		t.Fatalf("drag = %d, want 1", m.drag)
	}
	if got := m.fields[1].input.State().CursorOffset(); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
}

func TestMouseDragLeavesField(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	m.fields[1].input.SetValue("hello world")
	m.relayout()

	m = send(t, m, tea.MouseClickMsg{X: 2, Y: 6, Button: tea.MouseLeft})
	// Below the body box: the press still owns the pointer.
	m = send(t, m, tea.MouseMotionMsg{X: 39, Y: 10, Button: tea.MouseLeft})
	m = send(t, m, tea.MouseReleaseMsg{X: 39, Y: 10, Button: tea.MouseLeft})

	s := m.fields[1].input.State()
	if got := s.SelectedText(); got != "hello world" {
		t.Fatalf("selection = %q", got)
	}
	if m.drag != noField {
		t.Fatalf("drag = %d after release", m.drag)
	}
}

func TestMouseOutsideFieldsIgnored(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	m = send(t, m, tea.MouseClickMsg{X: 3, Y: 10, Button: tea.MouseLeft})
	if m.focus != 0 || m.drag != noField {
		t.Fatalf("focus=%d drag=%d", m.focus, m.drag)
	}
}

func TestMouseEventFilter(t *testing.T) {
	lastMouseEvent = time.Time{}
	wheel := tea.MouseWheelMsg{Button: tea.MouseWheelDown}
	if MouseEventFilter(nil, wheel) == nil {
		t.Fatal("first wheel event dropped")
	}
	if MouseEventFilter(nil, wheel) != nil {
		t.Fatal("burst wheel event passed")
	}
	click := tea.MouseClickMsg{Button: tea.MouseLeft}
	if MouseEventFilter(nil, click) == nil {
		t.Fatal("click dropped")
	}
}

func TestConfigReload(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	cfg := config.Default()
	cfg.Input.Placeholder = "Write"
	cfg.Input.WordWrap = false
	m = send(t, m, config.ReloadedMsg{Config: cfg})

	body := m.fields[1].input
	if body.Placeholder != "Write" || body.State().Wrapped() {
		t.Fatalf("placeholder=%q wrapped=%v", body.Placeholder, body.State().Wrapped())
	}
	if m.statusMsg != "config reloaded" || m.statusErr {
		t.Fatalf("status = %q err=%v", m.statusMsg, m.statusErr)
	}
}

func TestConfigReloadReappliesFieldOptions(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.fields[1].input.SetValue("hello world")
	s := m.fields[1].input.State()
	s.MoveTo(11)

	cfg := config.Default()
	cfg.Input.MaxLength = 5
	cfg.UI.ShowWhitespace = true
	m = send(t, m, config.ReloadedMsg{Config: cfg})

	if got := m.Fields()["body"]; got != "hello" {
		t.Errorf("body after max_length reload = %q", got)
	}
	if s.CursorOffset() != 5 {
		t.Errorf("cursor = %d, want clamped to 5", s.CursorOffset())
	}
	tf := s.TransformText()
	if tf == nil || tf(' ') != '·' || tf('a') != 'a' {
		t.Error("show_whitespace did not install the space transform")
	}
}

func TestConfigReloadError(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	prev := m.cfg
	m = send(t, m, config.ReloadedMsg{Err: errTest})
	if m.cfg != prev || !m.statusErr {
		t.Fatal("failed reload should keep config and report")
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")

func TestDraftsRoundTrip(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "drafts.db"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	m := resize(t, New(nil, st, ""), 40, 12)
	m.fields[1].input.SetValue("keep me")
	s := m.fields[1].input.State()
	s.MoveTo(7)
	s.SelectTo(5)

	msg := m.saveDraftCmd(1)()
	if saved := msg.(draftSavedMsg); saved.err != nil {
		t.Fatal(saved.err)
	}

	m2 := New(nil, st, "")
	s2 := m2.fields[1].input.State()
	if got := m2.Fields()["body"]; got != "keep me" {
		t.Fatalf("body = %q", got)
	}
	if got := s2.SelectedText(); got != "me" || !s2.SelectionReversed() {
		t.Fatalf("selection = %q reversed=%v", got, s2.SelectionReversed())
	}
}

func TestDraftRestoreFollowsCursor(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "drafts.db"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i)
	}
	text := strings.Join(lines, "\n")
	end := len(text)
	if err := st.Save(store.Draft{Name: "body", Text: text, Selection: selection.Range{Start: end, End: end}}); err != nil {
		t.Fatal(err)
	}

	m := New(nil, st, "")
	s := m.fields[1].input.State()
	// Twenty rows in an eight-row viewport, cursor on the last row.
	if got := s.Scroll.Offset(); got != 12 {
		t.Errorf("scroll offset after restore = %d, want 12", got)
	}
}

func TestQuitClosesFields(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if m.fields[1].input.Focus() != nil {
		t.Error("closed field restarted its blink")
	}
}

func TestEnterInTitleMovesToBody(t *testing.T) {
	m := resize(t, New(nil, nil, ""), 40, 12)
	m.Init()
	m = send(t, m, tea.KeyPressMsg{Code: 'T', Text: "T"})

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("enter in the title did not submit")
	}
	m = send(t, m, cmd())
	if m.focus != 1 || !m.fields[1].input.Focused() {
		t.Fatalf("focus = %d after submit", m.focus)
	}
	if got := m.Fields()["title"]; got != "T" {
		t.Errorf("title = %q", got)
	}
}

func TestDisabledFieldIsSkipped(t *testing.T) {
	m := New(nil, nil, "")
	if m.SetDisabled("nope", true) {
		t.Error("SetDisabled matched an unknown field")
	}
	if !m.SetDisabled("body", true) {
		t.Fatal("SetDisabled(body) = false")
	}
	m.fields[1].input.SetValue("hello world")
	m = resize(t, m, 40, 12)
	m.Init()

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != 0 || m.fields[1].input.Focused() {
		t.Fatalf("tab focused a disabled field: focus=%d", m.focus)
	}
	m = send(t, m, tea.MouseClickMsg{X: 4, Y: 6, Button: tea.MouseLeft})
	if m.focus != 0 || m.drag != noField {
		t.Fatalf("click on a disabled field: focus=%d drag=%d", m.focus, m.drag)
	}
	if !strings.Contains(ansi.Strip(m.renderContent()), "Body (read-only)") {
		t.Error("disabled field label not marked read-only")
	}

	m2 := New(nil, nil, "")
	m2.SetDisabled("title", true)
	if m2.focus != 1 {
		t.Errorf("disabling the focused field left focus at %d", m2.focus)
	}
}

func TestLineCol(t *testing.T) {
	tests := []struct {
		text        string
		offset      int
		wantLn, col int
	}{
		{"", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"ab\ncd", 3, 2, 1},
		{"ab\ncd", 5, 2, 3},
		{"é\nx", 2, 1, 2},
		{"ab", 99, 1, 3},
	}
	for _, tt := range tests {
		ln, col := lineCol(tt.text, tt.offset)
		if ln != tt.wantLn || col != tt.col {
			t.Errorf("lineCol(%q, %d) = %d,%d, want %d,%d", tt.text, tt.offset, ln, col, tt.wantLn, tt.col)
		}
	}
}
