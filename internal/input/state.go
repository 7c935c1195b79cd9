// Package input is the editing state of a text field: buffer, selection,
// cursor blink and scroll position, with the pointer and keyboard operations
// that act on them.
//
// The host owns layout. After every change it rebuilds Cache, sets the
// scroll viewport and calls SettleScroll; State only reads the cache to
// resolve pointer positions.
package input

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/textfield/internal/blink"
	"github.com/xonecas/textfield/internal/constants"
	"github.com/xonecas/textfield/internal/layout"
	"github.com/xonecas/textfield/internal/selection"
	"github.com/xonecas/textfield/internal/textnav"
)

// Options configures a new State.
type Options struct {
	Multiline bool
	// Wrapped word-wraps a multi-line field. Ignored for single-line fields.
	Wrapped bool
	// MaxLines is the number of rows shown before a multi-line field
	// scrolls. Defaults to constants.MaxLines.
	MaxLines int
	// MaxLength caps the buffer length in characters. Zero means no cap.
	MaxLength int
	// BlinkInterval defaults to constants.BlinkInterval.
	BlinkInterval time.Duration
	// ClickInterval defaults to constants.ClickInterval.
	ClickInterval time.Duration
	// MapText rewrites the whole buffer after each edit, e.g. to upper-case
	// it or strip characters.
	MapText func(string) string
	// TransformText changes how characters are drawn without touching the
	// buffer, e.g. masking a password.
	TransformText func(rune) rune

	// Submit makes enter emit a SubmitMsg. Newlines move to shift+enter.
	Submit bool
	// SecondaryNewline moves newline insertion to shift+enter and leaves
	// plain enter to the host.
	SecondaryNewline bool
	// Disabled fields refuse focus, keys and pointer selection.
	Disabled bool
}

// State is one text field. Methods that change the selection return a
// command that restarts the cursor blink.
type State struct {
	value string
	sel   selection.Model
	blink *blink.Blink

	multiline bool
	wrapped   bool
	maxLines  int
	maxLength int
	mapText   func(string) string
	transform func(rune) rune
	focused   bool

	submit           bool
	submitDisabled   bool
	secondaryNewline bool
	disabled         bool

	// Cache is the layout snapshot from the host's last layout pass.
	Cache layout.Cache
	// Scroll is the vertical scroll position of multi-line fields.
	Scroll ScrollHandle
	// HorizontalOffset scrolls unwrapped lines, in cells.
	HorizontalOffset float64
	// LineHeight is the row height used to estimate rows before the first
	// layout pass. Terminal hosts use 1.
	LineHeight float64

	clicks ClickCounter

	scrollOnLayout   bool
	followHorizontal bool
}

// New returns an empty, unfocused field.
func New(opts Options) *State {
	if opts.MaxLines <= 0 {
		opts.MaxLines = constants.MaxLines
	}
	if opts.ClickInterval <= 0 {
		opts.ClickInterval = constants.ClickInterval
	}
	return &State{
		blink:      blink.New(opts.BlinkInterval),
		multiline:  opts.Multiline,
		wrapped:    opts.Multiline && opts.Wrapped,
		maxLines:   opts.MaxLines,
		maxLength:  opts.MaxLength,
		mapText:    opts.MapText,
		transform:  opts.TransformText,
		LineHeight: 1,
		clicks:     ClickCounter{Interval: opts.ClickInterval},

		submit:           opts.Submit,
		secondaryNewline: opts.SecondaryNewline,
		disabled:         opts.Disabled,
	}
}

// Value returns the buffer.
func (s *State) Value() string { return s.value }

// Text returns the buffer with navigation helpers.
func (s *State) Text() textnav.Text { return textnav.Of(s) }

// Multiline reports whether the field accepts newlines.
func (s *State) Multiline() bool { return s.multiline }

// Wrapped reports whether the field word-wraps.
func (s *State) Wrapped() bool { return s.wrapped }

// MaxLines returns the number of rows shown before scrolling.
func (s *State) MaxLines() int { return s.maxLines }

// SetWrapped turns word-wrap on or off for a multi-line field.
func (s *State) SetWrapped(on bool) {
	s.wrapped = s.multiline && on
	s.Cache.Visual = nil
	s.HorizontalOffset = 0
	s.followCursor()
}

// SetMaxLines changes the row limit of a multi-line field.
func (s *State) SetMaxLines(n int) {
	if n > 0 {
		s.maxLines = n
	}
}

// SetMaxLength changes the length cap and truncates the buffer to it,
// keeping the selection where it still fits.
func (s *State) SetMaxLength(n int) {
	s.maxLength = max(n, 0)
	s.SetValuePreserveSelection(s.value)
}

// TransformText returns the display transform, or nil.
func (s *State) TransformText() func(rune) rune { return s.transform }

// SetTransformText changes the display transform. The buffer is untouched.
func (s *State) SetTransformText(f func(rune) rune) { s.transform = f }

// SetSubmitDisabled turns enter-to-submit off without giving enter back to
// newline insertion.
func (s *State) SetSubmitDisabled(on bool) { s.submitDisabled = on }

// Disabled reports whether the field refuses focus and input.
func (s *State) Disabled() bool { return s.disabled }

// SetDisabled enables or disables the field. Disabling blurs it.
func (s *State) SetDisabled(on bool) {
	s.disabled = on
	if on {
		s.Blur()
	}
}

// SetBlinkInterval changes the blink phase length.
func (s *State) SetBlinkInterval(d time.Duration) { s.blink.SetInterval(d) }

// SetClickInterval changes the multi-click window.
func (s *State) SetClickInterval(d time.Duration) {
	if d > 0 {
		s.clicks.Interval = d
	}
}

// SetValue replaces the buffer and resets the selection to the start.
func (s *State) SetValue(v string) {
	s.value = s.normalize(v)
	s.sel.Reset()
	s.Cache.Visual = nil
	s.Scroll.SetViewport(s.Scroll.Viewport(), 0)
	s.HorizontalOffset = 0
}

// SetValuePreserveSelection replaces the buffer and keeps the selection,
// clamped to the new length.
func (s *State) SetValuePreserveSelection(v string) {
	s.value = s.normalize(v)
	s.sel.Clamp(len(s.value))
	s.Cache.Visual = nil
	s.followCursor()
}

// normalize applies the single-line and length rules to a whole buffer.
func (s *State) normalize(v string) string {
	if !s.multiline {
		v = flatten(v)
	}
	if s.maxLength > 0 && utf8.RuneCountInString(v) > s.maxLength {
		v = truncateRunes(v, s.maxLength)
	}
	return v
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

// SelectedRange returns the selection with Start <= End.
func (s *State) SelectedRange() selection.Range { return s.sel.Range }

// SelectionReversed reports whether the cursor sits at the start of the
// selection.
func (s *State) SelectionReversed() bool { return s.sel.Reversed }

// Selecting reports whether a pointer drag is in progress.
func (s *State) Selecting() bool { return s.sel.Selecting }

// CursorOffset returns the offset the cursor is drawn at.
func (s *State) CursorOffset() int { return s.sel.Head() }

// HasSelection reports whether any text is selected.
func (s *State) HasSelection() bool { return !s.sel.Range.Empty() }

// SelectedText returns the selected part of the buffer.
func (s *State) SelectedText() string {
	r := s.sel.Range
	return s.value[r.Start:r.End]
}

// MoveTo collapses the selection onto offset and scrolls it into view.
func (s *State) MoveTo(offset int) tea.Cmd {
	s.sel.MoveTo(s.clampOffset(offset))
	s.followCursor()
	return s.resetBlink()
}

// moveToWithoutScroll collapses the selection without touching the scroll
// position.
func (s *State) moveToWithoutScroll(offset int) {
	s.sel.MoveTo(s.clampOffset(offset))
}

// SelectTo moves the active end of the selection to offset and scrolls the
// cursor into view.
func (s *State) SelectTo(offset int) tea.Cmd {
	s.sel.SelectTo(s.clampOffset(offset))
	s.followCursor()
	return s.resetBlink()
}

// SelectToWithoutScroll is SelectTo leaving the viewport where it is.
func (s *State) SelectToWithoutScroll(offset int) tea.Cmd {
	s.scrollOnLayout = false
	s.followHorizontal = false
	s.sel.SelectTo(s.clampOffset(offset))
	return s.resetBlink()
}

// SelectWordAt selects the word at offset. A click on punctuation or
// whitespace selects that single character.
func (s *State) SelectWordAt(offset int) tea.Cmd {
	offset = s.clampOffset(offset)
	start := textnav.WordStart(s.value, offset)
	end := textnav.WordEnd(s.value, start)
	s.sel.Set(start, end)
	s.scrollOnLayout = false
	s.followHorizontal = false
	return s.resetBlink()
}

// SelectAll selects the whole buffer without scrolling.
func (s *State) SelectAll() tea.Cmd {
	s.moveToWithoutScroll(0)
	return s.SelectToWithoutScroll(len(s.value))
}

func (s *State) clampOffset(offset int) int {
	return max(0, min(offset, len(s.value)))
}

// ---------------------------------------------------------------------------
// Editing
// ---------------------------------------------------------------------------

// ReplaceTextInRange replaces [start, end) with text and leaves the cursor
// after the inserted text. MapText and MaxLength apply to the result.
func (s *State) ReplaceTextInRange(start, end int, text string) tea.Cmd {
	start, end = s.clampOffset(start), s.clampOffset(end)
	if end < start {
		start, end = end, start
	}
	if !s.multiline {
		text = flatten(text)
	}
	before, after := s.value[:start], s.value[end:]
	if s.maxLength > 0 {
		room := s.maxLength - utf8.RuneCountInString(before) - utf8.RuneCountInString(after)
		text = truncateRunes(text, max(room, 0))
	}

	next := before + text + after
	if s.mapText != nil {
		next = s.mapText(next)
	}
	cursor := min(start+len(text), len(next))

	s.value = next
	s.sel.MoveTo(cursor)
	s.Cache.Visual = nil
	s.followCursor()
	return s.resetBlink()
}

// InsertText replaces the selection with text.
func (s *State) InsertText(text string) tea.Cmd {
	r := s.sel.Range
	return s.ReplaceTextInRange(r.Start, r.End, text)
}

// Clear empties the buffer and returns what it held.
func (s *State) Clear() string {
	old := s.value
	s.SetValue("")
	return old
}

// flatten replaces newlines with spaces for single-line fields.
func flatten(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", " ")
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ---------------------------------------------------------------------------
// Focus and blink
// ---------------------------------------------------------------------------

// Focused reports whether the field has keyboard focus.
func (s *State) Focused() bool { return s.focused }

// Focus gives the field focus and starts the cursor blinking. Disabled
// fields stay blurred.
func (s *State) Focus() tea.Cmd {
	if s.focused || s.disabled {
		return nil
	}
	s.focused = true
	log.Debug().Str("blink", s.blink.ID()).Msg("input: focus")
	return s.blink.Start()
}

// Blur removes focus, stops the blink and collapses the selection onto the
// cursor.
func (s *State) Blur() {
	if !s.focused {
		return
	}
	s.focused = false
	s.blink.Stop()
	s.sel.MoveTo(s.CursorOffset())
	s.sel.Selecting = false
	log.Debug().Str("blink", s.blink.ID()).Msg("input: blur")
}

// CursorVisible reports whether the cursor is in the shown phase of its
// blink.
func (s *State) CursorVisible() bool { return s.blink.Visible() }

// BlinkID identifies this field's blink messages.
func (s *State) BlinkID() string { return s.blink.ID() }

// UpdateBlink handles a blink tick. Ticks for other fields or from an older
// blink phase are ignored.
func (s *State) UpdateBlink(msg blink.Msg) tea.Cmd {
	return s.blink.Update(msg)
}

// Close tears the field down; blink ticks still in flight are dropped.
func (s *State) Close() { s.blink.Close() }

func (s *State) resetBlink() tea.Cmd {
	if !s.focused {
		return nil
	}
	return s.blink.Reset()
}

// cursorX is the cursor's x within its logical line, in cells.
func (s *State) cursorX() float64 {
	cursor := s.CursorOffset()
	span := textnav.LineRangeAt(s.value, cursor)
	return layout.ShapeLine(s.value[span.Start:cursor]).Width()
}
