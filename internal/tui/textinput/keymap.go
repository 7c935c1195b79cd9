package textinput

import "charm.land/bubbles/v2/key"

// KeyMap binds keys to field actions.
type KeyMap struct {
	CharacterBackward  key.Binding
	CharacterForward   key.Binding
	SelectBackward     key.Binding
	SelectForward      key.Binding
	LinePrevious       key.Binding
	LineNext           key.Binding
	SelectLinePrevious key.Binding
	SelectLineNext     key.Binding
	WordBackward       key.Binding
	WordForward        key.Binding
	SelectWordBackward key.Binding
	SelectWordForward  key.Binding
	LineStart          key.Binding
	LineEnd            key.Binding
	SelectLineStart    key.Binding
	SelectLineEnd      key.Binding
	InputBegin         key.Binding
	InputEnd           key.Binding
	SelectInputBegin   key.Binding
	SelectInputEnd     key.Binding
	SelectAll          key.Binding

	DeleteCharacterBackward key.Binding
	DeleteCharacterForward  key.Binding
	DeleteWordBackward      key.Binding
	DeleteWordForward       key.Binding
	DeleteBeforeCursor      key.Binding
	DeleteAfterCursor       key.Binding

	// Submit is enter: it submits, or breaks the line in fields that do not
	// submit.
	Submit        key.Binding
	InsertNewline key.Binding

	Copy  key.Binding
	Cut   key.Binding
	Paste key.Binding
}

// DefaultKeyMap is the default set of key bindings.
var DefaultKeyMap = KeyMap{
	CharacterBackward: key.NewBinding(
		key.WithKeys("left", "ctrl+b"),
		key.WithHelp("left", "character backward"),
	),
	CharacterForward: key.NewBinding(
		key.WithKeys("right", "ctrl+f"),
		key.WithHelp("right", "character forward"),
	),
	SelectBackward: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+left", "extend selection backward"),
	),
	SelectForward: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+right", "extend selection forward"),
	),
	LinePrevious: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("up", "previous line"),
	),
	LineNext: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("down", "next line"),
	),
	SelectLinePrevious: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+up", "extend selection up"),
	),
	SelectLineNext: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+down", "extend selection down"),
	),
	WordBackward: key.NewBinding(
		key.WithKeys("alt+left", "ctrl+left", "alt+b"),
		key.WithHelp("alt+left", "word backward"),
	),
	WordForward: key.NewBinding(
		key.WithKeys("alt+right", "ctrl+right", "alt+f"),
		key.WithHelp("alt+right", "word forward"),
	),
	SelectWordBackward: key.NewBinding(
		key.WithKeys("alt+shift+left", "ctrl+shift+left"),
		key.WithHelp("alt+shift+left", "extend selection one word backward"),
	),
	SelectWordForward: key.NewBinding(
		key.WithKeys("alt+shift+right", "ctrl+shift+right"),
		key.WithHelp("alt+shift+right", "extend selection one word forward"),
	),
	LineStart: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "line start"),
	),
	LineEnd: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("end", "line end"),
	),
	SelectLineStart: key.NewBinding(
		key.WithKeys("shift+home"),
		key.WithHelp("shift+home", "select to line start"),
	),
	SelectLineEnd: key.NewBinding(
		key.WithKeys("shift+end"),
		key.WithHelp("shift+end", "select to line end"),
	),
	InputBegin: key.NewBinding(
		key.WithKeys("ctrl+home"),
		key.WithHelp("ctrl+home", "input begin"),
	),
	InputEnd: key.NewBinding(
		key.WithKeys("ctrl+end"),
		key.WithHelp("ctrl+end", "input end"),
	),
	SelectInputBegin: key.NewBinding(
		key.WithKeys("ctrl+shift+home", "ctrl+shift+up"),
		key.WithHelp("ctrl+shift+home", "select to input begin"),
	),
	SelectInputEnd: key.NewBinding(
		key.WithKeys("ctrl+shift+end", "ctrl+shift+down"),
		key.WithHelp("ctrl+shift+end", "select to input end"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "select all"),
	),
	DeleteCharacterBackward: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("backspace", "delete character backward"),
	),
	DeleteCharacterForward: key.NewBinding(
		key.WithKeys("delete", "ctrl+d"),
		key.WithHelp("delete", "delete character forward"),
	),
	DeleteWordBackward: key.NewBinding(
		key.WithKeys("alt+backspace", "ctrl+backspace", "ctrl+w"),
		key.WithHelp("alt+backspace", "delete word backward"),
	),
	DeleteWordForward: key.NewBinding(
		key.WithKeys("alt+delete", "ctrl+delete", "alt+d"),
		key.WithHelp("alt+delete", "delete word forward"),
	),
	DeleteBeforeCursor: key.NewBinding(
		key.WithKeys("ctrl+u", "super+backspace"),
		key.WithHelp("ctrl+u", "delete to line start"),
	),
	DeleteAfterCursor: key.NewBinding(
		key.WithKeys("ctrl+k", "super+delete"),
		key.WithHelp("ctrl+k", "delete to line end"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit or insert newline"),
	),
	InsertNewline: key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "insert newline"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+shift+c", "alt+c"),
		key.WithHelp("ctrl+shift+c", "copy selection"),
	),
	Cut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "cut selection"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+shift+v", "ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
}
