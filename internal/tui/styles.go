package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/textfield/internal/highlight"
)

// Styles holds the chrome styles, derived from the syntax theme so the
// frame matches the highlighted text.
type Styles struct {
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Border        lipgloss.Style
	BorderFocused lipgloss.Style
	StatusText    lipgloss.Style
	Error         lipgloss.Style
	BgFill        lipgloss.Style
}

// NewStyles builds Styles from a chroma theme name.
func NewStyles(theme string) Styles {
	p := highlight.ThemePalette(theme)
	bg := lipgloss.Color(p.Bg)
	base := lipgloss.NewStyle().Background(bg)
	return Styles{
		Label:         base.Foreground(lipgloss.Color(p.Muted)),
		LabelFocused:  base.Foreground(lipgloss.Color(p.Fg)).Bold(true),
		Border:        base.Foreground(lipgloss.Color(p.Border)),
		BorderFocused: base.Foreground(lipgloss.Color(p.Accent)),
		StatusText:    base.Foreground(lipgloss.Color(p.Muted)),
		Error:         base.Foreground(lipgloss.Color(p.Error)),
		BgFill:        base,
	}
}
