package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// minWidth is the narrowest window that fits a border and one text cell.
const minWidth = 5

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width < minWidth || m.height <= statusRows {
		return ""
	}

	contentH := m.height - statusRows
	bgFill := m.styles.BgFill
	var rows []string
	for i, f := range m.fields {
		rows = append(rows, m.renderField(f, i == m.focus && f.input.Focused())...)
	}
	if len(rows) > contentH {
		rows = rows[:contentH]
	}
	blank := bgFill.Render(strings.Repeat(" ", m.width))
	for len(rows) < contentH {
		rows = append(rows, blank)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	m.renderStatusBar(&b, bgFill)
	return b.String()
}

// renderField draws a label row and the bordered text area of one field.
func (m Model) renderField(f field, focused bool) []string {
	label, border := m.styles.Label, m.styles.Border
	if focused {
		label, border = m.styles.LabelFocused, m.styles.BorderFocused
	}
	inner := m.width - 2

	out := make([]string, 0, f.input.Height()+3)
	text := " " + f.label
	if f.input.State().Disabled() {
		text += " (read-only)"
	}
	out = append(out, fitCells(label, text, m.width, m.styles.BgFill))
	out = append(out, border.Render("╭"+strings.Repeat("─", inner)+"╮"))

	lines := strings.Split(f.input.View(), "\n")
	pad := m.styles.BgFill.Render(" ")
	for i := range f.input.Height() {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < inner-2 {
			line += m.styles.BgFill.Render(strings.Repeat(" ", inner-2-w))
		}
		out = append(out, border.Render("│")+pad+line+pad+border.Render("│"))
	}

	out = append(out, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return out
}

// fitCells renders text in style, padded with fill to exactly width cells.
func fitCells(style lipgloss.Style, text string, width int, fill lipgloss.Style) string {
	text = truncateCells(text, width)
	w := lipgloss.Width(text)
	return style.Render(text) + fill.Render(strings.Repeat(" ", width-w))
}
