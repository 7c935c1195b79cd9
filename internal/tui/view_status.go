package tui

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// renderStatusBar writes the status separator and bar.
func (m Model) renderStatusBar(b *strings.Builder, bgFill lipgloss.Style) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// -- Left segments --
	f := m.fields[m.focus]
	s := f.input.State()
	ln, col := lineCol(f.input.Value(), s.CursorOffset())
	leftParts := []string{
		m.styles.StatusText.Render(" " + f.label),
		m.styles.StatusText.Render("Ln " + strconv.Itoa(ln) + ", Col " + strconv.Itoa(col)),
	}
	if s.HasSelection() {
		n := uniseg.GraphemeClusterCount(s.SelectedText())
		leftParts = append(leftParts, m.styles.StatusText.Render("("+strconv.Itoa(n)+" selected)"))
	}
	left := strings.Join(leftParts, m.styles.StatusText.Render("  "))

	// -- Right segments --
	var rightParts []string
	if m.statusMsg != "" {
		msg := truncateCells(m.statusMsg, 30)
		if m.statusErr {
			rightParts = append(rightParts, m.styles.Error.Render("✗ "+msg))
		} else {
			rightParts = append(rightParts, m.styles.StatusText.Render(msg))
		}
	}
	rightParts = append(rightParts, m.styles.StatusText.Render(m.cfg.UI.SyntaxThemeOrDefault()))
	right := strings.Join(rightParts, m.styles.StatusText.Render("  "))

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		// Too narrow for both; the position wins.
		left = ansi.Truncate(left, m.width, "")
		b.WriteString(left)
		b.WriteString(bgFill.Render(strings.Repeat(" ", m.width-lipgloss.Width(left))))
		return
	}
	b.WriteString(left)
	b.WriteString(bgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(bgFill.Render(" "))
}

// lineCol returns the 1-based line and grapheme column of offset.
func lineCol(text string, offset int) (int, int) {
	offset = min(max(offset, 0), len(text))
	before := text[:offset]
	ln := strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return ln, uniseg.GraphemeClusterCount(before) + 1
}

func truncateCells(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
