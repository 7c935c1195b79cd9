package layout

import (
	"github.com/rivo/uniseg"

	"github.com/xonecas/textfield/internal/constants"
)

// TabWidth is the number of cells a tab occupies.
const TabWidth = constants.TabWidth

// ShapedLine is one line of text after shaping. Offsets are byte indices
// local to the line.
type ShapedLine interface {
	// ClosestIndexForX returns the character boundary nearest to x.
	ClosestIndexForX(x float64) int
	// XForIndex returns the x position of the boundary at index.
	XForIndex(index int) float64
	// Width is the advance of the whole line.
	Width() float64
	// Len is the byte length of the shaped text.
	Len() int
}

// cluster is one grapheme cluster of a CellLine.
type cluster struct {
	start, end int
	x, width   float64
}

// CellLine is a ShapedLine measured in terminal cells. Each grapheme cluster
// advances by its monospace display width; tabs advance by TabWidth.
type CellLine struct {
	text     string
	clusters []cluster
	width    float64
}

// ShapeLine measures text, which must not contain newlines.
func ShapeLine(text string) *CellLine {
	l := &CellLine{text: text}
	x := 0.0
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var (
			c          string
			boundaries int
		)
		c, rest, boundaries, state = uniseg.StepString(rest, state)
		w := float64(boundaries >> uniseg.ShiftWidth)
		if c == "\t" {
			w = TabWidth
		}
		l.clusters = append(l.clusters, cluster{start: pos, end: pos + len(c), x: x, width: w})
		pos += len(c)
		x += w
	}
	l.width = x
	return l
}

// Text returns the shaped text.
func (l *CellLine) Text() string { return l.text }

// Len returns the byte length of the shaped text.
func (l *CellLine) Len() int { return len(l.text) }

// Width returns the total width in cells.
func (l *CellLine) Width() float64 { return l.width }

// ClosestIndexForX returns the start of the first cluster whose midpoint
// lies past x, or the line length when x is past every midpoint.
func (l *CellLine) ClosestIndexForX(x float64) int {
	for _, c := range l.clusters {
		if x < c.x+c.width/2 {
			return c.start
		}
	}
	return len(l.text)
}

// XForIndex returns the x of the cluster boundary at or before index.
func (l *CellLine) XForIndex(index int) float64 {
	if index <= 0 {
		return 0
	}
	for _, c := range l.clusters {
		if index < c.end {
			return c.x
		}
	}
	return l.width
}

// Clusters calls fn for every grapheme cluster with its byte span, cell
// position and width. Painters use it to lay out cells.
func (l *CellLine) Clusters(fn func(start, end int, x, width float64)) {
	for _, c := range l.clusters {
		fn(c.start, c.end, c.x, c.width)
	}
}
