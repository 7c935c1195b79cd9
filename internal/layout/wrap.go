package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// VisualLineInfo maps one visual (wrapped) row to its byte range in the
// buffer. Offsets are absolute.
type VisualLineInfo struct {
	StartOffset int
	EndOffset   int
	// WrappedLineIndex is the logical line this row belongs to.
	WrappedLineIndex int
	// VisualIndexInWrapped is the row's position within its logical line.
	VisualIndexInWrapped int
}

// wrapCluster is a grapheme with its width and whether a line may break
// after it.
type wrapCluster struct {
	start, end int
	width      float64
	canBreak   bool
}

// BuildVisualLines word-wraps text at width and returns one entry per visual
// row covering the whole buffer. Rows are contiguous within a logical line;
// consecutive logical lines are separated by their one-byte newline. A
// width <= 0 disables wrapping so each logical line is one row. An empty
// buffer yields a single empty row.
func BuildVisualLines(text string, width float64) []VisualLineInfo {
	if text == "" {
		return []VisualLineInfo{{}}
	}
	var out []VisualLineInfo
	offset := 0
	for li, line := range strings.Split(text, "\n") {
		rows := wrapLine(line, width)
		for vi, r := range rows {
			out = append(out, VisualLineInfo{
				StartOffset:          offset + r[0],
				EndOffset:            offset + r[1],
				WrappedLineIndex:     li,
				VisualIndexInWrapped: vi,
			})
		}
		offset += len(line) + 1
	}
	return out
}

// wrapLine greedily breaks one logical line, preferring the last break
// opportunity that fits and hard-breaking between clusters otherwise.
func wrapLine(line string, width float64) [][2]int {
	if line == "" || width <= 0 {
		return [][2]int{{0, len(line)}}
	}
	cs := segment(line)

	var rows [][2]int
	segStart := 0
	x := 0.0
	lastBreak := -1
	for i := 0; i < len(cs); i++ {
		w := cs[i].width
		for x+w > width && i > segStart {
			brk := i
			if lastBreak >= segStart && lastBreak+1 < i {
				brk = lastBreak + 1
			}
			rows = append(rows, [2]int{cs[segStart].start, cs[brk].start})
			segStart = brk
			x = 0
			lastBreak = -1
			for j := brk; j < i; j++ {
				x += cs[j].width
				if cs[j].canBreak {
					lastBreak = j
				}
			}
		}
		x += w
		if cs[i].canBreak {
			lastBreak = i
		}
	}
	rows = append(rows, [2]int{cs[segStart].start, len(line)})
	return rows
}

func segment(line string) []wrapCluster {
	var cs []wrapCluster
	pos := 0
	state := -1
	rest := line
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
		cs = append(cs, wrapCluster{
			start:    pos,
			end:      pos + len(c),
			width:    w,
			canBreak: boundaries&uniseg.MaskLine == uniseg.LineCanBreak,
		})
		pos += len(c)
	}
	return cs
}

// VisualLineAt returns the index of the visual row containing offset. An
// offset on a soft wrap boundary belongs to the earlier row, matching where
// the cursor is drawn at the end of that row.
func VisualLineAt(lines []VisualLineInfo, offset int) int {
	for i, l := range lines {
		if offset >= l.StartOffset && offset <= l.EndOffset {
			return i
		}
	}
	return 0
}
