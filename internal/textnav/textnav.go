// Package textnav provides line, grapheme and word navigation over an
// immutable text buffer. Offsets are byte indices into the buffer and are
// expected to sit on UTF-8 character boundaries. Every function is total:
// out-of-range inputs are clamped rather than rejected.
package textnav

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// IsWordChar reports whether r belongs to a word for double-click selection
// and word jumps (letters, digits and underscore).
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// ---------------------------------------------------------------------------
// Lines
// ---------------------------------------------------------------------------

// LineCount returns the number of newline-separated lines. An empty buffer
// is a single empty line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// LineStartOffset returns the byte offset of the first character of line.
// Lines past the end clamp to len(text).
func LineStartOffset(text string, line int) int {
	if line <= 0 {
		return 0
	}
	offset := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text)
		}
		offset += nl + 1
	}
	return offset
}

// LineEndOffset returns the offset just before the newline terminating line,
// or len(text) for the last line.
func LineEndOffset(text string, line int) int {
	start := LineStartOffset(text, line)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		return start + nl
	}
	return len(text)
}

// LineContent returns the text of line without its newline.
func LineContent(text string, line int) string {
	return text[LineStartOffset(text, line):LineEndOffset(text, line)]
}

// Span is a half-open byte range.
type Span struct {
	Start, End int
}

// LineOffsets returns the start/end span of every logical line.
func LineOffsets(text string) []Span {
	spans := make([]Span, 0, LineCount(text))
	start := 0
	for {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			spans = append(spans, Span{Start: start, End: len(text)})
			return spans
		}
		spans = append(spans, Span{Start: start, End: start + nl})
		start += nl + 1
	}
}

// LineRangeAt returns the span of the logical line containing offset.
func LineRangeAt(text string, offset int) Span {
	line, _ := OffsetToLineCol(text, offset)
	return Span{Start: LineStartOffset(text, line), End: LineEndOffset(text, line)}
}

// OffsetToLineCol converts offset into a line index and a byte column
// relative to that line's start.
func OffsetToLineCol(text string, offset int) (line, col int) {
	offset = clamp(offset, len(text))
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart
}

// LineColToOffset converts a line and byte column to an offset. Columns past
// the end of the line snap to the line end.
func LineColToOffset(text string, line, col int) int {
	start := LineStartOffset(text, line)
	end := LineEndOffset(text, line)
	if col < 0 {
		col = 0
	}
	return start + min(col, end-start)
}

// ---------------------------------------------------------------------------
// Graphemes
// ---------------------------------------------------------------------------

// PreviousBoundary returns the start of the grapheme cluster strictly before
// offset, or 0.
func PreviousBoundary(text string, offset int) int {
	prev := 0
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 && pos < offset {
		prev = pos
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
	}
	return prev
}

// NextBoundary returns the first grapheme cluster boundary strictly after
// offset, or len(text).
func NextBoundary(text string, offset int) int {
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
		if pos > offset {
			return pos
		}
	}
	return len(text)
}

// ClusterStart returns the start of the grapheme cluster containing offset.
// Offsets already on a boundary are returned unchanged.
func ClusterStart(text string, offset int) int {
	offset = clamp(offset, len(text))
	if offset == len(text) {
		return offset
	}
	return PreviousBoundary(text, NextBoundary(text, offset))
}

// grapheme is a cluster together with its byte offset.
type grapheme struct {
	offset  int
	cluster string
}

func (g grapheme) isWord() bool {
	for _, r := range g.cluster {
		return IsWordChar(r)
	}
	return false
}

// graphemesBefore segments text and returns the clusters starting before limit.
func graphemesBefore(text string, limit int) []grapheme {
	var out []grapheme
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 && pos < limit {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		out = append(out, grapheme{offset: pos, cluster: cluster})
		pos += len(cluster)
	}
	return out
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// WordStart returns the start of the word ending at or containing offset.
// If the grapheme just before offset is not a word character its start is
// returned, so a click on punctuation or whitespace selects that grapheme.
// Newlines are non-word graphemes, so the scan never crosses a line.
func WordStart(text string, offset int) int {
	if text == "" || offset <= 0 {
		return 0
	}
	gs := graphemesBefore(text, clamp(offset, len(text)))
	if len(gs) == 0 {
		return 0
	}
	last := gs[len(gs)-1]
	if !last.isWord() {
		return last.offset
	}
	for i := len(gs) - 1; i >= 0; i-- {
		if !gs[i].isWord() {
			return gs[i].offset + len(gs[i].cluster)
		}
	}
	return 0
}

// WordEnd is the mirror of WordStart: it returns the end of the word that
// starts at or contains offset, or the end of the single non-word grapheme
// at offset.
func WordEnd(text string, offset int) int {
	if text == "" || offset >= len(text) {
		return len(text)
	}
	offset = max(offset, 0)
	pos := offset
	state := -1
	rest := text[offset:]
	first := true
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		g := grapheme{offset: pos, cluster: cluster}
		if first && !g.isWord() {
			return pos + len(cluster)
		}
		if !g.isWord() {
			return pos
		}
		first = false
		pos += len(cluster)
	}
	return len(text)
}

func clamp(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}
