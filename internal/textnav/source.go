package textnav

// Source is anything that exposes a text snapshot. State types implement it
// and navigate through Text.
type Source interface {
	Value() string
}

// Text binds the navigation functions to a snapshot string.
type Text string

// Of snapshots a Source.
func Of(src Source) Text { return Text(src.Value()) }

func (t Text) Value() string { return string(t) }
func (t Text) Len() int { return len(t) }
func (t Text) LineCount() int { return LineCount(string(t)) }
func (t Text) LineStartOffset(line int) int { return LineStartOffset(string(t), line) }
func (t Text) LineEndOffset(line int) int { return LineEndOffset(string(t), line) }
func (t Text) LineContent(line int) string { return LineContent(string(t), line) }
func (t Text) OffsetToLineCol(o int) (int, int) { return OffsetToLineCol(string(t), o) }
func (t Text) LineColToOffset(l, c int) int { return LineColToOffset(string(t), l, c) }
func (t Text) PreviousBoundary(o int) int { return PreviousBoundary(string(t), o) }
func (t Text) NextBoundary(o int) int { return NextBoundary(string(t), o) }
func (t Text) WordStart(o int) int { return WordStart(string(t), o) }
func (t Text) WordEnd(o int) int { return WordEnd(string(t), o) }
