package layout

// VisibleLineInfo is one row currently scrolled into view. For unwrapped
// layouts LineIndex is the logical line; for wrapped layouts it indexes the
// visual lines.
type VisibleLineInfo struct {
	LineIndex int
	Bounds    Rect
	Line      ShapedLine
}

// Cache is the layout snapshot from the most recent layout pass.
// It is read-only to everything except the host that builds it, and may be
// empty before the first pass.
type Cache struct {
	// Bounds is the painted area of the field.
	Bounds *Rect
	// Line is the shaped text in single-line mode.
	Line ShapedLine
	// Visible covers the rows in view, in increasing vertical order.
	Visible []VisibleLineInfo
	// Visual covers every wrapped row of the buffer when wrapping is on.
	Visual []VisualLineInfo
}
