package pigment

import "fmt"

// Location points at a single position within the parser's input.
// Line and Column are zero-based internally; String renders them
// one-based the way editors display them.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func NewLocation(line, column, cursor int) Location {
	return Location{Line: line, Column: column, Cursor: cursor}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}

// Span is the half-open region of input between two locations.  Every
// syntax node and every diagnostic carries one, so errors can be
// anchored back to the exact source text that caused them.
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return s.Start.String()
		}
		return fmt.Sprintf("%d:%d..%d", s.Start.Line+1, s.Start.Column+1, s.End.Column+1)
	}
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Contains reports whether other falls entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start.Cursor >= s.Start.Cursor && other.End.Cursor <= s.End.Cursor
}
