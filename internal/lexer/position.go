package lexer

// Position is a human-readable location in a SourceFile.
//
// Positions are derived on demand from a byte offset with
// SourceFile.Position; the scanner itself only tracks offsets. A Position
// is a small value and is passed by value.
type Position struct {
	// Filename is the name of the source file the position belongs to,
	// copied from SourceFile.Filename so error messages are self-contained.
	Filename string

	// Line is the 1-based line number. Lines are separated by '\n' only;
	// a '\r' before it is part of the previous line. The zero value (0)
	// means "no position".
	Line int

	// Column is the 1-based column within the line, counted in bytes from
	// the first byte after the preceding '\n'. "é" therefore occupies
	// columns 1 and 2, and a tab counts as one column.
	Column int

	// Offset is the 0-based byte offset from the start of the text, the
	// same unit as Span.Begin, Span.End and Match.End:
	// text[Offset] is the first byte at this position.
	Offset int
}

// String returns "filename:line:column", e.g. "calc.txt:2:5".
// Editors and CI log viewers recognize this form.
func (p Position) String() string {
	return p.Filename + ":" + itoa(p.Line) + ":" + itoa(p.Column)
}

// IsValid reports whether p has a line number. The zero Position is invalid.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes before other. Positions compare by
// Offset; Line and Column are derived from it.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After reports whether p comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// itoa formats n in base 10.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if negative {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
