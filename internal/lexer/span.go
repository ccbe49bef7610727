package lexer

import (
	"fmt"
	"strconv"
)

// maxSpanDisplay bounds how much text String shows, so error messages stay
// short. With quotes and the ellipsis a span prints in at most 64 bytes.
const maxSpanDisplay = 59

// Span is a half-open byte range [Begin, End) of one SourceFile.
//
// Spans built by NewSpan or by the scanner are always within bounds:
// 0 <= Begin <= End <= source length. A zero-width span (Begin == End)
// marks a point, as the Begin and End tokens do. The zero Span has no
// source and renders as empty text.
type Span struct {
	// source is not owned; the SourceFile outlives every span of it.
	source *SourceFile

	// begin is the offset of the first byte; end is one past the last.
	begin int
	end   int
}

// NewSpan validates the range and returns a Span of source.
func NewSpan(source *SourceFile, begin, end int) (Span, error) {
	switch {
	case source == nil:
		return Span{}, fmt.Errorf("%w: nil source", ErrSpan)
	case begin < 0:
		return Span{}, fmt.Errorf("%w: begin %d is negative", ErrSpan, begin)
	case end < 0:
		return Span{}, fmt.Errorf("%w: end %d is negative", ErrSpan, end)
	case begin > source.Len():
		return Span{}, fmt.Errorf("%w: begin %d is past end of source (%d)", ErrSpan, begin, source.Len())
	case end > source.Len():
		return Span{}, fmt.Errorf("%w: end %d is past end of source (%d)", ErrSpan, end, source.Len())
	case end < begin:
		return Span{}, fmt.Errorf("%w: end %d is before begin %d", ErrSpan, end, begin)
	}
	return Span{source: source, begin: begin, end: end}, nil
}

// Source returns the SourceFile the span belongs to.
func (s Span) Source() *SourceFile {
	return s.source
}

// Begin returns the offset of the first byte in the span.
func (s Span) Begin() int {
	return s.begin
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.end
}

// Len returns End - Begin.
func (s Span) Len() int {
	return s.end - s.begin
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.begin && offset < s.end
}

// Text returns the source text covered by the span.
func (s Span) Text() string {
	if s.source == nil {
		return ""
	}
	return s.source.text[s.begin:s.end]
}

// LineCol returns the line and column of the span start.
func (s Span) LineCol() (line, column int) {
	if s.source == nil {
		return 0, 0
	}
	return s.source.LineCol(s.begin)
}

// Position returns the Position of the span start.
func (s Span) Position() Position {
	if s.source == nil {
		return Position{}
	}
	return s.source.Position(s.begin)
}

// String returns the quoted text of the span, cut after 59 bytes and
// followed by "..." when longer.
func (s Span) String() string {
	text := s.Text()
	if len(text) <= maxSpanDisplay {
		return strconv.Quote(text)
	}
	cut := maxSpanDisplay
	// Do not split a multi-byte character.
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return strconv.Quote(text[:cut]) + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
