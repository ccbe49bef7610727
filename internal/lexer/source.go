package lexer

import (
	"sort"
	"strings"
	"sync"
)

// SourceFile owns a source text and maps byte offsets to lines and columns.
//
// The text is never modified. The line index is computed on first use and
// is safe to build from several goroutines at once.
type SourceFile struct {
	// filename is used in Positions and error messages only. It is never
	// opened.
	filename string

	// text is the complete source. Every Span and Token of this file
	// slices it.
	text string

	// breaks holds the offset of the first byte of every line, in
	// ascending order, starting with 0. It is filled once by lineStarts.
	breaksOnce sync.Once
	breaks     []int
}

// NewSourceFile returns a SourceFile holding text.
func NewSourceFile(filename, text string) *SourceFile {
	return &SourceFile{filename: filename, text: text}
}

// Filename returns the name given at construction.
func (s *SourceFile) Filename() string {
	return s.filename
}

// Text returns the full source text.
func (s *SourceFile) Text() string {
	return s.text
}

// Len returns the length of the text in bytes.
func (s *SourceFile) Len() int {
	return len(s.text)
}

// lineStarts returns the ascending offsets at which lines begin. The first
// entry is always 0; every other entry follows a '\n'.
func (s *SourceFile) lineStarts() []int {
	s.breaksOnce.Do(func() {
		breaks := make([]int, 1, strings.Count(s.text, "\n")+1)
		for pos := 0; ; {
			i := strings.IndexByte(s.text[pos:], '\n')
			if i < 0 {
				break
			}
			pos += i + 1
			breaks = append(breaks, pos)
		}
		s.breaks = breaks
	})
	return s.breaks
}

// LineCol returns the 1-based line and column of offset.
func (s *SourceFile) LineCol(offset int) (line, column int) {
	breaks := s.lineStarts()
	i := sort.Search(len(breaks), func(i int) bool { return breaks[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - breaks[i] + 1
}

// Position returns the Position of offset.
func (s *SourceFile) Position(offset int) Position {
	line, col := s.LineCol(offset)
	return Position{
		Filename: s.filename,
		Line:     line,
		Column:   col,
		Offset:   offset,
	}
}

// Begin returns the zero-width Begin token at offset 0.
func (s *SourceFile) Begin() Token {
	return Token{rule: Begin, span: Span{source: s}}
}

// End returns the zero-width End token at the end of the text.
func (s *SourceFile) End() Token {
	end := len(s.text)
	return Token{rule: End, span: Span{source: s, begin: end, end: end}}
}

func (s *SourceFile) String() string {
	return "SourceFile(" + s.filename + ")"
}
