package lexer

import (
	"sync"
	"testing"
)

func TestSourceFile_LineCol(t *testing.T) {
	src := NewSourceFile("<test>", "ab\ncd")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself belongs to line 1
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
	}

	for _, tt := range tests {
		line, col := src.LineCol(tt.offset)
		if line != tt.line || col != tt.column {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.line, tt.column)
		}
	}
}

func TestSourceFile_LineColEdges(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		line   int
		column int
	}{
		{"empty text", "", 0, 1, 1},
		{"trailing newline", "a\n", 2, 2, 1},
		{"consecutive newlines", "\n\n\n", 2, 3, 1},
		{"multi-byte columns are bytes", "é\nx", 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := NewSourceFile("f", tt.text).LineCol(tt.offset)
			if line != tt.line || col != tt.column {
				t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.line, tt.column)
			}
		})
	}
}

func TestSourceFile_Position(t *testing.T) {
	src := NewSourceFile("calc.txt", "1 +\n  x")
	pos := src.Position(6)

	expected := Position{Filename: "calc.txt", Line: 2, Column: 3, Offset: 6}
	if pos != expected {
		t.Errorf("Position(6) = %+v, want %+v", pos, expected)
	}
	if pos.String() != "calc.txt:2:3" {
		t.Errorf("Position(6).String() = %q", pos.String())
	}
}

func TestSourceFile_Sentinels(t *testing.T) {
	src := NewSourceFile("f", "hello")

	begin := src.Begin()
	if begin.Rule() != Begin || begin.Span().Begin() != 0 || begin.Span().Len() != 0 {
		t.Errorf("Begin() = %v at %d+%d", begin, begin.Span().Begin(), begin.Span().Len())
	}

	end := src.End()
	if !end.IsEnd() || end.Span().Begin() != 5 || end.Span().Len() != 0 {
		t.Errorf("End() = %v at %d+%d", end, end.Span().Begin(), end.Span().Len())
	}
}

func TestSourceFile_ConcurrentLineIndex(t *testing.T) {
	src := NewSourceFile("f", "a\nb\nc\nd\n")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if line, _ := src.LineCol(6); line != 4 {
				t.Errorf("LineCol(6) line = %d, want 4", line)
			}
		}()
	}
	wg.Wait()
}
