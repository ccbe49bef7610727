package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpan_Validation(t *testing.T) {
	src := NewSourceFile("f", "hello")

	tests := []struct {
		name    string
		begin   int
		end     int
		wantErr bool
	}{
		{"whole text", 0, 5, false},
		{"zero width at start", 0, 0, false},
		{"zero width at end", 5, 5, false},
		{"inner range", 1, 3, false},
		{"negative begin", -1, 2, true},
		{"negative end", 0, -1, true},
		{"begin past end of text", 6, 6, true},
		{"end past end of text", 2, 6, true},
		{"end before begin", 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := NewSpan(src, tt.begin, tt.end)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrSpan)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.begin, span.Begin())
			assert.Equal(t, tt.end, span.End())
			assert.Equal(t, tt.end-tt.begin, span.Len())
			assert.Same(t, src, span.Source())
		})
	}
}

func TestNewSpan_NilSource(t *testing.T) {
	_, err := NewSpan(nil, 0, 0)
	require.ErrorIs(t, err, ErrSpan)
}

func TestSpan_String(t *testing.T) {
	long := strings.Repeat("x", 70)

	tests := []struct {
		name     string
		text     string
		begin    int
		end      int
		expected string
	}{
		{"short", "hello world", 0, 5, `"hello"`},
		{"empty", "hello", 2, 2, `""`},
		{"escapes", "a\tb\n", 0, 4, `"a\tb\n"`},
		{"exactly 59", long, 0, 59, `"` + long[:59] + `"`},
		{"truncated", long, 0, 70, `"` + long[:59] + `"...`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := NewSpan(NewSourceFile("f", tt.text), tt.begin, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, span.String())
		})
	}
}

func TestSpan_StringKeepsRunesWhole(t *testing.T) {
	// 58 ASCII bytes then a two-byte rune straddling the cut.
	text := strings.Repeat("a", 58) + "é" + strings.Repeat("b", 10)
	span, err := NewSpan(NewSourceFile("f", text), 0, len(text))
	require.NoError(t, err)

	assert.Equal(t, `"`+strings.Repeat("a", 58)+`"...`, span.String())
}

func TestSpan_Contains(t *testing.T) {
	span, err := NewSpan(NewSourceFile("f", "0123456789"), 4, 9)
	require.NoError(t, err)

	tests := []struct {
		name     string
		offset   int
		expected bool
	}{
		{"at begin", 4, true},
		{"in middle", 6, true},
		{"last byte", 8, true},
		{"at end (exclusive)", 9, false},
		{"before begin", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, span.Contains(tt.offset))
		})
	}
}

func TestSpan_TextAndLineCol(t *testing.T) {
	span, err := NewSpan(NewSourceFile("f", "ab\ncd"), 3, 5)
	require.NoError(t, err)

	assert.Equal(t, "cd", span.Text())
	line, col := span.LineCol()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, "f:2:1", span.Position().String())
}

func TestSpan_ZeroValue(t *testing.T) {
	var span Span
	assert.Equal(t, "", span.Text())
	assert.Equal(t, `""`, span.String())
	assert.False(t, span.Position().IsValid())
}
