package lexer

import (
	"testing"
)

func TestToken_String(t *testing.T) {
	src := NewSourceFile("f", "+ 42 \"x\"")
	plus, _ := NewRule("+", AlwaysMatcher, nil, false)
	number, _ := NewRule("number", NeverMatcher, nil, false)
	quoted, _ := NewRule("str\ting", NeverMatcher, nil, false)

	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name:     "literal prints quoted text",
			token:    Token{rule: plus, span: Span{source: src, begin: 0, end: 1}},
			expected: `"+"`,
		},
		{
			name:     "named rule prints name and text",
			token:    Token{rule: number, span: Span{source: src, begin: 2, end: 4}},
			expected: `number "42"`,
		},
		{
			name:     "rule name is escaped",
			token:    Token{rule: quoted, span: Span{source: src, begin: 5, end: 8}},
			expected: `str\ting "\"x\""`,
		},
		{
			name:     "zero width prints name only",
			token:    src.End(),
			expected: "end-of-file",
		},
		{
			name:     "begin sentinel",
			token:    src.Begin(),
			expected: "begin-of-file",
		},
		{
			name:     "zero token",
			token:    Token{},
			expected: "<invalid token>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Token.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToken_Accessors(t *testing.T) {
	src := NewSourceFile("f", "x\n42")
	number, _ := NewRule("number", NeverMatcher, nil, false)
	tok := Token{rule: number, span: Span{source: src, begin: 2, end: 4}, value: 42, hasValue: true}

	if tok.Rule() != number {
		t.Errorf("Rule() = %v, want %v", tok.Rule(), number)
	}
	if tok.Text() != "42" {
		t.Errorf("Text() = %q, want %q", tok.Text(), "42")
	}
	if !tok.HasValue() || tok.Value() != 42 {
		t.Errorf("Value() = %v (has %v), want 42", tok.Value(), tok.HasValue())
	}
	if line, col := tok.LineCol(); line != 2 || col != 1 {
		t.Errorf("LineCol() = (%d, %d), want (2, 1)", line, col)
	}
	if tok.Position().String() != "f:2:1" {
		t.Errorf("Position() = %v, want f:2:1", tok.Position())
	}
	if tok.IsEnd() {
		t.Error("IsEnd() = true for a number token")
	}
}
