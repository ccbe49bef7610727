package lexer

import (
	"fmt"
	"unicode/utf8"
)

// SourceLexer scans one SourceFile with one Lexer.
//
// The cursor only moves forward. A SourceLexer is not safe for concurrent
// use; several SourceLexers may share the same Lexer and SourceFile.
type SourceLexer struct {
	lexer  *Lexer
	source *SourceFile

	// pos is the byte offset of the next unscanned byte. It only changes
	// when Scan returns a token (or End) and in SkipTo.
	pos int
}

// NewSourceLexer returns a SourceLexer positioned at the start of source.
func NewSourceLexer(lexer *Lexer, source *SourceFile) *SourceLexer {
	return &SourceLexer{lexer: lexer, source: source}
}

// Pos returns the cursor offset.
func (sl *SourceLexer) Pos() int {
	return sl.pos
}

// Source returns the SourceFile being scanned.
func (sl *SourceLexer) Source() *SourceFile {
	return sl.source
}

// SkipTo moves the cursor forward to offset without producing tokens,
// for callers that resynchronize after a *LexError.
func (sl *SourceLexer) SkipTo(offset int) error {
	if offset < sl.pos {
		return fmt.Errorf("%w: cannot move cursor back from %d to %d", ErrSpan, sl.pos, offset)
	}
	if _, err := NewSpan(sl.source, sl.pos, offset); err != nil {
		return err
	}
	sl.pos = offset
	return nil
}

// Scan returns the next token. Once the input is exhausted it returns the
// End token, and keeps returning it on every later call.
//
// At each position the candidates are the prefix rules filed under the
// leading rune, then the global rules, then, for a rune above U+007F, the
// non-ASCII rules. Every candidate is run; the one ending furthest wins and
// the first of equal-length matches wins the tie.
//
// Ignored matches are consumed silently. When no rule advances past the
// cursor Scan returns a *LexError. On any error the cursor is left where
// it was before the call.
func (sl *SourceLexer) Scan() (Token, error) {
	text := sl.source.text
	pos := sl.pos
	for pos < len(text) {
		leading, size := utf8.DecodeRuneInString(text[pos:])

		rule, m, err := sl.longest(leading, pos)
		if err != nil {
			return Token{}, err
		}
		if rule == nil {
			return Token{}, &LexError{
				Span: Span{source: sl.source, begin: pos, end: pos + size},
				Char: leading,
			}
		}
		if rule.ignore {
			pos = m.End
			continue
		}

		tok := Token{rule: rule, span: Span{source: sl.source, begin: pos, end: m.End}}
		switch {
		case rule.value != nil:
			v, err := rule.value(tok.span.Text())
			if err != nil {
				return Token{}, &ValueError{Rule: rule, Span: tok.span, Err: err}
			}
			tok.value, tok.hasValue = v, true
		case m.Kind == MatchValue:
			tok.value, tok.hasValue = m.Value, true
		}
		sl.pos = m.End
		return tok, nil
	}
	sl.pos = len(text)
	return sl.source.End(), nil
}

// longest runs every candidate rule at pos and returns the one reaching
// furthest. Only matches ending strictly after pos count, so zero-width
// matches never win and an ignored rule cannot stall the cursor. Ties go
// to the earlier candidate. rule is nil when nothing advances.
func (sl *SourceLexer) longest(leading rune, pos int) (rule *Rule, best Match, err error) {
	text := sl.source.text
	bestEnd := pos
	for _, bucket := range sl.lexer.candidates(leading) {
		for _, r := range bucket {
			m := r.Match(text, pos)
			switch m.Kind {
			case NoMatch:
				continue
			case MatchEnd, MatchValue:
				if m.End < pos || m.End > len(text) {
					return nil, Match{}, &ContractError{Rule: r, Offset: pos, Result: m}
				}
			default:
				return nil, Match{}, &ContractError{Rule: r, Offset: pos, Result: m}
			}
			if m.End > bestEnd {
				rule, best, bestEnd = r, m, m.End
			}
		}
	}
	return rule, best, nil
}

// All scans to the end of input and returns every token, End included.
func (sl *SourceLexer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := sl.Scan()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.IsEnd() {
			return tokens, nil
		}
	}
}
