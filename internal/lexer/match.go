// Package lexer provides a rule-driven lexical scanner.
//
// A Lexer is a registry of named matching rules (regular expressions,
// literal strings or custom Matchers). Once built it is bound to a
// SourceFile through a SourceLexer, which produces a forward-only stream of
// tokens. Overlapping rules are resolved by longest match; equal-length
// matches go to the rule considered first (prefix-indexed, then global, then
// non-ASCII, each in registration order). Rules registered with Ignore
// consume input without producing tokens.
//
// A built Lexer is read-only during scanning and may be shared by any number
// of SourceLexers running in different goroutines. A single SourceLexer is
// not safe for concurrent use.
package lexer

import (
	"regexp"
	"regexp/syntax"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MatchKind tags the shape of a Match.
type MatchKind int

const (
	// NoMatch means the matcher did not recognize anything at the offset.
	NoMatch MatchKind = iota

	// MatchEnd means the matcher recognized text up to End.
	// A zero-width match (End equal to the offset) is still a match.
	MatchEnd

	// MatchValue is MatchEnd plus a value decoded by the matcher itself.
	MatchValue
)

func (k MatchKind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case MatchEnd:
		return "end"
	case MatchValue:
		return "end+value"
	default:
		return "MatchKind(" + itoa(int(k)) + ")"
	}
}

// Match is the result of running a Matcher at an offset.
type Match struct {
	Kind  MatchKind
	End   int
	Value any
}

// NoMatchResult reports that nothing matched.
func NoMatchResult() Match {
	return Match{Kind: NoMatch}
}

// MatchAt reports a match ending at end.
func MatchAt(end int) Match {
	return Match{Kind: MatchEnd, End: end}
}

// MatchWithValue reports a match ending at end that also decoded value.
func MatchWithValue(end int, value any) Match {
	return Match{Kind: MatchValue, End: end, Value: value}
}

// Matched reports whether m is one of the two matching shapes.
func (m Match) Matched() bool {
	return m.Kind == MatchEnd || m.Kind == MatchValue
}

// Matcher inspects text starting at offset and reports how far it matches.
// Offsets are byte offsets into text. A Matcher must not retain or modify
// text and must be safe to call from multiple goroutines.
type Matcher func(text string, offset int) Match

// RegexMatcher returns a Matcher for re anchored at the scan offset.
// It recompiles re's expression as CompileRegex does. A Longest setting
// on re is not carried over; matching is always leftmost-first.
func RegexMatcher(re *regexp.Regexp) Matcher {
	m, err := CompileRegex(re.String())
	if err != nil {
		// re.String() already compiled once, so anchoring it cannot fail.
		panic("lexer: anchoring " + strconv.Quote(re.String()) + ": " + err.Error())
	}
	return m
}

// CompileRegex compiles pattern into a Matcher anchored at the scan offset.
//
// A call never searches past the offset. Assertions still see the whole
// text: ^ and \A match only at its start, (?m)^ only after a newline, and
// \b and \B look at the character before the offset.
//
// Go's \d, \w and \b are ASCII-only. Note that \s is [\t\n\f\r ] and does
// not include \v.
func CompileRegex(pattern string) (Matcher, error) {
	head, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	tree, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, err
	}
	if !hasContextAssertion(tree) {
		return func(text string, offset int) Match {
			return matchFrom(head, text, offset)
		}, nil
	}

	// Leading with the previous character lets assertions at the offset
	// inspect it.
	inner, err := regexp.Compile(`\A(?s:.)(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return func(text string, offset int) Match {
		if offset == 0 {
			return matchFrom(head, text, 0)
		}
		_, size := utf8.DecodeLastRuneInString(text[:offset])
		return matchFrom(inner, text, offset-size)
	}, nil
}

// matchFrom runs an \A-anchored re on text[from:].
func matchFrom(re *regexp.Regexp, text string, from int) Match {
	loc := re.FindStringIndex(text[from:])
	if loc == nil {
		return NoMatchResult()
	}
	return MatchAt(from + loc[1])
}

// hasContextAssertion reports whether re contains an assertion whose
// result depends on text before the match start.
func hasContextAssertion(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpBeginText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	}
	for _, sub := range re.Sub {
		if hasContextAssertion(sub) {
			return true
		}
	}
	return false
}

// LiteralMatcher matches exactly literal at the offset.
func LiteralMatcher(literal string) Matcher {
	size := len(literal)
	return func(text string, offset int) Match {
		if len(text)-offset < size {
			return NoMatchResult()
		}
		if strings.HasPrefix(text[offset:], literal) {
			return MatchAt(offset + size)
		}
		return NoMatchResult()
	}
}

// AlwaysMatcher matches the single character at the offset.
//
// It is only correct for rules filed under a prefix, where dispatch has
// already checked that the leading character is the literal itself.
func AlwaysMatcher(text string, offset int) Match {
	if offset >= len(text) {
		return NoMatchResult()
	}
	_, size := utf8.DecodeRuneInString(text[offset:])
	return MatchAt(offset + size)
}

// NeverMatcher never matches. The Begin and End sentinels use it.
func NeverMatcher(text string, offset int) Match {
	return NoMatchResult()
}
