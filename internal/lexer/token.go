package lexer

import "strconv"

// Token is one match of a Rule.
//
// Tokens are small values and are never modified after the scanner builds
// them. The Rule is shared by every token it produces, so token kinds are
// compared by pointer: tok.Rule() == numberRule.
type Token struct {
	// rule is the winning rule, or Begin/End for the sentinels.
	rule *Rule

	// span is the matched range; zero-width for the sentinels.
	span Span

	// value is produced by the rule's ValueFunc or by a MatchValue result.
	// hasValue tells "decoded to nil" apart from "no value".
	value    any
	hasValue bool
}

// Rule returns the rule that produced the token. Compare it against the
// *Rule returned at registration, or against Begin and End.
func (t Token) Rule() *Rule {
	return t.rule
}

// Span returns the source range of the token.
func (t Token) Span() Span {
	return t.span
}

// Text returns the matched source text.
func (t Token) Text() string {
	return t.span.Text()
}

// Value returns the decoded value, or nil when the rule decodes none.
func (t Token) Value() any {
	return t.value
}

// HasValue reports whether the token carries a decoded value.
func (t Token) HasValue() bool {
	return t.hasValue
}

// IsEnd reports whether t is the End sentinel.
func (t Token) IsEnd() bool {
	return t.rule == End
}

// LineCol returns the line and column where the token starts.
func (t Token) LineCol() (line, column int) {
	return t.span.LineCol()
}

// Position returns the Position where the token starts.
func (t Token) Position() Position {
	return t.span.Position()
}

// String formats the token for diagnostics:
//
//	"+"           a literal, printed as its quoted text
//	number "42"   any other rule with its quoted text
//	end-of-file   a zero-width token
func (t Token) String() string {
	if t.rule == nil {
		return "<invalid token>"
	}
	name := t.rule.name
	switch {
	case t.span.Len() == len(name) && t.span.Text() == name:
		return strconv.Quote(name)
	case t.span.Len() > 0:
		return escape(name) + " " + t.span.String()
	default:
		return escape(name)
	}
}

// escape quotes name without the surrounding quotes.
func escape(name string) string {
	q := strconv.Quote(name)
	return q[1 : len(q)-1]
}
