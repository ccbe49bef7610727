package lexer

import "strconv"

// ValueFunc decodes the text matched by a rule into a token value.
type ValueFunc func(text string) (any, error)

// Rule is a named Matcher. Rules are created by a Lexer during
// registration and shared by every Token they produce.
type Rule struct {
	name    string
	matcher Matcher
	value   ValueFunc
	ignore  bool
}

// Sentinel rules for the stream boundaries. They never match input.
var (
	Begin = &Rule{name: "begin-of-file", matcher: NeverMatcher}
	End   = &Rule{name: "end-of-file", matcher: NeverMatcher}
)

// NewRule validates and builds a Rule. value may be nil.
func NewRule(name string, matcher Matcher, value ValueFunc, ignore bool) (*Rule, error) {
	if name == "" {
		return nil, configErrorf("rule name must not be empty")
	}
	if matcher == nil {
		return nil, configErrorf("rule %q: matcher is nil", name)
	}
	return &Rule{
		name:    name,
		matcher: matcher,
		value:   value,
		ignore:  ignore,
	}, nil
}

// Name returns the rule name. Literal rules are named by their text.
func (r *Rule) Name() string {
	return r.name
}

// Ignored reports whether matches of r are dropped from the token stream.
func (r *Rule) Ignored() bool {
	return r.ignore
}

// HasValue reports whether r decodes a value for its tokens.
func (r *Rule) HasValue() bool {
	return r.value != nil
}

// Match runs the rule's matcher at offset.
func (r *Rule) Match(text string, offset int) Match {
	return r.matcher(text, offset)
}

func (r *Rule) String() string {
	if r == nil {
		return "<nil>"
	}
	return strconv.Quote(r.name)
}
