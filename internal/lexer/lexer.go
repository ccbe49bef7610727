package lexer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Lexer is a registry of rules indexed for dispatch on the leading
// character at the scan position.
//
// Rules live in three buckets:
//   - prefix rules, keyed by the single rune they can start with
//   - global rules, tried at every position
//   - non-ASCII rules, tried only when the leading rune is above 127
//
// Registration order inside each bucket is the tie-break order for matches
// of equal length, so it is part of the grammar.
//
// The zero Lexer is empty and ready to use. A Lexer must not be modified
// once scanning has started.
type Lexer struct {
	globalRules   []*Rule
	prefixRules   map[rune][]*Rule
	nonASCIIRules []*Rule
}

// New returns an empty Lexer.
func New() *Lexer {
	return &Lexer{
		prefixRules: make(map[rune][]*Rule),
	}
}

// RuleOption configures a rule during registration.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	value    ValueFunc
	valueSet bool
	prefixes []string
	nonASCII bool
}

// WithValue decodes the matched text of each token with fn.
func WithValue(fn ValueFunc) RuleOption {
	return func(c *ruleConfig) {
		c.value = fn
		c.valueSet = true
	}
}

// WithPrefix restricts the rule to positions starting with one of
// prefixes. Each prefix must be exactly one character.
func WithPrefix(prefixes ...string) RuleOption {
	return func(c *ruleConfig) {
		c.prefixes = append(c.prefixes, prefixes...)
	}
}

// WithPrefixChars restricts the rule to positions starting with any of
// the characters in chars, e.g. " \t\r\n".
func WithPrefixChars(chars string) RuleOption {
	return func(c *ruleConfig) {
		for _, r := range chars {
			c.prefixes = append(c.prefixes, string(r))
		}
	}
}

// WithPrefixRunes restricts the rule to positions starting with one of
// runes.
func WithPrefixRunes(runes ...rune) RuleOption {
	return func(c *ruleConfig) {
		for _, r := range runes {
			c.prefixes = append(c.prefixes, string(r))
		}
	}
}

// WithNonASCII files the rule in the non-ASCII bucket, which is tried
// at positions whose leading character is above U+007F.
func WithNonASCII() RuleOption {
	return func(c *ruleConfig) {
		c.nonASCII = true
	}
}

// Rule registers a rule producing tokens.
//
// pattern is one of:
//   - string: compiled as a regular expression anchored at the position
//   - *regexp.Regexp: reanchored at the position
//   - Matcher or func(string, int) Match: used as is
func (l *Lexer) Rule(name string, pattern any, opts ...RuleOption) (*Rule, error) {
	return l.register(name, pattern, false, opts)
}

// Ignore registers a rule whose matches consume input without producing
// tokens, such as whitespace or comments. Ignored rules compete for the
// longest match like any other rule.
func (l *Lexer) Ignore(name string, pattern any, opts ...RuleOption) (*Rule, error) {
	return l.register(name, pattern, true, opts)
}

// Literal registers one rule per literal, each named by its text and
// filed under its first character. Literals are registered in order; on
// error, the literals before the failing one stay registered.
func (l *Lexer) Literal(literals ...string) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(literals))
	for _, lit := range literals {
		if lit == "" {
			return rules, configErrorf("empty literal")
		}
		first, size := utf8.DecodeRuneInString(lit)
		matcher := LiteralMatcher(lit)
		if size == len(lit) && !(first == utf8.RuneError && size == 1) {
			// Dispatch on the prefix already matched the whole literal.
			// An invalid byte shares its key with a real U+FFFD, so it
			// keeps the byte comparison.
			matcher = AlwaysMatcher
		}
		rule, err := NewRule(lit, matcher, nil, false)
		if err != nil {
			return rules, err
		}
		l.addPrefixRule(first, rule)
		rules = append(rules, rule)
	}
	return rules, nil
}

func (l *Lexer) register(name string, pattern any, ignore bool, opts []RuleOption) (*Rule, error) {
	var cfg ruleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.valueSet && cfg.value == nil {
		return nil, configErrorf("rule %q: value transform is nil", name)
	}

	prefixes := make([]rune, 0, len(cfg.prefixes))
	for _, p := range cfg.prefixes {
		r, size := utf8.DecodeRuneInString(p)
		if p == "" || size != len(p) {
			return nil, configErrorf("rule %q: prefix %q must be a single character", name, p)
		}
		prefixes = append(prefixes, r)
	}

	matcher, err := matcherFromPattern(name, pattern)
	if err != nil {
		return nil, err
	}
	rule, err := NewRule(name, matcher, cfg.value, ignore)
	if err != nil {
		return nil, err
	}

	if len(prefixes) == 0 && !cfg.nonASCII {
		l.globalRules = append(l.globalRules, rule)
		return rule, nil
	}
	for _, r := range prefixes {
		l.addPrefixRule(r, rule)
	}
	if cfg.nonASCII {
		l.nonASCIIRules = append(l.nonASCIIRules, rule)
	}
	return rule, nil
}

func (l *Lexer) addPrefixRule(c rune, rule *Rule) {
	if l.prefixRules == nil {
		l.prefixRules = make(map[rune][]*Rule)
	}
	l.prefixRules[c] = append(l.prefixRules[c], rule)
}

func matcherFromPattern(name string, pattern any) (Matcher, error) {
	switch p := pattern.(type) {
	case string:
		m, err := CompileRegex(p)
		if err != nil {
			return nil, configErrorf("rule %q: %v", name, err)
		}
		return m, nil
	case *regexp.Regexp:
		if p == nil {
			return nil, configErrorf("rule %q: nil regexp", name)
		}
		return RegexMatcher(p), nil
	case Matcher:
		if p == nil {
			return nil, configErrorf("rule %q: matcher is nil", name)
		}
		return p, nil
	case func(string, int) Match:
		if p == nil {
			return nil, configErrorf("rule %q: matcher is nil", name)
		}
		return p, nil
	default:
		return nil, configErrorf("rule %q: invalid pattern type %T", name, pattern)
	}
}

// candidates returns the rules to try when the leading rune is c, in
// tie-break order. The returned slices are shared and must not be modified.
func (l *Lexer) candidates(c rune) [3][]*Rule {
	var buckets [3][]*Rule
	buckets[0] = l.prefixRules[c]
	buckets[1] = l.globalRules
	if c > unicode.MaxASCII {
		buckets[2] = l.nonASCIIRules
	}
	return buckets
}
