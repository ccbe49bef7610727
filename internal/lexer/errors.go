package lexer

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one
// of these with errors.Is.
var (
	// ErrConfig is returned while registering rules with invalid setup.
	ErrConfig = errors.New("lexer configuration error")

	// ErrSpan is returned when a Span would not fit its source.
	ErrSpan = errors.New("invalid span")

	// ErrLexical is returned by Scan when no rule advances at the cursor.
	ErrLexical = errors.New("lexical error")

	// ErrMatcherContract is returned by Scan when a Matcher reports an
	// impossible result.
	ErrMatcherContract = errors.New("matcher contract violation")

	// ErrValue is returned by Scan when a rule's value transform fails.
	ErrValue = errors.New("value transform failed")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...)
}

// LexError reports input that no rule matches. Span covers the offending
// character, so Span.End is where a caller resynchronizing the scan
// would continue.
type LexError struct {
	Span Span
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Span.Position(), e.Char)
}

// Is makes a LexError match ErrLexical.
func (e *LexError) Is(target error) bool {
	return target == ErrLexical
}

// Offset returns the byte offset of the offending character.
func (e *LexError) Offset() int {
	return e.Span.Begin()
}

// ContractError reports a Matcher result that cannot be used: an unknown
// MatchKind or an end offset before the scan position or past the text.
type ContractError struct {
	Rule   *Rule
	Offset int
	Result Match
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("rule %s at offset %d: matcher returned %s ending at %d",
		e.Rule, e.Offset, e.Result.Kind, e.Result.End)
}

// Is makes a ContractError match ErrMatcherContract.
func (e *ContractError) Is(target error) bool {
	return target == ErrMatcherContract
}

// ValueError wraps the error of a rule's value transform.
type ValueError struct {
	Rule *Rule
	Span Span
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: rule %s: decoding %s: %v", e.Span.Position(), e.Rule, e.Span, e.Err)
}

// Is makes a ValueError match ErrValue.
func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
