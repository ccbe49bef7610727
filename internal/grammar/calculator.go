// Package grammar holds ready-made rule sets for the lexer package.
package grammar

import (
	"strconv"

	"github.com/hassan/rulelex/internal/lexer"
)

// Whitespace is the set of characters the calculator grammar skips. It
// includes \v, which the regexp class \s does not.
const Whitespace = " \t\n\r\v\f"

// Calculator is the rule set for arithmetic expressions over integers and
// identifiers: 1 + 2 * (x - -4).
type Calculator struct {
	Lexer *lexer.Lexer

	Number     *lexer.Rule
	Identifier *lexer.Rule
	Whitespace *lexer.Rule

	// Operators maps each operator and parenthesis to its literal rule.
	Operators map[string]*lexer.Rule
}

// NewCalculator builds the calculator grammar.
//
// Numbers decode to int and identifiers to string.
func NewCalculator() (*Calculator, error) {
	lx := lexer.New()
	c := &Calculator{Lexer: lx, Operators: make(map[string]*lexer.Rule)}

	ops, err := lx.Literal("(", ")", "+", "-", "*", "/")
	if err != nil {
		return nil, err
	}
	for _, op := range ops {
		c.Operators[op.Name()] = op
	}

	c.Whitespace, err = lx.Ignore("whitespace", "["+Whitespace+"]+", lexer.WithPrefixChars(Whitespace))
	if err != nil {
		return nil, err
	}
	c.Number, err = lx.Rule("number", `[0-9]+`, lexer.WithValue(decodeInt))
	if err != nil {
		return nil, err
	}
	c.Identifier, err = lx.Rule("identifier", `[A-Za-z_][A-Za-z0-9_]*`, lexer.WithValue(decodeString))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Tokenize scans text and returns its tokens, End included.
func (c *Calculator) Tokenize(filename, text string) ([]lexer.Token, error) {
	src := lexer.NewSourceFile(filename, text)
	return lexer.NewSourceLexer(c.Lexer, src).All()
}

func decodeInt(text string) (any, error) {
	return strconv.Atoi(text)
}

func decodeString(text string) (any, error) {
	return text, nil
}
