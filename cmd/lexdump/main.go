// Package main provides lexdump, which tokenizes a file with the
// calculator grammar and prints one token per line.
//
// Usage:
//
//	lexdump [-keep-going] <source-file | ->
//
// Each line is "line:column<TAB>token". The last line is end-of-file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hassan/rulelex/internal/grammar"
	"github.com/hassan/rulelex/internal/lexer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lexdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	keepGoing := fs.Bool("keep-going", false, "skip unexpected characters instead of stopping")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Usage: lexdump [-keep-going] <source-file | ->\n")
		return 2
	}

	filename := fs.Arg(0)
	var (
		source []byte
		err    error
	)
	if filename == "-" {
		filename = "<stdin>"
		source, err = io.ReadAll(stdin)
	} else {
		source, err = os.ReadFile(filename)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return 1
	}

	calc, err := grammar.NewCalculator()
	if err != nil {
		fmt.Fprintf(stderr, "Error building grammar: %v\n", err)
		return 1
	}

	sl := lexer.NewSourceLexer(calc.Lexer, lexer.NewSourceFile(filename, string(source)))
	return dump(sl, *keepGoing, stdout, stderr)
}

func dump(sl *lexer.SourceLexer, keepGoing bool, stdout, stderr io.Writer) int {
	status := 0
	for {
		tok, err := sl.Scan()
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			var lexErr *lexer.LexError
			if !keepGoing || !errors.As(err, &lexErr) {
				return 1
			}
			status = 1
			if err := sl.SkipTo(lexErr.Span.End()); err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return 1
			}
			continue
		}

		line, col := tok.LineCol()
		fmt.Fprintf(stdout, "%d:%d\t%s\n", line, col, tok)
		if tok.IsEnd() {
			return status
		}
	}
}
