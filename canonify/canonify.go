// Package canonify ties the grammar and tree-walker packages together into
// the one operation this system exposes at every boundary (library call,
// HTTP handler, CLI, cgo FFI): take one ABC music-code line and return its
// canonical form, or a diagnostic explaining why it couldn't be parsed.
package canonify

import (
	"fmt"

	"github.com/theabolton/abcdb/ast"
	"github.com/theabolton/abcdb/grammar"
)

// Canonify parses input as a single ABC v2.1 music-code line and rewrites
// it into canonical form. On a parse failure it returns a *ast.Error with
// code ParseErr, Location set to the furthest position reached, and a
// Message produced by grammar.FormatFailure. A panic anywhere in the
// grammar or walker (an invariant violation, not a malformed-input
// condition) is recovered and reported as code PanicErr rather than
// propagated to the caller.
func Canonify(input string) (result string, err *ast.Error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = ast.NewError(ast.PanicErr, nil, "internal error: %v", r)
		}
	}()

	tokens, failure := grammar.Parse(input)
	if failure != nil {
		loc := ast.NewLocation(failure.Pos)
		return "", ast.NewError(ast.ParseErr, loc, "%s", grammar.FormatFailure(input, failure))
	}

	return Walk(input, tokens), nil
}

// MustCanonify is Canonify for callers (tests, REPL one-shots) that prefer
// a panic to an error return.
func MustCanonify(input string) string {
	out, err := Canonify(input)
	if err != nil {
		panic(fmt.Sprintf("canonify: %v", err))
	}
	return out
}
