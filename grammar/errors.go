package grammar

import (
	"fmt"
	"sort"

	"github.com/theabolton/abcdb/ast"
)

// FormatFailure turns a Failure into a contextual, human-readable
// diagnostic:
//
//	ABC parse failed at character {pos}, matched '{left}', could not
//	match '{right}...', expected {rules}
//
// left is the up-to-10 characters of input immediately before pos
// (prefixed with "..." iff pos > 10); right is the up-to-10 characters
// starting at pos (suffixed with "..." iff at least 10 characters remain
// beyond pos). Both bounds are clamped to len(input), since a naive
// input[pos:pos+10] slice may run past the end.
func FormatFailure(input string, f *Failure) string {
	pos := f.Pos
	if pos > len(input) {
		pos = len(input)
	}

	var left string
	if pos > 10 {
		left = "..." + input[pos-10:pos]
	} else {
		left = input[0:pos]
	}

	end := pos + 10
	var right string
	if end < len(input) {
		right = input[pos:end] + "..."
	} else {
		right = input[pos:len(input)]
	}

	return fmt.Sprintf(
		"ABC parse failed at character %d, matched '%s', could not match '%s', expected %s",
		pos, left, right, renderExpected(f.Expected),
	)
}

// renderExpected prints the expected-rule set the way Go's %v prints a
// slice: bracketed, space-separated, alphabetically sorted for
// determinism (a Go map has no inherent order).
func renderExpected(expected map[ast.Rule]struct{}) string {
	names := make([]string, 0, len(expected))
	for r := range expected {
		names = append(names, r.String())
	}
	sort.Strings(names)
	s := "["
	for i, n := range names {
		if i > 0 {
			s += " "
		}
		s += n
	}
	return s + "]"
}
