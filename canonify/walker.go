// Package canonify implements the tree walker and per-rule rewrites: a
// generic traversal over the flat token sequence produced by package
// grammar that, for each node, either applies a rule-specific rewrite or
// recursively emits children interleaved with the literal input spanning
// the gaps between them.
package canonify

import (
	"github.com/theabolton/abcdb/ast"
	"github.com/theabolton/abcdb/internal/strbuilder"
)

// handler produces the canonical fragment for the token at tokens[i],
// returning the fragment and the index of the token following the one it
// consumed (itself plus all of its descendants).
type handler func(w *walker, i int) (strbuilder.Fragment, int)

// dispatch is the total function from Rule to handler: every rule not
// listed here falls through to gather, the default "pass children and
// literal gaps through unchanged" behavior.
// It is filled in by init rather than a variable initializer because the
// handlers reach back into dispatch through gather and visit.
var dispatch map[ast.Rule]handler

func init() {
	dispatch = map[ast.Rule]handler{
		ast.RuleAbcEol:            rewriteAbcEol,
		ast.RuleBadTextExpression: rewriteBadTextExpression,
		ast.RuleChordNewline:      rewriteChordNewline,
		ast.RuleInvisibleBarline:  rewriteInvisibleBarline,
		ast.RuleNoteLengthBigger:  rewriteNoteLengthBigger,
		ast.RuleNoteLengthFull:    rewriteNoteLengthFull,
		ast.RuleNoteLengthSlashes: rewriteNoteLengthSlashes,
		ast.RuleNoteLengthSmaller: rewriteNoteLengthSmaller,
		ast.RuleWSP:               rewriteWSP,
	}
}

// walker holds the shared, read-only state of one top-to-bottom traversal:
// the input string and the flat token sequence to walk over.
type walker struct {
	input  string
	tokens []ast.Token
}

// Walk canonifies the whole token sequence: iterate the top level,
// dispatching (and thereby recursing into) each top-level token in turn.
func Walk(input string, tokens []ast.Token) string {
	w := &walker{input: input, tokens: tokens}
	b := strbuilder.New(input)
	i := 0
	for i < len(tokens) {
		frag, next := w.visit(i)
		b.Append(frag)
		i = next
	}
	return b.String()
}

// visit dispatches tokens[i] to its handler, defaulting to gather.
func (w *walker) visit(i int) (strbuilder.Fragment, int) {
	if h, ok := dispatch[w.tokens[i].Rule]; ok {
		return h(w, i)
	}
	return w.gather(i)
}

// gather walks the children of tokens[i], interleaving each with the
// literal input spanning the gap
// since the previous child (or the parent's own start, for the first
// gap), and finally the gap between the last child and the parent's end.
// A childless node simply emits its own span.
func (w *walker) gather(i int) (strbuilder.Fragment, int) {
	parent := w.tokens[i]
	childI := i + 1
	if childI >= len(w.tokens) || !w.tokens[childI].IsChildOf(parent) {
		return strbuilder.FromSlice(parent.Start, parent.End), i + 1
	}

	b := strbuilder.New(w.input)
	cursor := parent.Start
	for childI < len(w.tokens) && w.tokens[childI].IsChildOf(parent) {
		child := w.tokens[childI]
		if cursor < child.Start {
			b.AppendSlice(cursor, child.Start)
		}
		frag, next := w.visit(childI)
		b.Append(frag)
		cursor = child.End
		childI = next
	}
	if cursor < parent.End {
		b.AppendSlice(cursor, parent.End)
	}
	return b.Fragment(), childI
}
