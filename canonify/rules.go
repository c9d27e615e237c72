package canonify

import (
	"strconv"
	"strings"

	"github.com/theabolton/abcdb/internal/strbuilder"
)

// Each function below implements exactly one of the nine named rewrites.
// All other rules fall through to gather (walker.go).

// abc_eol: gather children, then trim trailing whitespace. If nothing was
// trimmed, the gathered fragment (which may still be a zero-copy slice)
// is returned unchanged.
func rewriteAbcEol(w *walker, i int) (strbuilder.Fragment, int) {
	frag, next := w.gather(i)
	s := frag.Materialize(w.input)
	trimmed := strings.TrimRight(s, " \t")
	if trimmed == s {
		return frag, next
	}
	return strbuilder.FromOwned(trimmed), next
}

// bad_text_expression: gather children, then prepend "@" so a downstream
// parser that only accepts well-formed annotations still sees a valid
// placement symbol.
func rewriteBadTextExpression(w *walker, i int) (strbuilder.Fragment, int) {
	frag, next := w.gather(i)
	return strbuilder.FromOwned("@" + frag.Materialize(w.input)), next
}

// chord_newline has no children (it's a plain literal alternative); both
// spellings canonify to ";".
func rewriteChordNewline(w *walker, i int) (strbuilder.Fragment, int) {
	return strbuilder.FromOwned(";"), i + 1
}

// invisible_barline has no children; the non-standard "[]" spelling
// canonifies to the standard "[|]", everything else passes through.
func rewriteInvisibleBarline(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	if t.Text(w.input) == "[]" {
		return strbuilder.FromOwned("[|]"), i + 1
	}
	return strbuilder.FromSlice(t.Start, t.End), i + 1
}

// note_length_bigger (bare multiplier N, no children): N==1 vanishes
// ("a1" -> "a"), anything else passes through, including values too large
// to parse (an overflowing multiplier must not fail the rewrite).
func rewriteNoteLengthBigger(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	text := t.Text(w.input)
	if n, ok := parseUint(text); ok && n == 1 {
		return strbuilder.FromOwned(""), i + 1
	}
	return strbuilder.FromSlice(t.Start, t.End), i + 1
}

// note_length_full (form N/M, no children): applies the reduction table
// documented on the note_length_full production in grammar/notes.go.
func rewriteNoteLengthFull(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	text := t.Text(w.input)
	passthrough := func() (strbuilder.Fragment, int) {
		return strbuilder.FromSlice(t.Start, t.End), i + 1
	}

	num, den, ok := splitFraction(text)
	if !ok {
		return passthrough()
	}

	switch {
	case num == 1 && den == 1:
		return strbuilder.FromOwned(""), i + 1
	case den == 1:
		return strbuilder.FromOwned(strconv.FormatUint(num, 10)), i + 1
	case num == 1 && den == 2:
		return strbuilder.FromOwned("/"), i + 1
	case num == 1 && den == 4:
		return strbuilder.FromOwned("//"), i + 1
	case num == 1:
		return strbuilder.FromOwned("/" + strconv.FormatUint(den, 10)), i + 1
	default:
		return passthrough()
	}
}

// note_length_slashes (one or more "/", no children): runs of length 1 or
// 2 pass through (they are already canonical fixed points of the rewrite);
// runs of 3 to 62 slashes canonify to "/{2^k}"; longer runs pass through.
func rewriteNoteLengthSlashes(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	k := t.End - t.Start
	if k <= 2 || k > 62 {
		return strbuilder.FromSlice(t.Start, t.End), i + 1
	}
	return strbuilder.FromOwned("/" + strconv.FormatUint(1<<uint(k), 10)), i + 1
}

// note_length_smaller (form /M, no children): /2 -> /, /4 -> //, else
// passthrough.
func rewriteNoteLengthSmaller(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	text := t.Text(w.input)
	m, ok := parseUint(text[1:]) // drop leading "/"
	if ok {
		switch m {
		case 2:
			return strbuilder.FromOwned("/"), i + 1
		case 4:
			return strbuilder.FromOwned("//"), i + 1
		}
	}
	return strbuilder.FromSlice(t.Start, t.End), i + 1
}

// WSP (no children): a single space passes through unchanged; any other
// run of spaces/tabs collapses to one space.
func rewriteWSP(w *walker, i int) (strbuilder.Fragment, int) {
	t := w.tokens[i]
	if t.Text(w.input) == " " {
		return strbuilder.FromSlice(t.Start, t.End), i + 1
	}
	return strbuilder.FromOwned(" "), i + 1
}

// parseUint parses an unsigned decimal integer, returning ok=false rather
// than erroring on overflow — callers treat that as "not the special
// case", which the rewrite laws require to fall through to passthrough.
func parseUint(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitFraction parses "N/M" into its two unsigned integers.
func splitFraction(s string) (num, den uint64, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, ok1 := parseUint(parts[0])
	den, ok2 := parseUint(parts[1])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return num, den, true
}
