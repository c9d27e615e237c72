package canonify

import (
	"strings"
	"testing"

	"github.com/theabolton/abcdb/ast"
)

func TestRewriteAbcEolTrimsTrailingWhitespace(t *testing.T) {
	input := "  "
	w := &walker{input: input, tokens: []ast.Token{
		{Rule: ast.RuleAbcEol, Start: 0, End: 2},
		{Rule: ast.RuleWSP, Start: 0, End: 2},
	}}
	frag, next := rewriteAbcEol(w, 0)
	if got := frag.Materialize(input); got != "" {
		t.Fatalf("expected trailing whitespace fully trimmed, got %q", got)
	}
	if next != 2 {
		t.Fatalf("expected next=2, got %d", next)
	}
}

func TestRewriteAbcEolNoTrailingWhitespaceIsNoop(t *testing.T) {
	w := &walker{input: "", tokens: []ast.Token{
		{Rule: ast.RuleAbcEol, Start: 0, End: 0},
	}}
	frag, next := rewriteAbcEol(w, 0)
	if got := frag.Materialize(""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if next != 1 {
		t.Fatalf("expected next=1, got %d", next)
	}
}

func TestRewriteBadTextExpressionPrependsAt(t *testing.T) {
	input := "hello"
	w := &walker{input: input, tokens: []ast.Token{
		{Rule: ast.RuleBadTextExpression, Start: 0, End: 5},
		{Rule: ast.RuleNonQuote, Start: 0, End: 5},
	}}
	frag, next := rewriteBadTextExpression(w, 0)
	if got, want := frag.Materialize(input), "@hello"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if next != 2 {
		t.Fatalf("expected next=2, got %d", next)
	}
}

func TestRewriteChordNewlineAlwaysSemicolon(t *testing.T) {
	for _, input := range []string{"\\n", ";"} {
		w := &walker{input: input, tokens: []ast.Token{
			{Rule: ast.RuleChordNewline, Start: 0, End: len(input)},
		}}
		frag, next := rewriteChordNewline(w, 0)
		if got := frag.Materialize(input); got != ";" {
			t.Errorf("input %q: expected \";\", got %q", input, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", input, next)
		}
	}
}

func TestRewriteInvisibleBarline(t *testing.T) {
	cases := []struct{ input, want string }{
		{"[]", "[|]"},
		{"[|]", "[|]"},
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleInvisibleBarline, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteInvisibleBarline(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}
}

func TestRewriteNoteLengthBigger(t *testing.T) {
	cases := []struct{ input, want string }{
		{"1", ""},
		{"2", "2"},
		{"99999999999999999999", "99999999999999999999"}, // overflow: passthrough
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleNoteLengthBigger, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteNoteLengthBigger(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}
}

func TestRewriteNoteLengthFull(t *testing.T) {
	cases := []struct{ input, want string }{
		{"1/1", ""},
		{"2/1", "2"},
		{"10/1", "10"},
		{"1/2", "/"},
		{"1/4", "//"},
		{"1/8", "/8"},
		{"1/3", "/3"},
		{"3/8", "3/8"},
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleNoteLengthFull, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteNoteLengthFull(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}
}

func TestRewriteNoteLengthSlashes(t *testing.T) {
	cases := []struct{ input, want string }{
		{"/", "/"},
		{"//", "//"},
		{"///", "/8"},
		{"////", "/16"},
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleNoteLengthSlashes, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteNoteLengthSlashes(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}

	// Runs longer than 62 slashes pass through unchanged rather than being
	// rewritten to a /2^k count.
	huge := strings.Repeat("/", 63)
	w := &walker{input: huge, tokens: []ast.Token{
		{Rule: ast.RuleNoteLengthSlashes, Start: 0, End: len(huge)},
	}}
	frag, _ := rewriteNoteLengthSlashes(w, 0)
	if got := frag.Materialize(huge); got != huge {
		t.Fatalf("expected passthrough for 63 slashes, got %q", got)
	}
}

func TestRewriteNoteLengthSmaller(t *testing.T) {
	cases := []struct{ input, want string }{
		{"/2", "/"},
		{"/4", "//"},
		{"/8", "/8"},
		{"/3", "/3"},
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleNoteLengthSmaller, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteNoteLengthSmaller(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}
}

func TestRewriteWSP(t *testing.T) {
	cases := []struct{ input, want string }{
		{" ", " "},
		{"  ", " "},
		{"\t\t", " "},
		{" \t ", " "},
	}
	for _, c := range cases {
		w := &walker{input: c.input, tokens: []ast.Token{
			{Rule: ast.RuleWSP, Start: 0, End: len(c.input)},
		}}
		frag, next := rewriteWSP(w, 0)
		if got := frag.Materialize(c.input); got != c.want {
			t.Errorf("input %q: expected %q, got %q", c.input, c.want, got)
		}
		if next != 1 {
			t.Errorf("input %q: expected next=1, got %d", c.input, next)
		}
	}
}

func TestParseUint(t *testing.T) {
	if n, ok := parseUint("42"); !ok || n != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", n, ok)
	}
	if _, ok := parseUint("99999999999999999999"); ok {
		t.Fatalf("expected overflow to report ok=false")
	}
	if _, ok := parseUint("x"); ok {
		t.Fatalf("expected non-numeric input to report ok=false")
	}
}

func TestSplitFraction(t *testing.T) {
	num, den, ok := splitFraction("3/8")
	if !ok || num != 3 || den != 8 {
		t.Fatalf("expected (3, 8, true), got (%d, %d, %v)", num, den, ok)
	}
	if _, _, ok := splitFraction("no-slash"); ok {
		t.Fatalf("expected ok=false for input with no slash")
	}
}
