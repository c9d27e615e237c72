package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/theabolton/abcdb/ast"
)

func TestParseSucceedsOnSimpleNote(t *testing.T) {
	tokens, failure := Parse("A")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	root := tokens[0]
	if root.Rule != ast.RuleMusicCodeLine {
		t.Fatalf("expected root token to be RuleMusicCodeLine, got %v", root.Rule)
	}
	if root.Start != 0 || root.End != 1 {
		t.Fatalf("expected root span [0,1), got [%d,%d)", root.Start, root.End)
	}
}

func TestParseFailsOnUnterminatedQuote(t *testing.T) {
	_, failure := Parse(`"unterminated`)
	if failure == nil {
		t.Fatal("expected a parse failure")
	}
}

func TestParseTokenSpansStayInBounds(t *testing.T) {
	input := `A2 B/2 "^foo" [|]`
	tokens, failure := Parse(input)
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	if tokens[0].Start != 0 || tokens[0].End != len(input) {
		t.Fatalf("expected root token to span the whole input [0,%d), got [%d,%d)",
			len(input), tokens[0].Start, tokens[0].End)
	}
	for i, tok := range tokens {
		if tok.Start < 0 || tok.End > len(input) || tok.Start > tok.End {
			t.Errorf("token %d has out-of-bounds span [%d,%d) for input of length %d",
				i, tok.Start, tok.End, len(input))
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := `A2 B/2 "^foo" [|]`
	first, failure := Parse(input)
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	second, failure := Parse(input)
	if failure != nil {
		t.Fatalf("unexpected failure on second parse: %+v", failure)
	}
	// reflect.DeepEqual would just say "not equal" for a mismatched token
	// slice; cmp.Diff points at the exact index and field that moved.
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two parses of the same input produced different token streams (-first +second):\n%s", diff)
	}
}

func TestParseEmptyLine(t *testing.T) {
	tokens, failure := Parse("")
	if failure == nil {
		t.Fatalf("expected empty input to fail (abc_line requires at least one barline or element)")
	}
	_ = tokens
}

func TestFormatFailureShortInput(t *testing.T) {
	input := `"unterminated`
	_, failure := Parse(input)
	if failure == nil {
		t.Fatal("expected a parse failure")
	}
	msg := FormatFailure(input, failure)
	if msg == "" {
		t.Fatal("expected a non-empty diagnostic message")
	}
	if !containsAll(msg, "ABC parse failed at character", "expected") {
		t.Errorf("unexpected diagnostic shape: %q", msg)
	}
}

func TestFormatFailureClampsPastEndOfInput(t *testing.T) {
	f := &Failure{Pos: 1000, Expected: map[ast.Rule]struct{}{ast.RuleBarline: {}}}
	msg := FormatFailure("short", f)
	if !containsAll(msg, "character 5") {
		t.Errorf("expected position clamped to input length, got %q", msg)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
