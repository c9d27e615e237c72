package ast

// Token is a single matched grammar production: the rule that matched and
// the byte range, [Start,End), of input it covers. A parse result is an
// ordered sequence of Tokens satisfying a nesting invariant: a token at
// i+1 is a child of the token at i iff its Start is before the parent's
// End, siblings are non-overlapping and ordered by Start, and children
// follow their parent contiguously in the sequence.
type Token struct {
	Rule  Rule
	Start int
	End   int
}

// Text returns the slice of input covered by t.
func (t Token) Text(input string) string {
	return input[t.Start:t.End]
}

// IsChildOf reports whether t is nested inside parent per the sequence
// invariant: t starts before parent ends.
func (t Token) IsChildOf(parent Token) bool {
	return t.Start < parent.End
}
