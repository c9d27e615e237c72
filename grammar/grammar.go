// Package grammar implements the ABC v2.1 music-code-line PEG grammar:
// ordered choice, greedy repetition, and negative-lookahead predicates
// over a single input string, producing the flat, pre-order token
// sequence consumed by the canonify package's tree walker.
//
// The engine below is a direct, hand-rolled analogue of a pigeon-generated
// recursive-descent parser (compare open-policy-agent/opa's ast/parser.go,
// generated from rego.peg): a `current`-style cursor over the input plus a
// handful of combinators (seq, choice, star, plus, opt, not) standing in
// for pigeon's generated choiceExpr/seqExpr/zeroOrMoreExpr/etc. Without a
// .peg file and code generator available here, the grammar productions
// below are written out by hand in the same ordered-choice style pigeon
// would have produced.
package grammar

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/theabolton/abcdb/ast"
)

// Failure records a PEG parse failure: the furthest position any
// alternative progressed to, and the set of rules that were being
// attempted there.
type Failure struct {
	Pos      int
	Expected map[ast.Rule]struct{}
}

// parser is the PEG engine's mutable state. It is always used and
// discarded within a single call to Parse; nothing escapes it but the
// token slice and, on failure, a Failure.
type parser struct {
	input string
	pos   int
	tokens []ast.Token

	// furthest failure tracking, for the error formatter
	failPos      int
	failExpected map[ast.Rule]struct{}
}

// Parse runs the music_code_line production over input and returns the
// flat token sequence on success, or a Failure describing where and why
// every alternative was exhausted.
func Parse(input string) ([]ast.Token, *Failure) {
	p := &parser{input: input, failExpected: map[ast.Rule]struct{}{}}
	if p.musicCodeLine() {
		return p.tokens, nil
	}
	return nil, &Failure{Pos: p.failPos, Expected: p.failExpected}
}

// recordFailure tracks the furthest-reaching failure seen so far, the way
// a PEG parser's "expected set" is conventionally computed: failures at a
// position behind the current furthest one are discarded, failures beyond
// it reset the set, and failures at exactly the furthest position are
// unioned in.
func (p *parser) recordFailure(rule ast.Rule, pos int) {
	switch {
	case pos > p.failPos:
		p.failPos = pos
		p.failExpected = map[ast.Rule]struct{}{rule: {}}
	case pos == p.failPos:
		p.failExpected[rule] = struct{}{}
	}
}

// --- transactional bookkeeping -------------------------------------------------

type mark struct {
	pos    int
	ntoken int
}

func (p *parser) mark() mark {
	return mark{pos: p.pos, ntoken: len(p.tokens)}
}

func (p *parser) reset(m mark) {
	p.pos = m.pos
	p.tokens = p.tokens[:m.ntoken]
}

// rule wraps body as a named production: it reserves a token slot before
// descending (so the token sequence stays pre-order, parent before
// children, matching the flat-sequence nesting invariant: a child's Start
// always falls before its parent's End), backpatches the
// token's End on success, and discards the slot and any children pushed
// during a failed attempt.
func (p *parser) rule(r ast.Rule, body func() bool) bool {
	start := p.pos
	idx := len(p.tokens)
	p.tokens = append(p.tokens, ast.Token{Rule: r, Start: start})
	if body() {
		p.tokens[idx].End = p.pos
		return true
	}
	p.recordFailure(r, start)
	p.pos = start
	p.tokens = p.tokens[:idx]
	return false
}

// --- elementary matchers --------------------------------------------------

func (p *parser) lit(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) class(pred func(byte) bool) bool {
	if p.pos < len(p.input) && pred(p.input[p.pos]) {
		p.pos++
		return true
	}
	return false
}

// anyChar consumes exactly one Unicode code point, honoring ANY's
// character-class semantics over a UTF-8 string rather than a single byte.
func (p *parser) anyChar() bool {
	if p.pos >= len(p.input) {
		return false
	}
	_, size := utf8.DecodeRuneInString(p.input[p.pos:])
	if size == 0 {
		size = 1
	}
	p.pos += size
	return true
}

func (p *parser) eoi() bool {
	return p.pos == len(p.input)
}

// --- combinators -----------------------------------------------------------

// seq succeeds only if every fn succeeds in order; any failure rolls the
// whole sequence back atomically.
func (p *parser) seq(fns ...func() bool) bool {
	m := p.mark()
	for _, fn := range fns {
		if !fn() {
			p.reset(m)
			return false
		}
	}
	return true
}

// choice tries each fn in order, committing to the first that succeeds
// (PEG ordered choice: no reconsideration once an alternative succeeds).
func (p *parser) choice(fns ...func() bool) bool {
	for _, fn := range fns {
		m := p.mark()
		if fn() {
			return true
		}
		p.reset(m)
	}
	return false
}

// star matches fn zero or more times; it never fails.
func (p *parser) star(fn func() bool) bool {
	for fn() {
	}
	return true
}

// plus matches fn one or more times.
func (p *parser) plus(fn func() bool) bool {
	if !fn() {
		return false
	}
	p.star(fn)
	return true
}

// opt matches fn zero or one time; it never fails.
func (p *parser) opt(fn func() bool) bool {
	fn()
	return true
}

// not is the negative-lookahead predicate !X: it succeeds, without
// consuming input, iff fn fails.
func (p *parser) not(fn func() bool) bool {
	m := p.mark()
	ok := fn()
	p.reset(m)
	return !ok
}

// --- lexical helpers ---------------------------------------------------------

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// digits matches DIGITS ← [0-9]+ as a bare (unranked) combinator, used
// inside larger productions that themselves carry the rule tag (note
// length forms, repeat numbers, meters, tempos). Where DIGITS gets a token
// of its own (tuplet headers, clef numbers) p.digitsRule is used instead.
func (p *parser) digits() bool {
	return p.plus(func() bool { return p.class(isDigit) })
}

func (p *parser) digitsRule() bool {
	return p.rule(ast.RuleDigits, p.digits)
}

// WSP ← (" " | "\t")+
func (p *parser) wsp() bool {
	return p.rule(ast.RuleWSP, func() bool {
		return p.plus(func() bool {
			return p.class(func(b byte) bool { return b == ' ' || b == '\t' })
		})
	})
}

func (p *parser) optWSPStar() bool {
	return p.star(p.wsp)
}

func atoiSafe(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
