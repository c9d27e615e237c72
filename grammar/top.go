package grammar

import "github.com/theabolton/abcdb/ast"

// music_code_line ← abc_line EOI
func (p *parser) musicCodeLine() bool {
	return p.rule(ast.RuleMusicCodeLine, func() bool {
		return p.seq(p.abcLine, p.eoi)
	})
}

// abc_line ← ((barline? element+ (barline element+)* barline?) | barline) abc_eol
func (p *parser) abcLine() bool {
	return p.rule(ast.RuleAbcLine, func() bool {
		body := func() bool {
			return p.choice(
				func() bool {
					return p.seq(
						func() bool { return p.opt(p.barline) },
						func() bool { return p.plus(p.element) },
						func() bool {
							return p.star(func() bool {
								return p.seq(p.barline, func() bool { return p.plus(p.element) })
							})
						},
						func() bool { return p.opt(p.barline) },
					)
				},
				p.barline,
			)
		}
		return p.seq(body, p.abcEol)
	})
}

// abc_eol ← line_continuation? WSP*
//
// Canonifier rewrite: trim trailing whitespace from the gathered result.
func (p *parser) abcEol() bool {
	return p.rule(ast.RuleAbcEol, func() bool {
		return p.seq(
			func() bool { return p.opt(p.lineContinuation) },
			func() bool { return p.star(p.wsp) },
		)
	})
}

// line_continuation ← "\\"
func (p *parser) lineContinuation() bool {
	return p.rule(ast.RuleLineContinuation, func() bool { return p.lit("\\") })
}

// element ← broken_rhythm | stem | WSP | chord_or_text | gracing |
//           grace_notes | tuplet | slur_begin | slur_end | rollback |
//           multi_measure_rest | measure_repeat | nth_repeat |
//           end_nth_repeat | inline_field | hard_line_break | unused_char
//
// Ordering is significant: broken_rhythm must precede stem
// (a broken rhythm begins with a stem). multi_measure_rest's "Z" is not a
// basenote or rest letter, and end_nth_repeat's "]" starts no earlier
// alternative, so their positions do not change what matches.
//
// WSP as an element never runs to the end of the line: trailing
// whitespace is left to abc_eol, which trims it.
func (p *parser) element() bool {
	return p.choice(
		p.brokenRhythm,
		p.stem,
		func() bool { return p.seq(p.wsp, func() bool { return p.not(p.eoi) }) },
		p.chordOrText,
		p.gracing,
		p.graceNotes,
		p.tuplet,
		p.slurBegin,
		p.slurEnd,
		p.rollback,
		p.multiMeasureRest,
		p.measureRepeat,
		p.nthRepeat,
		p.endNthRepeat,
		p.inlineField,
		p.hardLineBreak,
		p.unusedChar,
	)
}
