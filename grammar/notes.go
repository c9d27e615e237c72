package grammar

import "github.com/theabolton/abcdb/ast"

// pitch ← accidental? basenote octave?
func (p *parser) pitch() bool {
	return p.rule(ast.RulePitch, func() bool {
		return p.seq(
			func() bool { return p.opt(p.accidental) },
			p.basenote,
			func() bool { return p.opt(p.octave) },
		)
	})
}

// basenote ← [A-Ga-g]
func (p *parser) basenote() bool {
	return p.rule(ast.RuleBasenote, func() bool {
		return p.class(func(b byte) bool {
			return (b >= 'A' && b <= 'G') || (b >= 'a' && b <= 'g')
		})
	})
}

// accidental ← "^^" | "^" | "__" | "_" | "="
//
// Doubles precede singles so "^^" isn't matched as two "^" accidentals.
func (p *parser) accidental() bool {
	return p.rule(ast.RuleAccidental, func() bool {
		return p.choice(
			func() bool { return p.lit("^^") },
			func() bool { return p.lit("^") },
			func() bool { return p.lit("__") },
			func() bool { return p.lit("_") },
			func() bool { return p.lit("=") },
		)
	})
}

// octave ← "'"+ | ","+
func (p *parser) octave() bool {
	return p.rule(ast.RuleOctave, func() bool {
		return p.choice(
			func() bool { return p.plus(func() bool { return p.lit("'") }) },
			func() bool { return p.plus(func() bool { return p.lit(",") }) },
		)
	})
}

// note ← pitch note_length?
func (p *parser) note() bool {
	return p.rule(ast.RuleNote, func() bool {
		return p.seq(p.pitch, func() bool { return p.opt(p.noteLength) })
	})
}

// note_length ← note_length_full | note_length_smaller | note_length_bigger
//             | note_length_slashes
//
// Must fail on empty input: each alternative requires at least one byte,
// so note_length never zero-width matches.
func (p *parser) noteLength() bool {
	return p.choice(p.noteLengthFull, p.noteLengthSmaller, p.noteLengthBigger, p.noteLengthSlashes)
}

// note_length_full ← DIGITS "/" DIGITS
//
// Canonifier rewrite: 1/1 vanishes, N/1 reduces to the bare multiplier N,
// 1/2 and 1/4 reduce to "/" and "//", 1/M reduces to "/M", and any other
// N/M is left as-is.
func (p *parser) noteLengthFull() bool {
	return p.rule(ast.RuleNoteLengthFull, func() bool {
		return p.seq(p.digits, func() bool { return p.lit("/") }, p.digits)
	})
}

// note_length_smaller ← "/" DIGITS
//
// Canonifier rewrite: /2 reduces to "/" and /4 reduces to "//"; any other
// divisor is left as-is.
func (p *parser) noteLengthSmaller() bool {
	return p.rule(ast.RuleNoteLengthSmaller, func() bool {
		return p.seq(func() bool { return p.lit("/") }, p.digits)
	})
}

// note_length_bigger ← DIGITS
//
// Canonifier rewrite: a bare multiplier of 1 vanishes; anything else is
// left as-is.
func (p *parser) noteLengthBigger() bool {
	return p.rule(ast.RuleNoteLengthBigger, p.digits)
}

// note_length_slashes ← "/"+
//
// Canonifier rewrite: a run of k slashes beyond the first two reduces to
// "/{2^k}"; "/" and "//" are already canonical.
func (p *parser) noteLengthSlashes() bool {
	return p.rule(ast.RuleNoteLengthSlashes, func() bool {
		return p.plus(func() bool { return p.lit("/") })
	})
}

// note_length_strict ← DIGITS "/" DIGITS | "1"
//
// Used inside fields (e.g. [L:...]) where a bare multiplier is not
// accepted — only an explicit fraction or the literal unit length "1".
func (p *parser) noteLengthStrict() bool {
	return p.rule(ast.RuleNoteLengthStrict, func() bool {
		return p.choice(
			func() bool { return p.seq(p.digits, func() bool { return p.lit("/") }, p.digits) },
			func() bool { return p.lit("1") },
		)
	})
}

// rest ← ("x"|"y"|"z") note_length?
func (p *parser) rest() bool {
	return p.rule(ast.RuleRest, func() bool {
		return p.seq(
			func() bool { return p.class(func(b byte) bool { return b == 'x' || b == 'y' || b == 'z' }) },
			func() bool { return p.opt(p.noteLength) },
		)
	})
}

// multi_measure_rest ← "Z" [0-9]*
func (p *parser) multiMeasureRest() bool {
	return p.rule(ast.RuleMultiMeasureRest, func() bool {
		return p.seq(func() bool { return p.lit("Z") }, func() bool { return p.star(func() bool { return p.class(isDigit) }) })
	})
}

// measure_repeat ← "/" "/"?
//
// Per the ABC v2.1 standard's measure-repeat notation, a bare "/" repeats
// the previous bar and "//" repeats the previous two bars. It is tried
// late in the element alternation, so a "/" that could instead belong to
// a preceding note's length was already consumed by that note.
func (p *parser) measureRepeat() bool {
	return p.rule(ast.RuleMeasureRepeat, func() bool {
		return p.seq(func() bool { return p.lit("/") }, func() bool { return p.opt(func() bool { return p.lit("/") }) })
	})
}

// stem ← ("[" note note+ "]" tie?) | note | rest
func (p *parser) stem() bool {
	return p.rule(ast.RuleStem, func() bool {
		return p.choice(
			func() bool {
				return p.seq(
					func() bool { return p.lit("[") },
					p.note,
					func() bool { return p.plus(p.note) },
					func() bool { return p.lit("]") },
					func() bool { return p.opt(p.tie) },
				)
			},
			p.note,
			p.rest,
		)
	})
}

// tie ← "-"
func (p *parser) tie() bool { return p.rule(ast.RuleTie, func() bool { return p.lit("-") }) }

// slur_begin ← "("
func (p *parser) slurBegin() bool {
	return p.rule(ast.RuleSlurBegin, func() bool { return p.lit("(") })
}

// slur_end ← ")"
func (p *parser) slurEnd() bool {
	return p.rule(ast.RuleSlurEnd, func() bool { return p.lit(")") })
}

// rollback ← "&"
func (p *parser) rollback() bool {
	return p.rule(ast.RuleRollback, func() bool { return p.lit("&") })
}

// broken_rhythm ← stem b_elem* b_sep b_sep? b_sep? b_elem* stem
func (p *parser) brokenRhythm() bool {
	return p.rule(ast.RuleBrokenRhythm, func() bool {
		return p.seq(
			p.stem,
			func() bool { return p.star(p.bElem) },
			p.bSep,
			func() bool { return p.opt(p.bSep) },
			func() bool { return p.opt(p.bSep) },
			func() bool { return p.star(p.bElem) },
			p.stem,
		)
	})
}

// b_sep ← "<" | ">"
func (p *parser) bSep() bool {
	return p.rule(ast.RuleBSep, func() bool {
		return p.choice(func() bool { return p.lit("<") }, func() bool { return p.lit(">") })
	})
}

// b_elem ← WSP | chord_or_text | gracing | grace_notes | slur_begin | slur_end
func (p *parser) bElem() bool {
	return p.rule(ast.RuleBElem, func() bool {
		return p.choice(p.wsp, p.chordOrText, p.gracing, p.graceNotes, p.slurBegin, p.slurEnd)
	})
}

// grace_notes ← "{" acciaccatura? grace_note_stem+ "}"
func (p *parser) graceNotes() bool {
	return p.rule(ast.RuleGraceNotes, func() bool {
		return p.seq(
			func() bool { return p.lit("{") },
			func() bool { return p.opt(p.acciaccatura) },
			func() bool { return p.plus(p.graceNoteStem) },
			func() bool { return p.lit("}") },
		)
	})
}

// grace_note_stem ← grace_note | ("[" grace_note grace_note+ "]")
func (p *parser) graceNoteStem() bool {
	return p.rule(ast.RuleGraceNoteStem, func() bool {
		return p.choice(
			p.graceNote,
			func() bool {
				return p.seq(
					func() bool { return p.lit("[") },
					p.graceNote,
					func() bool { return p.plus(p.graceNote) },
					func() bool { return p.lit("]") },
				)
			},
		)
	})
}

// grace_note ← pitch note_length?
func (p *parser) graceNote() bool {
	return p.rule(ast.RuleGraceNote, func() bool {
		return p.seq(p.pitch, func() bool { return p.opt(p.noteLength) })
	})
}

// acciaccatura ← "/"
func (p *parser) acciaccatura() bool {
	return p.rule(ast.RuleAcciaccatura, func() bool { return p.lit("/") })
}

// tuplet ← "(" DIGITS (":" DIGITS? ":" DIGITS?)?
//
// Only the header is part of the tuplet; the counted elements that follow
// are ordinary elements matched by the surrounding abc_line repetition.
func (p *parser) tuplet() bool {
	return p.rule(ast.RuleTuplet, func() bool {
		return p.seq(
			func() bool { return p.lit("(") },
			p.digitsRule,
			func() bool {
				return p.opt(func() bool {
					return p.seq(
						func() bool { return p.lit(":") },
						func() bool { return p.opt(p.digitsRule) },
						func() bool { return p.lit(":") },
						func() bool { return p.opt(p.digitsRule) },
					)
				})
			},
		)
	})
}
