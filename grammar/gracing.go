package grammar

import "github.com/theabolton/abcdb/ast"

// gracing ← "!" (gracing1 | gracing2 | gracing3 | gracing_nonstandard | gracing4) "!"
//         | "!" gracing_catchall "!"
func (p *parser) gracing() bool {
	return p.rule(ast.RuleGracing, func() bool {
		return p.choice(
			func() bool {
				return p.seq(
					func() bool { return p.lit("!") },
					func() bool {
						return p.choice(p.gracing1, p.gracing2, p.gracing3, p.gracingNonstandard, p.gracing4)
					},
					func() bool { return p.lit("!") },
				)
			},
			func() bool {
				return p.seq(
					func() bool { return p.lit("!") },
					p.gracingCatchall,
					func() bool { return p.lit("!") },
				)
			},
		)
	})
}

// literalChoice tries each literal in s in order and matches the first
// that is a prefix of the remaining input — the fixed-string alternatives
// of gracing1..gracing4 are written this way, with longer names ahead of
// their prefixes where the list orders them so (e.g. "ffff" before "fff"
// before "ff" before "f"). Where a shorter name comes first ("f" before
// "fine", "p" before "plus"), the longer decoration fails the closing "!"
// and is matched by gracing_catchall instead.
func (p *parser) literalChoice(alts ...string) bool {
	for _, s := range alts {
		if p.lit(s) {
			return true
		}
	}
	return false
}

// gracing1 enumerates the first group of the long decoration-name list,
// in the exact order the grammar requires.
func (p *parser) gracing1() bool {
	return p.rule(ast.RuleGracing1, func() bool {
		return p.literalChoice(
			"accent", "arpeggio", "coda", "crescendo(", "crescendo)", "dacapo",
			"decresc", "diminuendo(", "diminuendo)", "downbow", "emphasis",
			"fermata", "ffff", "fff", "ff", "f", "fine", "fp",
		)
	})
}

func (p *parser) gracing2() bool {
	return p.rule(ast.RuleGracing2, func() bool {
		return p.literalChoice(
			"invertedfermata", "invertedturnx", "invertedturn", "longphrase",
			"lowermordent", "mediumphrase", "mf", "mordent", "mp", "open", "p",
			"plus", "pppp", "ppp", "pp",
		)
	})
}

func (p *parser) gracing3() bool {
	return p.rule(ast.RuleGracing3, func() bool {
		return p.literalChoice(
			"pralltriller", "roll", "segno", "sfz", "shortphrase", "slide",
			"snap", "tenuto", "thumb", "trill(", "trill)", "trill", "turnx",
			"turn", "upbow", "uppermordent", "wedge",
		)
	})
}

// gracing_nonstandard groups the non-standard markers (paired arrows,
// D.C./D.S., and the crescendo/diminuendo/dacoda abbreviations);
// preserved verbatim, since no canonifier rewrite touches them.
func (p *parser) gracingNonstandard() bool {
	return p.rule(ast.RuleGracingNonstandard, func() bool {
		return p.literalChoice(
			"<(", "<)", ">(", ">)", "D.C.", "D.S.", "cresc", "dimin", "dacoda",
		)
	})
}

// gracing4 ← "+" | "<" | ">" | [0-5] | "repeatbar" DIGITS
func (p *parser) gracing4() bool {
	return p.rule(ast.RuleGracing4, func() bool {
		return p.choice(
			func() bool { return p.lit("+") },
			func() bool { return p.lit("<") },
			func() bool { return p.lit(">") },
			func() bool { return p.class(func(b byte) bool { return b >= '0' && b <= '5' }) },
			p.repeatbar,
		)
	})
}

// repeatbar ← "repeatbar" DIGITS
func (p *parser) repeatbar() bool {
	return p.rule(ast.RuleRepeatbar, func() bool {
		return p.seq(func() bool { return p.lit("repeatbar") }, p.digits)
	})
}

// gracing_catchall ← [\"..~]+ — ASCII 0x22 ('"') through 0x7E ('~'),
// one or more; this range excludes "!" (0x21), so the closing delimiter
// is never swallowed.
func (p *parser) gracingCatchall() bool {
	return p.rule(ast.RuleGracingCatchall, func() bool {
		return p.plus(func() bool {
			return p.class(func(b byte) bool { return b >= 0x22 && b <= 0x7E })
		})
	})
}

// userdef_symbol ← "~" | [H-Y] | [h-w]
func (p *parser) userdefSymbol() bool {
	return p.rule(ast.RuleUserdefSymbol, func() bool {
		return p.choice(
			func() bool { return p.lit("~") },
			func() bool { return p.class(func(b byte) bool { return b >= 'H' && b <= 'Y' }) },
			func() bool { return p.class(func(b byte) bool { return b >= 'h' && b <= 'w' }) },
		)
	})
}
