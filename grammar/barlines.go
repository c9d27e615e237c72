package grammar

import "github.com/theabolton/abcdb/ast"

// barline ← invisible_barline
//         | (":"* "["? ("."? "|")+ ("]" | ":"+ | nth_repeat_num)?)
//         | double_repeat_barline
//         | dashed_barline
func (p *parser) barline() bool {
	return p.rule(ast.RuleBarline, func() bool {
		return p.choice(
			p.invisibleBarline,
			func() bool {
				return p.seq(
					func() bool { return p.star(func() bool { return p.lit(":") }) },
					func() bool { return p.opt(func() bool { return p.lit("[") }) },
					func() bool {
						return p.plus(func() bool {
							return p.seq(
								func() bool { return p.opt(func() bool { return p.lit(".") }) },
								func() bool { return p.lit("|") },
							)
						})
					},
					func() bool {
						return p.opt(func() bool {
							return p.choice(
								func() bool { return p.lit("]") },
								func() bool { return p.plus(func() bool { return p.lit(":") }) },
								p.nthRepeatNum,
							)
						})
					},
				)
			},
			p.doubleRepeatBarline,
			p.dashedBarline,
		)
	})
}

// invisible_barline ← "[|]" | "[]"
//
// Canonifier rewrite: the non-standard "[]" form is rewritten to the
// standard "[|]".
func (p *parser) invisibleBarline() bool {
	return p.rule(ast.RuleInvisibleBarline, func() bool {
		return p.choice(func() bool { return p.lit("[|]") }, func() bool { return p.lit("[]") })
	})
}

// double_repeat_barline ← "::"
func (p *parser) doubleRepeatBarline() bool {
	return p.rule(ast.RuleDoubleRepeatBarline, func() bool { return p.lit("::") })
}

// dashed_barline ← ":"
//
// Non-standard; preserved verbatim (no §4.D rewrite names it).
func (p *parser) dashedBarline() bool {
	return p.rule(ast.RuleDashedBarline, func() bool { return p.lit(":") })
}

// nth_repeat ← "[" (nth_repeat_num | nth_repeat_text)
func (p *parser) nthRepeat() bool {
	return p.rule(ast.RuleNthRepeat, func() bool {
		return p.seq(
			func() bool { return p.lit("[") },
			func() bool { return p.choice(p.nthRepeatNum, p.nthRepeatText) },
		)
	})
}

// nth_repeat_num ← DIGITS (("," | "-") DIGITS)*
func (p *parser) nthRepeatNum() bool {
	return p.rule(ast.RuleNthRepeatNum, func() bool {
		return p.seq(
			p.digits,
			func() bool {
				return p.star(func() bool {
					return p.seq(
						func() bool { return p.choice(func() bool { return p.lit(",") }, func() bool { return p.lit("-") }) },
						p.digits,
					)
				})
			},
		)
	})
}

// nth_repeat_text ← "\"" non_quote* "\""
func (p *parser) nthRepeatText() bool {
	return p.rule(ast.RuleNthRepeatText, func() bool {
		return p.seq(
			func() bool { return p.lit("\"") },
			func() bool { return p.star(p.nonQuote) },
			func() bool { return p.lit("\"") },
		)
	})
}

// end_nth_repeat ← "]"
func (p *parser) endNthRepeat() bool {
	return p.rule(ast.RuleEndNthRepeat, func() bool { return p.lit("]") })
}
