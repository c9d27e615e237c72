package grammar

import "github.com/theabolton/abcdb/ast"

// chord_or_text ← "\"" (chord | text_expression)
//                 (chord_newline (chord | text_expression))* "\""
func (p *parser) chordOrText() bool {
	return p.rule(ast.RuleChordOrText, func() bool {
		body := func() bool { return p.choice(p.chord, p.textExpression) }
		return p.seq(
			func() bool { return p.lit("\"") },
			body,
			func() bool {
				return p.star(func() bool {
					return p.seq(p.chordNewline, body)
				})
			},
			func() bool { return p.lit("\"") },
		)
	})
}

// chord_newline ← "\\n" | ";"
//
// Non-standard: either spelling of the chord separator. Canonifier
// rewrite: collapse to a single ";" regardless of spelling.
func (p *parser) chordNewline() bool {
	return p.rule(ast.RuleChordNewline, func() bool {
		return p.choice(func() bool { return p.lit("\\n") }, func() bool { return p.lit(";") })
	})
}

// chord ← basenote chord_accidental? chord_type?
//         ("/" basenote chord_accidental?)? (!chord_newline non_quote)*
func (p *parser) chord() bool {
	return p.rule(ast.RuleChord, func() bool {
		return p.seq(
			p.basenote,
			func() bool { return p.opt(p.chordAccidental) },
			func() bool { return p.opt(p.chordType) },
			func() bool {
				return p.opt(func() bool {
					return p.seq(
						func() bool { return p.lit("/") },
						p.basenote,
						func() bool { return p.opt(p.chordAccidental) },
					)
				})
			},
			func() bool {
				return p.star(func() bool {
					return p.seq(func() bool { return p.not(p.chordNewline) }, p.nonQuote)
				})
			},
		)
	})
}

// chord_accidental ← "#" | "b" | "=" | "♯" | "♭" | "♮"
func (p *parser) chordAccidental() bool {
	return p.rule(ast.RuleChordAccidental, func() bool {
		return p.choice(
			func() bool { return p.lit("#") },
			func() bool { return p.lit("b") },
			func() bool { return p.lit("=") },
			func() bool { return p.lit("♯") },
			func() bool { return p.lit("♭") },
			func() bool { return p.lit("♮") },
		)
	})
}

// chord_type ← ([A-Za-z] | [0-9]+ | "-")+
func (p *parser) chordType() bool {
	return p.rule(ast.RuleChordType, func() bool {
		return p.plus(func() bool {
			return p.choice(
				func() bool {
					return p.class(func(b byte) bool {
						return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
					})
				},
				func() bool { return p.plus(func() bool { return p.class(isDigit) }) },
				func() bool { return p.lit("-") },
			)
		})
	})
}

// text_expression ← (("^"|"<"|">"|"_"|"@") (!chord_newline non_quote)+)
//                  | bad_text_expression
func (p *parser) textExpression() bool {
	return p.rule(ast.RuleTextExpression, func() bool {
		return p.choice(
			func() bool {
				return p.seq(
					func() bool {
						return p.class(func(b byte) bool {
							switch b {
							case '^', '<', '>', '_', '@':
								return true
							}
							return false
						})
					},
					func() bool {
						return p.plus(func() bool {
							return p.seq(func() bool { return p.not(p.chordNewline) }, p.nonQuote)
						})
					},
				)
			},
			p.badTextExpression,
		)
	})
}

// bad_text_expression ← (!chord_newline non_quote)+
//
// Canonifier rewrite: prepend "@" so a downstream parser that only
// accepts well-formed annotations still sees a valid placement symbol.
// In-grammar error recovery: matches any text_expression-shaped run that
// failed to start with a recognized prefix character, rather than
// rejecting the whole line.
func (p *parser) badTextExpression() bool {
	return p.rule(ast.RuleBadTextExpression, func() bool {
		return p.plus(func() bool {
			return p.seq(func() bool { return p.not(p.chordNewline) }, p.nonQuote)
		})
	})
}

// non_quote ← !"\"" ANY
func (p *parser) nonQuote() bool {
	return p.rule(ast.RuleNonQuote, func() bool {
		return p.seq(func() bool { return p.not(func() bool { return p.lit("\"") }) }, p.anyChar)
	})
}
