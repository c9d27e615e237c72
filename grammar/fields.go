package grammar

import "github.com/theabolton/abcdb/ast"

// inline_field ← ifield_text | ifield_key | ifield_length | ifield_meter
//              | ifield_part | ifield_tempo | ifield_userdef | ifield_voice
//
// Each alternative has the shape "[" LETTER ":" body "]". ifield_text
// covers the remaining information fields the ABC v2.1 standard permits
// inline beyond key/length/meter/part/tempo/userdef/voice.
func (p *parser) inlineField() bool {
	return p.choice(
		p.ifieldText,
		p.ifieldKey,
		p.ifieldLength,
		p.ifieldMeter,
		p.ifieldPart,
		p.ifieldTempo,
		p.ifieldUserdef,
		p.ifieldVoice,
	)
}

// non_right_bracket ← !"]" ANY
func (p *parser) nonRightBracket() bool {
	return p.rule(ast.RuleNonRightBracket, func() bool {
		return p.seq(func() bool { return p.not(func() bool { return p.lit("]") }) }, p.anyChar)
	})
}

// ifield_text covers the ABC v2.1 information fields permitted inline
// that this grammar doesn't otherwise give dedicated productions to:
// I(nstruction), m(acro), r(hythm), s(ymbol line), T(itle), w(ords).
// Listed first in the alternation, which is only safe because its letter
// set is disjoint from K/L/M/P/Q/U/V below.
func (p *parser) ifieldText() bool {
	return p.rule(ast.RuleIfieldText, func() bool {
		return p.seq(
			func() bool { return p.lit("[") },
			func() bool {
				return p.class(func(b byte) bool {
					switch b {
					case 'I', 'm', 'r', 's', 'T', 'w':
						return true
					}
					return false
				})
			},
			func() bool { return p.lit(":") },
			func() bool { return p.star(p.nonRightBracket) },
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_key ← "[K:" WSP* ("none" | key?) "]"
func (p *parser) ifieldKey() bool {
	return p.rule(ast.RuleIfieldKey, func() bool {
		return p.seq(
			func() bool { return p.lit("[K:") },
			p.optWSPStar,
			func() bool {
				return p.choice(func() bool { return p.lit("none") }, func() bool { return p.opt(p.key) })
			},
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_length ← "[L:" WSP* note_length_strict "]"
func (p *parser) ifieldLength() bool {
	return p.rule(ast.RuleIfieldLength, func() bool {
		return p.seq(
			func() bool { return p.lit("[L:") },
			p.optWSPStar,
			p.noteLengthStrict,
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_meter ← "[M:" WSP* meter "]"
func (p *parser) ifieldMeter() bool {
	return p.rule(ast.RuleIfieldMeter, func() bool {
		return p.seq(
			func() bool { return p.lit("[M:") },
			p.optWSPStar,
			p.meter,
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_part ← "[P:" non_right_bracket+ "]" — permissive because
// wild-field abuse (arbitrary free text in a part label) is common.
func (p *parser) ifieldPart() bool {
	return p.rule(ast.RuleIfieldPart, func() bool {
		return p.seq(
			func() bool { return p.lit("[P:") },
			func() bool { return p.plus(p.nonRightBracket) },
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_tempo ← "[Q:" WSP* tempo "]"
func (p *parser) ifieldTempo() bool {
	return p.rule(ast.RuleIfieldTempo, func() bool {
		return p.seq(
			func() bool { return p.lit("[Q:") },
			p.optWSPStar,
			p.tempo,
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_userdef ← "[U:" WSP* userdef_symbol WSP* "=" non_right_bracket* "]"
func (p *parser) ifieldUserdef() bool {
	return p.rule(ast.RuleIfieldUserdef, func() bool {
		return p.seq(
			func() bool { return p.lit("[U:") },
			p.optWSPStar,
			p.userdefSymbol,
			p.optWSPStar,
			func() bool { return p.lit("=") },
			func() bool { return p.star(p.nonRightBracket) },
			func() bool { return p.lit("]") },
		)
	})
}

// ifield_voice ← "[V:" WSP* voice "]"
func (p *parser) ifieldVoice() bool {
	return p.rule(ast.RuleIfieldVoice, func() bool {
		return p.seq(
			func() bool { return p.lit("[V:") },
			p.optWSPStar,
			p.voice,
			func() bool { return p.lit("]") },
		)
	})
}

// key ← key_note mode? clef?
func (p *parser) key() bool {
	return p.rule(ast.RuleKey, func() bool {
		return p.seq(
			p.keyNote,
			func() bool { return p.opt(p.mode) },
			func() bool { return p.opt(p.clef) },
		)
	})
}

// key_note ← basenote key_accidental?
func (p *parser) keyNote() bool {
	return p.rule(ast.RuleKeyNote, func() bool {
		return p.seq(p.basenote, func() bool { return p.opt(p.keyAccidental) })
	})
}

// key_accidental ← "#" | "b"
func (p *parser) keyAccidental() bool {
	return p.rule(ast.RuleKeyAccidental, func() bool {
		return p.choice(func() bool { return p.lit("#") }, func() bool { return p.lit("b") })
	})
}

// mode matches any prefix-of-full-name spelling of the seven standard
// church modes plus major/minor, via a greedy nested-optional-suffix
// match on each three-letter stem: "maj", "majo", and "major" must all be
// accepted.
func (p *parser) mode() bool {
	return p.rule(ast.RuleMode, func() bool {
		return p.choice(
			func() bool { return p.nestedSuffix("maj", "or") },
			func() bool { return p.nestedSuffix("min", "or") },
			func() bool { return p.nestedSuffix("ion", "ian") },
			func() bool { return p.nestedSuffix("dor", "ian") },
			func() bool { return p.nestedSuffix("phr", "ygian") },
			func() bool { return p.nestedSuffix("lyd", "ian") },
			func() bool { return p.nestedSuffix("mix", "olydian") },
			func() bool { return p.nestedSuffix("aeo", "lian") },
			func() bool { return p.nestedSuffix("loc", "rian") },
		)
	})
}

// nestedSuffix matches stem, then greedily consumes as long a prefix of
// suffix as is present in the input — the direct equivalent of a PEG rule
// shaped like "maj" ("o" ("r")?)?, since each optional nesting level can
// only ever stop at the first character that fails to match.
func (p *parser) nestedSuffix(stem, suffix string) bool {
	if !p.lit(stem) {
		return false
	}
	for i := 0; i < len(suffix); i++ {
		if !p.lit(suffix[i : i+1]) {
			break
		}
	}
	return true
}

// meter ← "C" "|"? | "none" | DIGITS ("+" DIGITS)* "/" DIGITS
func (p *parser) meter() bool {
	return p.rule(ast.RuleMeter, func() bool {
		return p.choice(
			func() bool {
				return p.seq(func() bool { return p.lit("C") }, func() bool { return p.opt(func() bool { return p.lit("|") }) })
			},
			func() bool { return p.lit("none") },
			func() bool {
				return p.seq(
					p.digits,
					func() bool {
						return p.star(func() bool {
							return p.seq(func() bool { return p.lit("+") }, p.digits)
						})
					},
					func() bool { return p.lit("/") },
					p.digits,
				)
			},
		)
	})
}

// tempo ← (nth_repeat_text WSP*)? (meter WSP* "=" WSP*)? DIGITS
//         (WSP* nth_repeat_text)?
//
// e.g. "1/4=120", "120", or "\"Allegro\" 1/4=120". The free-text label
// reuses nth_repeat_text's quoted-string shape rather than duplicating it.
func (p *parser) tempo() bool {
	return p.rule(ast.RuleTempo, func() bool {
		return p.seq(
			func() bool {
				return p.opt(func() bool { return p.seq(p.nthRepeatText, p.optWSPStar) })
			},
			func() bool {
				return p.opt(func() bool {
					return p.seq(p.meter, p.optWSPStar, func() bool { return p.lit("=") }, p.optWSPStar)
				})
			},
			p.digits,
			func() bool {
				return p.opt(func() bool { return p.seq(p.optWSPStar, p.nthRepeatText) })
			},
		)
	})
}

// clef ← ("treble"|"bass"|"alto"|"tenor"|"perc"|"none") DIGITS?
func (p *parser) clef() bool {
	return p.rule(ast.RuleClef, func() bool {
		return p.seq(
			func() bool {
				return p.literalChoice("treble", "bass", "alto", "tenor", "perc", "none")
			},
			func() bool { return p.opt(p.digitsRule) },
		)
	})
}

// voice ← [A-Za-z0-9]+
func (p *parser) voice() bool {
	return p.rule(ast.RuleVoice, func() bool {
		return p.plus(func() bool {
			return p.class(func(b byte) bool {
				return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || isDigit(b)
			})
		})
	})
}
