// Package ast defines the vocabulary shared between the grammar, the
// canonifying tree walker, and the error formatter: grammar rule names,
// parse tokens, and the error types used to report a failed parse.
package ast

// Rule names a grammar production. The canonifier dispatches on Rule to
// decide which rewrite (if any) applies to a matched token.
type Rule int

const (
	RuleUnknown Rule = iota

	// top level
	RuleMusicCodeLine
	RuleAbcLine
	RuleAbcEol
	RuleLineContinuation

	// elements
	RuleBrokenRhythm
	RuleStem
	RuleWSP
	RuleChordOrText
	RuleGracing
	RuleGraceNotes
	RuleTuplet
	RuleTie
	RuleSlurBegin
	RuleSlurEnd
	RuleRollback
	RuleMultiMeasureRest
	RuleMeasureRepeat
	RuleNthRepeat
	RuleEndNthRepeat
	RuleInlineField
	RuleHardLineBreak
	RuleUnusedChar

	// notes
	RuleNote

	// pitches, accidentals, octaves
	RulePitch
	RuleBasenote
	RuleAccidental
	RuleOctave

	// note length
	RuleNoteLength
	RuleNoteLengthFull
	RuleNoteLengthSmaller
	RuleNoteLengthBigger
	RuleNoteLengthSlashes
	RuleNoteLengthStrict

	// broken rhythm internals
	RuleBSep
	RuleBElem

	// rests
	RuleRest

	// ties / slurs / rollback already above

	// grace notes internals
	RuleAcciaccatura
	RuleGraceNoteStem
	RuleGraceNote

	// tuplet internals handled inline (DIGITS)

	// gracing internals
	RuleGracing1
	RuleGracing2
	RuleGracing3
	RuleGracing4
	RuleGracingNonstandard
	RuleGracingCatchall
	RuleRepeatbar

	// redefinable symbols
	RuleUserdefSymbol

	// chords / annotations
	RuleChordNewline
	RuleChord
	RuleChordAccidental
	RuleChordType
	RuleTextExpression
	RuleBadTextExpression
	RuleNonQuote

	// barlines
	RuleBarline
	RuleInvisibleBarline
	RuleDoubleRepeatBarline
	RuleDashedBarline

	// repeats internals
	RuleNthRepeatNum
	RuleNthRepeatText

	// inline fields
	RuleIfieldText
	RuleIfieldKey
	RuleIfieldLength
	RuleIfieldMeter
	RuleIfieldPart
	RuleIfieldTempo
	RuleIfieldUserdef
	RuleIfieldVoice
	RuleNonRightBracket

	// key / mode / meter / tempo / clef / voice
	RuleKey
	RuleKeyNote
	RuleKeyAccidental
	RuleMode
	RuleMeter
	RuleTempo
	RuleClef
	RuleVoice

	// lexical helpers
	RuleDigits
	RuleBackquote
	RuleReservedChar

	// sentinel, not emitted
	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleUnknown:             "unknown",
	RuleMusicCodeLine:       "music_code_line",
	RuleAbcLine:             "abc_line",
	RuleAbcEol:              "abc_eol",
	RuleLineContinuation:    "line_continuation",
	RuleBrokenRhythm:        "broken_rhythm",
	RuleStem:                "stem",
	RuleWSP:                 "WSP",
	RuleChordOrText:         "chord_or_text",
	RuleGracing:             "gracing",
	RuleGraceNotes:          "grace_notes",
	RuleTuplet:              "tuplet",
	RuleSlurBegin:           "slur_begin",
	RuleSlurEnd:             "slur_end",
	RuleRollback:            "rollback",
	RuleMultiMeasureRest:    "multi_measure_rest",
	RuleMeasureRepeat:       "measure_repeat",
	RuleNthRepeat:           "nth_repeat",
	RuleEndNthRepeat:        "end_nth_repeat",
	RuleInlineField:         "inline_field",
	RuleHardLineBreak:       "hard_line_break",
	RuleTie:                 "tie",
	RuleUnusedChar:          "unused_char",
	RuleNote:                "note",
	RulePitch:               "pitch",
	RuleBasenote:            "basenote",
	RuleAccidental:          "accidental",
	RuleOctave:              "octave",
	RuleNoteLength:          "note_length",
	RuleNoteLengthFull:      "note_length_full",
	RuleNoteLengthSmaller:   "note_length_smaller",
	RuleNoteLengthBigger:    "note_length_bigger",
	RuleNoteLengthSlashes:   "note_length_slashes",
	RuleNoteLengthStrict:    "note_length_strict",
	RuleBSep:                "b_sep",
	RuleBElem:               "b_elem",
	RuleRest:                "rest",
	RuleAcciaccatura:        "acciaccatura",
	RuleGraceNoteStem:       "grace_note_stem",
	RuleGraceNote:           "grace_note",
	RuleGracing1:            "gracing1",
	RuleGracing2:            "gracing2",
	RuleGracing3:            "gracing3",
	RuleGracing4:            "gracing4",
	RuleGracingNonstandard:  "gracing_nonstandard",
	RuleGracingCatchall:     "gracing_catchall",
	RuleRepeatbar:           "repeatbar",
	RuleUserdefSymbol:       "userdef_symbol",
	RuleChordNewline:        "chord_newline",
	RuleChord:               "chord",
	RuleChordAccidental:     "chord_accidental",
	RuleChordType:           "chord_type",
	RuleTextExpression:      "text_expression",
	RuleBadTextExpression:   "bad_text_expression",
	RuleNonQuote:            "non_quote",
	RuleBarline:             "barline",
	RuleInvisibleBarline:    "invisible_barline",
	RuleDoubleRepeatBarline: "double_repeat_barline",
	RuleDashedBarline:       "dashed_barline",
	RuleNthRepeatNum:        "nth_repeat_num",
	RuleNthRepeatText:       "nth_repeat_text",
	RuleIfieldText:          "ifield_text",
	RuleIfieldKey:           "ifield_key",
	RuleIfieldLength:        "ifield_length",
	RuleIfieldMeter:         "ifield_meter",
	RuleIfieldPart:          "ifield_part",
	RuleIfieldTempo:         "ifield_tempo",
	RuleIfieldUserdef:       "ifield_userdef",
	RuleIfieldVoice:         "ifield_voice",
	RuleNonRightBracket:     "non_right_bracket",
	RuleKey:                 "key",
	RuleKeyNote:             "key_note",
	RuleKeyAccidental:       "key_accidental",
	RuleMode:                "mode",
	RuleMeter:               "meter",
	RuleTempo:               "tempo",
	RuleClef:                "clef",
	RuleVoice:               "voice",
	RuleDigits:              "DIGITS",
	RuleBackquote:           "backquote",
	RuleReservedChar:        "reserved_char",
}

// String returns the grammar's own production name for r, so diagnostics
// read the same as the grammar itself.
func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) && ruleNames[r] != "" {
		return ruleNames[r]
	}
	return "rule(?)"
}
