package grammar

import "github.com/theabolton/abcdb/ast"

// hard_line_break ← "$" | "!"
func (p *parser) hardLineBreak() bool {
	return p.rule(ast.RuleHardLineBreak, func() bool {
		return p.choice(func() bool { return p.lit("$") }, func() bool { return p.lit("!") })
	})
}

// unused_char ← reserved_char | backquote
func (p *parser) unusedChar() bool {
	return p.rule(ast.RuleUnusedChar, func() bool {
		return p.choice(p.reservedChar, p.backquote)
	})
}

// reserved_char ← "#" | "*" | ";" | "?" | "@"
func (p *parser) reservedChar() bool {
	return p.rule(ast.RuleReservedChar, func() bool {
		return p.class(func(b byte) bool {
			switch b {
			case '#', '*', ';', '?', '@':
				return true
			}
			return false
		})
	})
}

// backquote ← "`"
func (p *parser) backquote() bool {
	return p.rule(ast.RuleBackquote, func() bool { return p.lit("`") })
}
