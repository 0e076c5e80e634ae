package symbol

import "unicode"

// ---------------------------------------------------------------------------
// Identifier classification
// ---------------------------------------------------------------------------

// isIdentRune reports whether r can appear inside an identifier:
// ASCII alphanumerics, underscore, and any non-ASCII rune.
func isIdentRune(r rune) bool {
	if r >= 0x80 {
		return true
	}
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

// Classify determines the lexical category of name without interning it.
//
// The prefix decides the tag: "$" global, "@" instance, "@@" class
// variable, a trailing "=" the attribute-setter spelling, a leading
// uppercase letter a constant, anything else a local. The un-prefixed
// remainder (for setters, the base name) must then be a well-formed
// identifier body; if it is not, the tag collapses to ScopeJunk.
func Classify(name string) Scope {
	rs := []rune(name)
	if len(rs) == 0 {
		return ScopeJunk
	}

	var tag Scope
	body := rs
	switch rs[0] {
	case '$':
		tag = ScopeGlobal
		body = rs[1:]
	case '@':
		if len(rs) > 1 && rs[1] == '@' {
			tag = ScopeClass
			body = rs[2:]
		} else {
			tag = ScopeInstance
			body = rs[1:]
		}
	default:
		if len(rs) > 1 && rs[len(rs)-1] == '=' {
			tag = ScopeAttrSet
			body = rs[:len(rs)-1]
		} else if unicode.IsUpper(rs[0]) {
			tag = ScopeConst
		} else {
			tag = ScopeLocal
		}
	}

	if !validIdentBody(body) {
		return ScopeJunk
	}
	return tag
}

// validIdentBody checks the un-prefixed remainder of a name: it must
// not begin with an ASCII digit and every rune must be an identifier
// rune. An empty remainder is accepted (bare "@" and "$" keep their
// prefix tag).
func validIdentBody(rs []rune) bool {
	if len(rs) == 0 {
		return true
	}
	if '0' <= rs[0] && rs[0] <= '9' {
		return false
	}
	for _, r := range rs {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}
