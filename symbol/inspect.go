package symbol

import "strconv"

// ---------------------------------------------------------------------------
// Literal rendering: decide whether a symbol can print bare after ':'
// ---------------------------------------------------------------------------

// printableASCII reports whether b is a printable ASCII byte. The bare
// grammar below is ASCII-only; anything outside forces quoting.
func printableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

func isASCIIAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return b == '_' || isASCIIAlpha(b) || ('0' <= b && b <= '9')
}

// isSpecialGlobal recognizes the punctuation and numbered globals that
// may print bare after "$": singleton punctuation, "-" optionally
// followed by one identifier character, and runs of digits.
func isSpecialGlobal(s string) bool {
	if len(s) == 0 {
		return false
	}

	pos := 0
	switch s[0] {
	case '~', '*', '$', '?', '!', '@', '/', '\\', ';', ',',
		'.', '=', ':', '<', '>', '"', '&', '`', '\'', '+', '0':
		pos = 1

	case '-':
		pos = 1
		if pos < len(s) && isIdentByte(s[pos]) {
			pos++
		}

	default:
		if s[0] < '0' || s[0] > '9' {
			return false
		}
		for pos < len(s) && '0' <= s[pos] && s[pos] <= '9' {
			pos++
		}
	}
	return pos == len(s)
}

// escapeIdentTail scans an identifier tail starting at pos and reports
// whether the whole text needs escaping. allowSuffix permits a single
// trailing '!', '?' or '=', which is accepted only for plain names that
// do not begin with an uppercase letter.
func escapeIdentTail(text string, pos int, allowSuffix bool) bool {
	n := len(text)
	if pos >= n || (text[pos] != '_' && !isASCIIAlpha(text[pos])) {
		return true
	}
	for pos < n && isIdentByte(text[pos]) {
		pos++
	}
	if allowSuffix && pos < n &&
		(text[pos] == '!' || text[pos] == '?' || text[pos] == '=') {
		pos++
	}
	return pos < n
}

// ShouldEscape reports whether text must be rendered as a quoted string
// in symbol-literal position. Bare forms are plain identifiers
// (optionally "$", "@" or "@@" prefixed), the special globals, and the
// operator method spellings; everything else, including empty text and
// text with non-printable characters, is escaped.
func ShouldEscape(text string) bool {
	n := len(text)
	if n == 0 {
		return true
	}
	for i := 0; i < n; i++ {
		if !printableASCII(text[i]) {
			return true
		}
	}

	pos := 0
	switch text[0] {
	case '$':
		pos = 1
		if pos < n && isSpecialGlobal(text[pos:]) {
			return false
		}
		return escapeIdentTail(text, pos, false)

	case '@':
		pos = 1
		if pos < n && text[pos] == '@' {
			pos = 2
		}
		return escapeIdentTail(text, pos, false)

	case '<':
		// < << <= <=>
		pos = 1
		if pos < n {
			if text[pos] == '<' {
				pos++
			} else if text[pos] == '=' {
				pos++
				if pos < n && text[pos] == '>' {
					pos++
				}
			}
		}

	case '>':
		// > >> >=
		pos = 1
		if pos < n && (text[pos] == '>' || text[pos] == '=') {
			pos++
		}

	case '=':
		// =~ == === but never bare "="
		pos = 1
		if pos == n {
			return true
		}
		switch text[pos] {
		case '~':
			pos++
		case '=':
			pos++
			if pos < n && text[pos] == '=' {
				pos++
			}
		default:
			return true
		}

	case '*':
		// * **
		pos = 1
		if pos < n && text[pos] == '*' {
			pos++
		}

	case '+', '-':
		// + - +@ -@
		pos = 1
		if pos < n && text[pos] == '@' {
			pos++
		}

	case '|', '^', '&', '/', '%', '~', '`':
		pos = 1

	case '[':
		// [ [] []=
		pos = 1
		if pos < n && text[pos] != ']' {
			return true
		}
		pos++
		if pos < n && text[pos] == '=' {
			pos++
		}

	case '!':
		// ! != !~
		pos = 1
		if pos == n {
			return false
		}
		if text[pos] == '=' || text[pos] == '~' {
			pos++
		} else {
			return true
		}

	default:
		lower := !('A' <= text[0] && text[0] <= 'Z')
		return escapeIdentTail(text, pos, lower)
	}

	return pos < n
}

// LiteralForm renders text as a symbol literal: ":" followed by the
// bare text, or by its quoted form when the grammar requires escaping.
// Rendering always succeeds.
func LiteralForm(text string) string {
	if ShouldEscape(text) {
		return ":" + strconv.Quote(text)
	}
	return ":" + text
}
