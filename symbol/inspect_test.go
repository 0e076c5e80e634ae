package symbol

import "testing"

func TestShouldEscapeIdentifiers(t *testing.T) {
	bare := []string{
		"foo", "foo_bar", "_x", "x9",
		"foo!", "foo?", "foo=",
		"Foo", "STDOUT",
		"@foo", "@@foo", "$foo", "$_",
		"@foo_bar", "@@x9",
	}
	escaped := []string{
		"",
		"foo bar",
		"foo\nbar",
		"\x00",
		"9foo",
		"Foo!", "Foo?", "Foo=",
		"foo!!", "foo!?",
		"foo=?",
		"@", "@@", "$",
		"@1", "@@1",
		"ключ", // non-ASCII always quotes
	}

	for _, s := range bare {
		if ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = true, want bare", s)
		}
	}
	for _, s := range escaped {
		if !ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = false, want escaped", s)
		}
	}
}

func TestShouldEscapeOperators(t *testing.T) {
	bare := []string{
		"<", "<<", "<=", "<=>",
		">", ">>", ">=",
		"==", "===", "=~",
		"*", "**",
		"+", "-", "+@", "-@",
		"|", "^", "&", "/", "%", "~", "`",
		"[", "[]", "[]=",
		"!", "!=", "!~",
	}
	escaped := []string{
		"=",
		"<>", "><", "=>",
		"***", "++", "--",
		"[x]", "[]==",
		"!!", "!==",
		"&&", "||",
		"::", "..", "...",
	}

	for _, s := range bare {
		if ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = true, want bare", s)
		}
	}
	for _, s := range escaped {
		if !ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = false, want escaped", s)
		}
	}
}

func TestShouldEscapeSpecialGlobals(t *testing.T) {
	bare := []string{
		"$~", "$*", "$$", "$?", "$!", "$@",
		"$/", "$\\", "$;", "$,", "$.", "$=",
		"$:", "$<", "$>", "$\"", "$&", "$`", "$'", "$+",
		"$0", "$1", "$42", "$999",
		"$-i", "$-w", "$-",
	}
	escaped := []string{
		"$~x", "$1a", "$-ab", "$ ",
	}

	for _, s := range bare {
		if ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = true, want bare", s)
		}
	}
	for _, s := range escaped {
		if !ShouldEscape(s) {
			t.Errorf("ShouldEscape(%q) = false, want escaped", s)
		}
	}
}

func TestLiteralForm(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"foo", ":foo"},
		{"foo bar", ":\"foo bar\""},
		{"+", ":+"},
		{"[]=", ":[]="},
		{"", ":\"\""},
		{"@name", ":@name"},
		{"$0", ":$0"},
		{"<=>", ":<=>"},
		{"foo=", ":foo="},
		{"=", ":\"=\""},
	}

	for _, tt := range tests {
		if got := LiteralForm(tt.text); got != tt.want {
			t.Errorf("LiteralForm(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
