// Package token defines the parser's fixed operator token table.
//
// The symbol registry is seeded with these tokens at startup so that
// operator method names carry stable, pre-assigned IDs. Single-character
// operators use their ASCII value as the token code, the way the parser
// numbers them; multi-character operators take codes from 257 up. Every
// code sits below the registry's dynamic serial floor.
package token

import "github.com/EDubaj/MacRuby/symbol"

// Multi-character operator token codes.
const (
	Dot2   uint64 = iota + 257 // ".."
	Dot3                       // "..."
	Pow                        // "**"
	UPlus                      // "+@"
	UMinus                     // "-@"
	Cmp                        // "<=>"
	GEq                        // ">="
	LEq                        // "<="
	Eq                         // "=="
	Eqq                        // "==="
	NEq                        // "!="
	Match                      // "=~"
	NMatch                     // "!~"
	ARef                       // "[]"
	ASet                       // "[]="
	LShift                     // "<<"
	RShift                     // ">>"
	Colon2                     // "::"
)

// ops lists every reserved operator spelling in parser order.
var ops = []struct {
	code uint64
	name string
}{
	{Dot2, ".."},
	{Dot3, "..."},
	{'+', "+"},
	{'-', "-"},
	{'*', "*"},
	{'/', "/"},
	{'%', "%"},
	{Pow, "**"},
	{UPlus, "+@"},
	{UMinus, "-@"},
	{Cmp, "<=>"},
	{'>', ">"},
	{GEq, ">="},
	{'<', "<"},
	{LEq, "<="},
	{Eq, "=="},
	{Eqq, "==="},
	{NEq, "!="},
	{Match, "=~"},
	{NMatch, "!~"},
	{'!', "!"},
	{'~', "~"},
	{ARef, "[]"},
	{ASet, "[]="},
	{LShift, "<<"},
	{RShift, ">>"},
	{Colon2, "::"},
	{'&', "&"},
	{'|', "|"},
	{'^', "^"},
	{'`', "`"},
}

// Reserved returns the bootstrap entries for the symbol registry, in
// parser order.
func Reserved() []symbol.Reserved {
	out := make([]symbol.Reserved, len(ops))
	for i, op := range ops {
		out[i] = symbol.Reserved{
			Name: op.name,
			ID:   symbol.ID{Scope: symbol.ScopeLocal, Serial: op.code},
		}
	}
	return out
}

// Name returns the spelling for a token code, or "" if unknown.
func Name(code uint64) string {
	for _, op := range ops {
		if op.code == code {
			return op.name
		}
	}
	return ""
}
