package symbol

import "strconv"

// ---------------------------------------------------------------------------
// Scope-tagged symbol IDs
// ---------------------------------------------------------------------------

// Scope is the lexical category of an interned name.
type Scope uint8

const (
	ScopeLocal    Scope = iota // plain lowercase name
	ScopeInstance              // @name
	ScopeGlobal                // $name
	ScopeAttrSet               // name= (attribute assignment spelling)
	ScopeConst                 // Name
	ScopeClass                 // @@name
	ScopeJunk                  // not a well-formed identifier
)

// String returns the lowercase tag name, for diagnostics.
func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeInstance:
		return "instance"
	case ScopeGlobal:
		return "global"
	case ScopeAttrSet:
		return "attrset"
	case ScopeConst:
		return "const"
	case ScopeClass:
		return "class"
	case ScopeJunk:
		return "junk"
	}
	return "scope(" + strconv.Itoa(int(s)) + ")"
}

// Packed ID layout: the scope tag occupies the low bits, the serial
// number everything above.
const (
	scopeShift        = 3
	scopeMask  uint64 = (1 << scopeShift) - 1
)

// ID is the canonical handle for an interned name: a scope tag plus a
// serial number unique within the process. IDs are comparable and can
// be used as map keys directly.
//
// The zero ID means "no symbol"; the table never assigns serial 0.
type ID struct {
	Scope  Scope
	Serial uint64
}

// Pack encodes the ID into a single integer (serial<<3 | scope) for
// callers that need a flat representation, such as value tagging or
// image formats.
func (id ID) Pack() uint64 {
	return id.Serial<<scopeShift | uint64(id.Scope)&scopeMask
}

// Unpack decodes an ID from its packed integer form. It is the exact
// inverse of Pack.
func Unpack(raw uint64) ID {
	return ID{Scope: Scope(raw & scopeMask), Serial: raw >> scopeShift}
}

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool {
	return id == ID{}
}

// WithScope returns the same serial re-tagged with the given scope.
func (id ID) WithScope(s Scope) ID {
	return ID{Scope: s, Serial: id.Serial}
}

// String formats the ID as "scope:serial".
func (id ID) String() string {
	return id.Scope.String() + ":" + strconv.FormatUint(id.Serial, 10)
}
