package symbol

// ---------------------------------------------------------------------------
// Registry: lifecycle owner of the process symbol table
// ---------------------------------------------------------------------------

// Reserved is one bootstrap entry: an operator token spelling and its
// pre-assigned ID, supplied by the parser layer.
type Reserved struct {
	Name string
	ID   ID
}

// Registry owns the process-wide symbol table. It is constructed once,
// seeded with the parser's reserved operator tokens, and then serves
// intern/resolve/enumerate requests for the remainder of the process.
// There is no ambient global: embedders hold the registry value and
// pass it where it is needed.
type Registry struct {
	table *Table
}

// NewRegistry creates a registry seeded with the given reserved tokens.
// The reserved list is consumed exactly once; dynamic serial numbers
// start strictly above every reserved serial.
func NewRegistry(reserved []Reserved) *Registry {
	t := NewTable()
	for _, r := range reserved {
		t.Reserve(r.Name, r.ID)
	}
	return &Registry{table: t}
}

// NewRegistryFromTable wraps an existing table, such as a restored
// snapshot, without reseeding it.
func NewRegistryFromTable(t *Table) *Registry {
	return &Registry{table: t}
}

// Intern returns the canonical ID for name. It never fails.
func (r *Registry) Intern(name string) ID {
	return r.table.Intern(name)
}

// Resolve returns the name for id, or false when the ID is unknown.
func (r *Registry) Resolve(id ID) (string, bool) {
	return r.table.Resolve(id)
}

// Lookup returns the ID for name without interning it.
func (r *Registry) Lookup(name string) (ID, bool) {
	return r.table.Lookup(name)
}

// AllSymbols returns a snapshot of every registered ID, reserved and
// dynamic. Order is unspecified.
func (r *Registry) AllSymbols() []ID {
	return r.table.All()
}

// Len returns the number of registered symbols.
func (r *Registry) Len() int {
	return r.table.Len()
}

// Classify reports the lexical category of name without interning it.
func (r *Registry) Classify(name string) Scope {
	return Classify(name)
}

// LiteralForm renders name as a symbol literal.
func (r *Registry) LiteralForm(name string) string {
	return LiteralForm(name)
}

// Table returns the underlying intern table, for snapshotting.
func (r *Registry) Table() *Table {
	return r.table
}
