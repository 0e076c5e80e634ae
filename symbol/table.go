package symbol

import "sync"

// ---------------------------------------------------------------------------
// Table: the process-wide intern table
// ---------------------------------------------------------------------------

// A Symbol is one registered name: the canonical string and its ID.
// Records are immutable once published and retained for the life of the
// process; the table never reclaims them. This is a deliberate
// permanent-arena design.
type Symbol struct {
	Name string
	ID   ID
}

// SeedSerial is the floor for dynamically assigned serial numbers.
// Reserved bootstrap tokens must all sit below it, so a dynamic ID can
// never collide with a reserved one.
const SeedSerial = 1000

// Table maps names to IDs and IDs back to symbol records. Interning the
// same string twice always yields the identical ID.
//
// The forward map is keyed by the full string, not a hash of it: two
// distinct strings always receive distinct IDs, even when their hashes
// collide.
type Table struct {
	mu         sync.RWMutex
	byName     map[string]ID
	byID       map[ID]*Symbol
	lastSerial uint64
}

// NewTable creates an empty table with the serial counter at its floor.
func NewTable() *Table {
	return &Table{
		byName:     make(map[string]ID, 256),
		byID:       make(map[ID]*Symbol, 256),
		lastSerial: SeedSerial,
	}
}

// register adds both map entries. Caller holds the write lock.
func (t *Table) register(name string, id ID) {
	t.byName[name] = id
	t.byID[id] = &Symbol{Name: name, ID: id}
}

// nextID assigns the next unused serial under the given scope.
// Caller holds the write lock.
func (t *Table) nextID(s Scope) ID {
	t.lastSerial++
	return ID{Scope: s, Serial: t.lastSerial}
}

// Reserve registers a pre-assigned (name, id) pair. It is meant for
// bootstrap seeding, before any dynamic interning; a name that is
// already present keeps its existing ID. The serial counter is bumped
// so dynamic serials stay strictly above every reserved serial.
func (t *Table) Reserve(name string, id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byName[name]; !ok {
		t.register(name, id)
	}
	if id.Serial > t.lastSerial {
		t.lastSerial = id.Serial
	}
}

// Intern returns the canonical ID for name, creating a record on first
// sight. Interning never fails: ill-formed names are registered under
// ScopeJunk.
func (t *Table) Intern(name string) ID {
	// Fast path: read-only lookup
	t.mu.RLock()
	if id, ok := t.byName[name]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	// Slow path: need to add a new symbol
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.internLocked(name)
}

// internLocked does the real work under the write lock, so the setter
// derivation below (base intern plus two map insertions) is atomic with
// respect to other interners of the same or a related name.
func (t *Table) internLocked(name string) ID {
	// Double-check after acquiring the write lock.
	if id, ok := t.byName[name]; ok {
		return id
	}

	var id ID
	n := len(name)
	if n > 1 && name[n-1] == '=' && name[0] != '$' && name[0] != '@' {
		// Attribute assignment: derive the setter ID from the base
		// name, so "foo" and "foo=" share a serial under different
		// tags. The recursion strips one '=' per level and always
		// terminates.
		base := t.internLocked(name[:n-1])
		if base.Scope != ScopeAttrSet {
			id = base.WithScope(ScopeAttrSet)
		} else {
			// The base is itself a setter spelling; the new name gets
			// its own serial and ordinary classification (which junks
			// it, since the base text contains '=').
			id = t.nextID(Classify(name))
		}
	} else {
		id = t.nextID(Classify(name))
	}

	t.register(name, id)
	return id
}

// Lookup returns the ID for name without interning it.
func (t *Table) Lookup(name string) (ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byName[name]
	return id, ok
}

// lookupID returns the registered name for id, if any.
func (t *Table) lookupID(id ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if sym, ok := t.byID[id]; ok {
		return sym.Name, true
	}
	return "", false
}

// attrSetBases is the fallback order when reconstructing a setter name
// whose own record does not exist yet.
var attrSetBases = [...]Scope{ScopeLocal, ScopeConst}

// Resolve returns the string for id, or false when the ID is unknown.
//
// A setter ID obtained by re-tagging a base ID with ScopeAttrSet may
// have no record of its own. The setter tag does not say which category
// the base came from, so reconstruction tries the base serial under
// ScopeLocal, then ScopeConst; on a hit the setter spelling is interned
// (populating the table as a byproduct) and the direct lookup retried.
// At most two base attempts are made before giving up.
func (t *Table) Resolve(id ID) (string, bool) {
	if name, ok := t.lookupID(id); ok {
		return name, true
	}
	if id.Scope != ScopeAttrSet {
		return "", false
	}

	for _, s := range attrSetBases {
		base, ok := t.lookupID(id.WithScope(s))
		if !ok {
			continue
		}
		t.Intern(base + "=")
		if name, ok := t.lookupID(id); ok {
			return name, true
		}
	}
	return "", false
}

// Len returns the number of registered symbols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// All returns a snapshot of every registered ID. Order is unspecified.
// Nothing is ever removed, so repeated calls only grow.
func (t *Table) All() []ID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]ID, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	return ids
}
