package symbol

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// ---------------------------------------------------------------------------
// Snapshot: CBOR serialization of a symbol table
// ---------------------------------------------------------------------------

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// cborEncMode uses canonical mode so identical tables serialize to
// identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("symbol: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// SnapshotEntry is one serialized symbol record.
type SnapshotEntry struct {
	Name   string `cbor:"1,keyasint"`
	Scope  uint8  `cbor:"2,keyasint"`
	Serial uint64 `cbor:"3,keyasint"`
}

// Snapshot is a point-in-time serialization of a symbol table,
// reserved and dynamic entries alike.
type Snapshot struct {
	Version    int             `cbor:"1,keyasint"`
	LastSerial uint64          `cbor:"2,keyasint"`
	Symbols    []SnapshotEntry `cbor:"3,keyasint"`
}

// Snapshot captures every record in the table. Entries are sorted by
// (serial, scope) so the encoding is deterministic.
func (t *Table) Snapshot() *Snapshot {
	t.mu.RLock()
	entries := make([]SnapshotEntry, 0, len(t.byID))
	for id, sym := range t.byID {
		entries = append(entries, SnapshotEntry{
			Name:   sym.Name,
			Scope:  uint8(id.Scope),
			Serial: id.Serial,
		})
	}
	last := t.lastSerial
	t.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Serial != entries[j].Serial {
			return entries[i].Serial < entries[j].Serial
		}
		return entries[i].Scope < entries[j].Scope
	})

	return &Snapshot{
		Version:    SnapshotVersion,
		LastSerial: last,
		Symbols:    entries,
	}
}

// MarshalSnapshot serializes a snapshot to canonical CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("symbol: unmarshal snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("symbol: unsupported snapshot version %d", s.Version)
	}
	return &s, nil
}

// RestoreTable rebuilds a table from a snapshot. Duplicate names keep
// their first entry; the serial counter is never lowered below the
// snapshot's.
func RestoreTable(s *Snapshot) *Table {
	t := NewTable()
	t.mu.Lock()
	for _, e := range s.Symbols {
		if _, ok := t.byName[e.Name]; ok {
			continue
		}
		t.register(e.Name, ID{Scope: Scope(e.Scope), Serial: e.Serial})
	}
	if s.LastSerial > t.lastSerial {
		t.lastSerial = s.LastSerial
	}
	t.mu.Unlock()
	return t
}
