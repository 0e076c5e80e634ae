// Package manifest handles symbols.toml runtime configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/EDubaj/MacRuby/symbol"
)

// Manifest represents a symbols.toml configuration file.
type Manifest struct {
	Project  Project    `toml:"project"`
	Journal  Journal    `toml:"journal"`
	Snapshot Snapshot   `toml:"snapshot"`
	Reserved []Reserved `toml:"reserved"`

	// Dir is the directory containing the symbols.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains embedder metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Journal configures the symbol journal database.
type Journal struct {
	Path string `toml:"path"`
}

// Snapshot configures snapshot output.
type Snapshot struct {
	Output string `toml:"output"`
}

// Reserved is an extra reserved token registered at bootstrap, after
// the parser's operator table. Codes must stay below the dynamic
// serial floor.
type Reserved struct {
	Name string `toml:"name"`
	Code uint64 `toml:"code"`
}

// Load parses a symbols.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "symbols.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Journal.Path == "" {
		m.Journal.Path = filepath.Join(".macruby", "symbols.db")
	}
	if m.Snapshot.Output == "" {
		m.Snapshot.Output = "symbols.snapshot"
	}

	for _, r := range m.Reserved {
		if r.Name == "" {
			return nil, fmt.Errorf("%s: reserved token with empty name", path)
		}
		if r.Code == 0 || r.Code >= symbol.SeedSerial {
			return nil, fmt.Errorf("%s: reserved token %q: code %d outside 1..%d",
				path, r.Name, r.Code, symbol.SeedSerial-1)
		}
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a symbols.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "symbols.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// JournalPath returns the absolute path of the journal database.
func (m *Manifest) JournalPath() string {
	if filepath.IsAbs(m.Journal.Path) {
		return m.Journal.Path
	}
	return filepath.Join(m.Dir, m.Journal.Path)
}

// SnapshotPath returns the absolute path of the snapshot output file.
func (m *Manifest) SnapshotPath() string {
	if filepath.IsAbs(m.Snapshot.Output) {
		return m.Snapshot.Output
	}
	return filepath.Join(m.Dir, m.Snapshot.Output)
}

// ReservedEntries converts the manifest's extra tokens into registry
// bootstrap entries.
func (m *Manifest) ReservedEntries() []symbol.Reserved {
	out := make([]symbol.Reserved, len(m.Reserved))
	for i, r := range m.Reserved {
		out[i] = symbol.Reserved{
			Name: r.Name,
			ID:   symbol.ID{Scope: symbol.ScopeLocal, Serial: r.Code},
		}
	}
	return out
}
