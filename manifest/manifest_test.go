package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EDubaj/MacRuby/symbol"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "symbols.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "test-runtime"
version = "0.1.0"

[journal]
path = "state/symbols.db"

[snapshot]
output = "out.snapshot"

[[reserved]]
name = "<=>"
code = 262

[[reserved]]
name = "[]="
code = 271
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Project.Name != "test-runtime" {
		t.Errorf("project name = %q, want test-runtime", m.Project.Name)
	}
	if m.Journal.Path != filepath.Join("state", "symbols.db") {
		t.Errorf("journal path = %q", m.Journal.Path)
	}
	if m.Snapshot.Output != "out.snapshot" {
		t.Errorf("snapshot output = %q", m.Snapshot.Output)
	}
	if len(m.Reserved) != 2 {
		t.Fatalf("reserved count = %d, want 2", len(m.Reserved))
	}
	if m.Reserved[0].Name != "<=>" || m.Reserved[0].Code != 262 {
		t.Errorf("reserved[0] = %+v", m.Reserved[0])
	}

	entries := m.ReservedEntries()
	if entries[1].ID != (symbol.ID{Scope: symbol.ScopeLocal, Serial: 271}) {
		t.Errorf("entries[1].ID = %v", entries[1].ID)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "minimal"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Journal.Path == "" {
		t.Error("journal path default not applied")
	}
	if m.Snapshot.Output == "" {
		t.Error("snapshot output default not applied")
	}
	if !filepath.IsAbs(m.JournalPath()) {
		t.Errorf("JournalPath() = %q, want absolute", m.JournalPath())
	}
	if !filepath.IsAbs(m.SnapshotPath()) {
		t.Errorf("SnapshotPath() = %q, want absolute", m.SnapshotPath())
	}
}

func TestLoadRejectsBadReservedCode(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[[reserved]]
name = "oops"
code = 5000
`)
	if _, err := Load(dir); err == nil {
		t.Error("expected error for code above the serial floor")
	}

	writeManifest(t, dir, `
[[reserved]]
name = ""
code = 300
`)
	if _, err := Load(dir); err == nil {
		t.Error("expected error for empty reserved name")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing symbols.toml")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[project]
name = "nested"
`)
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest")
	}
	if m.Project.Name != "nested" {
		t.Errorf("project name = %q", m.Project.Name)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no symbols.toml exists")
	}
}
