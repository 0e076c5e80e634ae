package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/EDubaj/MacRuby/symbol"
	"github.com/EDubaj/MacRuby/token"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "state", "symbols.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndReplay(t *testing.T) {
	j := openTestJournal(t)
	reg := symbol.NewRegistry(token.Reserved())

	names := []string{"foo", "@bar", "Const", "setter="}
	for _, name := range names {
		if err := j.Record(name, reg.Intern(name)); err != nil {
			t.Fatalf("Record(%q): %v", name, err)
		}
	}

	fresh := symbol.NewRegistry(token.Reserved())
	count, err := j.Replay(j.Session(), fresh)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if count != len(names) {
		t.Errorf("replayed %d names, want %d", count, len(names))
	}
	for _, name := range names {
		if _, ok := fresh.Lookup(name); !ok {
			t.Errorf("replayed registry missing %q", name)
		}
	}
}

func TestRecordDuplicateIsNoop(t *testing.T) {
	j := openTestJournal(t)
	reg := symbol.NewRegistry(nil)

	id := reg.Intern("foo")
	if err := j.Record("foo", id); err != nil {
		t.Fatal(err)
	}
	if err := j.Record("foo", id); err != nil {
		t.Fatal(err)
	}

	fresh := symbol.NewRegistry(nil)
	count, err := j.Replay(j.Session(), fresh)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("replayed %d rows, want 1", count)
	}
}

func TestReplayUnknownSession(t *testing.T) {
	j := openTestJournal(t)
	reg := symbol.NewRegistry(nil)
	if _, err := j.Replay("no-such-session", reg); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Replay error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessions(t *testing.T) {
	j := openTestJournal(t)
	reg := symbol.NewRegistry(nil)
	if err := j.Record("foo", reg.Intern("foo")); err != nil {
		t.Fatal(err)
	}

	sessions, err := j.Sessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0] != j.Session() {
		t.Errorf("Sessions() = %v, want [%s]", sessions, j.Session())
	}
}

func TestRecorder(t *testing.T) {
	j := openTestJournal(t)
	reg := symbol.NewRegistry(token.Reserved())
	rec := NewRecorder(reg, j)

	first, err := rec.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	second, err := rec.Intern("foo")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Recorder.Intern not idempotent: %v vs %v", first, second)
	}

	fresh := symbol.NewRegistry(token.Reserved())
	count, err := j.Replay(j.Session(), fresh)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("journal has %d rows, want 1", count)
	}
}
