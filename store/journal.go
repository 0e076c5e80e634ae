// Package store persists interned symbols to SQLite for post-mortem
// tooling and warm starts.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/EDubaj/MacRuby/symbol"
)

// ErrSessionNotFound indicates the requested session has no rows.
var ErrSessionNotFound = errors.New("session not found")

// Journal records dynamically interned symbols to a SQLite database.
// Rows are append-only: one row per distinct name per session. Serial
// numbers are process-local and are stored for diagnostics only; they
// are not stable across runs.
type Journal struct {
	db      *sql.DB
	dbPath  string
	session string
	mu      sync.Mutex
}

// Open opens or creates the journal database at dbPath and starts a
// fresh session.
func Open(dbPath string) (*Journal, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS symbols (
		session     TEXT    NOT NULL,
		name        TEXT    NOT NULL,
		scope       INTEGER NOT NULL,
		serial      INTEGER NOT NULL,
		recorded_at TEXT    NOT NULL,
		PRIMARY KEY (session, name)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Journal{
		db:      db,
		dbPath:  dbPath,
		session: uuid.New().String(),
	}, nil
}

// Session returns this journal's session identifier.
func (j *Journal) Session() string {
	return j.session
}

// Record appends one interned symbol to the current session. Recording
// the same name twice within a session is a no-op.
func (j *Journal) Record(name string, id symbol.ID) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		`INSERT OR IGNORE INTO symbols (session, name, scope, serial, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		j.session, name, int(id.Scope), int64(id.Serial),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store: record %q: %w", name, err)
	}
	return nil
}

// Sessions returns every known session ID, oldest first.
func (j *Journal) Sessions() ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		`SELECT session FROM symbols GROUP BY session ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Replay re-interns every name recorded under session into reg, in
// recorded order, and returns how many names were replayed. IDs are not
// preserved across processes; replay only warms the table.
func (j *Journal) Replay(session string, reg *symbol.Registry) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		`SELECT name FROM symbols WHERE session = ? ORDER BY rowid`, session)
	if err != nil {
		return 0, fmt.Errorf("store: replay session %s: %w", session, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return count, fmt.Errorf("store: scan name: %w", err)
		}
		reg.Intern(name)
		count++
	}
	if err := rows.Err(); err != nil {
		return count, err
	}
	if count == 0 {
		return 0, ErrSessionNotFound
	}
	return count, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Recorder couples a registry with a journal: every first-time intern
// is written through to the journal.
type Recorder struct {
	reg *symbol.Registry
	j   *Journal
}

// NewRecorder creates a recorder over reg and j.
func NewRecorder(reg *symbol.Registry, j *Journal) *Recorder {
	return &Recorder{reg: reg, j: j}
}

// Intern interns name and journals it when the call created a new
// record. The intern itself never fails; only the journal write can.
func (r *Recorder) Intern(name string) (symbol.ID, error) {
	if id, ok := r.reg.Lookup(name); ok {
		return id, nil
	}
	id := r.reg.Intern(name)
	if err := r.j.Record(name, id); err != nil {
		return id, err
	}
	return id, nil
}

// Registry returns the wrapped registry.
func (r *Recorder) Registry() *symbol.Registry {
	return r.reg
}
