// Package persistence provides SQLite-backed storage for the event stream
// and periodic character snapshots. The database is an audit trail, not
// live state: the simulation never reads back from it mid-run.
package persistence

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"riverside/internal/agent"
	"riverside/internal/world"
)

// DB wraps a SQLite connection. Satisfies world.EventSink.
type DB struct {
	conn  *sqlx.DB
	runID string
}

// Open opens or creates a SQLite database at the given path and tags all
// writes with runID.
func Open(path, runID string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, runID: runID}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS world_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		event_type TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		participants TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS character_states (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		character_name TEXT NOT NULL,
		character_role TEXT NOT NULL,
		location TEXT NOT NULL,
		mood TEXT NOT NULL,
		energy INTEGER NOT NULL,
		activity TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		run_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE INDEX IF NOT EXISTS idx_events_run ON world_events(run_id);
	CREATE INDEX IF NOT EXISTS idx_events_type ON world_events(event_type);
	CREATE INDEX IF NOT EXISTS idx_states_character ON character_states(run_id, character_name);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record appends one world event. Participants are stored as a
// comma-separated list; this is display data, not a join key.
func (db *DB) Record(ev world.Event) error {
	_, err := db.conn.Exec(
		`INSERT INTO world_events (run_id, timestamp, event_type, description, location, participants)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		db.runID,
		ev.Time.Format(time.RFC3339),
		ev.Type,
		ev.Description,
		ev.Location,
		strings.Join(ev.Participants, ", "),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// SaveCharacterStates appends a snapshot row per agent in one transaction.
func (db *DB) SaveCharacterStates(agents []*agent.Agent, at time.Time) error {
	if len(agents) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO character_states
		(run_id, character_name, character_role, location, mood, energy, activity, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ts := at.Format(time.RFC3339)
	for _, a := range agents {
		if _, err := stmt.Exec(db.runID, a.Name, a.Role.String(), a.Location, a.Mood, a.Energy, a.Activity, ts); err != nil {
			return fmt.Errorf("insert state for %s: %w", a.Name, err)
		}
	}

	return tx.Commit()
}

// SaveMeta stores a key-value pair scoped to the current run.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (run_id, key, value) VALUES (?, ?, ?)",
		db.runID, key, value,
	)
	return err
}

// GetMeta retrieves a metadata value for the current run.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value,
		"SELECT value FROM run_meta WHERE run_id = ? AND key = ?", db.runID, key)
	return value, err
}

// StoredEvent is the row shape read back from world_events.
type StoredEvent struct {
	ID           int64  `db:"id"`
	Timestamp    string `db:"timestamp"`
	EventType    string `db:"event_type"`
	Description  string `db:"description"`
	Location     string `db:"location"`
	Participants string `db:"participants"`
}

// RecentEvents returns the most recent limit events for the current run,
// newest first.
func (db *DB) RecentEvents(limit int) ([]StoredEvent, error) {
	var events []StoredEvent
	err := db.conn.Select(&events,
		`SELECT id, timestamp, event_type, description, location, participants
		 FROM world_events WHERE run_id = ? ORDER BY id DESC LIMIT ?`,
		db.runID, limit,
	)
	return events, err
}

// EventCount returns the number of stored events for the current run.
func (db *DB) EventCount() (int, error) {
	var n int
	err := db.conn.Get(&n,
		"SELECT COUNT(*) FROM world_events WHERE run_id = ?", db.runID)
	return n, err
}

// LogStats logs per-type event counts for the current run.
func (db *DB) LogStats() {
	var rows []struct {
		EventType string `db:"event_type"`
		N         int    `db:"n"`
	}
	err := db.conn.Select(&rows,
		`SELECT event_type, COUNT(*) AS n FROM world_events
		 WHERE run_id = ? GROUP BY event_type ORDER BY n DESC`, db.runID)
	if err != nil {
		slog.Warn("event stats query failed", "error", err)
		return
	}
	for _, r := range rows {
		slog.Info("event count", "type", r.EventType, "count", r.N)
	}
}
