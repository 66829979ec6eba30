// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished play session.
type Session struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Frontend  string // "tui", "window" or "ssh"
	Width     int    // Grid size in cells
	Height    int
	Reveals   int
	Marks     int
	Moves     int
	Blocked   int // Moves rejected at the grid edge
}

// Totals aggregates every recorded session.
type Totals struct {
	Sessions   int
	PlayTime   time.Duration
	Reveals    int
	Marks      int
	Moves      int
	Blocked    int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			frontend TEXT NOT NULL DEFAULT 'tui',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			reveals INTEGER NOT NULL DEFAULT 0,
			marks INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			blocked INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (started_at, duration_secs, frontend, width, height, reveals, marks, moves, blocked)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.StartedAt.Unix(),
		int64(sess.Duration/time.Second),
		sess.Frontend,
		sess.Width,
		sess.Height,
		sess.Reveals,
		sess.Marks,
		sess.Moves,
		sess.Blocked,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, duration_secs, frontend, width, height, reveals, marks, moves, blocked
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started, secs int64
		if err := rows.Scan(
			&sess.ID,
			&started,
			&secs,
			&sess.Frontend,
			&sess.Width,
			&sess.Height,
			&sess.Reveals,
			&sess.Marks,
			&sess.Moves,
			&sess.Blocked,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.Unix(started, 0)
		sess.Duration = time.Duration(secs) * time.Second
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals aggregates all recorded sessions.
// Returns zero totals when nothing has been played.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var secs int64
	var last sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(duration_secs), 0),
		        COALESCE(SUM(reveals), 0), COALESCE(SUM(marks), 0),
		        COALESCE(SUM(moves), 0), COALESCE(SUM(blocked), 0),
		        MAX(started_at)
		 FROM sessions`,
	).Scan(&t.Sessions, &secs, &t.Reveals, &t.Marks, &t.Moves, &t.Blocked, &last)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.PlayTime = time.Duration(secs) * time.Second
	if last.Valid {
		t.LastPlayed = time.Unix(last.Int64, 0)
	}
	return t, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
