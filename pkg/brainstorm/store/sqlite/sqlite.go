// Package sqlite implements store.Store on a SQLite database using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/internalerr"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and creates the
// schema if it does not exist.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	problem_statement TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ideas (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	FOREIGN KEY(session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_ideas_session ON ideas(session_id, position);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// CreateSession inserts a new session row.
func (s *sqliteStore) CreateSession(ctx context.Context, sess store.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("create session: %w", internalerr.ErrInvalidInput)
	}

	const stmt = `INSERT INTO sessions (id, problem_statement, created_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt, sess.ID, sess.ProblemStatement, sess.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("create session %s: %w", sess.ID, err)
	}
	return nil
}

// GetSession returns a session by id.
func (s *sqliteStore) GetSession(ctx context.Context, id string) (store.Session, error) {
	const stmt = `SELECT id, problem_statement, created_at FROM sessions WHERE id = ?`

	var sess store.Session
	var createdAt string
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&sess.ID, &sess.ProblemStatement, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Session{}, fmt.Errorf("session %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Session{}, err
	}

	sess.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Session{}, fmt.Errorf("session %s created_at: %w", id, err)
	}
	return sess, nil
}

// ListSessions returns all sessions ordered by creation time.
func (s *sqliteStore) ListSessions(ctx context.Context) ([]store.Session, error) {
	const stmt = `SELECT id, problem_statement, created_at FROM sessions ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Session
	for rows.Next() {
		var sess store.Session
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.ProblemStatement, &createdAt); err != nil {
			return nil, err
		}
		sess.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("session %s created_at: %w", sess.ID, err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// UpdateProblem replaces the session's problem statement.
func (s *sqliteStore) UpdateProblem(ctx context.Context, sessionID, problemStatement string) error {
	const stmt = `UPDATE sessions SET problem_statement = ? WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, problemStatement, sessionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}
	return nil
}

// AppendIdea adds an idea to the end of the session's list.
func (s *sqliteStore) AppendIdea(ctx context.Context, sessionID string, idea store.Idea) error {
	if idea.ID == "" {
		return fmt.Errorf("append idea: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM sessions WHERE id = ?`, sessionID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}

	const stmt = `
INSERT INTO ideas (id, session_id, position, text, author, created_at)
VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM ideas WHERE session_id = ?), ?, ?, ?)
`
	_, err = tx.ExecContext(ctx, stmt,
		idea.ID,
		sessionID,
		sessionID,
		idea.Text,
		idea.Author,
		idea.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append idea %s: %w", idea.ID, err)
	}

	return tx.Commit()
}

// ListIdeas returns the session's ideas in append order.
func (s *sqliteStore) ListIdeas(ctx context.Context, sessionID string) ([]store.Idea, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM sessions WHERE id = ?`, sessionID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}

	const stmt = `
SELECT id, text, author, created_at FROM ideas
WHERE session_id = ?
ORDER BY position
`
	rows, err := s.db.QueryContext(ctx, stmt, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Idea
	for rows.Next() {
		var idea store.Idea
		var createdAt string
		if err := rows.Scan(&idea.ID, &idea.Text, &idea.Author, &createdAt); err != nil {
			return nil, err
		}
		idea.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("idea %s created_at: %w", idea.ID, err)
		}
		out = append(out, idea)
	}
	return out, rows.Err()
}
