package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is a recorded scramble/solve attempt.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	StartState   string
	EndState     *string
	Notes        *string
}

// Ended reports whether the session has been closed.
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session and returns its ID.
func (r *SessionRepository) Create(scramble, startState, notes string) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, start_state, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, time.Now().UTC().Format(timeFormat), nullString(scramble), startState, nullString(notes))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End closes a session, recording the final state and duration.
func (r *SessionRepository) End(sessionID, endState string) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}
	startedAt, err := time.Parse(timeFormat, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, end_state = ?
		WHERE session_id = ?
	`, endedAt.Format(timeFormat), endedAt.Sub(startedAt).Milliseconds(), endState, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, duration_ms, scramble_text, start_state, end_state, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs,
		&s.ScrambleText, &s.StartState, &s.EndState, &s.Notes)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(timeFormat, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at for session %s: %w", s.SessionID, err)
	}
	if endedAtStr.Valid {
		t, err := time.Parse(timeFormat, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("invalid ended_at for session %s: %w", s.SessionID, err)
		}
		s.EndedAt = &t
	}
	return &s, nil
}

// Get retrieves a session by ID. It returns nil, nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently started session.
func (r *SessionRepository) GetLast() (*Session, error) {
	row := r.db.QueryRow(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT 1`)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves up to limit sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
