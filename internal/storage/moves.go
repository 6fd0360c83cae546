package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/pocketcube"
)

// MoveRecord is a move stored against a session.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Notation  string
	StateText string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, ts_ms, notation, state_text)
	VALUES (?, ?, ?, ?, ?)
`

// Create stores one move with the state it produced and returns its row ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, m pocketcube.Move, stateText string) (int64, error) {
	result, err := r.db.Exec(insertMove, sessionID, moveIndex, tsMs, m.Notation(), stateText)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// CreateBatch stores records in a single transaction. SessionID on each
// record is ignored in favour of sessionID.
func (r *MoveRepository) CreateBatch(sessionID string, records []MoveRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for _, rec := range records {
			_, err := tx.Exec(insertMove, sessionID, rec.MoveIndex, rec.TsMs, rec.Notation, rec.StateText)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", rec.MoveIndex, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, notation, state_text
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Notation, &m.StateText); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves parses the notation of each record.
func ToMoves(records []MoveRecord) ([]pocketcube.Move, error) {
	moves := make([]pocketcube.Move, len(records))
	for i, r := range records {
		m, err := pocketcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d of session %s: %w", r.MoveIndex, r.SessionID, err)
		}
		moves[i] = m
	}
	return moves, nil
}
