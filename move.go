package pocketcube

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is one of the nine turns of the fixed-corner model. The value is the
// move's index; only the U, F and R layers turn since DLB never moves.
type Move int

const (
	U      Move = iota // Up clockwise
	UPrime             // Up counter-clockwise
	U2                 // Up 180
	F                  // Front clockwise
	FPrime             // Front counter-clockwise
	F2                 // Front 180
	R                  // Right clockwise
	RPrime             // Right counter-clockwise
	R2                 // Right 180

	// NumMoves is the number of distinct moves.
	NumMoves = 9
)

// AllMoves lists every move in index order.
var AllMoves = [NumMoves]Move{U, UPrime, U2, F, FPrime, F2, R, RPrime, R2}

var moveNotation = [NumMoves]string{"U", "U'", "U2", "F", "F'", "F2", "R", "R'", "R2"}

// Valid reports whether m is one of the nine moves.
func (m Move) Valid() bool {
	return m >= 0 && m < NumMoves
}

// Face returns the face turned by the move.
func (m Move) Face() Face {
	switch m / 3 {
	case 0:
		return FaceU
	case 1:
		return FaceF
	default:
		return FaceR
	}
}

// Turn returns the direction and amount of the move.
func (m Move) Turn() Turn {
	switch m % 3 {
	case 0:
		return CW
	case 1:
		return CCW
	default:
		return Double
	}
}

// Notation returns the standard cube notation for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	return moveNotation[m]
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	switch m.Turn() {
	case CW:
		return m + 1
	case CCW:
		return m - 1
	default:
		return m
	}
}

// moveOf builds the move for a face and turn.
func moveOf(face Face, turn Turn) Move {
	var base Move
	switch face {
	case FaceF:
		base = F
	case FaceR:
		base = R
	}
	switch turn {
	case CCW:
		return base + 1
	case Double:
		return base + 2
	default:
		return base
	}
}

// Merge combines two same-face moves into one.
// ok is false when the faces differ. When the turns cancel, ok is true and
// merged is nil.
func (m Move) Merge(other Move) (merged *Move, ok bool) {
	if m.Face() != other.Face() {
		return nil, false
	}

	quarters := (quarterTurns(m) + quarterTurns(other)) % 4
	var turn Turn
	switch quarters {
	case 0:
		return nil, true
	case 1:
		turn = CW
	case 2:
		turn = Double
	case 3:
		turn = CCW
	}

	mv := moveOf(m.Face(), turn)
	return &mv, true
}

// quarterTurns counts the clockwise quarter turns in m.
func quarterTurns(m Move) int {
	switch m.Turn() {
	case CW:
		return 1
	case Double:
		return 2
	default:
		return 3
	}
}

// ParseMove parses a single move token. Tokens must match exactly; "r" and
// "R3" are rejected.
func ParseMove(s string) (Move, error) {
	for i, n := range moveNotation {
		if s == n {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// ParseMoves parses a whitespace-separated move sequence.
// Example: "R U R' U'"
// On the first unknown token it returns a *MoveError naming it.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, &MoveError{Token: part, Index: i, Err: ErrUnknownMove}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Simplify merges adjacent same-face moves and drops turns that cancel.
// "R R" becomes "R2" and "U R R' U'" becomes empty.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(out) == 0 {
			out = append(out, m)
			continue
		}

		last := out[len(out)-1]
		merged, ok := last.Merge(m)
		if !ok {
			out = append(out, m)
			continue
		}

		out = out[:len(out)-1]
		if merged != nil {
			out = append(out, *merged)
		}
	}
	return out
}
