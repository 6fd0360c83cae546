package pocketcube

import (
	"fmt"
	"strings"
)

// NumPieces is the number of movable corners. The eighth corner (DLB) is the
// fixed reference and never appears in a State.
const NumPieces = 7

// Corner locations, named by the faces they touch when solved.
const (
	LocUBL = 0
	LocULF = 1
	LocUFR = 2
	LocURB = 3
	LocDFL = 4
	LocDRF = 5
	LocDBR = 6

	// locDLB is the fixed reference corner. It only appears in sticker tables.
	locDLB = 7
)

// Twist values for a corner.
const (
	TwistNone = 0
	TwistCCW  = 1
	TwistCW   = 2
)

// State is the compact permutation/orientation representation of the seven
// movable corners. Both arrays are indexed by location:
//
//	Pieces[loc]       which solved piece now occupies loc
//	Orientations[loc] the twist of that piece (0 none, 1 ccw, 2 cw)
//
// Location map, looking at the UFR corner with DLB hidden behind:
//
//	   0
//	1     3
//	   2
//	4     6
//	   5
type State struct {
	Pieces       [NumPieces]int
	Orientations [NumPieces]int
}

// SolvedState returns the identity state.
func SolvedState() State {
	var s State
	for i := 0; i < NumPieces; i++ {
		s.Pieces[i] = i
	}
	return s
}

// IsSolved returns true if every piece is home and untwisted.
func (s State) IsSolved() bool {
	for i := 0; i < NumPieces; i++ {
		if s.Pieces[i] != i || s.Orientations[i] != TwistNone {
			return false
		}
	}
	return true
}

// Validate checks that Pieces is a permutation of 0..6 and every twist is 0..2.
func (s State) Validate() error {
	var seen [NumPieces]bool
	for loc := 0; loc < NumPieces; loc++ {
		p := s.Pieces[loc]
		if p < 0 || p >= NumPieces {
			return fmt.Errorf("%w: piece %d at location %d", ErrInvalidState, p, loc)
		}
		if seen[p] {
			return fmt.Errorf("%w: piece %d appears twice", ErrInvalidState, p)
		}
		seen[p] = true

		if o := s.Orientations[loc]; o < 0 || o > 2 {
			return fmt.Errorf("%w: orientation %d at location %d", ErrInvalidState, o, loc)
		}
	}
	return nil
}

// swap exchanges the pieces (with their twists) at two locations.
func (s *State) swap(a, b int) {
	s.Pieces[a], s.Pieces[b] = s.Pieces[b], s.Pieces[a]
	s.Orientations[a], s.Orientations[b] = s.Orientations[b], s.Orientations[a]
}

// twist adds delta to the orientation at loc, mod 3. delta is never negative.
func (s *State) twist(loc, delta int) {
	s.Orientations[loc] = (s.Orientations[loc] + delta) % 3
}

// String renders the state as 7 piece digits, a space, and 7 twist digits,
// e.g. "0152463 0012021".
func (s State) String() string {
	var b strings.Builder
	b.Grow(2*NumPieces + 1)
	for i := 0; i < NumPieces; i++ {
		b.WriteByte(byte('0' + s.Pieces[i]))
	}
	b.WriteByte(' ')
	for i := 0; i < NumPieces; i++ {
		b.WriteByte(byte('0' + s.Orientations[i]))
	}
	return b.String()
}

// ParseState parses the form produced by State.String and validates it.
func ParseState(text string) (State, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 || len(fields[0]) != NumPieces || len(fields[1]) != NumPieces {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidState, text)
	}

	var s State
	for i := 0; i < NumPieces; i++ {
		p, o := fields[0][i], fields[1][i]
		if p < '0' || p > '9' || o < '0' || o > '9' {
			return State{}, fmt.Errorf("%w: %q", ErrInvalidState, text)
		}
		s.Pieces[i] = int(p - '0')
		s.Orientations[i] = int(o - '0')
	}

	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}
