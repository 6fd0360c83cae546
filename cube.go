package pocketcube

import (
	"fmt"
	"strings"
)

// Cube is a 2x2x2 cube in the fixed-corner convention: the DLB corner never
// moves, so only U, F and R turns are needed and the state is the compact
// permutation/orientation of the other seven corners.
//
// A Cube is not safe for concurrent mutation; guard it externally or give
// each goroutine its own.
type Cube struct {
	state State
	ref   Reference
	cfg   *config

	moves []Move
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Cube{
		state: SolvedState(),
		ref:   CanonicalReference,
		cfg:   cfg,
	}
}

// NewCubeFromStickers creates a cube from a sticker grid.
// The grid is trusted to be reachable from a solved cube.
func NewCubeFromStickers(s Stickers, opts ...Option) (*Cube, error) {
	c := NewCube(opts...)
	if err := c.SetStateFromStickers(s); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCubeFromState creates a cube holding a validated compact state.
func NewCubeFromState(s State, opts ...Option) (*Cube, error) {
	c := NewCube(opts...)
	if err := c.SetState(s); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCubeFromAlg creates a solved cube and applies a move sequence to it.
func NewCubeFromAlg(alg string, opts ...Option) (*Cube, error) {
	c := NewCube(opts...)
	if err := c.ApplyNotation(alg); err != nil {
		return nil, err
	}
	return c, nil
}

// Clone creates a deep copy of the cube, including its move history.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		state: c.state,
		ref:   c.ref,
		cfg:   c.cfg,
	}
	if c.moves != nil {
		clone.moves = make([]Move, len(c.moves))
		copy(clone.moves, c.moves)
	}
	return clone
}

// Reset returns the cube to the solved state under the canonical reference
// and clears the history.
func (c *Cube) Reset() {
	c.state = SolvedState()
	c.ref = CanonicalReference
	c.moves = nil
}

// State returns a copy of the compact state.
func (c *Cube) State() State {
	return c.state
}

// Reference returns the reference colors used to project stickers.
func (c *Cube) Reference() Reference {
	return c.ref
}

// Piece returns the piece at a location (0-6).
func (c *Cube) Piece(loc int) int {
	return c.state.Pieces[loc]
}

// Orientation returns the twist of the piece at a location (0-6).
func (c *Cube) Orientation(loc int) int {
	return c.state.Orientations[loc]
}

// Stickers projects the state to a full sticker grid.
func (c *Cube) Stickers() Stickers {
	return StickersFromState(c.state, c.ref)
}

// Sticker returns the color of one sticker.
func (c *Cube) Sticker(face Face, index int) Color {
	return c.Stickers()[face][index]
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// SetState replaces the compact state and resets the reference to
// CanonicalReference. The state must have been produced under that reference.
func (c *Cube) SetState(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.ref = CanonicalReference
	c.state = s
	return nil
}

// SetStateFromStickers replaces the state with one converted from a sticker
// grid. The reference is taken from the grid's fixed corner. On error the
// cube is unchanged.
func (c *Cube) SetStateFromStickers(s Stickers) error {
	state, ref, err := StateFromStickers(s)
	if err != nil {
		return err
	}
	c.state = state
	c.ref = ref
	return nil
}

// ApplyMove applies one move. An invalid move returns ErrUnknownMove and
// leaves the cube unchanged.
func (c *Cube) ApplyMove(m Move) error {
	if !m.Valid() {
		return fmt.Errorf("%w: index %d", ErrUnknownMove, int(m))
	}
	m.apply(&c.state)
	c.record(m)
	return nil
}

// Apply applies moves in order. It stops at the first invalid move; earlier
// moves stay applied.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return &MoveError{Token: fmt.Sprint(int(m)), Index: i, Err: ErrUnknownMove}
		}
	}
	return nil
}

// ApplyNotation applies a whitespace-separated move sequence such as
// "R U R' U'". Tokens are applied as they are parsed, so on an unknown token
// the moves before it stay applied and the returned *MoveError names it.
func (c *Cube) ApplyNotation(alg string) error {
	for i, tok := range strings.Fields(alg) {
		m, err := ParseMove(tok)
		if err != nil {
			return &MoveError{Token: tok, Index: i, Err: ErrUnknownMove}
		}
		m.apply(&c.state)
		c.record(m)
	}
	return nil
}

// record appends m to the history when enabled.
func (c *Cube) record(m Move) {
	if !c.cfg.moveHistory {
		return
	}
	c.moves = append(c.moves, m)
	if n := c.cfg.historyCap; n > 0 && len(c.moves) > n {
		c.moves = c.moves[len(c.moves)-n:]
	}
}

// Moves returns a copy of the move history.
func (c *Cube) Moves() []Move {
	out := make([]Move, len(c.moves))
	copy(out, c.moves)
	return out
}

// ClearHistory empties the move history without touching the state.
func (c *Cube) ClearHistory() {
	c.moves = nil
}

// String returns the compact state text, e.g. "0152463 0012021".
func (c *Cube) String() string {
	return c.state.String()
}

// Net returns the unfolded sticker net.
func (c *Cube) Net() string {
	return c.Stickers().String()
}
