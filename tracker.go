package pocketcube

// Tracker wraps a Cube and provides phase change detection.
type Tracker struct {
	cube          *Cube
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
	solvedHandler func()
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{
		cube:      NewCube(opts...),
		lastPhase: PhaseSolved,
	}
}

// NewTrackerFromAlg creates a tracker whose cube has been scrambled by alg.
// The scramble does not fire callbacks.
func NewTrackerFromAlg(alg string, opts ...Option) (*Tracker, error) {
	c, err := NewCubeFromAlg(alg, opts...)
	if err != nil {
		return nil, err
	}
	c.ClearHistory()
	phase := c.DetectPhase()
	return &Tracker{
		cube:         c,
		lastPhase:    phase,
		highestPhase: phase,
	}, nil
}

// SetPhaseCallback sets a callback that fires when a new highest phase is reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// SetSolvedCallback sets a callback that fires each time a move solves the cube.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.solvedHandler = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled // Start at lowest phase
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.ApplyMove(m); err != nil {
		return err
	}
	t.checkPhaseTransition()
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first invalid one.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for i, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return &MoveError{Token: m.Notation(), Index: i, Err: ErrUnknownMove}
		}
	}
	return nil
}

// checkPhaseTransition checks if we've completed a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.cube.DetectPhase()
	t.lastPhase = currentPhase

	if currentPhase == PhaseSolved && t.solvedHandler != nil {
		t.solvedHandler()
	}

	// Only fire on a new high; phases never go backwards here.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase)
		}
	}
}

// CurrentPhase returns the current detected phase.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// GetProgress returns the detailed progress.
func (t *Tracker) GetProgress() Progress {
	return t.cube.GetProgress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns the compact state text of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
