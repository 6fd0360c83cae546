package pocketcube

// Phase represents the current solving phase in the layer-by-layer method,
// measured against the fixed DLB corner. Phases progress from Scrambled (0) to
// Solved (3), allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates the cube is in a scrambled state.
	PhaseScrambled Phase = iota

	// PhaseFirstLayer indicates the D layer is complete.
	// DFL, DRF and DBR are home and untwisted; DLB never moves.
	PhaseFirstLayer

	// PhaseLastLayerOriented indicates the first layer is complete and all
	// four U corners show their U/D sticker on top (may be mis-permuted).
	PhaseLastLayerOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseLastLayerOriented:
		return "last_layer_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseLastLayerOriented:
		return "Last Layer Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// Progress represents which phases have been completed.
type Progress struct {
	FirstLayer        bool
	LastLayerOriented bool
	Solved            bool
}
