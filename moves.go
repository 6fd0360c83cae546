package pocketcube

// twist is an orientation increment applied to one location.
type twist struct {
	loc   int
	delta int
}

// turnDef is the fixed sequence of primitives a move performs: location swaps
// applied in order, then twists.
type turnDef struct {
	swaps  [][2]int
	twists []twist
}

// Quarter turns are three chained swaps forming a 4-cycle. F and R also twist
// the four corners they carry; U turns about the twist axis and does not.
var turnTable = [NumMoves]turnDef{
	U: {
		swaps: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
	UPrime: {
		swaps: [][2]int{{3, 2}, {2, 1}, {1, 0}},
	},
	U2: {
		swaps: [][2]int{{0, 2}, {1, 3}},
	},
	F: {
		swaps:  [][2]int{{2, 1}, {1, 4}, {4, 5}},
		twists: []twist{{2, TwistCW}, {1, TwistCCW}, {4, TwistCW}, {5, TwistCCW}},
	},
	FPrime: {
		swaps:  [][2]int{{5, 4}, {4, 1}, {1, 2}},
		twists: []twist{{2, TwistCW}, {1, TwistCCW}, {4, TwistCW}, {5, TwistCCW}},
	},
	F2: {
		swaps: [][2]int{{1, 5}, {2, 4}},
	},
	R: {
		swaps:  [][2]int{{3, 2}, {2, 5}, {5, 6}},
		twists: []twist{{3, TwistCW}, {2, TwistCCW}, {5, TwistCW}, {6, TwistCCW}},
	},
	RPrime: {
		swaps:  [][2]int{{6, 5}, {5, 2}, {2, 3}},
		twists: []twist{{3, TwistCW}, {2, TwistCCW}, {5, TwistCW}, {6, TwistCCW}},
	},
	R2: {
		swaps: [][2]int{{2, 6}, {3, 5}},
	},
}

// apply performs the move on s. m must be valid.
func (m Move) apply(s *State) {
	def := &turnTable[m]
	for _, sw := range def.swaps {
		s.swap(sw[0], sw[1])
	}
	for _, t := range def.twists {
		s.twist(t.loc, t.delta)
	}
}

// Predefined algorithms.
var (
	// SexyMove is R U R' U'. Six repetitions return to the start.
	SexyMove = []Move{R, U, RPrime, UPrime}

	// Sune twists three last-layer corners and keeps the first layer: R U R' U R U2 R'.
	Sune = []Move{R, U, RPrime, U, R, U2, RPrime}
)
