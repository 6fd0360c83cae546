// Package pocketcube models a 2x2x2 cube (the "pocket cube") in the
// fixed-corner convention and simulates U, F and R turns on it.
//
// # State Encodings
//
// A cube state has two interchangeable forms:
//
//   - Stickers: 6 faces of 4 signed face colors, the form a renderer expects.
//   - State: a compact permutation and twist of the 7 movable corners. The
//     DLB corner is the fixed reference and is never represented.
//
// Stickers are converted to a State by labelling each sticker with a prime
// relative to the colors of the fixed corner, summing the primes of each
// corner to identify its piece, and reading the twist from where its U/D
// sticker sits. StickersFromState is the inverse.
//
// # Quick Start
//
//	cube := pocketcube.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(pocketcube.R, pocketcube.U, pocketcube.RPrime, pocketcube.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F R2 U'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cube)            // compact state text, e.g. "0152463 0012021"
//	fmt.Println(cube.Net())      // unfolded sticker net
//	fmt.Println(cube.IsSolved())
//
// # Moves
//
// Only the nine moves U, U', U2, F, F', F2, R, R', R2 exist, since turning
// the D, B or L layers would move the fixed corner. Move values are their
// index in that list.
//
// # Solving Phases
//
//   - PhaseScrambled: Cube is scrambled
//   - PhaseFirstLayer: D layer complete
//   - PhaseLastLayerOriented: D layer complete and U corners untwisted
//   - PhaseSolved: Cube is solved
package pocketcube
