package pocketcube

import "math/rand/v2"

// RandomScramble returns n random moves, never turning the same face twice
// in a row. A nil r uses the global source. It returns nil when n <= 0.
func RandomScramble(r *rand.Rand, n int) []Move {
	if n <= 0 {
		return nil
	}
	intn := rand.IntN
	if r != nil {
		intn = r.IntN
	}

	moves := make([]Move, 0, n)
	last := Face(-1)
	for len(moves) < n {
		m := Move(intn(NumMoves))
		if m.Face() == last {
			continue
		}
		moves = append(moves, m)
		last = m.Face()
	}
	return moves
}
