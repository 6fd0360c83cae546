package pocketcube

import "fmt"

// stickerPos addresses one sticker of the grid.
type stickerPos struct {
	face  Face
	index int
}

// cornerStickers lists the three stickers of each movable location, starting
// with the U/D sticker.
var cornerStickers = [NumPieces][3]stickerPos{
	LocUBL: {{FaceU, 0}, {FaceB, 1}, {FaceL, 0}},
	LocULF: {{FaceU, 2}, {FaceL, 1}, {FaceF, 0}},
	LocUFR: {{FaceU, 3}, {FaceF, 1}, {FaceR, 0}},
	LocURB: {{FaceU, 1}, {FaceR, 1}, {FaceB, 0}},
	LocDFL: {{FaceD, 0}, {FaceF, 2}, {FaceL, 3}},
	LocDRF: {{FaceD, 1}, {FaceR, 2}, {FaceF, 3}},
	LocDBR: {{FaceD, 3}, {FaceB, 2}, {FaceR, 3}},
}

// primeSumPiece maps the prime sum of a corner to the piece it identifies.
// -1 marks sums that no corner produces.
var primeSumPiece = [16]int{
	3:  LocUFR, // 0+1+2
	6:  LocDRF, // 3+1+2
	7:  LocURB, // 0+5+2
	8:  LocULF, // 0+1+7
	10: LocDBR, // 3+5+2
	11: LocDFL, // 3+1+7
	12: LocUBL, // 0+5+7

	0: -1, 1: -1, 2: -1, 4: -1, 5: -1, 9: -1, 13: -1, 14: -1, 15: -1,
}

// assemble groups the primed stickers into corners and derives the compact state.
func assemble(g primeGrid) (State, error) {
	var s State
	for loc := 0; loc < NumPieces; loc++ {
		sum := 0
		twist := -1
		var axes [3]bool
		for j, pos := range cornerStickers[loc] {
			p := g[pos.face][pos.index]
			axis := primeAxis(p)
			if axes[axis] {
				return State{}, fmt.Errorf("%w: corner at location %d shows two stickers of one axis", ErrInvalidStickers, loc)
			}
			axes[axis] = true

			sum += p
			// The position of the U/D-axis sticker within the corner is its twist.
			if axis == 0 {
				twist = j
			}
		}

		piece := primeSumPiece[sum]
		if piece < 0 || twist < 0 {
			return State{}, fmt.Errorf("%w: corner at location %d matches no piece", ErrInvalidStickers, loc)
		}
		s.Pieces[loc] = piece
		s.Orientations[loc] = twist
	}

	if err := s.Validate(); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidStickers, err)
	}
	return s, nil
}

// StateFromStickers converts a sticker grid to its compact state and the
// reference derived from the fixed DLB corner.
func StateFromStickers(s Stickers) (State, Reference, error) {
	ref, err := referenceFromStickers(s)
	if err != nil {
		return State{}, Reference{}, err
	}

	g, err := toPrimes(s, ref)
	if err != nil {
		return State{}, Reference{}, err
	}

	state, err := assemble(g)
	if err != nil {
		return State{}, Reference{}, err
	}
	return state, ref, nil
}
