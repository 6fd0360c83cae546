package pocketcube

// stickerOwner gives the location owning each sticker. locDLB marks the four
// stickers of the fixed corner.
var stickerOwner = [6][4]int{
	FaceU: {LocUBL, LocURB, LocULF, LocUFR},
	FaceF: {LocULF, LocUFR, LocDFL, LocDRF},
	FaceR: {LocUFR, LocURB, LocDRF, LocDBR},
	FaceD: {LocDFL, LocDRF, locDLB, LocDBR},
	FaceB: {LocURB, LocUBL, LocDBR, locDLB},
	FaceL: {LocUBL, LocULF, locDLB, LocDFL},
}

// stickerOffset gives the index of each sticker within its owner's color triple
// when the owner is untwisted.
var stickerOffset = [6][4]int{
	FaceU: {0, 0, 0, 0},
	FaceF: {2, 1, 1, 2},
	FaceR: {2, 1, 1, 2},
	FaceD: {0, 0, 0, 0},
	FaceB: {2, 1, 1, 2},
	FaceL: {2, 1, 1, 2},
}

// pieceAxes describes the solved colors of each piece as signed reference
// axes: +n is ref[n-1], -n is its opposite. Index 7 is the fixed DLB corner.
var pieceAxes = [NumPieces + 1][3]int{
	LocUBL: {1, -2, -3},
	LocULF: {1, -3, 2},
	LocUFR: {1, 2, 3},
	LocURB: {1, 3, -2},
	LocDFL: {-1, 2, -3},
	LocDRF: {-1, 3, 2},
	LocDBR: {-1, -2, 3},
	locDLB: {-1, -3, -2},
}

// pieceColors resolves pieceAxes against a reference.
func (ref Reference) pieceColors() [NumPieces + 1][3]Color {
	var colors [NumPieces + 1][3]Color
	for p, axes := range pieceAxes {
		for i, a := range axes {
			if a > 0 {
				colors[p][i] = ref[a-1]
			} else {
				colors[p][i] = ref[-a-1].Negate()
			}
		}
	}
	return colors
}

// StickersFromState projects a compact state back to a full sticker grid.
// The state must be valid.
func StickersFromState(s State, ref Reference) Stickers {
	colors := ref.pieceColors()

	var out Stickers
	for f := 0; f < 6; f++ {
		for i := 0; i < 4; i++ {
			owner := stickerOwner[f][i]
			offset := stickerOffset[f][i]

			// The fixed corner never twists.
			if owner == locDLB {
				out[f][i] = colors[locDLB][offset]
				continue
			}

			piece := s.Pieces[owner]
			out[f][i] = colors[piece][(offset+2*s.Orientations[owner])%3]
		}
	}
	return out
}
