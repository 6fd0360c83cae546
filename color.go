package pocketcube

import (
	"fmt"
	"strings"
)

// Color is a signed face label. Sign and magnitude together name one of the
// six faces; opposite faces share a magnitude.
type Color int8

const (
	ColorU Color = 1  // White when solved
	ColorF Color = 2  // Green when solved
	ColorR Color = 3  // Red when solved
	ColorD Color = -1 // Yellow when solved
	ColorB Color = -2 // Blue when solved
	ColorL Color = -3 // Orange when solved
)

// Valid reports whether c is one of the six face colors.
func (c Color) Valid() bool {
	return c != 0 && c >= -3 && c <= 3
}

// Negate returns the color of the opposite face.
func (c Color) Negate() Color {
	return -c
}

// axis returns the magnitude shared by c and its opposite.
func (c Color) axis() int {
	if c < 0 {
		return int(-c)
	}
	return int(c)
}

func (c Color) String() string {
	switch c {
	case ColorU:
		return "W"
	case ColorF:
		return "G"
	case ColorR:
		return "R"
	case ColorD:
		return "Y"
	case ColorB:
		return "B"
	case ColorL:
		return "O"
	default:
		return "?"
	}
}

// ParseColor converts a color letter (W, G, R, Y, B, O, either case) to a Color.
func ParseColor(r rune) (Color, error) {
	switch r {
	case 'W', 'w':
		return ColorU, nil
	case 'G', 'g':
		return ColorF, nil
	case 'R', 'r':
		return ColorR, nil
	case 'Y', 'y':
		return ColorD, nil
	case 'B', 'b':
		return ColorB, nil
	case 'O', 'o':
		return ColorL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, r)
	}
}

// Face indexes the six faces of the sticker grid.
// The grid is laid out as the unfolded net:
//
//	  U
//	L F R B
//	  D
type Face int

const (
	FaceU Face = 0 // Up
	FaceF Face = 1 // Front
	FaceR Face = 2 // Right
	FaceD Face = 3 // Down
	FaceB Face = 4 // Back
	FaceL Face = 5 // Left
)

// Faces lists all faces in grid order.
var Faces = [6]Face{FaceU, FaceF, FaceR, FaceD, FaceB, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceD:
		return "D"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// solvedColor returns the color of a face when solved under the canonical reference.
func solvedColor(f Face) Color {
	switch f {
	case FaceU:
		return ColorU
	case FaceF:
		return ColorF
	case FaceR:
		return ColorR
	case FaceD:
		return ColorD
	case FaceB:
		return ColorB
	case FaceL:
		return ColorL
	default:
		return 0
	}
}

// Stickers is the full visible state: 6 faces of 4 stickers each.
// Stickers within a face are indexed:
//
//	0 1
//	2 3
type Stickers [6][4]Color

// SolvedStickers returns the sticker grid of a solved cube.
func SolvedStickers() Stickers {
	var s Stickers
	for _, face := range Faces {
		color := solvedColor(face)
		for i := 0; i < 4; i++ {
			s[face][i] = color
		}
	}
	return s
}

// Sticker returns the color at the given face and index.
func (s Stickers) Sticker(face Face, index int) Color {
	return s[face][index]
}

// ParseStickers reads 24 color letters in face order U, F, R, D, B, L.
// Whitespace is ignored, so "WWWW GGGG RRRR YYYY BBBB OOOO" is accepted.
func ParseStickers(text string) (Stickers, error) {
	var s Stickers
	n := 0
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if n >= 24 {
			return Stickers{}, fmt.Errorf("%w: more than 24 stickers", ErrInvalidStickers)
		}
		c, err := ParseColor(r)
		if err != nil {
			return Stickers{}, err
		}
		s[n/4][n%4] = c
		n++
	}
	if n != 24 {
		return Stickers{}, fmt.Errorf("%w: got %d stickers, want 24", ErrInvalidStickers, n)
	}
	return s, nil
}

// Compact returns the 24 color letters grouped by face, the form ParseStickers reads.
func (s Stickers) Compact() string {
	parts := make([]string, 6)
	for f := 0; f < 6; f++ {
		var b strings.Builder
		for i := 0; i < 4; i++ {
			b.WriteString(s[f][i].String())
		}
		parts[f] = b.String()
	}
	return strings.Join(parts, " ")
}

// String returns the unfolded net of the grid.
func (s Stickers) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		for col := 0; col < 2; col++ {
			b.WriteString(s[FaceU][row*2+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 2; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 2; col++ {
				b.WriteString(s[face][row*2+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		for col := 0; col < 2; col++ {
			b.WriteString(s[FaceD][row*2+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
