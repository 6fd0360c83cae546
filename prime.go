package pocketcube

import "fmt"

// Reference holds the up-, front- and right-axis colors of the UFR corner of a
// solved cube, as implied by the fixed DLB corner. It is the key for mapping
// sticker colors to primes and back.
type Reference [3]Color

// CanonicalReference is the reference of a cube in the solved color scheme.
var CanonicalReference = Reference{ColorU, ColorF, ColorR}

// ParseReference parses three color letters naming the up, front and right
// colors of the UFR corner, e.g. "WGR" for the canonical reference.
func ParseReference(text string) (Reference, error) {
	runes := []rune(text)
	if len(runes) != 3 {
		return Reference{}, fmt.Errorf("%w: reference needs 3 colors, got %q", ErrInvalidStickers, text)
	}

	var ref Reference
	var axes [4]bool
	for i, r := range runes {
		c, err := ParseColor(r)
		if err != nil {
			return Reference{}, err
		}
		if axes[c.axis()] {
			return Reference{}, fmt.Errorf("%w: reference %q repeats an axis", ErrInvalidStickers, text)
		}
		axes[c.axis()] = true
		ref[i] = c
	}
	return ref, nil
}

func (ref Reference) String() string {
	return ref[0].String() + ref[1].String() + ref[2].String()
}

// Primes assigned to reference colors and their opposites. Any three primes
// taken one per axis sum to a value unique to one corner.
var (
	referencePrimes = [3]int{0, 1, 2}
	oppositePrimes  = [3]int{3, 5, 7}
)

// primeGrid is a sticker grid with colors replaced by primes.
type primeGrid [6][4]int

// referenceFromStickers derives the reference from the three DLB stickers.
// The DLB corner shows the opposites of the UFR colors: D[2] on the up axis,
// B[3] on the front axis and L[2] on the right axis.
func referenceFromStickers(s Stickers) (Reference, error) {
	dlb := [3]struct {
		face  Face
		index int
	}{
		{FaceD, 2},
		{FaceB, 3},
		{FaceL, 2},
	}

	var ref Reference
	var axes [4]bool
	for i, pos := range dlb {
		c := s[pos.face][pos.index]
		if !c.Valid() {
			return Reference{}, &StickerError{Face: pos.face, Index: pos.index, Color: c, Err: ErrUnknownColor}
		}
		if axes[c.axis()] {
			return Reference{}, fmt.Errorf("%w: fixed corner repeats an axis", ErrInvalidStickers)
		}
		axes[c.axis()] = true
		ref[i] = c.Negate()
	}
	return ref, nil
}

// primeTable builds the color-to-prime lookup for a reference. The table is
// indexed by color+3; -1 marks a color with no prime.
func (ref Reference) primeTable() [7]int {
	table := [7]int{-1, -1, -1, -1, -1, -1, -1}
	for axis, c := range ref {
		table[int(c)+3] = referencePrimes[axis]
		table[int(c.Negate())+3] = oppositePrimes[axis]
	}
	return table
}

// toPrimes converts every sticker color into its prime under ref.
func toPrimes(s Stickers, ref Reference) (primeGrid, error) {
	table := ref.primeTable()

	var g primeGrid
	for f := 0; f < 6; f++ {
		for i := 0; i < 4; i++ {
			c := s[f][i]
			if !c.Valid() || table[int(c)+3] < 0 {
				return primeGrid{}, &StickerError{Face: Face(f), Index: i, Color: c, Err: ErrUnknownColor}
			}
			g[f][i] = table[int(c)+3]
		}
	}
	return g, nil
}

// primeAxis returns the axis (0 up, 1 front, 2 right) a prime belongs to.
func primeAxis(p int) int {
	switch p {
	case 0, 3:
		return 0
	case 1, 5:
		return 1
	default:
		return 2
	}
}
