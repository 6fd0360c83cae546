package pocketcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pocketcube package.
var (
	// Input errors
	ErrUnknownColor = errors.New("pocketcube: unknown sticker color")
	ErrUnknownMove  = errors.New("pocketcube: unknown move")

	// State errors
	ErrInvalidState    = errors.New("pocketcube: invalid permutation/orientation state")
	ErrInvalidStickers = errors.New("pocketcube: invalid sticker grid")
)

// MoveError reports the token that could not be applied from a move sequence.
// Moves before Index have already been applied.
type MoveError struct {
	Token string
	Index int
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Token, e.Index)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// StickerError reports the sticker that failed sticker-to-piece conversion.
type StickerError struct {
	Face  Face
	Index int
	Color Color
	Err   error
}

func (e *StickerError) Error() string {
	return fmt.Sprintf("%v: %d at %s[%d]", e.Err, int(e.Color), e.Face, e.Index)
}

func (e *StickerError) Unwrap() error {
	return e.Err
}
