package pocketcube

import (
	"errors"
	"testing"
)

func TestSolvedState(t *testing.T) {
	s := SolvedState()
	if !s.IsSolved() {
		t.Error("SolvedState should be solved")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseState(t *testing.T) {
	c, _ := NewCubeFromAlg("F R U' R2")
	text := c.String()

	s, err := ParseState(text)
	if err != nil {
		t.Fatalf("ParseState(%q): %v", text, err)
	}
	if s != c.State() {
		t.Errorf("ParseState(%q) = %v", text, s)
	}
}

func TestParseStateRejects(t *testing.T) {
	for _, text := range []string{
		"",
		"0123456",
		"0123456 000000",
		"0123455 0000000", // repeated piece
		"0123457 0000000", // piece out of range
		"0123456 0000300", // twist out of range
		"012345x 0000000",
		"0123456 0000000 0",
	} {
		if _, err := ParseState(text); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ParseState(%q) error = %v, want ErrInvalidState", text, err)
		}
	}
}

func TestParseStickers(t *testing.T) {
	s, err := ParseStickers("WWWW GGGG RRRR YYYY BBBB OOOO")
	if err != nil {
		t.Fatal(err)
	}
	if s != SolvedStickers() {
		t.Errorf("got %v", s)
	}

	c, _ := NewCubeFromAlg("R U F'")
	back, err := ParseStickers(c.Stickers().Compact())
	if err != nil {
		t.Fatal(err)
	}
	if back != c.Stickers() {
		t.Error("Compact/ParseStickers round trip failed")
	}
}

func TestParseStickersRejects(t *testing.T) {
	if _, err := ParseStickers("WWWW GGGG RRRR YYYY BBBB OOOX"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("bad letter: error = %v, want ErrUnknownColor", err)
	}
	if _, err := ParseStickers("WWWW GGGG"); !errors.Is(err, ErrInvalidStickers) {
		t.Errorf("short grid: error = %v, want ErrInvalidStickers", err)
	}
	if _, err := ParseStickers("WWWW GGGG RRRR YYYY BBBB OOOO W"); !errors.Is(err, ErrInvalidStickers) {
		t.Errorf("long grid: error = %v, want ErrInvalidStickers", err)
	}
}

func TestStickersNet(t *testing.T) {
	want := "" +
		"    W W \n" +
		"    W W \n" +
		"O O G G R R B B \n" +
		"O O G G R R B B \n" +
		"    Y Y \n" +
		"    Y Y \n"
	if got := SolvedStickers().String(); got != want {
		t.Errorf("net:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("WGR")
	if err != nil {
		t.Fatal(err)
	}
	if ref != CanonicalReference || ref.String() != "WGR" {
		t.Errorf("ParseReference(WGR) = %v", ref)
	}

	for text, want := range map[string]error{
		"WG":   ErrInvalidStickers,
		"WYR":  ErrInvalidStickers,
		"WGX":  ErrUnknownColor,
		"WGRB": ErrInvalidStickers,
	} {
		if _, err := ParseReference(text); !errors.Is(err, want) {
			t.Errorf("ParseReference(%q) error = %v, want %v", text, err, want)
		}
	}
}
