package pocketcube

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseMove(t *testing.T) {
	for i, n := range []string{"U", "U'", "U2", "F", "F'", "F2", "R", "R'", "R2"} {
		m, err := ParseMove(n)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", n, err)
			continue
		}
		if int(m) != i {
			t.Errorf("ParseMove(%q) = %d, want %d", n, int(m), i)
		}
		if m.Notation() != n {
			t.Errorf("Notation() = %q, want %q", m.Notation(), n)
		}
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, s := range []string{"", "Q", "u", "r", "D", "L'", "B2", "R3", "R2'", " R", "U`"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrUnknownMove) {
			t.Errorf("ParseMove(%q) error = %v, want ErrUnknownMove", s, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves(" R U  R' U' ")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != "R U R' U'" {
		t.Errorf("FormatMoves = %q", got)
	}

	_, err = ParseMoves("R U X")
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Token != "X" || moveErr.Index != 2 {
		t.Errorf("ParseMoves(R U X) error = %v", err)
	}
}

func TestMoveFaceAndTurn(t *testing.T) {
	tests := []struct {
		m    Move
		face Face
		turn Turn
	}{
		{U, FaceU, CW},
		{UPrime, FaceU, CCW},
		{U2, FaceU, Double},
		{F, FaceF, CW},
		{FPrime, FaceF, CCW},
		{F2, FaceF, Double},
		{R, FaceR, CW},
		{RPrime, FaceR, CCW},
		{R2, FaceR, Double},
	}
	for _, tt := range tests {
		if tt.m.Face() != tt.face || tt.m.Turn() != tt.turn {
			t.Errorf("%v: got (%v, %d), want (%v, %d)", tt.m, tt.m.Face(), tt.m.Turn(), tt.face, tt.turn)
		}
		if got := moveOf(tt.face, tt.turn); got != tt.m {
			t.Errorf("moveOf(%v, %d) = %v, want %v", tt.face, tt.turn, got, tt.m)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	pairs := map[Move]Move{U: UPrime, UPrime: U, U2: U2, F: FPrime, FPrime: F, F2: F2, R: RPrime, RPrime: R, R2: R2}
	for m, want := range pairs {
		if got := m.Inverse(); got != want {
			t.Errorf("%v.Inverse() = %v, want %v", m, got, want)
		}
	}
}

func TestInvalidMoveNotation(t *testing.T) {
	if Move(9).Valid() || Move(-1).Valid() {
		t.Error("out-of-range moves should be invalid")
	}
	if Move(9).Notation() != "?" {
		t.Errorf("Notation of invalid move = %q", Move(9).Notation())
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"U R R' U'", ""},
		{"R2 R", "R'"},
		{"F U U2 U R", "F R"},
		{"R U F", "R U F"},
		{"U2 U2 R", "R"},
	}

	for _, tt := range tests {
		moves, err := ParseMoves(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatMoves(Simplify(moves)); got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyPreservesState(t *testing.T) {
	moves, _ := ParseMoves("R R U U' F F F R2 R2 U2 U")
	a := NewCube()
	a.Apply(moves...)
	b := NewCube()
	b.Apply(Simplify(moves)...)
	if a.State() != b.State() {
		t.Errorf("simplified sequence reached %v, want %v", b.State(), a.State())
	}
}

func TestInverseMoves(t *testing.T) {
	moves, _ := ParseMoves("R U F2 R'")
	if got := FormatMoves(InverseMoves(moves)); got != "R F2 U' R'" {
		t.Errorf("InverseMoves = %q", got)
	}
}

func TestRandomScramble(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	moves := RandomScramble(r, 25)
	if len(moves) != 25 {
		t.Fatalf("len = %d", len(moves))
	}
	for i, m := range moves {
		if !m.Valid() {
			t.Errorf("move %d invalid: %d", i, m)
		}
		if i > 0 && m.Face() == moves[i-1].Face() {
			t.Errorf("moves %d and %d turn the same face: %s", i-1, i, FormatMoves(moves))
		}
	}

	again := RandomScramble(rand.New(rand.NewPCG(1, 2)), 25)
	if FormatMoves(again) != FormatMoves(moves) {
		t.Error("same seed should give the same scramble")
	}
}

func TestRandomScrambleEmpty(t *testing.T) {
	for _, n := range []int{0, -1, -25} {
		if moves := RandomScramble(nil, n); moves != nil {
			t.Errorf("RandomScramble(%d) = %v, want nil", n, moves)
		}
	}
}
