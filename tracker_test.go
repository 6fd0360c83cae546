package pocketcube

import "testing"

func TestPhaseDetection(t *testing.T) {
	tests := []struct {
		alg  string
		want Phase
	}{
		{"", PhaseSolved},
		{"U", PhaseLastLayerOriented},
		{"U2", PhaseLastLayerOriented},
		{"R U R' U R U2 R'", PhaseFirstLayer},
		{"R", PhaseScrambled},
		{"F", PhaseScrambled},
	}

	for _, tt := range tests {
		c, err := NewCubeFromAlg(tt.alg)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.DetectPhase(); got != tt.want {
			t.Errorf("%q: phase = %v, want %v", tt.alg, got, tt.want)
		}
	}
}

func TestSunePhase(t *testing.T) {
	c := NewCube()
	c.Apply(Sune...)
	p := c.GetProgress()
	if !p.FirstLayer || p.LastLayerOriented || p.Solved {
		t.Errorf("progress after Sune = %+v", p)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if tr.HighestPhase() != PhaseScrambled {
		t.Errorf("HighestPhase after reset = %v", tr.HighestPhase())
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr, err := NewTrackerFromAlg("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if tr.HighestPhase() != PhaseScrambled {
		t.Fatalf("scramble phase = %v", tr.HighestPhase())
	}
	if len(tr.Cube().Moves()) != 0 {
		t.Error("scramble should not count as history")
	}

	var phases []Phase
	solved := 0
	tr.SetPhaseCallback(func(p Phase) { phases = append(phases, p) })
	tr.SetSolvedCallback(func() { solved++ })

	// Undo the scramble one move at a time.
	if err := tr.ApplyMoves([]Move{U, R, UPrime, RPrime}); err != nil {
		t.Fatal(err)
	}

	if !tr.IsSolved() || solved != 1 {
		t.Fatalf("solved=%v callbacks=%d", tr.IsSolved(), solved)
	}
	if len(phases) == 0 || phases[len(phases)-1] != PhaseSolved {
		t.Errorf("phases = %v, want to end at solved", phases)
	}
	for i := 1; i < len(phases); i++ {
		if phases[i] <= phases[i-1] {
			t.Errorf("phases not increasing: %v", phases)
		}
	}
}

func TestTrackerRejectsInvalidMove(t *testing.T) {
	tr := NewTracker()
	if err := tr.ApplyMoves([]Move{R, Move(12)}); err == nil {
		t.Error("expected error for invalid move")
	}
	if tr.CubeString() != "0152463 0012021" {
		t.Errorf("valid prefix should stay applied, got %s", tr.CubeString())
	}
}
