package pocketcube

// Phase detection for the layer-by-layer method.
// The first layer is D, built around the fixed DLB corner.

var (
	firstLayerLocs = [3]int{LocDFL, LocDRF, LocDBR}
	lastLayerLocs  = [4]int{LocUBL, LocULF, LocUFR, LocURB}
)

// IsFirstLayerComplete checks that the three movable D corners are home and
// untwisted.
func (c *Cube) IsFirstLayerComplete() bool {
	for _, loc := range firstLayerLocs {
		if c.state.Pieces[loc] != loc || c.state.Orientations[loc] != TwistNone {
			return false
		}
	}
	return true
}

// IsLastLayerOriented checks that the first layer is complete and no U corner
// is twisted.
func (c *Cube) IsLastLayerOriented() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}
	for _, loc := range lastLayerLocs {
		if c.state.Orientations[loc] != TwistNone {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest phase the current state satisfies.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.IsLastLayerOriented():
		return PhaseLastLayerOriented
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	default:
		return PhaseScrambled
	}
}

// Phase is shorthand for DetectPhase.
func (c *Cube) Phase() Phase {
	return c.DetectPhase()
}

// GetProgress returns which phases are currently complete.
func (c *Cube) GetProgress() Progress {
	return Progress{
		FirstLayer:        c.IsFirstLayerComplete(),
		LastLayerOriented: c.IsLastLayerOriented(),
		Solved:            c.IsSolved(),
	}
}
