// Package analysis computes statistics over recorded sessions.
package analysis

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// PauseThresholdMs is the gap counted as a pause.
const PauseThresholdMs = 1500

// SessionSummary holds statistics for a single session.
type SessionSummary struct {
	SessionID         string           `json:"session_id"`
	StartedAt         string           `json:"started_at"`
	EndedAt           string           `json:"ended_at,omitempty"`
	DurationMs        int64            `json:"duration_ms"`
	Scramble          string           `json:"scramble,omitempty"`
	Solved            bool             `json:"solved"`
	FinalPhase        string           `json:"final_phase"`
	TotalMoves        int              `json:"total_moves"`
	SimplifiedMoves   int              `json:"simplified_moves"`
	Efficiency        float64          `json:"efficiency"`
	TPS               float64          `json:"tps"`
	LongestPauseMs    int64            `json:"longest_pause_ms"`
	PauseCount        int              `json:"pause_count"`
	AvgMoveDurationMs float64          `json:"avg_move_duration_ms"`
	Profile           *MovementProfile `json:"profile"`
}

// TimedMove is a move with its offset from the session start.
type TimedMove struct {
	Move pocketcube.Move
	TsMs int64
}

// Summarize computes the summary of a stored session and its moves.
func Summarize(s *storage.Session, records []storage.MoveRecord) (*SessionSummary, error) {
	moves := make([]TimedMove, len(records))
	plain := make([]pocketcube.Move, len(records))
	for i, r := range records {
		m, err := pocketcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = TimedMove{Move: m, TsMs: r.TsMs}
		plain[i] = m
	}

	sum := &SessionSummary{
		SessionID:         s.SessionID,
		StartedAt:         s.StartedAt.Format(time.RFC3339),
		TotalMoves:        len(moves),
		SimplifiedMoves:   len(pocketcube.Simplify(plain)),
		LongestPauseMs:    FindLongestPause(moves),
		PauseCount:        CountPausesOver(moves, PauseThresholdMs),
		AvgMoveDurationMs: CalculateAvgMoveDuration(moves),
		Profile:           AnalyzeMovementProfile(plain),
	}
	if s.ScrambleText != nil {
		sum.Scramble = *s.ScrambleText
	}
	if s.EndedAt != nil {
		sum.EndedAt = s.EndedAt.Format(time.RFC3339)
	}

	switch {
	case s.DurationMs != nil:
		sum.DurationMs = *s.DurationMs
	case len(moves) > 0:
		sum.DurationMs = moves[len(moves)-1].TsMs
	}
	sum.TPS = CalculateTPS(len(moves), sum.DurationMs)
	if sum.TotalMoves > 0 {
		sum.Efficiency = float64(sum.SimplifiedMoves) / float64(sum.TotalMoves)
	}

	final := s.StartState
	if len(records) > 0 {
		final = records[len(records)-1].StateText
	}
	st, err := pocketcube.ParseState(final)
	if err != nil {
		return nil, fmt.Errorf("final state: %w", err)
	}
	c, err := pocketcube.NewCubeFromState(st)
	if err != nil {
		return nil, fmt.Errorf("final state: %w", err)
	}
	sum.Solved = c.IsSolved()
	sum.FinalPhase = c.DetectPhase().String()

	return sum, nil
}

// CalculateTPS returns turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration returns the average gap between consecutive moves.
func CalculateAvgMoveDuration(moves []TimedMove) float64 {
	if len(moves) < 2 {
		return 0
	}
	total := moves[len(moves)-1].TsMs - moves[0].TsMs
	return float64(total) / float64(len(moves)-1)
}

// FindLongestPause returns the longest gap between consecutive moves.
func FindLongestPause(moves []TimedMove) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		if gap := moves[i].TsMs - moves[i-1].TsMs; gap > longest {
			longest = gap
		}
	}
	return longest
}

// CountPausesOver counts gaps longer than thresholdMs.
func CountPausesOver(moves []TimedMove, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].TsMs-moves[i-1].TsMs > thresholdMs {
			count++
		}
	}
	return count
}

// MovementProfile counts how often each face and turn is used.
type MovementProfile struct {
	FaceCounts   map[string]int `json:"face_counts"`
	TurnCounts   map[string]int `json:"turn_counts"`
	MostUsedFace string         `json:"most_used_face,omitempty"`
}

// AnalyzeMovementProfile counts faces and turn directions.
func AnalyzeMovementProfile(moves []pocketcube.Move) *MovementProfile {
	p := &MovementProfile{
		FaceCounts: make(map[string]int),
		TurnCounts: make(map[string]int),
	}

	for _, m := range moves {
		p.FaceCounts[m.Face().String()]++
		p.TurnCounts[turnName(m.Turn())]++
	}

	best := 0
	for _, f := range []pocketcube.Face{pocketcube.FaceU, pocketcube.FaceF, pocketcube.FaceR} {
		if n := p.FaceCounts[f.String()]; n > best {
			best = n
			p.MostUsedFace = f.String()
		}
	}
	return p
}

func turnName(t pocketcube.Turn) string {
	switch t {
	case pocketcube.CW:
		return "cw"
	case pocketcube.CCW:
		return "ccw"
	case pocketcube.Double:
		return "double"
	default:
		return "unknown"
	}
}
