package analysis

import (
	"sort"

	"github.com/SeamusWaldron/pocketcube"
)

// NGram is a move sequence repeated within a session.
type NGram struct {
	N        int    `json:"n"`
	Sequence string `json:"sequence"`
	Count    int    `json:"count"`
	// Starts holds the index of the first move of each occurrence.
	Starts []int `json:"starts,omitempty"`
}

// MineNGrams returns, for each n in [minN, maxN], the topK sequences of n
// moves seen at least twice, most frequent first. Ties sort by first
// occurrence.
func MineNGrams(moves []pocketcube.Move, minN, maxN, topK int) map[int][]NGram {
	report := make(map[int][]NGram)
	if minN < 1 {
		minN = 1
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		seen := make(map[string]*NGram)
		var order []*NGram

		for i := 0; i+n <= len(moves); i++ {
			key := pocketcube.FormatMoves(moves[i : i+n])
			g, ok := seen[key]
			if !ok {
				g = &NGram{N: n, Sequence: key}
				seen[key] = g
				order = append(order, g)
			}
			g.Count++
			g.Starts = append(g.Starts, i)
		}

		var top []NGram
		for _, g := range order {
			if g.Count >= 2 {
				top = append(top, *g)
			}
		}
		sort.SliceStable(top, func(a, b int) bool { return top[a].Count > top[b].Count })
		if topK > 0 && len(top) > topK {
			top = top[:topK]
		}
		if len(top) > 0 {
			report[n] = top
		}
	}

	return report
}
