package engine

import (
	"sort"

	"resumerank/internal/types"
)

// Rank returns a new slice sorted by overall score, highest first.
// The sort is stable so candidates with equal scores keep their
// submission order. The input slice is not modified.
func Rank(scored []types.ScoredCandidate) []types.ScoredCandidate {
	ranked := make([]types.ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Overall > ranked[j].Scores.Overall
	})

	return ranked
}
