// Package selector picks the best sentences while keeping document order.
package selector

import (
	"cmp"
	"slices"

	"summary/internal/domain"
)

// Rank orders sentence ordinals best first: score descending, earlier
// sentence first on equal scores.
func Rank(scored []domain.ScoredSentence) []int {
	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b domain.ScoredSentence) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	out := make([]int, len(ranked))
	for i, s := range ranked {
		out[i] = s.Index
	}
	return out
}

// TopN returns the ordinals of the n best sentences in ascending order.
// All sentences are returned when n exceeds their count.
func TopN(scored []domain.ScoredSentence, n int) []int {
	ranked := Rank(scored)
	return inOrder(ranked[:min(max(n, 0), len(ranked))])
}

// WithinBudget walks ranked ordinals and keeps them while the summed cost
// stays within budget. At least one sentence is kept when any exist.
func WithinBudget(ranked []int, cost func(index int) int, budget int) []int {
	end, total := len(ranked), 0
	for i, idx := range ranked {
		total += cost(idx)
		if total > budget {
			end = i
			break
		}
	}
	if end == 0 && len(ranked) > 0 {
		end = 1
	}
	return inOrder(ranked[:end])
}

func inOrder(picked []int) []int {
	out := slices.Clone(picked)
	slices.Sort(out)
	return out
}
