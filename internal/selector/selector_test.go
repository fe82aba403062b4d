package selector

import (
	"slices"
	"testing"

	"summary/internal/domain"
)

func scores(values ...float64) []domain.ScoredSentence {
	out := make([]domain.ScoredSentence, len(values))
	for i, v := range values {
		out[i] = domain.ScoredSentence{Index: i, Score: v}
	}
	return out
}

func TestRank(t *testing.T) {
	got := Rank(scores(1, 3, 2, 3, 0))
	want := []int{1, 3, 2, 0, 4}
	if !slices.Equal(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name   string
		scored []domain.ScoredSentence
		n      int
		want   []int
	}{
		{"document order", scores(2.5, 8.0/3.0, 3), 2, []int{1, 2}},
		{"ties keep earlier", scores(1, 1, 1, 1), 2, []int{0, 1}},
		{"tie at cut", scores(5, 1, 2, 2), 2, []int{0, 2}},
		{"n exceeds count", scores(1, 2), 5, []int{0, 1}},
		{"zero n", scores(1, 2), 0, []int{}},
		{"empty", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopN(tt.scored, tt.n)
			if !slices.Equal(got, tt.want) {
				t.Errorf("TopN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	scored := scores(1, 3, 2)
	before := slices.Clone(scored)
	TopN(scored, 2)
	if !slices.Equal(scored, before) {
		t.Errorf("TopN() mutated input: %v, want %v", scored, before)
	}
}

func TestWithinBudget(t *testing.T) {
	costs := []int{10, 20, 5, 30}
	cost := func(i int) int { return costs[i] }

	tests := []struct {
		name   string
		ranked []int
		budget int
		want   []int
	}{
		{"fits two", []int{1, 2, 0, 3}, 25, []int{1, 2}},
		{"stops at first overflow", []int{3, 2, 0}, 32, []int{3}},
		{"keeps one when nothing fits", []int{3, 0}, 0, []int{3}},
		{"everything fits", []int{0, 1, 2, 3}, 100, []int{0, 1, 2, 3}},
		{"empty", nil, 10, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinBudget(tt.ranked, cost, tt.budget)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WithinBudget() = %v, want %v", got, tt.want)
			}
		})
	}
}
