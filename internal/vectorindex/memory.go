// Package vectorindex is an in-memory vector index with brute-force cosine search.
package vectorindex

import (
	"cmp"
	"errors"
	"slices"

	"summary/internal/domain"
)

// Index holds L2-normalized sentence vectors keyed by sentence ordinal.
// It is built per call and is not safe for concurrent writes.
type Index struct {
	dimension int
	vectors   [][]float64
	ids       []int
}

// New returns an empty index; call Init before Upsert.
func New() *Index { return &Index{} }

// Init resets the index for vectors of the given dimension.
func (s *Index) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.dimension = dimension
	s.vectors = nil
	s.ids = nil
	return nil
}

// Upsert appends vectors under the given sentence ordinals.
func (s *Index) Upsert(ids []int, vectors [][]float64) error {
	if len(ids) != len(vectors) {
		return errors.New("ids and vectors length mismatch")
	}
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.ids = append(s.ids, ids...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns the topK most similar entries, best first, with lower
// ordinals first on equal similarity. topK <= 0 returns every entry.
func (s *Index) Search(vector []float64, topK int) ([]domain.ScoredSentence, error) {
	if len(vector) != s.dimension {
		return nil, errors.New("vector dimension mismatch")
	}
	// compute cosine similarity (vectors are assumed L2-normalized)
	results := make([]domain.ScoredSentence, len(s.vectors))
	for i := range s.vectors {
		results[i] = domain.ScoredSentence{Index: s.ids[i], Score: dot(s.vectors[i], vector)}
	}
	slices.SortStableFunc(results, func(a, b domain.ScoredSentence) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

func dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
