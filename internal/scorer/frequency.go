// Package scorer assigns importance scores to sentences.
package scorer

import (
	"summary/internal/domain"
	"summary/internal/frequency"
)

// Frequency scores a sentence by the average document frequency of its
// tokens. Sentences without tokens score 0.
func Frequency(s domain.Sentence, table frequency.Table) float64 {
	if len(s.Tokens) == 0 {
		return 0
	}
	sum := 0
	for _, tok := range s.Tokens {
		sum += table.Count(tok)
	}
	return float64(sum) / float64(len(s.Tokens))
}

// ScoreAll scores every sentence against the document-wide table, in ordinal order.
func ScoreAll(sentences []domain.Sentence, table frequency.Table) []domain.ScoredSentence {
	out := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		out[i] = domain.ScoredSentence{Index: s.Index, Score: Frequency(s, table)}
	}
	return out
}
