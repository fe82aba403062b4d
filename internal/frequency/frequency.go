// Package frequency counts word occurrences across a document.
package frequency

import "summary/internal/domain"

// Table maps a normalized word to its occurrence count in one document.
type Table map[string]int

// Build counts every token of every sentence in a single pass.
func Build(sentences []domain.Sentence) Table {
	t := make(Table)
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			t[tok]++
		}
	}
	return t
}

// Count returns the occurrences of word, zero when unseen.
func (t Table) Count(word string) int { return t[word] }

// Vocabulary returns the number of distinct words.
func (t Table) Vocabulary() int { return len(t) }
