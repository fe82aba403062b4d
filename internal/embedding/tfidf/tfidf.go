// Package tfidf vectorizes pre-tokenized sentences with tf-idf weights.
package tfidf

import (
	"errors"
	"maps"
	"math"
	"slices"
)

var (
	// ErrEmptyVocabulary is returned by Prepare when the corpus has no tokens.
	ErrEmptyVocabulary = errors.New("no tokens found in corpus")

	errEmptyCorpus = errors.New("empty corpus")
	errUnprepared  = errors.New("tfidf embedder not prepared")
)

// Embedder maps token slices to L2-normalized tf-idf vectors over the
// vocabulary of the corpus it was prepared with.
type Embedder struct {
	terms map[string]int
	idf   []float64
}

// NewEmbedder creates an unprepared TF-IDF embedder.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

// Prepare builds the vocabulary from corpus, one token slice per sentence.
// A term's weight is log2(sentences / sentences containing it).
func (e *Embedder) Prepare(corpus [][]string) error {
	if len(corpus) == 0 {
		return errEmptyCorpus
	}
	df := sentenceFrequencies(corpus)
	if len(df) == 0 {
		return ErrEmptyVocabulary
	}

	// sorted so that dimensions do not depend on map order
	vocabulary := slices.Sorted(maps.Keys(df))
	n := float64(len(corpus))
	e.terms = make(map[string]int, len(vocabulary))
	e.idf = make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		e.terms[term] = i
		e.idf[i] = math.Log2(n / float64(df[term]))
	}
	return nil
}

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *Embedder) Dimension() int { return len(e.idf) }

// Embed weights each occurrence of a known token by its idf, so tf is the
// raw count, and normalizes the result. Vectors without weight stay zero.
func (e *Embedder) Embed(tokens []string) ([]float64, error) {
	if e.terms == nil {
		return nil, errUnprepared
	}
	vec := make([]float64, len(e.idf))
	for _, tok := range tokens {
		if i, ok := e.terms[tok]; ok {
			vec[i] += e.idf[i]
		}
	}
	normalize(vec)
	return vec, nil
}

func sentenceFrequencies(corpus [][]string) map[string]int {
	df := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	return df
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
