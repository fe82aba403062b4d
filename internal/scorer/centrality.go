package scorer

import (
	"summary/internal/domain"
	"summary/internal/embedding/tfidf"
	"summary/internal/vectorindex"
)

// Centrality scores sentences by tf-idf cosine similarity to a core
// sentence: the one closest to the document as a whole (earliest on ties).
// Scores are returned in ordinal order and lie in [0, 1]. Documents without
// any tokens score 0 throughout. Ordinals must match slice positions, as
// produced by the segmenter.
func Centrality(sentences []domain.Sentence) []domain.ScoredSentence {
	out := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		out[i] = domain.ScoredSentence{Index: s.Index}
	}
	if len(sentences) == 0 {
		return out
	}

	corpus := make([][]string, len(sentences))
	var all []string
	for i, s := range sentences {
		corpus[i] = s.Tokens
		all = append(all, s.Tokens...)
	}
	emb := tfidf.NewEmbedder()
	if err := emb.Prepare(corpus); err != nil {
		return out
	}

	ids := make([]int, len(sentences))
	vectors := make([][]float64, len(sentences))
	for i, s := range sentences {
		vec, err := emb.Embed(s.Tokens)
		if err != nil {
			return out
		}
		ids[i], vectors[i] = s.Index, vec
	}
	overall, err := emb.Embed(all)
	if err != nil {
		return out
	}

	index := vectorindex.New()
	if err := index.Init(emb.Dimension()); err != nil {
		return out
	}
	if err := index.Upsert(ids, vectors); err != nil {
		return out
	}
	best, err := index.Search(overall, 1)
	if err != nil || len(best) == 0 {
		return out
	}
	core := vectors[best[0].Index]
	hits, err := index.Search(core, 0)
	if err != nil {
		return out
	}
	for _, h := range hits {
		out[h.Index].Score = max(h.Score, 0)
	}
	return out
}
