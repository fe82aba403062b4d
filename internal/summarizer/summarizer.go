// Package summarizer composes segmentation, tokenization, scoring and
// selection into extractive summaries.
package summarizer

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"

	"summary/internal/domain"
	"summary/internal/frequency"
	"summary/internal/language"
	"summary/internal/scorer"
	"summary/internal/segmenter"
	"summary/internal/selector"
	"summary/internal/tokenizer"
)

// Summarizer extracts the most representative sentences of a document.
// It is immutable after construction and safe for concurrent use.
type Summarizer struct {
	profile  *language.Profile
	split    func(text string) []domain.Sentence
	strategy Strategy
	logger   *slog.Logger
}

var _ domain.Summarizer = (*Summarizer)(nil)

// New creates a summarizer for lang. It fails with domain.ErrUnsupportedLanguage
// when no profile exists for lang.
func New(lang language.Language, opts ...Option) (*Summarizer, error) {
	profile, err := language.Lookup(lang)
	if err != nil {
		return nil, err
	}
	s := newSummarizer(profile, func(text string) []domain.Sentence {
		return segmenter.Split(text, profile)
	}, opts)
	if s.strategy != StrategyFrequency && s.strategy != StrategyCentrality {
		return nil, fmt.Errorf("unknown strategy: %s", s.strategy)
	}
	return s, nil
}

// NewLanguageAgnostic creates a summarizer without stop words that splits
// sentences at Unicode default boundaries.
func NewLanguageAgnostic(opts ...Option) *Summarizer {
	return newSummarizer(language.Agnostic(), segmenter.SplitUAX29, opts)
}

func newSummarizer(profile *language.Profile, split func(string) []domain.Sentence, opts []Option) *Summarizer {
	s := &Summarizer{
		profile: profile,
		split:   split,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Language returns the summarizer's language, zero when language agnostic.
func (s *Summarizer) Language() language.Language { return s.profile.Language() }

// Strategy returns the scoring strategy.
func (s *Summarizer) Strategy() Strategy { return s.strategy }

// Sentences segments and tokenizes text.
func (s *Summarizer) Sentences(text string) []domain.Sentence {
	sentences := s.split(text)
	tok := tokenizer.New(s.profile)
	for i := range sentences {
		sentences[i].Tokens = tok.Tokens(sentences[i].Text)
	}
	return sentences
}

// SummarizeSentences returns up to n sentences of text, in document order.
// Each sentence is returned as it appears in text, trimmed of surrounding
// whitespace. It fails with domain.ErrInvalidSummaryLength when n < 1.
func (s *Summarizer) SummarizeSentences(text string, n int) ([]string, error) {
	sentences, picked, err := s.Select(text, n)
	if err != nil {
		return nil, err
	}
	return texts(sentences, picked), nil
}

// Select is SummarizeSentences returning the segmented document and the
// chosen ordinals instead of strings.
func (s *Summarizer) Select(text string, n int) ([]domain.Sentence, []int, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d", domain.ErrInvalidSummaryLength, n)
	}
	sentences := s.Sentences(text)
	if len(sentences) == 0 {
		return nil, []int{}, nil
	}
	picked := selector.TopN(s.score(sentences), n)
	s.logger.Debug("sentences selected",
		"language", s.profile.Language(),
		"sentences", len(sentences),
		"requested", n,
		"selected", picked)
	return sentences, picked, nil
}

// SummarizeRatio returns the best sentences whose combined length stays
// within ratio of the byte length of text; at least one sentence is kept
// for non-empty text. Each sentence costs its length without trailing
// whitespace plus one separator byte. It fails with domain.ErrInvalidRatio
// unless 0 <= ratio <= 1.
func (s *Summarizer) SummarizeRatio(text string, ratio float64) ([]string, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRatio, ratio)
	}
	sentences := s.Sentences(text)
	if len(sentences) == 0 {
		return []string{}, nil
	}
	budget := int(math.Round(ratio * float64(len(text))))
	ranked := selector.Rank(s.score(sentences))
	picked := selector.WithinBudget(ranked, func(i int) int {
		return len(strings.TrimRightFunc(sentences[i].Text, unicode.IsSpace)) + 1
	}, budget)
	s.logger.Debug("sentences selected by ratio",
		"language", s.profile.Language(),
		"sentences", len(sentences),
		"budget", budget,
		"selected", picked)
	return texts(sentences, picked), nil
}

func (s *Summarizer) score(sentences []domain.Sentence) []domain.ScoredSentence {
	if s.strategy == StrategyCentrality {
		return scorer.Centrality(sentences)
	}
	table := frequency.Build(sentences)
	s.logger.Debug("frequency table built", "vocabulary", table.Vocabulary())
	return scorer.ScoreAll(sentences, table)
}

func texts(sentences []domain.Sentence, picked []int) []string {
	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = strings.TrimSpace(sentences[idx].Text)
	}
	return out
}
