// Package summary extracts the most representative sentences of a text.
//
// A summary is a subset of the document's own sentences, returned in their
// original order. Sentences are scored by the average document frequency of
// their non-stop words (or, optionally, by tf-idf centrality) and the best
// ones are kept.
//
//	s, err := summary.New(summary.English)
//	if err != nil {
//		return err
//	}
//	sentences, err := s.SummarizeSentences(text, 3)
package summary

import (
	"summary/internal/domain"
	"summary/internal/language"
	"summary/internal/summarizer"
)

// Summarizer extracts sentences from text in one language. It is safe for
// concurrent use.
type Summarizer = summarizer.Summarizer

// Language identifies a supported document language.
type Language = language.Language

// Sentence is one contiguous span of a document with its normalized tokens.
type Sentence = domain.Sentence

// Strategy selects how sentences are scored.
type Strategy = summarizer.Strategy

// Option configures a Summarizer.
type Option = summarizer.Option

const (
	English    = language.English
	French     = language.French
	German     = language.German
	Spanish    = language.Spanish
	Italian    = language.Italian
	Portuguese = language.Portuguese
	Dutch      = language.Dutch
	Russian    = language.Russian
)

const (
	StrategyFrequency  = summarizer.StrategyFrequency
	StrategyCentrality = summarizer.StrategyCentrality
)

var (
	ErrUnsupportedLanguage  = domain.ErrUnsupportedLanguage
	ErrInvalidSummaryLength = domain.ErrInvalidSummaryLength
	ErrInvalidRatio         = domain.ErrInvalidRatio
)

// New creates a summarizer for lang.
func New(lang Language, opts ...Option) (*Summarizer, error) {
	return summarizer.New(lang, opts...)
}

// NewLanguageAgnostic creates a summarizer that uses no stop words and
// Unicode default sentence boundaries.
func NewLanguageAgnostic(opts ...Option) *Summarizer {
	return summarizer.NewLanguageAgnostic(opts...)
}

// ParseLanguage resolves a language from its English name or ISO 639-1 code.
func ParseLanguage(name string) (Language, error) {
	return language.Parse(name)
}

// Languages returns every supported language.
func Languages() []Language {
	return language.All()
}

var (
	WithLogger   = summarizer.WithLogger
	WithStrategy = summarizer.WithStrategy
)
