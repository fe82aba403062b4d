package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"summary/internal/domain"
)

// Engine is the summarizer surface the service drives.
type Engine interface {
	domain.Summarizer
	Select(text string, n int) ([]domain.Sentence, []int, error)
}

// SummaryService loads documents and summarizes them with an Engine.
type SummaryService struct {
	engine Engine
}

func NewSummaryService(engine Engine) *SummaryService {
	return &SummaryService{engine: engine}
}

// SetEngine swaps the engine, e.g. after the user picks another language.
func (s *SummaryService) SetEngine(engine Engine) { s.engine = engine }

// LoadDocuments reads every file matched by paths; entries that are not
// glob patterns are read as plain paths.
func (s *SummaryService) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents found")
	}
	return documents, nil
}

// ReadDocument wraps everything readable from r as one document.
func (s *SummaryService) ReadDocument(name string, r io.Reader) (domain.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{ID: hashString(name), Path: name, Content: string(data)}, nil
}

func (s *SummaryService) Summarize(doc domain.Document, n int) ([]string, error) {
	out, err := s.engine.SummarizeSentences(doc.Content, n)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", doc.Path, err)
	}
	return out, nil
}

func (s *SummaryService) SummarizeRatio(doc domain.Document, ratio float64) ([]string, error) {
	out, err := s.engine.SummarizeRatio(doc.Content, ratio)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", doc.Path, err)
	}
	return out, nil
}

// Highlights returns every sentence of doc, marking the n selected ones.
func (s *SummaryService) Highlights(doc domain.Document, n int) ([]domain.Highlight, error) {
	sentences, picked, err := s.engine.Select(doc.Content, n)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", doc.Path, err)
	}
	selected := make(map[int]bool, len(picked))
	for _, idx := range picked {
		selected[idx] = true
	}
	out := make([]domain.Highlight, len(sentences))
	for i, sent := range sentences {
		out[i] = domain.Highlight{Sentence: sent, Selected: selected[sent.Index]}
	}
	return out, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
