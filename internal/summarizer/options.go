package summarizer

import (
	"fmt"
	"log/slog"
	"strings"
)

// Strategy selects how sentences are scored.
type Strategy int

const (
	// StrategyFrequency scores a sentence by the average document frequency of its words.
	StrategyFrequency Strategy = iota
	// StrategyCentrality scores a sentence by tf-idf similarity to the most central sentence.
	StrategyCentrality
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFrequency:
		return "frequency"
	case StrategyCentrality:
		return "centrality"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy resolves a strategy by name; "" means frequency.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "frequency", "":
		return StrategyFrequency, nil
	case "centrality":
		return StrategyCentrality, nil
	}
	return 0, fmt.Errorf("unknown strategy: %s", name)
}

// Option configures a Summarizer at construction time.
type Option func(*Summarizer)

// WithLogger sets the logger used for debug tracing. Nil keeps the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Summarizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStrategy sets the scoring strategy.
func WithStrategy(strategy Strategy) Option {
	return func(s *Summarizer) {
		s.strategy = strategy
	}
}
