package tfidf

import (
	"errors"
	"math"
	"testing"
)

func TestPrepare(t *testing.T) {
	e := NewEmbedder()
	if err := e.Prepare([][]string{{"a", "b"}, {"a", "c"}}); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if e.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", e.Dimension())
	}
}

func TestPrepare_Errors(t *testing.T) {
	if err := NewEmbedder().Prepare(nil); err == nil {
		t.Error("Prepare(nil) error = nil, want error")
	}
	err := NewEmbedder().Prepare([][]string{{}, {}})
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("Prepare(no tokens) error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestEmbed(t *testing.T) {
	e := NewEmbedder()
	if _, err := e.Embed([]string{"a"}); err == nil {
		t.Error("Embed() before Prepare error = nil, want error")
	}
	// idf: a = log2(2/2) = 0, b = c = log2(2/1) = 1
	if err := e.Prepare([][]string{{"a", "b"}, {"a", "c"}}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		tokens []string
		want   []float64
	}{
		{"unit vector", []string{"a", "b"}, []float64{0, 1, 0}},
		{"two terms", []string{"b", "c"}, []float64{0, 1 / math.Sqrt2, 1 / math.Sqrt2}},
		{"raw counts", []string{"b", "b", "c"}, []float64{0, 2 / math.Sqrt(5), 1 / math.Sqrt(5)}},
		{"zero weight", []string{"a"}, []float64{0, 0, 0}},
		{"unknown term", []string{"z"}, []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Embed(tt.tokens)
			if err != nil {
				t.Fatalf("Embed() error = %v", err)
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("Embed(%v) = %v, want %v", tt.tokens, got, tt.want)
					break
				}
			}
		})
	}
}
