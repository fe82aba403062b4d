package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Sentence is one contiguous span of a document.
// Text is the raw span Content[Start:End], trailing whitespace included.
type Sentence struct {
	Index  int
	Start  int
	End    int
	Text   string
	Tokens []string
}

// ScoredSentence pairs a sentence ordinal with its importance score.
type ScoredSentence struct {
	Index int
	Score float64
}

// Highlight marks whether a sentence was picked for the summary.
type Highlight struct {
	Sentence Sentence
	Selected bool
}

// Summarizer extracts sentences from free text.
type Summarizer interface {
	SummarizeSentences(text string, n int) ([]string, error)
	SummarizeRatio(text string, ratio float64) ([]string, error)
}
