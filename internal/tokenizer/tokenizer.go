// Package tokenizer turns sentence spans into normalized word tokens.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary is the part of a language profile the tokenizer consults.
type Vocabulary interface {
	IsStopWord(word string) bool
	JoinsHyphens() bool
}

// Tokenizer splits text on Unicode word boundaries, case-folds each word and
// drops stop words. It holds a stateful case folder and must not be shared
// between goroutines; create one per summarization call.
type Tokenizer struct {
	vocab Vocabulary
	fold  cases.Caser
}

var apostrophes = strings.NewReplacer("’", "'", "ʼ", "'", "‘", "'")

// New creates a tokenizer for the given vocabulary.
func New(vocab Vocabulary) *Tokenizer {
	return &Tokenizer{vocab: vocab, fold: cases.Fold()}
}

// Tokens returns the normalized, stop-word filtered tokens of text in order.
func (t *Tokenizer) Tokens(text string) []string {
	segments := Words(text)
	if t.vocab.JoinsHyphens() {
		segments = joinHyphens(segments)
	}
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !isWord(seg) {
			continue
		}
		w := t.Normalize(seg)
		if w == "" || t.vocab.IsStopWord(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Normalize folds case and strips leading and trailing punctuation.
func (t *Tokenizer) Normalize(word string) string {
	w := t.fold.String(apostrophes.Replace(word))
	return strings.TrimFunc(w, unicode.IsPunct)
}

// Words returns the UAX #29 word segments of the NFC form of text,
// including whitespace and punctuation segments.
func Words(text string) []string {
	segs := words.SegmentAll([]byte(norm.NFC.String(text)))
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = string(s)
	}
	return out
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func isHyphen(seg string) bool {
	return seg == "-" || seg == "‐" || seg == "‑"
}

// joinHyphens merges word-hyphen-word runs such as "state-of-the-art".
func joinHyphens(segs []string) []string {
	out := make([]string, 0, len(segs))
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		if isWord(seg) {
			for i+2 < len(segs) && isHyphen(segs[i+1]) && isWord(segs[i+2]) {
				seg += segs[i+1] + segs[i+2]
				i += 2
			}
		}
		out = append(out, seg)
	}
	return out
}
