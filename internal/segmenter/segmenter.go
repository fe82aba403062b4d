// Package segmenter splits documents into contiguous sentence spans.
package segmenter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/sentences"

	"summary/internal/domain"
)

// Rules supplies the language-specific boundary decisions.
type Rules interface {
	IsTerminator(r rune) bool
	IsCloser(r rune) bool
	IsBoundary(text string, start, end int) bool
}

// Split scans text for terminator runs and cuts a sentence wherever rules
// accept the boundary. Whitespace following a boundary stays with the
// sentence it follows, so concatenating the spans reproduces text.
// Empty or whitespace-only text yields no sentences.
func Split(text string, rules Rules) []domain.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []domain.Sentence
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !rules.IsTerminator(r) {
			i += size
			continue
		}
		end := advance(text, i+size, rules.IsTerminator)
		end = advance(text, end, rules.IsCloser)
		if !rules.IsBoundary(text, i, end) {
			i = end
			continue
		}
		end = advance(text, end, unicode.IsSpace)
		out = append(out, span(len(out), text, start, end))
		start, i = end, end
	}
	if start < len(text) {
		out = append(out, span(len(out), text, start, len(text)))
	}
	return out
}

// SplitUAX29 cuts text at Unicode default sentence boundaries (UAX #29).
// It is used when no language profile applies.
func SplitUAX29(text string) []domain.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []domain.Sentence
	start, pos := 0, 0
	for _, seg := range sentences.SegmentAll([]byte(text)) {
		pos += len(seg)
		if strings.TrimSpace(text[start:pos]) == "" {
			// Blank segments belong to the sentence before them, or to the
			// first sentence when they lead the text.
			if len(out) > 0 {
				last := &out[len(out)-1]
				last.End = pos
				last.Text = text[last.Start:pos]
				start = pos
			}
			continue
		}
		out = append(out, span(len(out), text, start, pos))
		start = pos
	}
	return out
}

func span(index int, text string, start, end int) domain.Sentence {
	return domain.Sentence{Index: index, Start: start, End: end, Text: text[start:end]}
}

func advance(text string, pos int, match func(rune) bool) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !match(r) {
			break
		}
		pos += size
	}
	return pos
}
